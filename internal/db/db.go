package db

import (
	"context"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vta-edu/schedule-back/internal/models"
)

var DB *gorm.DB

func InitDB(dsn string) {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// AutoMigrate will create/update tables automatically
	err = DB.AutoMigrate(
		&models.Session{},
		&models.Subject{},
		&models.Class{},
		&models.Teacher{},
		&models.Holiday{},
		&models.SubjectClassStatus{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	fmt.Println("✅ Database connected and migrated")
}

func PingDB() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// -------------------- SNAPSHOT LOADERS --------------------
// The scheduling core works on full snapshots; these feed it.

func ListSessions(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	if err := DB.WithContext(ctx).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func ListSubjects(ctx context.Context) ([]models.Subject, error) {
	var subjects []models.Subject
	if err := DB.WithContext(ctx).Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func ListClasses(ctx context.Context) ([]models.Class, error) {
	var classes []models.Class
	if err := DB.WithContext(ctx).Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := DB.WithContext(ctx).Find(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

func ListHolidays(ctx context.Context) ([]models.Holiday, error) {
	var holidays []models.Holiday
	if err := DB.WithContext(ctx).Find(&holidays).Error; err != nil {
		return nil, err
	}
	return holidays, nil
}

func ListCompletionOverrides(ctx context.Context) ([]models.SubjectClassStatus, error) {
	var rows []models.SubjectClassStatus
	if err := DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// -------------------- SESSIONS --------------------

func GetSession(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	if err := DB.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func SaveSession(ctx context.Context, s models.Session) error {
	return DB.WithContext(ctx).Create(&s).Error
}

func SaveSessions(ctx context.Context, sessions []models.Session) error {
	if len(sessions) == 0 {
		return nil
	}
	return DB.WithContext(ctx).Create(&sessions).Error
}

func UpdateSession(ctx context.Context, id string, fields map[string]interface{}) error {
	return DB.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Updates(fields).Error
}

func DeleteSessions(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return DB.WithContext(ctx).Where("id IN ?", ids).Delete(&models.Session{}).Error
}

func ListSessionsByClass(ctx context.Context, classID string) ([]models.Session, error) {
	var sessions []models.Session
	if err := DB.WithContext(ctx).Where("class_id = ?", classID).Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

// -------------------- ENTITIES --------------------

func SaveTeacher(ctx context.Context, t models.Teacher) error {
	return DB.WithContext(ctx).Create(&t).Error
}

func UpdateTeacher(ctx context.Context, id string, fields map[string]interface{}) error {
	return DB.WithContext(ctx).Model(&models.Teacher{}).Where("id = ?", id).Updates(fields).Error
}

func DeleteTeacher(ctx context.Context, id string) error {
	return DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Teacher{}).Error
}

func SaveSubject(ctx context.Context, s models.Subject) error {
	return DB.WithContext(ctx).Create(&s).Error
}

func GetSubject(ctx context.Context, id string) (*models.Subject, error) {
	var s models.Subject
	if err := DB.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func UpdateSubject(ctx context.Context, id string, fields map[string]interface{}) error {
	return DB.WithContext(ctx).Model(&models.Subject{}).Where("id = ?", id).Updates(fields).Error
}

func DeleteSubject(ctx context.Context, id string) error {
	return DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Subject{}).Error
}

func SaveClass(ctx context.Context, c models.Class) error {
	return DB.WithContext(ctx).Create(&c).Error
}

func GetClass(ctx context.Context, id string) (*models.Class, error) {
	var c models.Class
	if err := DB.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func UpdateClass(ctx context.Context, id string, fields map[string]interface{}) error {
	return DB.WithContext(ctx).Model(&models.Class{}).Where("id = ?", id).Updates(fields).Error
}

func DeleteClass(ctx context.Context, id string) error {
	return DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Class{}).Error
}

func SaveHoliday(ctx context.Context, h models.Holiday) error {
	return DB.WithContext(ctx).Create(&h).Error
}

func UpdateHoliday(ctx context.Context, id string, fields map[string]interface{}) error {
	return DB.WithContext(ctx).Model(&models.Holiday{}).Where("id = ?", id).Updates(fields).Error
}

func DeleteHoliday(ctx context.Context, id string) error {
	return DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Holiday{}).Error
}

// -------------------- COMPLETION OVERRIDES --------------------

func UpsertCompletionOverride(ctx context.Context, row models.SubjectClassStatus) error {
	var existing models.SubjectClassStatus
	err := DB.WithContext(ctx).
		Where("subject_id = ? AND class_id = ?", row.SubjectID, row.ClassID).
		First(&existing).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return DB.WithContext(ctx).Create(&row).Error
		}
		return err
	}
	return DB.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
		"status_override":  row.StatusOverride,
		"paid":             row.Paid,
		"manual_completed": row.ManualCompleted,
	}).Error
}
