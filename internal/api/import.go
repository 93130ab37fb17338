package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vta-edu/schedule-back/internal/db"
	"github.com/vta-edu/schedule-back/internal/excel"
	"github.com/vta-edu/schedule-back/internal/models"
	"github.com/vta-edu/schedule-back/internal/schedule"
)

// ImportSchedules godoc
// @Summary      Import sessions from an xlsx workbook
// @Description  Every row is resolved by name and validated through the holiday and conflict gate. Rejected rows are reported with the reason, accepted rows are saved.
// @Tags         import
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Workbook"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /import/schedules [post]
func ImportSchedules(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}

	path := filepath.Join(os.TempDir(), fmt.Sprintf("import-%d.xlsx", time.Now().UnixNano()))
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save upload"})
		return
	}
	defer os.Remove(path)

	rows, err := excel.ParseSessions(path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel"})
		return
	}

	snap, err := loadSnapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	classByName := make(map[string]*models.Class, len(snap.Classes))
	for i := range snap.Classes {
		classByName[strings.ToLower(snap.Classes[i].Name)] = &snap.Classes[i]
	}
	subjectByName := make(map[string]*models.Subject, len(snap.Subjects))
	for i := range snap.Subjects {
		subjectByName[strings.ToLower(snap.Subjects[i].Name)] = &snap.Subjects[i]
	}

	teachers, err := db.ListTeachers(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teachers"})
		return
	}
	teacherByName := make(map[string]*models.Teacher, len(teachers))
	for i := range teachers {
		teacherByName[strings.ToLower(teachers[i].Name)] = &teachers[i]
	}

	var (
		accepted []models.Session
		rejected []gin.H
	)
	existing := snap.Sessions

	for _, row := range rows {
		cls := classByName[strings.ToLower(row.ClassName)]
		subject := subjectByName[strings.ToLower(row.SubjectName)]
		teacher := teacherByName[strings.ToLower(row.TeacherName)]
		if cls == nil || subject == nil || teacher == nil {
			rejected = append(rejected, gin.H{"row": row.RowNumber, "reason": "unknown class, subject or teacher"})
			continue
		}

		candidate := models.Session{
			ID:          uuid.NewString(),
			Type:        models.TypeClass,
			TeacherID:   teacher.ID,
			SubjectID:   subject.ID,
			ClassID:     cls.ID,
			RoomID:      row.Room,
			Date:        row.Date,
			StartPeriod: row.StartPeriod,
			PeriodCount: row.PeriodCount,
			Status:      schedule.DetermineStatus(row.Date, models.StatusPending, time.Now()),
			Group:       row.Group,
			Note:        row.Note,
		}

		conflict := schedule.CheckConflict(candidate, existing, snap.Subjects, snap.Classes, snap.Holidays, nil)
		if conflict.HasConflict {
			rejected = append(rejected, gin.H{"row": row.RowNumber, "reason": conflict.Message, "kind": conflict.Kind})
			continue
		}

		accepted = append(accepted, candidate)
		existing = append(existing, candidate)
	}

	if err := db.SaveSessions(context.Background(), accepted); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save schedules"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Schedules imported",
		"imported": len(accepted),
		"rejected": rejected,
	})
}
