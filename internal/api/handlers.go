package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vta-edu/schedule-back/internal/db"
	"github.com/vta-edu/schedule-back/internal/models"
	"github.com/vta-edu/schedule-back/internal/schedule"
)

// -------------------- TEACHERS --------------------

// CreateTeacherRequest is the request body for creating a teacher
type CreateTeacherRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

// ListTeachers godoc
// @Summary      List teachers
// @Tags         teachers
// @Produce      json
// @Success      200 {array} models.Teacher
// @Failure      500 {object} map[string]string
// @Router       /teachers [get]
func ListTeachers(c *gin.Context) {
	teachers, err := db.ListTeachers(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teachers"})
		return
	}
	c.JSON(http.StatusOK, teachers)
}

// CreateTeacher godoc
// @Summary      Create a teacher
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Param        body body CreateTeacherRequest true "Teacher info"
// @Success      200 {object} models.Teacher
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /teachers [post]
func CreateTeacher(c *gin.Context) {
	var req CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	t := models.Teacher{ID: uuid.NewString(), Name: req.Name, Phone: req.Phone}
	if err := db.SaveTeacher(context.Background(), t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save teacher"})
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateTeacher godoc
// @Summary      Update a teacher
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Param        id   path  string true "Teacher ID"
// @Param        body body  CreateTeacherRequest true "Teacher info"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /teachers/{id} [put]
func UpdateTeacher(c *gin.Context) {
	id := c.Param("id")
	var req CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	fields := map[string]interface{}{"name": req.Name, "phone": req.Phone}
	if err := db.UpdateTeacher(context.Background(), id, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update teacher"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Teacher updated"})
}

// DeleteTeacher godoc
// @Summary      Delete a teacher
// @Tags         teachers
// @Produce      json
// @Param        id path string true "Teacher ID"
// @Success      200 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /teachers/{id} [delete]
func DeleteTeacher(c *gin.Context) {
	if err := db.DeleteTeacher(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete teacher"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Teacher deleted"})
}

// -------------------- SUBJECTS --------------------

// CreateSubjectRequest is the request body for creating or updating a subject
type CreateSubjectRequest struct {
	Name                string `json:"name" binding:"required"`
	MajorID             string `json:"major_id" binding:"required"`
	TotalPeriods        int    `json:"total_periods" binding:"required"`
	TotalPeriodsEvening int    `json:"total_periods_evening"`
	IsShared            bool   `json:"is_shared"`
	Teacher1            string `json:"teacher1"`
	Teacher2            string `json:"teacher2"`
	Teacher3            string `json:"teacher3"`
}

// ListSubjects godoc
// @Summary      List subjects
// @Tags         subjects
// @Produce      json
// @Success      200 {array} models.Subject
// @Failure      500 {object} map[string]string
// @Router       /subjects [get]
func ListSubjects(c *gin.Context) {
	subjects, err := db.ListSubjects(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subjects"})
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// CreateSubject godoc
// @Summary      Create a subject
// @Tags         subjects
// @Accept       json
// @Produce      json
// @Param        body body CreateSubjectRequest true "Subject info"
// @Success      200 {object} models.Subject
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /subjects [post]
func CreateSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	s := models.Subject{
		ID:                  uuid.NewString(),
		Name:                req.Name,
		MajorID:             req.MajorID,
		TotalPeriods:        req.TotalPeriods,
		TotalPeriodsEvening: req.TotalPeriodsEvening,
		IsShared:            req.IsShared,
		Teacher1:            req.Teacher1,
		Teacher2:            req.Teacher2,
		Teacher3:            req.Teacher3,
	}
	if err := db.SaveSubject(context.Background(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save subject"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateSubject godoc
// @Summary      Update a subject
// @Tags         subjects
// @Accept       json
// @Produce      json
// @Param        id   path string true "Subject ID"
// @Param        body body CreateSubjectRequest true "Subject info"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /subjects/{id} [put]
func UpdateSubject(c *gin.Context) {
	id := c.Param("id")
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	fields := map[string]interface{}{
		"name":                  req.Name,
		"major_id":              req.MajorID,
		"total_periods":         req.TotalPeriods,
		"total_periods_evening": req.TotalPeriodsEvening,
		"is_shared":             req.IsShared,
		"teacher1":              req.Teacher1,
		"teacher2":              req.Teacher2,
		"teacher3":              req.Teacher3,
	}
	if err := db.UpdateSubject(context.Background(), id, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subject"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subject updated"})
}

// DeleteSubject godoc
// @Summary      Delete a subject
// @Tags         subjects
// @Produce      json
// @Param        id path string true "Subject ID"
// @Success      200 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /subjects/{id} [delete]
func DeleteSubject(c *gin.Context) {
	if err := db.DeleteSubject(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subject"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subject deleted"})
}

// -------------------- CLASSES --------------------

// CreateClassRequest is the request body for creating or updating a class
type CreateClassRequest struct {
	Name       string `json:"name" binding:"required"`
	MajorID    string `json:"major_id" binding:"required"`
	Session    string `json:"session"`
	Campus     int    `json:"campus"`
	SchoolYear string `json:"school_year"`
}

// ListClasses godoc
// @Summary      List classes
// @Tags         classes
// @Produce      json
// @Success      200 {array} models.Class
// @Failure      500 {object} map[string]string
// @Router       /classes [get]
func ListClasses(c *gin.Context) {
	classes, err := db.ListClasses(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classes"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// CreateClass godoc
// @Summary      Create a class
// @Description  Campus 0 is resolved from the class name for legacy naming
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        body body CreateClassRequest true "Class info"
// @Success      200 {object} models.Class
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /classes [post]
func CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	session := req.Session
	if session == "" {
		session = models.SessionDay
	}
	campus := req.Campus
	if campus == 0 {
		campus = schedule.CampusFromName(req.Name)
	}

	cls := models.Class{
		ID:         uuid.NewString(),
		Name:       req.Name,
		MajorID:    req.MajorID,
		Session:    session,
		Campus:     campus,
		SchoolYear: req.SchoolYear,
	}
	if err := db.SaveClass(context.Background(), cls); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save class"})
		return
	}
	c.JSON(http.StatusOK, cls)
}

// UpdateClass godoc
// @Summary      Update a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        id   path string true "Class ID"
// @Param        body body CreateClassRequest true "Class info"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /classes/{id} [put]
func UpdateClass(c *gin.Context) {
	id := c.Param("id")
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	fields := map[string]interface{}{
		"name":        req.Name,
		"major_id":    req.MajorID,
		"session":     req.Session,
		"campus":      req.Campus,
		"school_year": req.SchoolYear,
	}
	if err := db.UpdateClass(context.Background(), id, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update class"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class updated"})
}

// DeleteClass godoc
// @Summary      Delete a class
// @Tags         classes
// @Produce      json
// @Param        id path string true "Class ID"
// @Success      200 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /classes/{id} [delete]
func DeleteClass(c *gin.Context) {
	if err := db.DeleteClass(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete class"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted"})
}

// -------------------- HOLIDAYS --------------------

// CreateHolidayRequest is the request body for creating a holiday
type CreateHolidayRequest struct {
	Name      string `json:"name" binding:"required"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// ListHolidays godoc
// @Summary      List holidays
// @Tags         holidays
// @Produce      json
// @Success      200 {array} models.Holiday
// @Failure      500 {object} map[string]string
// @Router       /holidays [get]
func ListHolidays(c *gin.Context) {
	holidays, err := db.ListHolidays(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch holidays"})
		return
	}
	c.JSON(http.StatusOK, holidays)
}

// CreateHoliday godoc
// @Summary      Create a holiday
// @Description  Start and end dates are inclusive; no session may be placed inside the range
// @Tags         holidays
// @Accept       json
// @Produce      json
// @Param        body body CreateHolidayRequest true "Holiday info"
// @Success      200 {object} models.Holiday
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /holidays [post]
func CreateHoliday(c *gin.Context) {
	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.EndDate < req.StartDate {
		c.JSON(http.StatusBadRequest, gin.H{"error": "End date before start date"})
		return
	}

	h := models.Holiday{
		ID:        uuid.NewString(),
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := db.SaveHoliday(context.Background(), h); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save holiday"})
		return
	}
	c.JSON(http.StatusOK, h)
}

// DeleteHoliday godoc
// @Summary      Delete a holiday
// @Tags         holidays
// @Produce      json
// @Param        id path string true "Holiday ID"
// @Success      200 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /holidays/{id} [delete]
func DeleteHoliday(c *gin.Context) {
	if err := db.DeleteHoliday(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete holiday"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Holiday deleted"})
}
