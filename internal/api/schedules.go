package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vta-edu/schedule-back/internal/db"
	"github.com/vta-edu/schedule-back/internal/models"
	"github.com/vta-edu/schedule-back/internal/schedule"
)

// snapshot is the full entity state the scheduling core consumes.
type snapshot struct {
	Sessions []models.Session
	Subjects []models.Subject
	Classes  []models.Class
	Holidays []models.Holiday
}

func loadSnapshot(ctx context.Context) (*snapshot, error) {
	sessions, err := db.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := db.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := db.ListClasses(ctx)
	if err != nil {
		return nil, err
	}
	holidays, err := db.ListHolidays(ctx)
	if err != nil {
		return nil, err
	}
	return &snapshot{Sessions: sessions, Subjects: subjects, Classes: classes, Holidays: holidays}, nil
}

func (s *snapshot) subject(id string) *models.Subject {
	for i := range s.Subjects {
		if s.Subjects[i].ID == id {
			return &s.Subjects[i]
		}
	}
	return nil
}

func (s *snapshot) class(id string) *models.Class {
	for i := range s.Classes {
		if s.Classes[i].ID == id {
			return &s.Classes[i]
		}
	}
	return nil
}

// CreateScheduleRequest is the request body for placing sessions.
// Shared subjects may list several classes; one session is created per
// class and the set is stamped as one shared group.
type CreateScheduleRequest struct {
	Type        string   `json:"type"`
	TeacherID   string   `json:"teacher_id" binding:"required"`
	SubjectID   string   `json:"subject_id" binding:"required"`
	ClassIDs    []string `json:"class_ids" binding:"required,min=1"`
	RoomID      string   `json:"room_id" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	StartPeriod int      `json:"start_period" binding:"required,min=1,max=14"`
	PeriodCount int      `json:"period_count" binding:"required,min=1"`
	Group       string   `json:"group"`
	Note        string   `json:"note"`
}

// ListSchedules godoc
// @Summary      List sessions
// @Description  Optionally filtered by class
// @Tags         schedules
// @Produce      json
// @Param        class_id query string false "Class ID"
// @Success      200 {array} models.Session
// @Failure      500 {object} map[string]string
// @Router       /schedules [get]
func ListSchedules(c *gin.Context) {
	classID := c.Query("class_id")

	var (
		sessions []models.Session
		err      error
	)
	if classID != "" {
		sessions, err = db.ListSessionsByClass(context.Background(), classID)
	} else {
		sessions, err = db.ListSessions(context.Background())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch schedules"})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// CreateSchedule godoc
// @Summary      Place one or more sessions
// @Description  Runs the holiday and conflict gate per class before saving. A rejected slot returns 409 with the conflict kind and message.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body body CreateScheduleRequest true "Session info"
// @Success      200 {array} models.Session
// @Failure      400 {object} map[string]string
// @Failure      409 {object} schedule.Conflict
// @Failure      500 {object} map[string]string
// @Router       /schedules [post]
func CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sessionType := req.Type
	if sessionType == "" {
		sessionType = models.TypeClass
	}
	if sessionType != models.TypeClass && sessionType != models.TypeExam {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session type"})
		return
	}

	snap, err := loadSnapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	subject := snap.subject(req.SubjectID)
	if subject == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subject"})
		return
	}
	if len(req.ClassIDs) > 1 && !schedule.IsSharedSubject(*subject, snap.Classes) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subject is not shared, one class only"})
		return
	}

	sharedGroupID := ""
	if len(req.ClassIDs) > 1 {
		sharedGroupID = uuid.NewString()
	}

	status := schedule.DetermineStatus(req.Date, models.StatusPending, time.Now())

	// Siblings of one group share the slot on purpose, so each class is
	// validated against the stored sessions only.
	var created []models.Session
	seen := make(map[string]bool, len(req.ClassIDs))
	for _, classID := range req.ClassIDs {
		if seen[classID] {
			continue
		}
		seen[classID] = true
		candidate := models.Session{
			ID:            uuid.NewString(),
			Type:          sessionType,
			TeacherID:     req.TeacherID,
			SubjectID:     req.SubjectID,
			ClassID:       classID,
			RoomID:        req.RoomID,
			Date:          req.Date,
			StartPeriod:   req.StartPeriod,
			PeriodCount:   req.PeriodCount,
			Status:        status,
			Group:         req.Group,
			Note:          req.Note,
			SharedGroupID: sharedGroupID,
		}

		conflict := schedule.CheckConflict(candidate, snap.Sessions, snap.Subjects, snap.Classes, snap.Holidays, nil)
		if conflict.HasConflict {
			className := classID
			if cls := snap.class(classID); cls != nil {
				className = cls.Name
			}
			conflict.Message = fmt.Sprintf("Lớp %s: %s", className, conflict.Message)
			c.JSON(http.StatusConflict, conflict)
			return
		}

		created = append(created, candidate)
	}

	if err := db.SaveSessions(context.Background(), created); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save schedules"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// UpdateScheduleRequest is the request body for editing one session.
// Time, teacher and room changes propagate to every shared sibling.
type UpdateScheduleRequest struct {
	TeacherID   string `json:"teacher_id" binding:"required"`
	RoomID      string `json:"room_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	StartPeriod int    `json:"start_period" binding:"required,min=1,max=14"`
	PeriodCount int    `json:"period_count" binding:"required,min=1"`
	Group       string `json:"group"`
	Note        string `json:"note"`
}

// UpdateSchedule godoc
// @Summary      Edit a session
// @Description  Re-validates every participating class of a shared group, holidays included, before applying the change to all of them.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        id   path string true "Session ID"
// @Param        body body UpdateScheduleRequest true "New values"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      409 {object} schedule.Conflict
// @Failure      500 {object} map[string]string
// @Router       /schedules/{id} [put]
func UpdateSchedule(c *gin.Context) {
	id := c.Param("id")
	var req UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	snap, err := loadSnapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	original, err := db.GetSession(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	related := schedule.RelatedSessions(*original, snap.Sessions, snap.Subjects, snap.Classes)
	relatedIDs := make([]string, 0, len(related))
	for _, r := range related {
		relatedIDs = append(relatedIDs, r.ID)
	}

	// Every sibling class keeps its own class id but moves with the
	// group; each slot is re-checked with the group excluded.
	for _, sibling := range related {
		candidate := sibling
		candidate.TeacherID = req.TeacherID
		candidate.RoomID = req.RoomID
		candidate.Date = req.Date
		candidate.StartPeriod = req.StartPeriod
		candidate.PeriodCount = req.PeriodCount

		conflict := schedule.CheckConflict(candidate, snap.Sessions, snap.Subjects, snap.Classes, snap.Holidays, relatedIDs)
		if conflict.HasConflict {
			className := sibling.ClassID
			if cls := snap.class(sibling.ClassID); cls != nil {
				className = cls.Name
			}
			conflict.Message = fmt.Sprintf("Lớp %s: %s", className, conflict.Message)
			c.JSON(http.StatusConflict, conflict)
			return
		}
	}

	fields := map[string]interface{}{
		"teacher_id":   req.TeacherID,
		"room_id":      req.RoomID,
		"date":         req.Date,
		"start_period": req.StartPeriod,
		"period_count": req.PeriodCount,
		"group":        req.Group,
		"note":         req.Note,
	}
	for _, sibling := range related {
		if err := db.UpdateSession(context.Background(), sibling.ID, fields); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update schedule"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule updated", "updated_ids": relatedIDs})
}

// DeleteSchedule godoc
// @Summary      Delete a session
// @Description  With related=true the whole shared group is removed. The response lists the related ids either way, so the caller can confirm before asking for the full delete.
// @Tags         schedules
// @Produce      json
// @Param        id      path  string true  "Session ID"
// @Param        related query bool   false "Delete the whole shared group"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /schedules/{id} [delete]
func DeleteSchedule(c *gin.Context) {
	id := c.Param("id")
	deleteRelated := c.Query("related") == "true"

	snap, err := loadSnapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	original, err := db.GetSession(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	related := schedule.RelatedSessions(*original, snap.Sessions, snap.Subjects, snap.Classes)
	relatedIDs := make([]string, 0, len(related))
	for _, r := range related {
		relatedIDs = append(relatedIDs, r.ID)
	}

	toDelete := []string{id}
	if deleteRelated {
		toDelete = relatedIDs
	}
	if err := db.DeleteSessions(context.Background(), toDelete); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete schedule"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted_ids": toDelete, "related_ids": relatedIDs})
}

// GetRelatedSchedules godoc
// @Summary      List a session's shared group
// @Description  Returns every session belonging to the same combined-class lecture, the session itself included.
// @Tags         schedules
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {array} models.Session
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /schedules/{id}/related [get]
func GetRelatedSchedules(c *gin.Context) {
	snap, err := loadSnapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	original, err := db.GetSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	related := schedule.RelatedSessions(*original, snap.Sessions, snap.Subjects, snap.Classes)
	c.JSON(http.StatusOK, related)
}

// ChangeStatusRequest is the request body for a status change
type ChangeStatusRequest struct {
	Status models.ScheduleStatus `json:"status" binding:"required"`
}

// ChangeScheduleStatus godoc
// @Summary      Change a session's status
// @Description  The new status is applied to every member of the shared group.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        id   path string true "Session ID"
// @Param        body body ChangeStatusRequest true "New status"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /schedules/{id}/status [patch]
func ChangeScheduleStatus(c *gin.Context) {
	id := c.Param("id")
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	switch req.Status {
	case models.StatusPending, models.StatusOngoing, models.StatusCompleted, models.StatusOff, models.StatusMakeup:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	snap, err := loadSnapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	original, err := db.GetSession(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	related := schedule.RelatedSessions(*original, snap.Sessions, snap.Subjects, snap.Classes)
	updated := make([]string, 0, len(related))
	for _, sibling := range related {
		if err := db.UpdateSession(context.Background(), sibling.ID, map[string]interface{}{"status": req.Status}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}
		updated = append(updated, sibling.ID)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated", "updated_ids": updated})
}
