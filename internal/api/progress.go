package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vta-edu/schedule-back/internal/db"
	"github.com/vta-edu/schedule-back/internal/models"
	"github.com/vta-edu/schedule-back/internal/schedule"
)

// GetProgress godoc
// @Summary      Subject progress for a class
// @Description  Learned/remaining periods against the effective total (evening classes may run a shorter curriculum). An optional group restricts to common delivery plus that group.
// @Tags         progress
// @Produce      json
// @Param        subject_id query string true  "Subject ID"
// @Param        class_id   query string true  "Class ID"
// @Param        group      query string false "Practical group"
// @Success      200 {object} schedule.Progress
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /progress [get]
func GetProgress(c *gin.Context) {
	subjectID := c.Query("subject_id")
	classID := c.Query("class_id")
	group := c.Query("group")

	if subjectID == "" || classID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing subject_id or class_id"})
		return
	}

	snap, err := loadSnapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	subject := snap.subject(subjectID)
	if subject == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subject"})
		return
	}

	total := schedule.EffectiveTotalPeriods(*subject, snap.class(classID))
	progress := schedule.SubjectProgress(subjectID, classID, total, snap.Sessions, group)
	c.JSON(http.StatusOK, progress)
}

// GetScheduleSequence godoc
// @Summary      Session position in its subject's running order
// @Description  Cumulative periods up to and including the session, with first/last markers for display.
// @Tags         progress
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} schedule.SequenceInfo
// @Failure      404 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /schedules/{id}/sequence [get]
func GetScheduleSequence(c *gin.Context) {
	snap, err := loadSnapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	current, err := db.GetSession(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	total := 0
	if subject := snap.subject(current.SubjectID); subject != nil {
		total = schedule.EffectiveTotalPeriods(*subject, snap.class(current.ClassID))
	}

	info := schedule.SessionSequenceInfo(*current, snap.Sessions, total)
	c.JSON(http.StatusOK, info)
}

// GetSubjectFinished godoc
// @Summary      Completion verdict for a subject and class
// @Description  Manual override first, then the legacy paid/manual flags, then the automatic period count. A subject that never started is never finished.
// @Tags         completion
// @Produce      json
// @Param        id       path  string true "Subject ID"
// @Param        class_id query string true "Class ID"
// @Success      200 {object} map[string]bool
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /subjects/{id}/finished [get]
func GetSubjectFinished(c *gin.Context) {
	classID := c.Query("class_id")
	if classID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing class_id"})
		return
	}

	snap, err := loadSnapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	subject := snap.subject(c.Param("id"))
	if subject == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subject"})
		return
	}

	rows, err := db.ListCompletionOverrides(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load overrides"})
		return
	}

	finished := schedule.IsSubjectFinished(*subject, snap.class(classID), snap.Sessions, schedule.NewCompletionOverrides(rows))
	c.JSON(http.StatusOK, gin.H{"finished": finished})
}

// SetCompletionRequest is the request body for a completion override
type SetCompletionRequest struct {
	ClassID         string `json:"class_id" binding:"required"`
	StatusOverride  string `json:"status_override"` // completed | in-progress | ""
	Paid            bool   `json:"paid"`
	ManualCompleted bool   `json:"manual_completed"`
}

// SetSubjectCompletion godoc
// @Summary      Set a manual completion override
// @Tags         completion
// @Accept       json
// @Produce      json
// @Param        id   path string true "Subject ID"
// @Param        body body SetCompletionRequest true "Override"
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /subjects/{id}/completion [patch]
func SetSubjectCompletion(c *gin.Context) {
	var req SetCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	switch req.StatusOverride {
	case "", schedule.OverrideCompleted, schedule.OverrideInProgress:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status_override"})
		return
	}

	row := models.SubjectClassStatus{
		SubjectID:       c.Param("id"),
		ClassID:         req.ClassID,
		StatusOverride:  req.StatusOverride,
		Paid:            req.Paid,
		ManualCompleted: req.ManualCompleted,
	}
	if err := db.UpsertCompletionOverride(context.Background(), row); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save override"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Completion override saved"})
}

// GetSubjectTeachers godoc
// @Summary      Ranked teacher list for a subject
// @Description  Teachers named in the subject's responsible-teacher hints come first.
// @Tags         subjects
// @Produce      json
// @Param        id path string true "Subject ID"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /subjects/{id}/teachers [get]
func GetSubjectTeachers(c *gin.Context) {
	subject, err := db.GetSubject(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subject"})
		return
	}

	teachers, err := db.ListTeachers(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch teachers"})
		return
	}

	suggested, others := schedule.SuggestTeachers(*subject, teachers)
	c.JSON(http.StatusOK, gin.H{"suggested": suggested, "others": others})
}

// GetEligibleClasses godoc
// @Summary      Classes a subject may be combined with
// @Description  Relative to a main class: same campus, same day/evening session, and the subject's category rules.
// @Tags         subjects
// @Produce      json
// @Param        id       path  string true "Subject ID"
// @Param        class_id query string true "Main class ID"
// @Success      200 {array} models.Class
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /subjects/{id}/eligible-classes [get]
func GetEligibleClasses(c *gin.Context) {
	classID := c.Query("class_id")
	if classID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing class_id"})
		return
	}

	snap, err := loadSnapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	subject := snap.subject(c.Param("id"))
	main := snap.class(classID)
	if subject == nil || main == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown subject or class"})
		return
	}

	eligible := schedule.EligibleClasses(*subject, *main, snap.Classes)
	c.JSON(http.StatusOK, eligible)
}
