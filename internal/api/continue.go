package api

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vta-edu/schedule-back/internal/db"
	"github.com/vta-edu/schedule-back/internal/models"
	"github.com/vta-edu/schedule-back/internal/schedule"
)

// ContinueWeekRequest is the request body for rolling a week forward
type ContinueWeekRequest struct {
	ClassID   string `json:"class_id" binding:"required"`
	WeekStart string `json:"week_start" binding:"required"` // YYYY-MM-DD
}

// ContinueNextWeek godoc
// @Summary      Roll a class's week into the next one
// @Description  Copies every class session of the given week seven days forward, shared groups as a unit, capping each copy at the subject's remaining periods. Finished subjects, holidays and conflicting slots are skipped and reported.
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Param        body body ContinueWeekRequest true "Class and week"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /schedules/continue-week [post]
func ContinueNextWeek(c *gin.Context) {
	var req ContinueWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	snap, err := loadSnapshot(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load data"})
		return
	}

	weekStart := schedule.ParseLocalDate(req.WeekStart)
	weekEnd := weekStart.AddDate(0, 0, 7)

	// The selected class's sessions inside the week, in teaching order.
	var week []models.Session
	for _, s := range snap.Sessions {
		if s.ClassID != req.ClassID {
			continue
		}
		d := schedule.ParseLocalDate(s.Date)
		if d.Before(weekStart) || !d.Before(weekEnd) {
			continue
		}
		week = append(week, s)
	}
	sort.SliceStable(week, func(i, j int) bool {
		di := schedule.ParseLocalDate(week[i].Date)
		dj := schedule.ParseLocalDate(week[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return week[i].StartPeriod < week[j].StartPeriod
	})

	var (
		created  []models.Session
		warnings []string
	)
	addedPeriods := map[string]int{}
	processedShared := map[string]bool{}
	existing := snap.Sessions

	for _, item := range week {
		if item.Type == models.TypeExam {
			continue
		}
		subject := snap.subject(item.SubjectID)
		if subject == nil {
			continue
		}

		itemsToProcess := []models.Session{item}
		if schedule.IsSharedSubject(*subject, snap.Classes) {
			slotKey := fmt.Sprintf("%s-%d-%s-%s", item.Date, item.StartPeriod, item.TeacherID, item.SubjectID)
			if processedShared[slotKey] {
				continue
			}
			itemsToProcess = schedule.RelatedSessions(item, snap.Sessions, snap.Subjects, snap.Classes)
			processedShared[slotKey] = true
		}

		sharedGroupID := ""
		if len(itemsToProcess) > 1 {
			sharedGroupID = uuid.NewString()
		}

		for _, source := range itemsToProcess {
			group := source.Group
			if group == "" {
				group = "common"
			}
			key := fmt.Sprintf("%s-%s-%s", source.SubjectID, source.ClassID, group)
			previouslyAdded := addedPeriods[key]

			effectiveTotal := schedule.EffectiveTotalPeriods(*subject, snap.class(source.ClassID))
			progress := schedule.SubjectProgress(source.SubjectID, source.ClassID, effectiveTotal, existing, source.Group)
			remaining := progress.Remaining - previouslyAdded
			if remaining <= 0 {
				continue
			}

			nextDate := schedule.ParseLocalDate(source.Date).AddDate(0, 0, 7)
			nextDateStr := nextDate.Format("2006-01-02")

			periodsToTeach := source.PeriodCount
			if remaining < periodsToTeach {
				periodsToTeach = remaining
			}

			candidate := models.Session{
				ID:            uuid.NewString(),
				Type:          source.Type,
				TeacherID:     source.TeacherID,
				SubjectID:     source.SubjectID,
				ClassID:       source.ClassID,
				RoomID:        source.RoomID,
				Date:          nextDateStr,
				StartPeriod:   source.StartPeriod,
				PeriodCount:   periodsToTeach,
				Status:        models.StatusPending,
				Group:         source.Group,
				SharedGroupID: sharedGroupID,
			}

			conflict := schedule.CheckConflict(candidate, existing, snap.Subjects, snap.Classes, snap.Holidays, nil)
			if conflict.HasConflict {
				className := source.ClassID
				if cls := snap.class(source.ClassID); cls != nil {
					className = cls.Name
				}
				warnings = append(warnings, fmt.Sprintf("Lớp %s: %s", className, conflict.Message))
				continue
			}

			created = append(created, candidate)
			existing = append(existing, candidate)
			addedPeriods[key] = previouslyAdded + periodsToTeach
		}
	}

	if err := db.SaveSessions(context.Background(), created); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save schedules"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"added":    len(created),
		"warnings": warnings,
	})
}
