package schedule

import (
	"time"

	"github.com/vta-edu/schedule-back/internal/models"
)

// DetermineStatus derives a session's status from its calendar position
// relative to now. Manual Off and Makeup markers are respected; for the
// rest, past dates are completed, future dates pending, today ongoing.
func DetermineStatus(date string, current models.ScheduleStatus, now time.Time) models.ScheduleStatus {
	if current == models.StatusOff || current == models.StatusMakeup {
		return current
	}

	today := truncateToDay(now)
	classDate := ParseLocalDate(date)

	if classDate.Before(today) {
		return models.StatusCompleted
	}
	if classDate.After(today) {
		return models.StatusPending
	}
	return models.StatusOngoing
}
