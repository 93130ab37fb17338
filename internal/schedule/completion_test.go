package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vta-edu/schedule-back/internal/models"
)

func TestIsSubjectFinishedRequiresStarted(t *testing.T) {
	subject := models.Subject{ID: "math", MajorID: "1", TotalPeriods: 0}
	class := models.Class{ID: "a", Session: models.SessionDay}

	// Zero sessions is never finished, even with a zero effective total.
	finished := IsSubjectFinished(subject, &class, nil, CompletionOverrides{})
	assert.False(t, finished)
}

func TestIsSubjectFinishedAutomatic(t *testing.T) {
	subject := models.Subject{ID: "math", MajorID: "1", TotalPeriods: 6}
	class := models.Class{ID: "a", Session: models.SessionDay}

	sessions := []models.Session{
		session("s1", "math", "t1", "a", "P101", "2025-03-03", 1, 3),
	}
	assert.False(t, IsSubjectFinished(subject, &class, sessions, CompletionOverrides{}))

	sessions = append(sessions, session("s2", "math", "t1", "a", "P101", "2025-03-10", 1, 3))
	assert.True(t, IsSubjectFinished(subject, &class, sessions, CompletionOverrides{}))

	// Cancelled sessions do not count.
	off := session("s3", "math", "t1", "a", "P101", "2025-03-17", 1, 3)
	off.Status = models.StatusOff
	short := []models.Session{sessions[0], off}
	assert.False(t, IsSubjectFinished(subject, &class, short, CompletionOverrides{}))
}

func TestIsSubjectFinishedCultureExtendedNever(t *testing.T) {
	subject := models.Subject{ID: "van", MajorID: models.MajorCulture8, TotalPeriods: 3}
	class := models.Class{ID: "a", Session: models.SessionDay}
	sessions := []models.Session{
		session("s1", "van", "t1", "a", "P101", "2025-03-03", 1, 5),
	}

	overrides := NewCompletionOverrides([]models.SubjectClassStatus{
		{SubjectID: "van", ClassID: "a", StatusOverride: OverrideCompleted},
	})

	// Not even a manual override finishes the open-ended track.
	assert.False(t, IsSubjectFinished(subject, &class, sessions, overrides))
}

func TestIsSubjectFinishedOverridePrecedence(t *testing.T) {
	subject := models.Subject{ID: "math", MajorID: "1", TotalPeriods: 6}
	class := models.Class{ID: "a", Session: models.SessionDay}
	done := []models.Session{
		session("s1", "math", "t1", "a", "P101", "2025-03-03", 1, 6),
	}

	// "in-progress" overrides a complete automatic count.
	overrides := NewCompletionOverrides([]models.SubjectClassStatus{
		{SubjectID: "math", ClassID: "a", StatusOverride: OverrideInProgress},
	})
	assert.False(t, IsSubjectFinished(subject, &class, done, overrides))

	// "completed" overrides an incomplete one.
	overrides = NewCompletionOverrides([]models.SubjectClassStatus{
		{SubjectID: "math", ClassID: "a", StatusOverride: OverrideCompleted},
	})
	assert.True(t, IsSubjectFinished(subject, &class, nil, overrides))

	// Legacy paid/manual flags finish too, when no status override is set.
	overrides = NewCompletionOverrides([]models.SubjectClassStatus{
		{SubjectID: "math", ClassID: "a", Paid: true},
	})
	assert.True(t, IsSubjectFinished(subject, &class, nil, overrides))

	overrides = NewCompletionOverrides([]models.SubjectClassStatus{
		{SubjectID: "math", ClassID: "a", ManualCompleted: true},
	})
	assert.True(t, IsSubjectFinished(subject, &class, nil, overrides))
}

func TestIsSubjectFinishedEveningTotal(t *testing.T) {
	subject := models.Subject{ID: "acct", MajorID: "1", TotalPeriods: 60, TotalPeriodsEvening: 45}
	evening := models.Class{ID: "e", Session: models.SessionEvening}
	day := models.Class{ID: "d", Session: models.SessionDay}

	build := func(classID string, count int) []models.Session {
		return []models.Session{
			session("s1", "acct", "t1", classID, "P101", "2025-03-03", 1, count),
		}
	}

	// 45 periods finish the evening cohort but not the day cohort.
	assert.True(t, IsSubjectFinished(subject, &evening, build("e", 45), CompletionOverrides{}))
	assert.False(t, IsSubjectFinished(subject, &day, build("d", 45), CompletionOverrides{}))
}

func TestIsSubjectFinishedMissingClass(t *testing.T) {
	subject := models.Subject{ID: "math", MajorID: "1", TotalPeriods: 6}

	// Degrades to not finished instead of failing.
	assert.False(t, IsSubjectFinished(subject, nil, nil, CompletionOverrides{}))
}
