package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vta-edu/schedule-back/internal/models"
)

func TestSubjectProgressAccumulates(t *testing.T) {
	var sessions []models.Session

	// learned grows with every non-cancelled session; remaining never
	// goes negative and percentage caps at 100.
	previous := 0
	dates := []string{"2025-03-03", "2025-03-10", "2025-03-17", "2025-03-24"}
	for _, d := range dates {
		sessions = append(sessions, session("s"+d, "math", "t1", "a", "P101", d, 1, 3))

		p := SubjectProgress("math", "a", 9, sessions, "")
		assert.Greater(t, p.Learned, previous)
		assert.GreaterOrEqual(t, p.Remaining, 0)
		assert.LessOrEqual(t, p.Percentage, 100)
		previous = p.Learned
	}

	p := SubjectProgress("math", "a", 9, sessions, "")
	assert.Equal(t, 12, p.Learned)
	assert.Equal(t, 0, p.Remaining)
	assert.Equal(t, 100, p.Percentage)
}

func TestSubjectProgressIgnoresCancelledAndOtherClasses(t *testing.T) {
	off := session("s1", "math", "t1", "a", "P101", "2025-03-03", 1, 3)
	off.Status = models.StatusOff
	sessions := []models.Session{
		off,
		session("s2", "math", "t1", "b", "P101", "2025-03-03", 1, 3),
		session("s3", "acct", "t1", "a", "P101", "2025-03-04", 1, 3),
		session("s4", "math", "t1", "a", "P101", "2025-03-10", 1, 3),
	}

	p := SubjectProgress("math", "a", 45, sessions, "")
	assert.Equal(t, 3, p.Learned)
	assert.Equal(t, 42, p.Remaining)
}

func TestSubjectProgressGroupSemantics(t *testing.T) {
	common := session("s1", "math", "t1", "a", "P101", "2025-03-03", 1, 3)
	g1 := session("s2", "math", "t1", "a", "X1", "2025-03-04", 1, 4)
	g1.Group = "Nhóm 1"
	g2 := session("s3", "math", "t1", "a", "X2", "2025-03-05", 1, 5)
	g2.Group = "Nhóm 2"
	sessions := []models.Session{common, g1, g2}

	// Group view: common delivery plus that group, sibling group excluded.
	p := SubjectProgress("math", "a", 45, sessions, "Nhóm 1")
	assert.Equal(t, 7, p.Learned)

	// Ungrouped view: common delivery only.
	p = SubjectProgress("math", "a", 45, sessions, "")
	assert.Equal(t, 3, p.Learned)
}

func TestScenarioNinePeriods(t *testing.T) {
	// Subject X with 9 total periods, three 3-period sessions.
	s1 := session("s1", "x", "t1", "c", "P101", "2025-04-07", 1, 3)
	s2 := session("s2", "x", "t1", "c", "P101", "2025-04-14", 1, 3)
	s3 := session("s3", "x", "t1", "c", "P101", "2025-04-21", 1, 3)
	sessions := []models.Session{s1, s2, s3}

	p := SubjectProgress("x", "c", 9, sessions, "")
	assert.Equal(t, Progress{Learned: 9, Total: 9, Percentage: 100, Remaining: 0}, p)

	info := SessionSequenceInfo(s3, sessions, 9)
	assert.Equal(t, SequenceInfo{Cumulative: 9, IsFirst: false, IsLast: true}, info)

	info = SessionSequenceInfo(s1, sessions, 9)
	assert.Equal(t, SequenceInfo{Cumulative: 3, IsFirst: true, IsLast: false}, info)

	subject := models.Subject{ID: "x", MajorID: "1", TotalPeriods: 9}
	class := models.Class{ID: "c", Name: "Lớp C", Session: models.SessionDay}
	finished := IsSubjectFinished(subject, &class, sessions, CompletionOverrides{})
	assert.True(t, finished)
}

func TestSessionSequenceInfoOrdering(t *testing.T) {
	// Out-of-order input; ordering is by date then start period.
	late := session("late", "math", "t1", "a", "P101", "2025-03-10", 6, 2)
	early := session("early", "math", "t1", "a", "P101", "2025-03-10", 1, 3)
	prior := session("prior", "math", "t1", "a", "P101", "2025-03-03", 1, 4)
	sessions := []models.Session{late, early, prior}

	info := SessionSequenceInfo(early, sessions, 0)
	assert.Equal(t, 7, info.Cumulative)
	assert.False(t, info.IsFirst)
	assert.False(t, info.IsLast) // no total supplied

	info = SessionSequenceInfo(prior, sessions, 0)
	assert.True(t, info.IsFirst)
}

func TestSessionSequenceInfoExcludesExamsCancelledAndGroups(t *testing.T) {
	exam := session("exam", "math", "t1", "a", "P101", "2025-03-03", 1, 3)
	exam.Type = models.TypeExam
	off := session("off", "math", "t1", "a", "P101", "2025-03-04", 1, 3)
	off.Status = models.StatusOff
	grouped := session("grp", "math", "t1", "a", "X1", "2025-03-05", 1, 3)
	grouped.Group = "Nhóm 2"
	current := session("cur", "math", "t1", "a", "P101", "2025-03-10", 1, 3)

	info := SessionSequenceInfo(current, []models.Session{exam, off, grouped, current}, 45)
	assert.Equal(t, 3, info.Cumulative)
	assert.True(t, info.IsFirst)
}

func TestSessionSequenceInfoAbsentSession(t *testing.T) {
	other := session("other", "math", "t1", "a", "P101", "2025-03-03", 1, 3)
	missing := session("missing", "math", "t1", "b", "P101", "2025-03-10", 1, 3)

	info := SessionSequenceInfo(missing, []models.Session{other}, 45)
	assert.Equal(t, SequenceInfo{}, info)
}
