package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vta-edu/schedule-back/internal/models"
)

func TestParseLocalDate(t *testing.T) {
	d := ParseLocalDate("2025-03-10")
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, time.Local, d.Location())

	// Malformed input falls back to today instead of erroring.
	today := time.Now()
	for _, bad := range []string{"", "2025-03", "not-a-date-x"} {
		d = ParseLocalDate(bad)
		assert.Equal(t, today.Year(), d.Year(), bad)
	}
}

func TestPeriodSession(t *testing.T) {
	tests := []struct {
		period int
		want   string
	}{
		{1, SessionMorning},
		{5, SessionMorning},
		{6, SessionAfternoon},
		{10, SessionAfternoon},
		{11, SessionEvening},
		{14, SessionEvening},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PeriodSession(tt.period))
	}
}

func TestEffectiveTotalPeriods(t *testing.T) {
	subject := models.Subject{TotalPeriods: 60, TotalPeriodsEvening: 45}

	day := models.Class{Session: models.SessionDay}
	evening := models.Class{Session: models.SessionEvening}

	assert.Equal(t, 60, EffectiveTotalPeriods(subject, &day))
	assert.Equal(t, 45, EffectiveTotalPeriods(subject, &evening))
	assert.Equal(t, 60, EffectiveTotalPeriods(subject, nil))

	// No evening-specific length: the day total applies everywhere.
	subject.TotalPeriodsEvening = 0
	assert.Equal(t, 60, EffectiveTotalPeriods(subject, &evening))
}

func TestCampusFromName(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"24KT01", 1},
		{"24KT02", 2},
		{"24KT03", 0},
		{"25KT1", 1},
		{"25DC2", 2},
		{"26dc1", 1},
		{"Kế toán K15", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CampusFromName(tt.name), tt.name)
	}
}

func TestClassCampusPrefersExplicitField(t *testing.T) {
	c := models.Class{Name: "25KT1", Campus: 2}
	assert.Equal(t, 2, ClassCampus(&c))

	c.Campus = 0
	assert.Equal(t, 1, ClassCampus(&c))

	assert.Equal(t, 0, ClassCampus(nil))
}

func TestFindHolidayInclusiveRange(t *testing.T) {
	holidays := []models.Holiday{
		{ID: "h1", Name: "Tết", StartDate: "2025-02-01", EndDate: "2025-02-05"},
	}

	for _, date := range []string{"2025-02-01", "2025-02-03", "2025-02-05"} {
		h := FindHoliday(date, holidays)
		if assert.NotNil(t, h, date) {
			assert.Equal(t, "Tết", h.Name)
		}
	}

	assert.Nil(t, FindHoliday("2025-01-31", holidays))
	assert.Nil(t, FindHoliday("2025-02-06", holidays))
}

func TestDetermineStatus(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)

	assert.Equal(t, models.StatusCompleted, DetermineStatus("2025-03-09", models.StatusPending, now))
	assert.Equal(t, models.StatusOngoing, DetermineStatus("2025-03-10", models.StatusPending, now))
	assert.Equal(t, models.StatusPending, DetermineStatus("2025-03-11", models.StatusPending, now))

	// Manual markers survive the roll.
	assert.Equal(t, models.StatusOff, DetermineStatus("2025-03-09", models.StatusOff, now))
	assert.Equal(t, models.StatusMakeup, DetermineStatus("2025-03-09", models.StatusMakeup, now))
}

func TestSuggestTeachers(t *testing.T) {
	subject := models.Subject{Teacher1: "Nguyễn Văn Thái", Teacher3: " trần thị hà "}
	teachers := []models.Teacher{
		{ID: "1", Name: "Nguyễn Văn Thái"},
		{ID: "2", Name: "Trần Thị Hà"},
		{ID: "3", Name: "Lê Văn Kha"},
	}

	suggested, others := SuggestTeachers(subject, teachers)
	assert.Len(t, suggested, 2)
	assert.Len(t, others, 1)
	assert.Equal(t, "3", others[0].ID)

	// No hints: nothing suggested.
	suggested, others = SuggestTeachers(models.Subject{}, teachers)
	assert.Nil(t, suggested)
	assert.Len(t, others, 3)
}
