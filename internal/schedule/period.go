package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/vta-edu/schedule-back/internal/models"
)

// Day-part labels derived from the start period.
const (
	SessionMorning   = "Sáng"
	SessionAfternoon = "Chiều"
	SessionEvening   = "Tối"
)

// ParseLocalDate parses a YYYY-MM-DD string into a local-midnight date.
// Construction is done field by field so the result never shifts a day
// across timezones. Malformed input falls back to today.
func ParseLocalDate(dateStr string) time.Time {
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return truncateToDay(time.Now())
	}
	y, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	d, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return truncateToDay(time.Now())
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

func truncateToDay(t time.Time) time.Time {
	local := t.In(time.Local)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// PeriodSession maps a start period to its day part:
// 1-5 morning, 6-10 afternoon, 11-14 evening.
func PeriodSession(startPeriod int) string {
	if startPeriod <= 5 {
		return SessionMorning
	}
	if startPeriod <= 10 {
		return SessionAfternoon
	}
	return SessionEvening
}

// EffectiveTotalPeriods returns the curriculum length for a subject as
// taught to a given class. Evening cohorts may run a shorter program.
func EffectiveTotalPeriods(subject models.Subject, class *models.Class) int {
	if class != nil && class.Session == models.SessionEvening && subject.TotalPeriodsEvening > 0 {
		return subject.TotalPeriodsEvening
	}
	return subject.TotalPeriods
}

var yearPrefixRe = regexp.MustCompile(`^(\d{2})`)

// CampusFromName derives a campus number from a legacy class name.
// Intake-24 names end in 01 or 02; intake 25 and later carry the campus
// digit in the body. 0 means unknown and always conflicts on room reuse.
func CampusFromName(className string) int {
	if className == "" {
		return 0
	}
	name := strings.ToUpper(strings.TrimSpace(className))

	if strings.HasPrefix(name, "24") {
		if strings.HasSuffix(name, "01") {
			return 1
		}
		if strings.HasSuffix(name, "02") {
			return 2
		}
	}

	if m := yearPrefixRe.FindString(name); m != "" {
		year, _ := strconv.Atoi(m)
		if year >= 25 {
			body := name[2:]
			if strings.Contains(body, "1") {
				return 1
			}
			if strings.Contains(body, "2") {
				return 2
			}
		}
	}

	return 0
}

// ClassCampus prefers the explicit campus field and falls back to the
// name heuristic for rows imported before the field existed.
func ClassCampus(class *models.Class) int {
	if class == nil {
		return 0
	}
	if class.Campus != 0 {
		return class.Campus
	}
	return CampusFromName(class.Name)
}

// FindHoliday returns the holiday covering the given date, if any.
// Ranges are inclusive on both ends; dates compare lexicographically
// because they are zero-padded YYYY-MM-DD strings.
func FindHoliday(date string, holidays []models.Holiday) *models.Holiday {
	for i := range holidays {
		h := &holidays[i]
		if date >= h.StartDate && date <= h.EndDate {
			return h
		}
	}
	return nil
}
