package schedule

import (
	"strings"

	"github.com/vta-edu/schedule-back/internal/models"
)

// SuggestTeachers splits the teacher list into those named as
// responsible for the subject (up to three hints, matched by name,
// case-insensitive) and everyone else. With no hints every teacher
// lands in others.
func SuggestTeachers(subject models.Subject, teachers []models.Teacher) (suggested, others []models.Teacher) {
	var names []string
	for _, n := range []string{subject.Teacher1, subject.Teacher2, subject.Teacher3} {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return nil, teachers
	}

	for _, t := range teachers {
		name := strings.ToLower(strings.TrimSpace(t.Name))
		match := false
		for _, n := range names {
			if n == name {
				match = true
				break
			}
		}
		if match {
			suggested = append(suggested, t)
		} else {
			others = append(others, t)
		}
	}
	return suggested, others
}
