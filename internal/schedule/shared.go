package schedule

import (
	"strings"

	"github.com/vta-edu/schedule-back/internal/models"
)

// IsSharedSubject reports whether a subject is co-taught across classes:
// either explicitly flagged, or a standard-major subject whose major is
// carried by more than one class (cross-class major subjects are
// implicitly combined).
func IsSharedSubject(subject models.Subject, classes []models.Class) bool {
	if subject.IsShared {
		return true
	}
	if Categorize(subject) != StandardMajor {
		return false
	}
	count := 0
	for _, c := range classes {
		if c.MajorID == subject.MajorID {
			count++
			if count > 1 {
				return true
			}
		}
	}
	return false
}

// RelatedSessions returns every session belonging to the same combined
// lecture as source, source included. Edits, deletes and status changes
// are applied to the whole set so the siblings stay one logical event.
//
// Groups stamped with a SharedGroupID at creation are resolved by id.
// Rows from before stamping fall back to the key equivalence: same
// subject, teacher, room, date and start period.
func RelatedSessions(
	source models.Session,
	all []models.Session,
	subjects []models.Subject,
	classes []models.Class,
) []models.Session {
	if source.SharedGroupID != "" {
		var related []models.Session
		for _, s := range all {
			if s.SharedGroupID == source.SharedGroupID {
				related = append(related, s)
			}
		}
		if len(related) > 0 {
			return related
		}
	}

	subject := subjectByID(subjects, source.SubjectID)
	if subject == nil || !IsSharedSubject(*subject, classes) {
		return []models.Session{source}
	}

	var related []models.Session
	for _, s := range all {
		if s.SubjectID == source.SubjectID &&
			s.TeacherID == source.TeacherID &&
			s.RoomID == source.RoomID &&
			s.Date == source.Date &&
			s.StartPeriod == source.StartPeriod {
			related = append(related, s)
		}
	}
	if len(related) == 0 {
		return []models.Session{source}
	}
	return related
}

// EligibleClasses filters the classes a subject may be combined with,
// relative to a main class: same campus, same day/evening session, and
// the subject's category rules (culture excludes H8 classes, culture_8
// requires them, standard majors require the matching major).
func EligibleClasses(subject models.Subject, main models.Class, classes []models.Class) []models.Class {
	var out []models.Class
	for _, c := range classes {
		if c.ID == main.ID {
			out = append(out, c)
			continue
		}
		if ClassCampus(&c) != ClassCampus(&main) {
			continue
		}
		if c.Session != main.Session {
			continue
		}
		switch Categorize(subject) {
		case CultureStandard:
			if isH8Class(c) {
				continue
			}
		case CultureExtended:
			if !isH8Class(c) {
				continue
			}
		case StandardMajor:
			if c.MajorID != subject.MajorID {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

func isH8Class(c models.Class) bool {
	return strings.Contains(strings.ToUpper(c.Name), "H8")
}
