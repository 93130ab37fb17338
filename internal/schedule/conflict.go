package schedule

import (
	"fmt"

	"github.com/vta-edu/schedule-back/internal/models"
)

// ConflictKind tells the caller which resource caused the rejection.
// The message is display text only and must never be parsed.
type ConflictKind string

const (
	ConflictNone             ConflictKind = ""
	ConflictHoliday          ConflictKind = "holiday"
	ConflictDuplicateSubject ConflictKind = "duplicate_subject"
	ConflictRoom             ConflictKind = "room"
	ConflictTeacher          ConflictKind = "teacher"
	ConflictClass            ConflictKind = "class"
	ConflictExam             ConflictKind = "exam"
	ConflictSharedBusy       ConflictKind = "shared_busy"
)

type Conflict struct {
	HasConflict bool         `json:"has_conflict"`
	Kind        ConflictKind `json:"kind"`
	Message     string       `json:"message"`
}

func noConflict() Conflict {
	return Conflict{}
}

func conflict(kind ConflictKind, format string, args ...any) Conflict {
	return Conflict{HasConflict: true, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// CheckConflict decides whether a candidate session may be placed.
// It is a pure predicate over the supplied snapshot: no lookups outside
// its arguments, no mutation. excludeIDs carries the candidate's own id
// and its shared siblings when re-validating an edit.
//
// Holiday rejection is part of the contract so no call site can forget
// the gate. The remaining rules run against every non-cancelled session
// on the same calendar date, first hit wins.
func CheckConflict(
	candidate models.Session,
	existing []models.Session,
	subjects []models.Subject,
	classes []models.Class,
	holidays []models.Holiday,
	excludeIDs []string,
) Conflict {
	if h := FindHoliday(candidate.Date, holidays); h != nil {
		return conflict(ConflictHoliday, "Ngày %s là ngày nghỉ: %s.", candidate.Date, h.Name)
	}

	candidateEnd := candidate.StartPeriod + candidate.PeriodCount

	currentSubject := subjectByID(subjects, candidate.SubjectID)
	isCandidateShared := currentSubject != nil && currentSubject.IsShared

	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}

	candidateDate := ParseLocalDate(candidate.Date)

	for i := range existing {
		item := &existing[i]
		if excluded[item.ID] {
			continue
		}
		if item.Status == models.StatusOff {
			continue
		}
		if !ParseLocalDate(item.Date).Equal(candidateDate) {
			continue
		}

		itemEnd := item.StartPeriod + item.PeriodCount
		overlap := candidate.StartPeriod < itemEnd && candidateEnd > item.StartPeriod
		if !overlap {
			continue
		}

		// Same subject, same class, same time is always a mistake,
		// even for shared subjects.
		if item.ClassID == candidate.ClassID && item.SubjectID == candidate.SubjectID {
			return conflict(ConflictDuplicateSubject, "Lớp này đã có lịch môn này vào giờ này rồi.")
		}

		// A sibling class attending the same shared lecture (same
		// subject, teacher and room) is expected to overlap.
		if isCandidateShared {
			sameInstance := item.SubjectID == candidate.SubjectID &&
				item.TeacherID == candidate.TeacherID &&
				item.RoomID == candidate.RoomID
			if sameInstance {
				continue
			}
		}

		conflictClassName := classNameOrUnknown(classes, item.ClassID)

		if item.RoomID == candidate.RoomID {
			// Same room name on different campuses is two rooms.
			campusA := ClassCampus(classByID(classes, item.ClassID))
			campusB := ClassCampus(classByID(classes, candidate.ClassID))
			if campusA == 0 || campusB == 0 || campusA == campusB {
				return conflict(ConflictRoom, "Trùng phòng học %s: Đang có lớp %s học.", item.RoomID, conflictClassName)
			}
		}

		if item.TeacherID == candidate.TeacherID {
			// An exam lists its responsible teacher, it does not claim
			// their availability.
			if item.Type != models.TypeExam && candidate.Type != models.TypeExam {
				return conflict(ConflictTeacher, "Trùng giáo viên: GV này đang dạy lớp %s.", conflictClassName)
			}
		}

		if item.ClassID == candidate.ClassID {
			return conflict(ConflictClass, "Trùng lịch học của lớp: Lớp này đang học môn khác.")
		}

		if item.Type == models.TypeExam && candidate.Type == models.TypeClass && item.ClassID == candidate.ClassID {
			return conflict(ConflictExam, "Lớp có lịch thi vào giờ này.")
		}
		if item.Type == models.TypeClass && candidate.Type == models.TypeExam && item.ClassID == candidate.ClassID {
			return conflict(ConflictExam, "Lớp có lịch học vào giờ này.")
		}

		// Shared move: a participating class is busy with something else.
		if isCandidateShared && item.ClassID != candidate.ClassID {
			return conflict(ConflictSharedBusy, "Lớp %s đang bận học tại phòng %s.", conflictClassName, item.RoomID)
		}
	}

	return noConflict()
}

func subjectByID(subjects []models.Subject, id string) *models.Subject {
	for i := range subjects {
		if subjects[i].ID == id {
			return &subjects[i]
		}
	}
	return nil
}

func classByID(classes []models.Class, id string) *models.Class {
	for i := range classes {
		if classes[i].ID == id {
			return &classes[i]
		}
	}
	return nil
}

func classNameOrUnknown(classes []models.Class, id string) string {
	if c := classByID(classes, id); c != nil {
		return c.Name
	}
	return "Lớp không xác định"
}
