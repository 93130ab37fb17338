package models

// ScheduleStatus is the lifecycle state of one scheduled session.
type ScheduleStatus string

const (
	StatusPending   ScheduleStatus = "pending"
	StatusOngoing   ScheduleStatus = "ongoing"
	StatusCompleted ScheduleStatus = "completed"
	StatusOff       ScheduleStatus = "off"
	StatusMakeup    ScheduleStatus = "makeup"
)

// Session types.
const (
	TypeClass = "class"
	TypeExam  = "exam"
)

// Class sessions (time of day the class meets).
const (
	SessionDay     = "Ban ngày"
	SessionEvening = "Tối"
)

// Pseudo-majors: subjects common to every class, general culture subjects,
// and the open-ended 8-subject culture track.
const (
	MajorCommon   = "common"
	MajorCulture  = "culture"
	MajorCulture8 = "culture_8"
)

// Session is one scheduled teaching or exam block for one class.
// Sessions sharing a SharedGroupID are one combined-class lecture.
type Session struct {
	ID            string         `gorm:"primaryKey" json:"id"`
	Type          string         `gorm:"not null;default:class" json:"type"` // class | exam
	TeacherID     string         `gorm:"index;not null" json:"teacher_id"`
	SubjectID     string         `gorm:"index;not null" json:"subject_id"`
	ClassID       string         `gorm:"index;not null" json:"class_id"`
	RoomID        string         `gorm:"not null" json:"room_id"` // free-text room label
	Date          string         `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	StartPeriod   int            `gorm:"not null" json:"start_period"`       // 1-14
	PeriodCount   int            `gorm:"not null" json:"period_count"`
	Status        ScheduleStatus `gorm:"size:16;not null" json:"status"`
	Group         string         `json:"group"` // practical sub-group, empty = whole class
	Note          string         `json:"note"`
	SharedGroupID string         `gorm:"index" json:"shared_group_id"` // empty for standalone sessions
}

// End returns the exclusive end period of the occupied interval.
func (s Session) End() int {
	return s.StartPeriod + s.PeriodCount
}

type Subject struct {
	ID                  string `gorm:"primaryKey" json:"id"`
	Name                string `gorm:"not null" json:"name"`
	MajorID             string `gorm:"index;not null" json:"major_id"`
	TotalPeriods        int    `gorm:"not null" json:"total_periods"`
	TotalPeriodsEvening int    `json:"total_periods_evening"` // 0 = same as day
	IsShared            bool   `json:"is_shared"`
	// Responsible-teacher hints, matched by name for suggestion ranking.
	Teacher1 string `json:"teacher1"`
	Teacher2 string `json:"teacher2"`
	Teacher3 string `json:"teacher3"`
}

type Class struct {
	ID         string `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	MajorID    string `gorm:"index;not null" json:"major_id"`
	Session    string `gorm:"size:16;not null" json:"session"` // Ban ngày | Tối
	Campus     int    `json:"campus"` // 0 = unknown, fall back to name heuristic
	SchoolYear string `json:"school_year"`
}

type Teacher struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Phone string `json:"phone"`
}

// Holiday is an inclusive date range on which no session may be placed.
type Holiday struct {
	ID        string `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	StartDate string `gorm:"size:10;not null" json:"start_date"` // YYYY-MM-DD
	EndDate   string `gorm:"size:10;not null" json:"end_date"`
}

// SubjectClassStatus records a manual completion override for one
// subject taught to one class. It replaces the old key-string side table:
// the evaluator receives these rows explicitly instead of reading storage.
type SubjectClassStatus struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	SubjectID       string `gorm:"index:idx_subject_class,unique;not null" json:"subject_id"`
	ClassID         string `gorm:"index:idx_subject_class,unique;not null" json:"class_id"`
	StatusOverride  string `gorm:"size:16" json:"status_override"` // completed | in-progress | ""
	Paid            bool   `json:"paid"`
	ManualCompleted bool   `json:"manual_completed"`
}
