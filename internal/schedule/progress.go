package schedule

import (
	"math"
	"sort"

	"github.com/vta-edu/schedule-back/internal/models"
)

// Progress is the learned/remaining view for one subject in one class
// (optionally one practical group).
type Progress struct {
	Learned    int `json:"learned"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
	Remaining  int `json:"remaining"`
}

// SequenceInfo places one session inside its subject's running order.
type SequenceInfo struct {
	Cumulative int  `json:"cumulative"`
	IsFirst    bool `json:"is_first"`
	IsLast     bool `json:"is_last"`
}

// groupIncluded applies the group-inclusion rule. Sessions with no group
// are common delivery and count for everyone; a group filter additionally
// admits that group's own sessions while excluding sibling groups.
func groupIncluded(sessionGroup, filterGroup string) bool {
	if filterGroup == "" {
		return sessionGroup == ""
	}
	return sessionGroup == "" || sessionGroup == filterGroup
}

// SubjectProgress sums non-cancelled periods for a subject and class.
func SubjectProgress(subjectID, classID string, totalPeriods int, sessions []models.Session, group string) Progress {
	learned := 0
	for _, s := range sessions {
		if s.SubjectID != subjectID || s.ClassID != classID || s.Status == models.StatusOff {
			continue
		}
		if !groupIncluded(s.Group, group) {
			continue
		}
		learned += s.PeriodCount
	}

	percentage := 0
	if totalPeriods > 0 {
		percentage = int(math.Round(float64(learned) / float64(totalPeriods) * 100))
		if percentage > 100 {
			percentage = 100
		}
	}
	remaining := totalPeriods - learned
	if remaining < 0 {
		remaining = 0
	}

	return Progress{
		Learned:    learned,
		Total:      totalPeriods,
		Percentage: percentage,
		Remaining:  remaining,
	}
}

// SessionSequenceInfo computes the cumulative period count up to and
// including the given session, ordered by date then start period, and
// marks the first and the curriculum-completing session. A session not
// found in the relevant set yields the zero value.
func SessionSequenceInfo(current models.Session, all []models.Session, totalPeriods int) SequenceInfo {
	var relevant []models.Session
	for _, s := range all {
		if s.SubjectID != current.SubjectID || s.ClassID != current.ClassID {
			continue
		}
		if s.Status == models.StatusOff || s.Type != models.TypeClass {
			continue
		}
		if !groupIncluded(s.Group, current.Group) {
			continue
		}
		relevant = append(relevant, s)
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		di := ParseLocalDate(relevant[i].Date)
		dj := ParseLocalDate(relevant[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return relevant[i].StartPeriod < relevant[j].StartPeriod
	})

	index := -1
	for i, s := range relevant {
		if s.ID == current.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return SequenceInfo{}
	}

	cumulative := 0
	for i := 0; i <= index; i++ {
		cumulative += relevant[i].PeriodCount
	}

	before := cumulative - relevant[index].PeriodCount

	return SequenceInfo{
		Cumulative: cumulative,
		IsFirst:    before == 0,
		IsLast:     totalPeriods > 0 && cumulative >= totalPeriods,
	}
}
