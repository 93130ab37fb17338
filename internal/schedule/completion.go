package schedule

import "github.com/vta-edu/schedule-back/internal/models"

// CompletionOverrides carries the manual completion state for the
// subject/class pairs under evaluation, built by the caller from
// SubjectClassStatus rows. The evaluator reads it instead of any
// ambient storage, which keeps it pure.
type CompletionOverrides struct {
	overrides map[subjectClassKey]models.SubjectClassStatus
}

type subjectClassKey struct {
	SubjectID string
	ClassID   string
}

func NewCompletionOverrides(rows []models.SubjectClassStatus) CompletionOverrides {
	m := make(map[subjectClassKey]models.SubjectClassStatus, len(rows))
	for _, r := range rows {
		m[subjectClassKey{r.SubjectID, r.ClassID}] = r
	}
	return CompletionOverrides{overrides: m}
}

func (o CompletionOverrides) lookup(subjectID, classID string) (models.SubjectClassStatus, bool) {
	if o.overrides == nil {
		return models.SubjectClassStatus{}, false
	}
	row, ok := o.overrides[subjectClassKey{subjectID, classID}]
	return row, ok
}

// Manual override markers.
const (
	OverrideCompleted  = "completed"
	OverrideInProgress = "in-progress"
)

// IsSubjectFinished decides whether a class is done with a subject.
// Precedence: explicit status override, then the legacy paid/manual
// flags, then the automatic period count against the effective total.
// A subject with no recorded sessions is never finished: it has to
// have started.
func IsSubjectFinished(
	subject models.Subject,
	class *models.Class,
	sessions []models.Session,
	overrides CompletionOverrides,
) bool {
	// The 8-subject culture track is open-ended and never finishes
	// automatically.
	if Categorize(subject) == CultureExtended {
		return false
	}

	classID := "unknown"
	if class != nil {
		classID = class.ID
	}

	if row, ok := overrides.lookup(subject.ID, classID); ok {
		switch row.StatusOverride {
		case OverrideCompleted:
			return true
		case OverrideInProgress:
			return false
		}
		if row.Paid || row.ManualCompleted {
			return true
		}
	}

	effectiveTotal := EffectiveTotalPeriods(subject, class)

	learned := 0
	for _, s := range sessions {
		if s.SubjectID == subject.ID && s.ClassID == classID && s.Status != models.StatusOff {
			learned += s.PeriodCount
		}
	}

	return learned >= effectiveTotal && learned > 0
}
