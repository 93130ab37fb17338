package schedule

import "github.com/vta-edu/schedule-back/internal/models"

// SubjectCategory classifies a subject for every eligibility decision.
// One classification function replaces string comparisons against the
// pseudo-major ids scattered across call sites.
type SubjectCategory int

const (
	// StandardMajor is a discipline subject taught to classes of that major.
	StandardMajor SubjectCategory = iota
	// CommonToAll is taught to every class regardless of major.
	CommonToAll
	// CultureStandard is the general culture track (non-H8 classes).
	CultureStandard
	// CultureExtended is the open-ended 8-subject culture track. It never
	// auto-finishes.
	CultureExtended
)

func Categorize(subject models.Subject) SubjectCategory {
	switch subject.MajorID {
	case models.MajorCommon:
		return CommonToAll
	case models.MajorCulture:
		return CultureStandard
	case models.MajorCulture8:
		return CultureExtended
	default:
		return StandardMajor
	}
}
