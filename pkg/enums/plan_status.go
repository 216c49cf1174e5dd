package enums

import "fmt"

// PlanStatus tracks a session-scoped plan draft.
type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusSubmitted PlanStatus = "submitted"
	PlanStatusCleared   PlanStatus = "cleared"
)

var validPlanStatuses = []PlanStatus{
	PlanStatusDraft,
	PlanStatusSubmitted,
	PlanStatusCleared,
}

// String implements fmt.Stringer.
func (p PlanStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is known.
func (p PlanStatus) IsValid() bool {
	for _, candidate := range validPlanStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePlanStatus converts raw input into a PlanStatus.
func ParsePlanStatus(value string) (PlanStatus, error) {
	for _, candidate := range validPlanStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid plan status %q", value)
}
