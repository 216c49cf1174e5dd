package enums

import "fmt"

// UpsellAction is the adjustment an advisor option proposes. Advisors only
// ever suggest increases, never a reduction in spend.
type UpsellAction string

const (
	UpsellActionIncreaseSites     UpsellAction = "increase_sites"
	UpsellActionIncreasePeriods   UpsellAction = "increase_periods"
	UpsellActionIncreaseCreatives UpsellAction = "increase_creatives"
)

var validUpsellActions = []UpsellAction{
	UpsellActionIncreaseSites,
	UpsellActionIncreasePeriods,
	UpsellActionIncreaseCreatives,
}

// String implements fmt.Stringer.
func (u UpsellAction) String() string {
	return string(u)
}

// IsValid reports whether the value is known.
func (u UpsellAction) IsValid() bool {
	for _, candidate := range validUpsellActions {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUpsellAction converts raw input into an UpsellAction.
func ParseUpsellAction(value string) (UpsellAction, error) {
	for _, candidate := range validUpsellActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid upsell action %q", value)
}
