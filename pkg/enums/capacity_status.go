package enums

import "fmt"

// CapacityStatus bands location utilization against sites × periods capacity.
type CapacityStatus string

const (
	CapacityStatusAvailable CapacityStatus = "available"
	CapacityStatusWarning   CapacityStatus = "warning"
	CapacityStatusAtLimit   CapacityStatus = "at_limit"
	CapacityStatusOverLimit CapacityStatus = "over_limit"
)

var validCapacityStatuses = []CapacityStatus{
	CapacityStatusAvailable,
	CapacityStatusWarning,
	CapacityStatusAtLimit,
	CapacityStatusOverLimit,
}

// String implements fmt.Stringer.
func (c CapacityStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c CapacityStatus) IsValid() bool {
	for _, candidate := range validCapacityStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCapacityStatus converts raw input into a CapacityStatus.
func ParseCapacityStatus(value string) (CapacityStatus, error) {
	for _, candidate := range validCapacityStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid capacity status %q", value)
}
