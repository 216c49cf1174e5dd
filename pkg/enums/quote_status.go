package enums

import "fmt"

// QuoteStatus tracks the lifecycle of a submitted quote brief.
type QuoteStatus string

const (
	QuoteStatusSubmitted QuoteStatus = "submitted"
	QuoteStatusForwarded QuoteStatus = "forwarded"
	QuoteStatusClosed    QuoteStatus = "closed"
)

var validQuoteStatuses = []QuoteStatus{
	QuoteStatusSubmitted,
	QuoteStatusForwarded,
	QuoteStatusClosed,
}

// String implements fmt.Stringer.
func (q QuoteStatus) String() string {
	return string(q)
}

// IsValid reports whether the value is known.
func (q QuoteStatus) IsValid() bool {
	for _, candidate := range validQuoteStatuses {
		if candidate == q {
			return true
		}
	}
	return false
}

// ParseQuoteStatus converts raw input into a QuoteStatus.
func ParseQuoteStatus(value string) (QuoteStatus, error) {
	for _, candidate := range validQuoteStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quote status %q", value)
}
