package enums

import "fmt"

// OutboxEventType identifies events emitted through the outbox.
type OutboxEventType string

const (
	OutboxEventQuoteSubmitted OutboxEventType = "quote.submitted"
)

var validOutboxEventTypes = []OutboxEventType{
	OutboxEventQuoteSubmitted,
}

// String implements fmt.Stringer.
func (o OutboxEventType) String() string {
	return string(o)
}

// IsValid reports whether the event type is known.
func (o OutboxEventType) IsValid() bool {
	for _, candidate := range validOutboxEventTypes {
		if candidate == o {
			return true
		}
	}
	return false
}

// OutboxAggregateType names the aggregate an outbox event belongs to.
type OutboxAggregateType string

const (
	OutboxAggregateQuote OutboxAggregateType = "quote"
)

// IsValid reports whether the aggregate type is known.
func (o OutboxAggregateType) IsValid() bool {
	return o == OutboxAggregateQuote
}

// ParseOutboxEventType converts raw input into an OutboxEventType.
func ParseOutboxEventType(value string) (OutboxEventType, error) {
	for _, candidate := range validOutboxEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid outbox event type %q", value)
}
