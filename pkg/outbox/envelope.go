package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PayloadEnvelope is the stable payload structure stored in outbox_events.
// CRM consumers key off Version when the Data schema evolves.
type PayloadEnvelope struct {
	Version    int             `json:"version"`
	EventID    string          `json:"eventId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data"`
}

// QuoteSubmittedData is the quote.submitted event body forwarded to the CRM.
type QuoteSubmittedData struct {
	QuoteID     uuid.UUID `json:"quoteId"`
	SessionID   string    `json:"sessionId"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Company     *string   `json:"company,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Currency    string    `json:"currency"`
	LineCount   int       `json:"lineCount"`
	TotalCost   float64   `json:"totalCost"`
	VATAmount   float64   `json:"vatAmount"`
	TotalIncVAT float64   `json:"totalIncVat"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// NewEnvelope wraps a marshalled data payload in the versioned envelope.
func NewEnvelope(data any) (json.RawMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	env := PayloadEnvelope{
		Version:    1,
		EventID:    uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		Data:       raw,
	}
	return json.Marshal(env)
}
