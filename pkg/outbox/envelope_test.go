package outbox

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelopeWrapsPayload(t *testing.T) {
	t.Parallel()

	quoteID := uuid.New()
	raw, err := NewEnvelope(QuoteSubmittedData{
		QuoteID:     quoteID,
		SessionID:   "sess-1",
		Email:       "buyer@example.com",
		Name:        "Buyer",
		Currency:    "GBP",
		LineCount:   2,
		TotalCost:   8520,
		VATAmount:   1704,
		TotalIncVAT: 10224,
		SubmittedAt: time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var envelope PayloadEnvelope
	require.NoError(t, json.Unmarshal(raw, &envelope))
	require.Equal(t, 1, envelope.Version)
	require.NotEmpty(t, envelope.EventID)
	require.False(t, envelope.OccurredAt.IsZero())

	var data QuoteSubmittedData
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	require.Equal(t, quoteID, data.QuoteID)
	require.Equal(t, "sess-1", data.SessionID)
	require.Equal(t, 10224.0, data.TotalIncVAT)
}

func TestNewEnvelopeUniqueEventIDs(t *testing.T) {
	t.Parallel()

	first, err := NewEnvelope(QuoteSubmittedData{QuoteID: uuid.New()})
	require.NoError(t, err)
	second, err := NewEnvelope(QuoteSubmittedData{QuoteID: uuid.New()})
	require.NoError(t, err)

	var a, b PayloadEnvelope
	require.NoError(t, json.Unmarshal(first, &a))
	require.NoError(t, json.Unmarshal(second, &b))
	require.NotEqual(t, a.EventID, b.EventID)
}
