package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewQuoteMetricsRegisters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewQuoteMetrics(reg)

	m.IncPreview("gated")
	m.IncSubmission()
	m.ObservePreview("ok", 25*time.Millisecond)
	m.IncOutboxPublished()
	m.IncOutboxFailed()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(families) != 5 {
		t.Fatalf("expected 5 metric families, got %d", len(families))
	}
}

func TestQuoteMetricsNilSafe(t *testing.T) {
	t.Parallel()

	var m *QuoteMetrics
	m.IncPreview("full")
	m.IncSubmission()
	m.ObservePreview("ok", time.Millisecond)

	empty := NewQuoteMetrics(nil)
	empty.IncPreview("full")
	empty.IncOutboxPublished()
}

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	if got := normalizeLabel("  Gated Pricing "); got != "gated_pricing" {
		t.Fatalf("normalizeLabel = %q", got)
	}
	if got := normalizeLabel(""); got != "unknown" {
		t.Fatalf("normalizeLabel(empty) = %q", got)
	}
}
