package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records throughput for the pricing surface.
type QuoteMetrics struct {
	previewDuration *prometheus.HistogramVec
	previews        *prometheus.CounterVec
	submissions     prometheus.Counter
	outboxPublished prometheus.Counter
	outboxFailed    prometheus.Counter
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	previewDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_preview_duration_seconds",
		Help:    "Duration of quote preview computations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	previews := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_previews_total",
		Help: "Quote previews served, labelled by pricing visibility.",
	}, []string{"visibility"})
	submissions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quote_submissions_total",
		Help: "Quote briefs submitted.",
	})
	outboxPublished := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "outbox_events_published_total",
		Help: "Outbox events successfully published.",
	})
	outboxFailed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "outbox_events_failed_total",
		Help: "Outbox publish attempts that failed.",
	})
	reg.MustRegister(previewDuration, previews, submissions, outboxPublished, outboxFailed)
	return &QuoteMetrics{
		previewDuration: previewDuration,
		previews:        previews,
		submissions:     submissions,
		outboxPublished: outboxPublished,
		outboxFailed:    outboxFailed,
	}
}

// ObservePreview records one preview computation.
func (m *QuoteMetrics) ObservePreview(outcome string, duration time.Duration) {
	if m == nil || m.previewDuration == nil {
		return
	}
	m.previewDuration.WithLabelValues(normalizeLabel(outcome)).Observe(duration.Seconds())
}

// IncPreview counts a served preview by visibility (gated or full).
func (m *QuoteMetrics) IncPreview(visibility string) {
	if m == nil || m.previews == nil {
		return
	}
	m.previews.WithLabelValues(normalizeLabel(visibility)).Inc()
}

// IncSubmission counts a submitted brief.
func (m *QuoteMetrics) IncSubmission() {
	if m == nil || m.submissions == nil {
		return
	}
	m.submissions.Inc()
}

// IncOutboxPublished counts a published outbox event.
func (m *QuoteMetrics) IncOutboxPublished() {
	if m == nil || m.outboxPublished == nil {
		return
	}
	m.outboxPublished.Inc()
}

// IncOutboxFailed counts a failed publish attempt.
func (m *QuoteMetrics) IncOutboxFailed() {
	if m == nil || m.outboxFailed == nil {
		return
	}
	m.outboxFailed.Inc()
}

func normalizeLabel(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return "unknown"
	}
	return strings.ReplaceAll(trimmed, " ", "_")
}
