// Package metrics holds the Prometheus collectors for chat dispatch.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch attempt outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeRateLimited = "rate_limited"
)

// Collectors is the set of service metrics. A nil *Collectors is valid and
// records nothing.
type Collectors struct {
	DispatchAttempts  *prometheus.CounterVec
	DispatchDuration  *prometheus.HistogramVec
	FallbackResponses *prometheus.CounterVec
	IntentsClassified *prometheus.CounterVec
}

// New registers the collectors with reg. A nil reg uses the default
// registerer.
func New(reg prometheus.Registerer) *Collectors {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Collectors{
		DispatchAttempts: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lifecompass_dispatch_attempts_total",
				Help: "Model tier attempts by outcome",
			},
			[]string{"tier", "outcome"},
		),
		DispatchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lifecompass_dispatch_duration_seconds",
				Help:    "Duration of remote completion calls in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 15, 30},
			},
			[]string{"tier"},
		),
		FallbackResponses: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lifecompass_fallback_responses_total",
				Help: "Static apology responses returned after every tier failed",
			},
			[]string{"intent"},
		),
		IntentsClassified: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lifecompass_intents_classified_total",
				Help: "Chat messages by classified intent",
			},
			[]string{"intent"},
		),
	}
}

func (c *Collectors) Attempt(tier, outcome string) {
	if c == nil {
		return
	}
	c.DispatchAttempts.WithLabelValues(tier, outcome).Inc()
}

func (c *Collectors) ObserveCall(tier string, d time.Duration) {
	if c == nil {
		return
	}
	c.DispatchDuration.WithLabelValues(tier).Observe(d.Seconds())
}

func (c *Collectors) Fallback(intent string) {
	if c == nil {
		return
	}
	c.FallbackResponses.WithLabelValues(intent).Inc()
}

func (c *Collectors) Classified(intent string) {
	if c == nil {
		return
	}
	c.IntentsClassified.WithLabelValues(intent).Inc()
}
