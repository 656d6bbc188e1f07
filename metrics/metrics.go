package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// All Record methods are safe on a nil *Registry so callers can leave
// metrics unwired.

// RecordGeneration records a successful node generation for a tier
func (r *Registry) RecordGeneration(tier string, attempts int) {
	if r == nil {
		return
	}
	r.PuzzlesGeneratedTotal.WithLabelValues(tier).Inc()
	r.GenerationAttempts.Observe(float64(attempts))
}

// RecordGenerationFailure records a generation that hit the attempt ceiling
func (r *Registry) RecordGenerationFailure() {
	if r == nil {
		return
	}
	r.GenerationFailuresTotal.Inc()
}

// RecordSolve records one exact solve
func (r *Registry) RecordSolve(duration time.Duration, candidates int, cost float64) {
	if r == nil {
		return
	}
	r.SolverDuration.Observe(duration.Seconds())
	r.SolverCandidates.Observe(float64(candidates))
	r.OptimalRouteCost.Observe(cost)
}

// RecordSelection records how a selection event was handled
func (r *Registry) RecordSelection(result string) {
	if r == nil {
		return
	}
	r.SelectionsTotal.WithLabelValues(result).Inc()
}

// SessionStarted increments the active session gauge
func (r *Registry) SessionStarted() {
	if r == nil {
		return
	}
	r.SessionsActive.Inc()
}

// SessionEnded decrements the active session gauge
func (r *Registry) SessionEnded() {
	if r == nil {
		return
	}
	r.SessionsActive.Dec()
}

// RecordOutcome records a finished puzzle
func (r *Registry) RecordOutcome(tier, outcome string) {
	if r == nil {
		return
	}
	r.OutcomesTotal.WithLabelValues(tier, outcome).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
