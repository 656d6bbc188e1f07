package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGenerationMetrics() {
	r.PuzzlesGeneratedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routepuzzle_puzzles_generated_total",
			Help: "Total number of puzzles generated",
		},
		[]string{"tier"},
	)

	r.GenerationAttempts = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "routepuzzle_generation_attempts",
			Help:    "Candidate positions drawn per generated node set",
			Buckets: []float64{6, 10, 20, 50, 100, 500, 1000, 10000},
		},
	)

	r.GenerationFailuresTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "routepuzzle_generation_failures_total",
			Help: "Total number of node generations that hit the attempt ceiling",
		},
	)
}
