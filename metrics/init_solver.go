package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSolverMetrics() {
	r.SolverDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "routepuzzle_solver_duration_seconds",
			Help:    "Exact route solve duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	r.SolverCandidates = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "routepuzzle_solver_candidates",
			Help:    "Candidate routes scored per solve",
			Buckets: []float64{1, 24, 720, 40320},
		},
	)

	r.OptimalRouteCost = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "routepuzzle_optimal_route_cost",
			Help:    "Cost of the optimal route in play-area units",
			Buckets: prometheus.LinearBuckets(500, 250, 10),
		},
	)
}
