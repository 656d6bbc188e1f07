package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSessionMetrics() {
	r.SelectionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routepuzzle_selections_total",
			Help: "Node selection events by handling result",
		},
		[]string{"result"},
	)

	r.OutcomesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "routepuzzle_outcomes_total",
			Help: "Finished puzzles by tier and outcome",
		},
		[]string{"tier", "outcome"},
	)

	r.SessionsActive = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "routepuzzle_sessions_active",
			Help: "Sessions constructed but not yet finished or abandoned",
		},
	)
}
