package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the puzzle
type Registry struct {
	// Generation Metrics
	PuzzlesGeneratedTotal   *prometheus.CounterVec
	GenerationAttempts      prometheus.Histogram
	GenerationFailuresTotal prometheus.Counter

	// Solver Metrics
	SolverDuration   prometheus.Histogram
	SolverCandidates prometheus.Histogram
	OptimalRouteCost prometheus.Histogram

	// Session Metrics
	SelectionsTotal *prometheus.CounterVec
	OutcomesTotal   *prometheus.CounterVec
	SessionsActive  prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initGenerationMetrics()
	r.initSolverMetrics()
	r.initSessionMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
