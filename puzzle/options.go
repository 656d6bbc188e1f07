// SPDX-License-Identifier: MIT
// Package: routepuzzle/puzzle
//
// options.go - functional options for New / NewFromNodes.

package puzzle

import (
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/routepuzzle/config"
	"github.com/katalvlaran/routepuzzle/metrics"
)

// Option customizes a Session before construction.
type Option func(*sessionConfig)

// Navigator serves the Back control; the host decides where it leads.
type Navigator interface {
	ReturnToMenu()
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func()

// ReturnToMenu calls f.
func (f NavigatorFunc) ReturnToMenu() { f() }

type sessionConfig struct {
	cfg             config.Config
	rng             *rand.Rand
	logger          *slog.Logger
	metrics         *metrics.Registry
	navigator       Navigator
	costEquivalence bool
}

func newSessionConfig(opts ...Option) sessionConfig {
	sc := sessionConfig{cfg: config.Default()}
	for _, opt := range opts {
		opt(&sc)
	}
	if sc.rng == nil {
		sc.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if sc.logger == nil {
		sc.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return sc
}

// WithConfig supplies area, spacing, attempt ceiling and solver bound.
// The config is validated by New.
func WithConfig(c config.Config) Option {
	return func(sc *sessionConfig) { sc.cfg = c }
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(sc *sessionConfig) { sc.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("puzzle: WithRand(nil)")
	}
	return func(sc *sessionConfig) { sc.rng = r }
}

// WithLogger routes session logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("puzzle: WithLogger(nil)")
	}
	return func(sc *sessionConfig) { sc.logger = l }
}

// WithMetrics records generation, solving and selections into r.
// A nil registry disables recording.
func WithMetrics(r *metrics.Registry) Option {
	return func(sc *sessionConfig) { sc.metrics = r }
}

// WithNavigator injects the Back target.
func WithNavigator(n Navigator) Option {
	return func(sc *sessionConfig) { sc.navigator = n }
}

// WithCostEquivalence also accepts complete routes whose cost equals the
// optimum within 1e-9, even when their order differs.
func WithCostEquivalence() Option {
	return func(sc *sessionConfig) { sc.costEquivalence = true }
}
