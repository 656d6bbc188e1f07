// SPDX-License-Identifier: MIT
// Package: routepuzzle/nodegen
//
// config.go - internal configuration and defaults.
//
// Defaults:
//   • area        = 800 × 600
//   • margin      = 80
//   • minDistance = 60
//   • maxAttempts = 100000
//   • rng         = nil (must be supplied)
//   • logger      = discard

package nodegen

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/paulmach/orb"
)

// Defaults for an 800×600 play area.
const (
	DefaultWidth       = 800.0
	DefaultHeight      = 600.0
	DefaultMargin      = 80.0
	DefaultMinDistance = 60.0
	DefaultMaxAttempts = 100000
)

// genConfig aggregates every generator knob. Passed by value.
type genConfig struct {
	width, height float64
	margin        float64
	minDistance   float64
	maxAttempts   int
	rng           *rand.Rand
	logger        *slog.Logger
}

// newGenConfig applies options in order over the defaults; last wins.
// Complexity: O(len(opts)).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		width:       DefaultWidth,
		height:      DefaultHeight,
		margin:      DefaultMargin,
		minDistance: DefaultMinDistance,
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// bound returns the margin-shrunk sampling rectangle.
func (c genConfig) bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.margin, c.margin},
		Max: orb.Point{c.width - c.margin, c.height - c.margin},
	}
}
