// SPDX-License-Identifier: MIT
// Package: routepuzzle/nodegen
//
// options.go - functional options for Generate.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Generate itself returns sentinel errors and never panics.

package nodegen

import (
	"log/slog"
	"math/rand"
)

// Option customizes a generation run.
type Option func(*genConfig)

// WithSeed seeds a fresh deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("nodegen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithArea sets the play-area extent. Panics on non-positive sizes.
func WithArea(width, height float64) Option {
	if width <= 0 || height <= 0 {
		panic("nodegen: WithArea(width<=0 || height<=0)")
	}
	return func(c *genConfig) {
		c.width, c.height = width, height
	}
}

// WithMargin sets the distance kept from every border. Panics if m < 0.
func WithMargin(m float64) Option {
	if m < 0 {
		panic("nodegen: WithMargin(m<0)")
	}
	return func(c *genConfig) {
		c.margin = m
	}
}

// WithMinDistance sets the minimum pairwise spacing. Panics if d <= 0.
func WithMinDistance(d float64) Option {
	if d <= 0 {
		panic("nodegen: WithMinDistance(d<=0)")
	}
	return func(c *genConfig) {
		c.minDistance = d
	}
}

// WithMaxAttempts caps the number of candidate draws. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("nodegen: WithMaxAttempts(n<1)")
	}
	return func(c *genConfig) {
		c.maxAttempts = n
	}
}

// WithLogger routes generation summaries to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("nodegen: WithLogger(nil)")
	}
	return func(c *genConfig) {
		c.logger = l
	}
}
