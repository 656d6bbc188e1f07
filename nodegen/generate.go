// SPDX-License-Identifier: MIT
// Package: routepuzzle/nodegen
//
// generate.go - rejection sampling with an attempt ceiling.
//
// Contract:
//   • k ≥ 1, rng supplied, sampling area non-empty.
//   • Identity i is assigned to the i-th accepted candidate.
//   • At most maxAttempts candidates are drawn.
//
// Complexity:
//   • Time O(A·log k) for A attempts; Space O(k).

package nodegen

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/routepuzzle/core"
)

const methodGenerate = "Generate"

// Stats reports how much sampling a run needed.
type Stats struct {
	// Attempts is the number of candidate positions drawn.
	Attempts int

	// Rejected is the number of candidates too close to an accepted node.
	Rejected int
}

// Generate returns exactly k nodes spaced at least MinDistance apart inside
// the margin-bounded area.
//
// Errors:
//   - ErrBadCount, ErrAreaTooSmall, ErrNeedRandSource on invalid setup.
//   - ErrGenerationExhausted when the ceiling is hit; the partial node set is
//     discarded and Stats still describes the spent attempts.
func Generate(k int, opts ...Option) ([]core.Node, Stats, error) {
	cfg := newGenConfig(opts...)

	if k < 1 {
		return nil, Stats{}, fmt.Errorf("%s: k=%d: %w", methodGenerate, k, ErrBadCount)
	}
	area := cfg.bound()
	if area.Max.X() < area.Min.X() || area.Max.Y() < area.Min.Y() {
		return nil, Stats{}, fmt.Errorf("%s: area=%vx%v margin=%v: %w",
			methodGenerate, cfg.width, cfg.height, cfg.margin, ErrAreaTooSmall)
	}
	if cfg.rng == nil {
		return nil, Stats{}, fmt.Errorf("%s: %w", methodGenerate, ErrNeedRandSource)
	}

	var (
		nodes = make([]core.Node, 0, k)
		index = newSpacingIndex(cfg.minDistance)
		stats Stats
		p     orb.Point
		ok    bool
		err   error
	)
	for len(nodes) < k {
		if stats.Attempts == cfg.maxAttempts {
			cfg.logger.Warn("node generation exhausted",
				"requested", k,
				"accepted", len(nodes),
				"attempts", stats.Attempts,
				"min_distance", cfg.minDistance,
			)
			return nil, stats, fmt.Errorf("%s: accepted %d of %d after %d attempts: %w",
				methodGenerate, len(nodes), k, stats.Attempts, ErrGenerationExhausted)
		}
		stats.Attempts++

		p = samplePoint(cfg, area)
		if ok, err = index.clear(p); err != nil {
			return nil, stats, fmt.Errorf("%s: spacing query: %w", methodGenerate, err)
		}
		if !ok {
			stats.Rejected++
			continue
		}

		n := core.Node{ID: core.NodeID(len(nodes)), Pos: p}
		index.insert(n)
		nodes = append(nodes, n)
	}

	cfg.logger.Debug("nodes generated",
		"count", index.size(),
		"attempts", stats.Attempts,
		"rejected", stats.Rejected,
	)

	return nodes, stats, nil
}

// samplePoint draws a uniform point inside area.
func samplePoint(cfg genConfig, area orb.Bound) orb.Point {
	return orb.Point{
		area.Min.X() + cfg.rng.Float64()*(area.Max.X()-area.Min.X()),
		area.Min.Y() + cfg.rng.Float64()*(area.Max.Y()-area.Min.Y()),
	}
}
