// SPDX-License-Identifier: MIT
// Package: routepuzzle/nodegen
//
// errors.go - sentinel errors for the generator.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with %w at the detection site.
//   • Option constructors panic on meaningless values; Generate never panics.

package nodegen

import "errors"

// ErrBadCount indicates a requested node count below one.
var ErrBadCount = errors.New("nodegen: node count must be positive")

// ErrAreaTooSmall indicates the margin leaves no room to place a node.
var ErrAreaTooSmall = errors.New("nodegen: margin leaves an empty sampling area")

// ErrNeedRandSource indicates Generate was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("nodegen: rng is required")

// ErrGenerationExhausted indicates the attempt ceiling was reached before the
// requested count was accepted. This is a configuration error: the area cannot
// hold that many nodes at the configured spacing (or only improbably so).
var ErrGenerationExhausted = errors.New("nodegen: attempt ceiling reached")
