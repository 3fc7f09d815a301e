// SPDX-License-Identifier: MIT
// Package: pathviz/maze
//
// errors.go: sentinel errors for the maze package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Generate never panics; validation panics are confined to option
//     constructors (WithX...).

package maze

import "errors"

// ErrNilGrid indicates that Generate was called with a nil grid.
var ErrNilGrid = errors.New("maze: grid is nil")

// ErrNeedRandSource indicates that a stochastic generator was used without
// an RNG (supply WithSeed or WithRand).
var ErrNeedRandSource = errors.New("maze: rng is required")

// ErrUnknownKind indicates a generator name New does not recognize.
var ErrUnknownKind = errors.New("maze: unknown generator kind")
