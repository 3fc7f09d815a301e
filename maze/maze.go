// Package maze generates wall layouts for a grid.Grid.
//
// A Generator never touches the grid it is given. It returns the wall
// coordinates in the order they should be animated; applying them is the
// caller's job (grid.Grid.ApplyWalls). The start and finish coordinates
// are never part of the output.
//
// Generators:
//
//   - Random: each cell independently becomes a wall with probability p
//     (default 0.3). Row-major output. No connectivity guarantee.
//   - VerticalStripes: every stripeWidth-th column (default 2) is a wall
//     column with one random gap row. Output sweeps column by column.
//
// Both are deterministic for a fixed seed (WithSeed).
package maze

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Generator produces an ordered sequence of wall placements.
type Generator interface {
	Generate(g *grid.Grid, start, finish grid.Coord) ([]grid.Coord, error)
}

// Kind names a built-in generator.
type Kind string

const (
	KindNone    Kind = "none"
	KindRandom  Kind = "random"
	KindStripes Kind = "stripes"
)

// New returns the generator for kind, or nil for KindNone.
func New(kind Kind, opts ...Option) (Generator, error) {
	switch kind {
	case KindNone, "":
		return nil, nil
	case KindRandom:
		return NewRandom(opts...), nil
	case KindStripes:
		return NewVerticalStripes(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
