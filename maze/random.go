package maze

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

const methodRandom = "Random"

// Random walls off each cell independently.
type Random struct {
	cfg config
}

// NewRandom returns a random-maze generator. Use WithProbability to change
// the wall share and WithSeed/WithRand to supply randomness.
func NewRandom(opts ...Option) *Random {
	return &Random{cfg: newConfig(opts...)}
}

// Generate walks the cells in row-major order and emits each one, other
// than start and finish, with probability p. One Bernoulli trial is drawn
// per candidate cell, so a fixed seed always yields the same maze.
// The RNG is only required when 0 < p < 1.
// Complexity: O(Rows×Cols).
func (m *Random) Generate(g *grid.Grid, start, finish grid.Coord) ([]grid.Coord, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	p := m.cfg.probability
	rng := m.cfg.rng
	if rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
	}

	var walls []grid.Coord
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			here := grid.Coord{Row: r, Col: c}
			if here == start || here == finish {
				continue
			}
			var wall bool
			switch {
			case p >= 1:
				wall = true
			case p <= 0:
				wall = false
			default:
				wall = rng.Float64() < p
			}
			if wall {
				walls = append(walls, here)
			}
		}
	}
	return walls, nil
}
