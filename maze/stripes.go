package maze

import (
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

const methodStripes = "VerticalStripes"

// VerticalStripes draws full-height wall columns, each with one gap.
type VerticalStripes struct {
	cfg config
}

// NewVerticalStripes returns a stripe generator. WithStripeWidth sets the
// stripe period; WithSeed/WithRand supply randomness for the gaps.
func NewVerticalStripes(opts ...Option) *VerticalStripes {
	return &VerticalStripes{cfg: newConfig(opts...)}
}

// WallColumns returns the columns that carry a stripe on a grid with cols
// columns: every column with col % width == width-1, minus the start and
// finish columns.
func (m *VerticalStripes) WallColumns(cols int, start, finish grid.Coord) []int {
	w := m.cfg.stripeWidth
	var out []int
	for c := w - 1; c < cols; c += w {
		if c == start.Col || c == finish.Col {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Generate emits, stripe by stripe from left to right, every row of the
// stripe column top to bottom except one gap row. Each wall column keeps
// exactly one opening, and no two stripes share a gap row unless there are
// more stripes than rows.
// Complexity: O(Rows×Cols/width).
func (m *VerticalStripes) Generate(g *grid.Grid, start, finish grid.Coord) ([]grid.Coord, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if m.cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodStripes, ErrNeedRandSource)
	}

	cols := m.WallColumns(g.Cols(), start, finish)
	gaps := m.gapRows(g.Rows(), len(cols))

	var walls []grid.Coord
	for i, c := range cols {
		gap := gaps[i]
		for r := 0; r < g.Rows(); r++ {
			if r == gap {
				continue
			}
			walls = append(walls, grid.Coord{Row: r, Col: c})
		}
	}
	return walls, nil
}

// gapRows picks one gap row per stripe: distinct rows while rows suffice,
// independent draws otherwise.
func (m *VerticalStripes) gapRows(rows, stripes int) []int {
	if stripes <= rows {
		return m.cfg.rng.Perm(rows)[:stripes]
	}
	gaps := make([]int, stripes)
	for i := range gaps {
		gaps[i] = m.cfg.rng.Intn(rows)
	}
	return gaps
}
