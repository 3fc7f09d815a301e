package grid

import (
	"fmt"
	"strings"
)

// Grid is an immutable rows×cols snapshot of nodes.
//
// Every mutator returns a new *Grid. Rows that a mutation does not touch are
// shared between the old and the new snapshot; since neither ever writes to
// them, callers may hold on to old snapshots freely (animation replay reads
// the grid as it was when the run started).
type Grid struct {
	cfg    Config
	nodes  [][]Node
	start  Coord
	finish Coord
}

// neighborOffsets lists 4-directional moves as (dRow, dCol) in the order
// up, down, left, right. Relaxation and reachability both follow this order.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New builds a cfg.Rows×cfg.Cols grid with start and finish flagged and every
// other field at its default.
// Returns ErrEmptyGrid if the grid would have no cells and
// ErrInvalidCoordinate if start or finish falls outside the bounds.
// Complexity: O(Rows×Cols) time and memory.
func New(cfg Config, start, finish Coord) (*Grid, error) {
	if cfg.Rows < 1 || cfg.Cols < 1 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d", ErrEmptyGrid, cfg.Rows, cfg.Cols)
	}
	g := &Grid{cfg: cfg, start: start, finish: finish}
	if !g.InBounds(start.Row, start.Col) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrInvalidCoordinate, start, cfg.Rows, cfg.Cols)
	}
	if !g.InBounds(finish.Row, finish.Col) {
		return nil, fmt.Errorf("%w: finish %v in %dx%d grid", ErrInvalidCoordinate, finish, cfg.Rows, cfg.Cols)
	}

	g.nodes = make([][]Node, cfg.Rows)
	for r := 0; r < cfg.Rows; r++ {
		row := make([]Node, cfg.Cols)
		for c := 0; c < cfg.Cols; c++ {
			row[c] = newNode(r, c)
		}
		g.nodes[r] = row
	}
	g.nodes[start.Row][start.Col].IsStart = true
	g.nodes[finish.Row][finish.Col].IsFinish = true

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.cfg.Rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cfg.Cols }

// Len returns Rows×Cols.
func (g *Grid) Len() int { return g.cfg.Rows * g.cfg.Cols }

// Config returns the configuration the grid was built with.
func (g *Grid) Config() Config { return g.cfg }

// Start returns the start coordinate.
func (g *Grid) Start() Coord { return g.start }

// Finish returns the finish coordinate.
func (g *Grid) Finish() Coord { return g.finish }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.cfg.Rows && col >= 0 && col < g.cfg.Cols
}

// Node returns a copy of the node at (row,col).
func (g *Grid) Node(row, col int) (Node, error) {
	if !g.InBounds(row, col) {
		return Node{}, fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, row, col)
	}
	return g.nodes[row][col], nil
}

// At returns a copy of the node at c. c must be in bounds.
func (g *Grid) At(c Coord) Node {
	return g.nodes[c.Row][c.Col]
}

// Nodes returns a deep copy of all nodes, row by row.
func (g *Grid) Nodes() [][]Node {
	out := make([][]Node, len(g.nodes))
	for r, row := range g.nodes {
		out[r] = append([]Node(nil), row...)
	}
	return out
}

// Neighbors returns the in-bounds 4-directional neighbors of c in the order
// up, down, left, right. Walls are included; callers filter.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, col := c.Row+d[0], c.Col+d[1]
		if g.InBounds(r, col) {
			out = append(out, Coord{Row: r, Col: col})
		}
	}
	return out
}

// Index maps c to its row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cfg.Cols + c.Col
}

// CoordOf converts a row-major index back to a coordinate.
// Complexity: O(1).
func (g *Grid) CoordOf(idx int) Coord {
	return Coord{Row: idx / g.cfg.Cols, Col: idx % g.cfg.Cols}
}

// Walls returns every wall coordinate in row-major order.
func (g *Grid) Walls() []Coord {
	var out []Coord
	for r, row := range g.nodes {
		for c := range row {
			if row[c].IsWall {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Equal reports whether both grids have the same configuration, endpoints
// and node contents.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.cfg != o.cfg || g.start != o.start || g.finish != o.finish {
		return false
	}
	for r := range g.nodes {
		for c := range g.nodes[r] {
			if g.nodes[r][c] != o.nodes[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the grid with the layout alphabet understood by Parse,
// plus 'o' for visited and '*' for shortest-path nodes.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.Len() + g.cfg.Rows)
	for r, row := range g.nodes {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, n := range row {
			b.WriteByte(Glyph(n))
		}
	}
	return b.String()
}

// Glyph returns the layout character for n. Start and finish win over
// every other state, then walls, path and visited, in that order.
func Glyph(n Node) byte {
	switch {
	case n.IsStart:
		return 'S'
	case n.IsFinish:
		return 'F'
	case n.IsWall:
		return '#'
	case n.IsShortestPath:
		return '*'
	case n.IsVisited:
		return 'o'
	default:
		return '.'
	}
}
