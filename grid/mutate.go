package grid

import "fmt"

// ToggleWall returns a new grid whose node at (row,col) has IsWall flipped.
// Every other node is identical to g.
// Returns ErrInvalidCoordinate for cells outside the grid and
// ErrProtectedCell for the start or finish cell; g is never modified.
// Complexity: O(Cols) time and memory (one row is copied).
func (g *Grid) ToggleWall(row, col int) (*Grid, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: toggle (%d,%d)", ErrInvalidCoordinate, row, col)
	}
	n := g.nodes[row][col]
	if n.IsStart || n.IsFinish {
		return nil, fmt.Errorf("%w: toggle (%d,%d)", ErrProtectedCell, row, col)
	}

	next := g.shallowCopy()
	next.copyRow(row)[col].IsWall = !n.IsWall

	return next, nil
}

// ApplyWalls returns a new grid with IsWall set at every coordinate in
// coords. Start and finish are skipped even if listed. If any coordinate
// is out of bounds the whole call is rejected with ErrInvalidCoordinate.
// Complexity: O(len(coords) + touched rows×Cols).
func (g *Grid) ApplyWalls(coords []Coord) (*Grid, error) {
	for _, c := range coords {
		if !g.InBounds(c.Row, c.Col) {
			return nil, fmt.Errorf("%w: wall %v", ErrInvalidCoordinate, c)
		}
	}

	next := g.shallowCopy()
	copied := make(map[int]bool)
	for _, c := range coords {
		n := g.nodes[c.Row][c.Col]
		if n.IsStart || n.IsFinish || n.IsWall {
			continue
		}
		if !copied[c.Row] {
			next.copyRow(c.Row)
			copied[c.Row] = true
		}
		next.nodes[c.Row][c.Col].IsWall = true
	}

	return next, nil
}

// ClearRunState returns a new grid with every node's Distance, IsVisited,
// Previous and IsShortestPath back at their initial sentinels. Walls and
// endpoints are kept. Applying it twice yields the same grid as once.
// Complexity: O(Rows×Cols).
func (g *Grid) ClearRunState() *Grid {
	next := g.shallowCopy()
	next.nodes = make([][]Node, len(g.nodes))
	for r, row := range g.nodes {
		fresh := make([]Node, len(row))
		for c, n := range row {
			m := newNode(r, c)
			m.IsStart, m.IsFinish, m.IsWall = n.IsStart, n.IsFinish, n.IsWall
			fresh[c] = m
		}
		next.nodes[r] = fresh
	}
	return next
}

// ClearWalls returns a new grid without walls; run state is cleared too.
func (g *Grid) ClearWalls() *Grid {
	next := g.ClearRunState()
	for _, row := range next.nodes {
		for c := range row {
			row[c].IsWall = false
		}
	}
	return next
}

// WithRunState returns a new grid whose scratch fields come from rs on top
// of a cleared copy of g. Walls and endpoints are kept.
// Returns ErrRunStateSize if a non-nil slice does not have Len() entries.
// Complexity: O(Rows×Cols).
func (g *Grid) WithRunState(rs RunState) (*Grid, error) {
	total := g.Len()
	if (rs.Distance != nil && len(rs.Distance) != total) ||
		(rs.Visited != nil && len(rs.Visited) != total) ||
		(rs.Previous != nil && len(rs.Previous) != total) ||
		(rs.OnPath != nil && len(rs.OnPath) != total) {
		return nil, fmt.Errorf("%w: want %d cells", ErrRunStateSize, total)
	}

	next := g.ClearRunState()
	for r, row := range next.nodes {
		for c := range row {
			i := r*g.cfg.Cols + c
			n := &row[c]
			if rs.Distance != nil {
				n.Distance = rs.Distance[i]
			}
			if rs.Visited != nil {
				n.IsVisited = rs.Visited[i]
			}
			if rs.Previous != nil {
				n.Previous = rs.Previous[i]
			}
			if rs.OnPath != nil {
				n.IsShortestPath = rs.OnPath[i]
			}
		}
	}
	return next, nil
}

// shallowCopy returns a grid sharing every row with g.
func (g *Grid) shallowCopy() *Grid {
	next := *g
	next.nodes = append([][]Node(nil), g.nodes...)
	return &next
}

// copyRow replaces row r of g with a private copy and returns it.
// Only valid on a grid produced by shallowCopy.
func (g *Grid) copyRow(r int) []Node {
	row := append([]Node(nil), g.nodes[r]...)
	g.nodes[r] = row
	return row
}
