// Package grid defines core types, configuration, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/pathviz.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a configuration with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrInvalidCoordinate indicates a coordinate outside the grid bounds.
	ErrInvalidCoordinate = errors.New("grid: coordinate out of bounds")
	// ErrProtectedCell indicates an attempt to turn the start or finish cell into a wall.
	ErrProtectedCell = errors.New("grid: start and finish cells cannot be walls")
	// ErrRunStateSize indicates a RunState whose slices do not cover every cell.
	ErrRunStateSize = errors.New("grid: run state does not match grid size")
	// ErrBadLayout indicates an ASCII layout that cannot be parsed into a grid.
	ErrBadLayout = errors.New("grid: malformed layout")
)

// Infinity is the sentinel distance of a node not yet reached by a run.
const Infinity = math.MaxInt

// Coord addresses one cell by row and column.
type Coord struct {
	Row, Col int
}

// None is the "no previous node" sentinel.
var None = Coord{Row: -1, Col: -1}

// String renders the coordinate as (row,col).
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |Δrow| + |Δcol|.
func (c Coord) Manhattan(o Coord) int {
	dr, dc := c.Row-o.Row, c.Col-o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Node is one grid cell.
//
// Row and Col never change once the node is created. Distance, IsVisited,
// Previous and IsShortestPath are scratch state owned by a single pathfinder
// run; ClearRunState resets them.
type Node struct {
	Row, Col int

	IsStart  bool
	IsFinish bool
	IsWall   bool

	Distance       int   // best known cost from start, Infinity if unreached
	IsVisited      bool  // distance finalized by the pathfinder
	Previous       Coord // back-reference along the shortest-path tree, None if unset
	IsShortestPath bool  // node lies on the reconstructed path
}

// Coord returns the node position.
func (n Node) Coord() Coord {
	return Coord{Row: n.Row, Col: n.Col}
}

// HasPrevious reports whether the node has a back-reference.
func (n Node) HasPrevious() bool {
	return n.Previous != None
}

func newNode(row, col int) Node {
	return Node{
		Row:      row,
		Col:      col,
		Distance: Infinity,
		Previous: None,
	}
}

// Config sizes a grid. The caller (usually the rendering layer) computes it
// and injects it; nothing in the core reads global viewport state.
type Config struct {
	Rows, Cols int
	CellSizePx int
}

// RunState carries the scratch state of one pathfinder run, indexed
// row-major (Grid.Index). Nil slices leave the corresponding field at its
// initial sentinel.
type RunState struct {
	Distance []int
	Visited  []bool
	Previous []Coord
	OnPath   []bool
}
