package scenario

import (
	"errors"

	"github.com/hashicorp/hcl/v2"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/maze"
	"github.com/katalvlaran/pathviz/session"
)

// ErrInvalid marks a scenario that parsed but describes an impossible board,
// maze or timing.
var ErrInvalid = errors.New("scenario: invalid")

// Viewport is the drawing surface the scenario is evaluated against. A zero
// Viewport selects the default board size when rows and cols are omitted.
type Viewport struct {
	Width  int
	Height int
}

// Scenario is a fully validated setup, ready for a session.
type Scenario struct {
	Board  *grid.Grid
	Maze   *Maze // nil when no maze block is present
	Delays session.Options
}

// Maze describes the generator a scenario asks for.
type Maze struct {
	Kind        maze.Kind
	Seed        *int64
	Probability *float64
	StripeWidth *int
}

// fileRoot holds every top-level block of a scenario file.
type fileRoot struct {
	Board  *boardBlock  `hcl:"board,block"`
	Maze   *mazeBlock   `hcl:"maze,block"`
	Timing *timingBlock `hcl:"timing,block"`
	Remain hcl.Body     `hcl:",remain"`
}

type boardBlock struct {
	Rows     *int    `hcl:"rows,optional"`
	Cols     *int    `hcl:"cols,optional"`
	CellSize *int    `hcl:"cell_size,optional"`
	Start    []int   `hcl:"start,optional"`
	Finish   []int   `hcl:"finish,optional"`
	Walls    [][]int `hcl:"walls,optional"`
	Layout   *string `hcl:"layout,optional"`
}

type mazeBlock struct {
	Kind        string   `hcl:"kind"`
	Seed        *int64   `hcl:"seed,optional"`
	Probability *float64 `hcl:"probability,optional"`
	StripeWidth *int     `hcl:"stripe_width,optional"`
}

type timingBlock struct {
	VisitDelay *string `hcl:"visit_delay,optional"`
	PathDelay  *string `hcl:"path_delay,optional"`
	WallDelay  *string `hcl:"wall_delay,optional"`
}
