// Package session is the application state of the visualizer: the current
// grid snapshot, the busy guard, and the animation currently playing.
//
// A rendering layer drives a Session from user events and receives every
// animation step through an Observer. All algorithm work happens
// synchronously inside the request; only the replay is asynchronous.
package session

import (
	"time"

	"github.com/katalvlaran/pathviz/grid"
)

// Default replay delays, taken from the original board.
const (
	DefaultVisitDelay = 10 * time.Millisecond
	DefaultPathDelay  = 50 * time.Millisecond
	DefaultWallDelay  = 10 * time.Millisecond
)

// RunKind names the algorithm behind an Outcome.
type RunKind string

const (
	RunDijkstra RunKind = "dijkstra"
	RunMaze     RunKind = "maze"
)

// Outcome summarizes a finished run.
type Outcome struct {
	Kind    RunKind
	Visited int  // nodes finalized (dijkstra)
	PathLen int  // nodes on the shortest path, 0 if none (dijkstra)
	Found   bool // finish reached (dijkstra)
	Walls   int  // walls placed (maze)
}

// Observer receives replayed steps. Calls for one run come from a single
// goroutine, in trace order, and OnComplete is the last of them. A
// cancelled run never reaches OnComplete.
type Observer interface {
	OnVisited(n grid.Node)
	OnPath(n grid.Node)
	OnWall(c grid.Coord)
	OnComplete(o Outcome)
}

// NopObserver ignores everything; embed it to implement only some methods.
type NopObserver struct{}

func (NopObserver) OnVisited(grid.Node) {}
func (NopObserver) OnPath(grid.Node)    {}
func (NopObserver) OnWall(grid.Coord)   {}
func (NopObserver) OnComplete(Outcome)  {}

// Options holds replay timing.
type Options struct {
	VisitDelay time.Duration
	PathDelay  time.Duration
	WallDelay  time.Duration
}

// Option configures a Session.
type Option func(*Options)

// WithDelays overrides the three replay delays. Panics on a negative value.
func WithDelays(visit, path, wall time.Duration) Option {
	if visit < 0 || path < 0 || wall < 0 {
		panic("session: WithDelays(negative)")
	}
	return func(o *Options) {
		o.VisitDelay, o.PathDelay, o.WallDelay = visit, path, wall
	}
}

// DefaultOptions returns the original board timing.
func DefaultOptions() Options {
	return Options{
		VisitDelay: DefaultVisitDelay,
		PathDelay:  DefaultPathDelay,
		WallDelay:  DefaultWallDelay,
	}
}
