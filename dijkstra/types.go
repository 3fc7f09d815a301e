// Package dijkstra defines result types and configuration options
// for Dijkstra's shortest-path algorithm on a grid.Grid.
//
// Options:
//
//	– WithExhaustive():   keep finalizing nodes after finish is reached.
//	– WithMaxDistance(d): nodes farther than d from start are not finalized.
//	– WithOnVisit(fn):    hook invoked once per finalized node, in order.
//
// Errors (sentinel):
//
//	– ErrNilGrid      if the provided grid pointer is nil.
//	– ErrWallEndpoint if start or finish is a wall.
//	– grid.ErrInvalidCoordinate (wrapped) if start or finish is out of bounds.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathviz/grid"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Run.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrWallEndpoint indicates that start or finish sits on a wall.
	ErrWallEndpoint = errors.New("dijkstra: start and finish must not be walls")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Result is the outcome of one run.
//
// Visited lists nodes in the exact order their distance was finalized; Path
// lists the shortest path from start to finish and is empty when finish was
// never reached (Found == false). Both hold node values copied from Grid.
type Result struct {
	Visited []grid.Node
	Path    []grid.Node
	Found   bool

	// Grid is a new snapshot carrying the run's Distance, IsVisited,
	// Previous and IsShortestPath fields. The input grid is untouched.
	Grid *grid.Grid
}

// Options configures Run.
//
// Exhaustive  – if true, do not stop when finish is finalized.
// MaxDistance – nodes whose distance would exceed this are never finalized.
//
//	Must be ≥ 0. Default is math.MaxInt (no cap).
//
// OnVisit     – called for each finalized node, in Visited order.
type Options struct {
	Exhaustive  bool
	MaxDistance int
	OnVisit     func(n grid.Node)
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithExhaustive keeps the search going after finish is finalized, so that
// Visited covers every node reachable from start.
func WithExhaustive() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}

// WithMaxDistance caps exploration at max steps from start.
// Panics on a negative value.
func WithMaxDistance(max int) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithOnVisit registers a hook called for every finalized node.
// A nil fn is ignored.
func WithOnVisit(fn func(n grid.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// DefaultOptions returns an Options with defaults:
//   - Exhaustive:  false (stop at finish).
//   - MaxDistance: math.MaxInt (explore everything reachable).
//   - OnVisit:     no-op.
func DefaultOptions() Options {
	return Options{
		Exhaustive:  false,
		MaxDistance: math.MaxInt,
		OnVisit:     func(grid.Node) {},
	}
}
