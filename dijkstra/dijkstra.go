// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// 4-connected, unit-cost cells of a grid.Grid.
//
// Complexity:
//
//   - Time:  O(V log V), V = Rows×Cols; each cell has at most 4 edges.
//   - Space: O(V) for distance, predecessor and visited arrays plus the heap.
//
// Notes on implementation choices:
//
//   - Walls are never pushed into the heap, so they are never finalized and
//     never relax their neighbors.
//   - Heap entries are ordered by (distance, row-major index). Among unvisited
//     nodes of equal distance the first one in scan order is finalized first,
//     which makes Visited reproducible.
//   - Nodes that were never reached stay at grid.Infinity; an empty heap is
//     the same as "the closest unvisited node is at infinity" and ends the run.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathviz/grid"
)

// Run computes shortest distances from start over g and returns the
// visitation order, the start→finish path and a snapshot carrying the
// run state. The input grid is not modified.
//
// An unreachable finish is not an error: the result has Found == false,
// Visited covers the reachable component and Path is empty.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start and finish must be in bounds (grid.ErrInvalidCoordinate).
//  3. start and finish must not be walls (ErrWallEndpoint).
func Run(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	for _, c := range []grid.Coord{start, finish} {
		if !g.InBounds(c.Row, c.Col) {
			return nil, fmt.Errorf("dijkstra: endpoint %v: %w", c, grid.ErrInvalidCoordinate)
		}
		if g.At(c).IsWall {
			return nil, fmt.Errorf("%w: %v", ErrWallEndpoint, c)
		}
	}

	V := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		start:   g.Index(start),
		finish:  g.Index(finish),
		dist:    make([]int, V),
		prev:    make([]grid.Coord, V),
		visited: make([]bool, V),
		order:   make([]int, 0, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	r.process()

	return r.result()
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *grid.Grid
	options Options
	start   int
	finish  int

	dist    []int        // row-major index → best known distance
	prev    []grid.Coord // row-major index → predecessor, grid.None if unset
	visited []bool       // row-major index → finalized
	order   []int        // finalization order
	pq      nodePQ
}

// init sets every distance to infinity and pushes start at distance 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = grid.Infinity
		r.prev[i] = grid.None
	}
	r.dist[r.start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: r.start, dist: 0})
}

// process is the main loop: finalize the closest unvisited node, stop at
// finish (unless exhaustive), relax its neighbors, repeat.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.idx

		// Stale entry for a node that was already finalized.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.visited[u] = true
		r.order = append(r.order, u)
		r.options.OnVisit(r.node(u))

		if u == r.finish && !r.options.Exhaustive {
			return
		}
		r.relax(u)
	}
}

// relax improves the distance of every open, unvisited neighbor of u.
// Only strict improvements are recorded, so the first finalized node to
// reach a neighbor stays its predecessor.
func (r *runner) relax(u int) {
	uc := r.g.CoordOf(u)
	newDist := r.dist[u] + 1
	if newDist > r.options.MaxDistance {
		return
	}
	for _, vc := range r.g.Neighbors(uc) {
		v := r.g.Index(vc)
		if r.visited[v] || r.g.At(vc).IsWall {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = uc
		heap.Push(&r.pq, nodeItem{idx: v, dist: newDist})
	}
}

// node returns the current view of cell i with run state applied.
func (r *runner) node(i int) grid.Node {
	n := r.g.At(r.g.CoordOf(i))
	n.Distance = r.dist[i]
	n.IsVisited = r.visited[i]
	n.Previous = r.prev[i]
	return n
}

// result reconstructs the path and builds the output snapshot.
func (r *runner) result() (*Result, error) {
	found := r.visited[r.finish]
	onPath := make([]bool, len(r.dist))
	var pathIdx []int
	if found {
		for c := r.g.CoordOf(r.finish); c != grid.None; c = r.prev[r.g.Index(c)] {
			pathIdx = append(pathIdx, r.g.Index(c))
		}
		for i, j := 0, len(pathIdx)-1; i < j; i, j = i+1, j-1 {
			pathIdx[i], pathIdx[j] = pathIdx[j], pathIdx[i]
		}
		for _, i := range pathIdx {
			onPath[i] = true
		}
	}

	snap, err := r.g.WithRunState(grid.RunState{
		Distance: r.dist,
		Visited:  r.visited,
		Previous: r.prev,
		OnPath:   onPath,
	})
	if err != nil {
		return nil, fmt.Errorf("dijkstra: build snapshot: %w", err)
	}

	res := &Result{
		Visited: make([]grid.Node, len(r.order)),
		Path:    make([]grid.Node, len(pathIdx)),
		Found:   found,
		Grid:    snap,
	}
	for k, i := range r.order {
		res.Visited[k] = snap.At(snap.CoordOf(i))
	}
	for k, i := range pathIdx {
		res.Path[k] = snap.At(snap.CoordOf(i))
	}
	return res, nil
}

// PathTo walks Previous links back from finish on a snapshot produced by
// Run and returns the nodes in start→finish order. It returns nil when
// finish was never visited or lies outside g.
func PathTo(g *grid.Grid, finish grid.Coord) []grid.Node {
	if g == nil || !g.InBounds(finish.Row, finish.Col) || !g.At(finish).IsVisited {
		return nil
	}
	var path []grid.Node
	for c := finish; c != grid.None; c = g.At(c).Previous {
		path = append(path, g.At(c))
		if len(path) > g.Len() {
			return nil // Previous links are not a tree; not produced by Run
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// nodeItem is a heap entry: a cell and the distance it was pushed with.
type nodeItem struct {
	idx  int
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by dist, then by row-major index.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
