package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/session"
)

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// Observer is a session.Observer that writes a frame for every replayed
// step. The board function supplies the snapshot to draw on; visited and
// path steps of the running replay are overlaid until OnComplete.
type Observer struct {
	mu      sync.Mutex
	out     io.Writer
	r       *Renderer
	board   func() *grid.Grid
	clear   bool
	every   int
	steps   int
	visited map[grid.Coord]bool
	path    map[grid.Coord]bool
	err     error
}

// ObserverOption configures an Observer.
type ObserverOption func(*Observer)

// WithClear clears the terminal before each frame instead of separating
// frames with a blank line.
func WithClear() ObserverOption {
	return func(o *Observer) { o.clear = true }
}

// WithEvery draws only every n-th step. OnComplete always draws.
// Panics if n < 1.
func WithEvery(n int) ObserverOption {
	if n < 1 {
		panic("render: WithEvery(n < 1)")
	}
	return func(o *Observer) { o.every = n }
}

// NewObserver returns an Observer drawing board() with r onto out.
func NewObserver(out io.Writer, r *Renderer, board func() *grid.Grid, opts ...ObserverOption) *Observer {
	o := &Observer{
		out:     out,
		r:       r,
		board:   board,
		every:   1,
		visited: make(map[grid.Coord]bool),
		path:    make(map[grid.Coord]bool),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

var _ session.Observer = (*Observer)(nil)

// OnVisited marks n visited and draws a frame.
func (o *Observer) OnVisited(n grid.Node) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.visited[n.Coord()] = true
	o.step()
}

// OnPath marks n on the path and draws a frame.
func (o *Observer) OnPath(n grid.Node) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.path[n.Coord()] = true
	o.step()
}

// OnWall draws a frame; the wall itself is already on the board.
func (o *Observer) OnWall(grid.Coord) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.step()
}

// OnComplete draws the final board followed by a one-line summary and
// drops the overlay.
func (o *Observer) OnComplete(out session.Outcome) {
	o.mu.Lock()
	defer o.mu.Unlock()
	clear(o.visited)
	clear(o.path)
	o.steps = 0
	o.draw()
	o.printf("%s\n", Summary(out))
}

// Err returns the first write error, if any.
func (o *Observer) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

func (o *Observer) step() {
	o.steps++
	if o.steps%o.every == 0 {
		o.draw()
	}
}

func (o *Observer) draw() {
	frame := o.r.frame(o.board(), func(n *grid.Node) {
		c := n.Coord()
		if o.visited[c] {
			n.IsVisited = true
		}
		if o.path[c] {
			n.IsShortestPath = true
		}
	})
	if o.clear {
		o.printf("%s%s\n", clearScreen, frame)
		return
	}
	o.printf("%s\n\n", frame)
}

func (o *Observer) printf(format string, args ...any) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.out, format, args...)
}

// Summary describes an outcome in one line.
func Summary(out session.Outcome) string {
	switch out.Kind {
	case session.RunMaze:
		return fmt.Sprintf("maze: %d walls", out.Walls)
	default:
		if !out.Found {
			return fmt.Sprintf("dijkstra: no path, %d nodes visited", out.Visited)
		}
		return fmt.Sprintf("dijkstra: path of %d nodes, %d nodes visited", out.PathLen, out.Visited)
	}
}
