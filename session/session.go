package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/pathviz/animate"
	"github.com/katalvlaran/pathviz/dijkstra"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/ctxlog"
	"github.com/katalvlaran/pathviz/maze"
)

var (
	// ErrNoGenerator is returned by GenerateMaze when gen is nil.
	ErrNoGenerator = errors.New("session: maze generator is nil")

	// ErrNilGrid is returned by NewFromGrid when g is nil.
	ErrNilGrid = errors.New("session: grid is nil")
)

// Session owns the board between user events.
type Session struct {
	mu sync.Mutex

	cfg    grid.Config
	start  grid.Coord
	finish grid.Coord
	opts   Options

	board    *grid.Grid
	guard    animate.Guard
	active   *animate.Handle
	painting bool
}

// New creates a session on a fresh cfg-sized board.
func New(cfg grid.Config, start, finish grid.Coord, opts ...Option) (*Session, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	board, err := grid.New(cfg, start, finish)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return &Session{cfg: cfg, start: start, finish: finish, opts: o, board: board}, nil
}

// NewFromGrid creates a session whose board starts as g without its run
// state. Reset still rebuilds an empty board of the same shape.
func NewFromGrid(g *grid.Grid, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	s, err := New(g.Config(), g.Start(), g.Finish(), opts...)
	if err != nil {
		return nil, err
	}
	s.board = g.ClearRunState()
	return s, nil
}

// Grid returns the current snapshot.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board
}

// Busy reports whether an animation holds the board.
func (s *Session) Busy() bool {
	return s.guard.Busy()
}

// ToggleWall flips one wall. It fails with animate.ErrRunInProgress while
// an animation plays, and with grid.ErrProtectedCell / ErrInvalidCoordinate
// for the endpoints and out-of-bounds cells; the board is unchanged then.
func (s *Session) ToggleWall(ctx context.Context, row, col int) error {
	logger := ctxlog.FromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guard.Busy() {
		logger.Info("Wall toggle ignored, run in progress.", "row", row, "col", col)
		return animate.ErrRunInProgress
	}
	next, err := s.board.ToggleWall(row, col)
	if err != nil {
		logger.Debug("Wall toggle rejected.", "row", row, "col", col, "error", err)
		return err
	}
	s.board = next
	return nil
}

// StartPainting begins a drag: the pressed cell toggles and every cell
// entered until StopPainting toggles too.
func (s *Session) StartPainting(ctx context.Context, row, col int) error {
	if err := s.ToggleWall(ctx, row, col); err != nil && !errors.Is(err, grid.ErrProtectedCell) {
		return err
	}
	s.mu.Lock()
	s.painting = true
	s.mu.Unlock()
	return nil
}

// PaintEnter toggles (row,col) if a drag is in progress. Endpoints are
// skipped silently.
func (s *Session) PaintEnter(ctx context.Context, row, col int) error {
	s.mu.Lock()
	painting := s.painting
	s.mu.Unlock()
	if !painting {
		return nil
	}
	if err := s.ToggleWall(ctx, row, col); err != nil && !errors.Is(err, grid.ErrProtectedCell) {
		return err
	}
	return nil
}

// StopPainting ends a drag.
func (s *Session) StopPainting() {
	s.mu.Lock()
	s.painting = false
	s.mu.Unlock()
}

// Painting reports whether a drag is in progress.
func (s *Session) Painting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.painting
}

// VisualizeDijkstra runs the pathfinder on a cleared copy of the current
// board and replays the visited trace, then the path trace. The board stays
// busy until the path replay completes; the board then becomes the run's
// snapshot and obs.OnComplete fires. Cancelling the handle or ctx frees
// the board without installing the snapshot.
//
// Returns animate.ErrRunInProgress if another run holds the board.
func (s *Session) VisualizeDijkstra(ctx context.Context, obs Observer) (*animate.Handle, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	logger := ctxlog.FromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, err := s.guard.Begin()
	if err != nil {
		logger.Info("Dijkstra request ignored, run in progress.")
		return nil, err
	}
	snapshot := s.board.ClearRunState()
	s.board = snapshot

	res, err := dijkstra.Run(snapshot, s.start, s.finish)
	if err != nil {
		s.guard.End(tok)
		return nil, fmt.Errorf("session: %w", err)
	}
	out := Outcome{Kind: RunDijkstra, Visited: len(res.Visited), PathLen: len(res.Path), Found: res.Found}
	logger.Debug("Dijkstra trace recorded.", "visited", out.Visited, "path", out.PathLen, "found", out.Found)

	s.active = animate.Chain(ctx,
		func() {
			if s.complete(tok, res.Grid) {
				logger.Info("Dijkstra run complete.", "visited", out.Visited, "path", out.PathLen, "found", out.Found)
				obs.OnComplete(out)
			}
		},
		animate.Sequence(res.Visited, s.opts.VisitDelay, obs.OnVisited),
		animate.Sequence(res.Path, s.opts.PathDelay, obs.OnPath),
	)
	go s.release(tok, s.active)
	return s.active, nil
}

// GenerateMaze clears the board's walls, asks gen for a wall sequence and
// replays it; every step applies its wall to the board.
//
// Returns animate.ErrRunInProgress if another run holds the board.
func (s *Session) GenerateMaze(ctx context.Context, gen maze.Generator, obs Observer) (*animate.Handle, error) {
	if gen == nil {
		return nil, ErrNoGenerator
	}
	if obs == nil {
		obs = NopObserver{}
	}
	logger := ctxlog.FromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	tok, err := s.guard.Begin()
	if err != nil {
		logger.Info("Maze request ignored, run in progress.")
		return nil, err
	}
	base := s.board.ClearWalls()
	s.board = base

	walls, err := gen.Generate(base, s.start, s.finish)
	if err != nil {
		s.guard.End(tok)
		return nil, fmt.Errorf("session: %w", err)
	}
	out := Outcome{Kind: RunMaze, Walls: len(walls)}
	logger.Debug("Maze recorded.", "walls", out.Walls)

	s.active = animate.Play(ctx, walls, s.opts.WallDelay,
		func(c grid.Coord) {
			if s.placeWall(tok, c) {
				obs.OnWall(c)
			}
		},
		func() {
			if s.complete(tok, nil) {
				logger.Info("Maze complete.", "walls", out.Walls)
				obs.OnComplete(out)
			}
		},
	)
	go s.release(tok, s.active)
	return s.active, nil
}

// placeWall applies one replayed wall if tok still owns the board.
func (s *Session) placeWall(tok animate.Token, c grid.Coord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.guard.Valid(tok) {
		return false
	}
	next, err := s.board.ApplyWalls([]grid.Coord{c})
	if err != nil {
		return false
	}
	s.board = next
	return true
}

// release frees the board for tok once h stops without completing, after a
// Cancel on the handle or the end of the caller's context.
func (s *Session) release(tok animate.Token, h *animate.Handle) {
	<-h.Done()
	if h.Completed() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.guard.Valid(tok) {
		return
	}
	if s.active == h {
		s.active = nil
	}
	s.guard.End(tok)
}

// complete releases the board for tok, installing final when non-nil.
// It reports false if tok was invalidated by a reset in the meantime.
func (s *Session) complete(tok animate.Token, final *grid.Grid) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.guard.Valid(tok) {
		return false
	}
	if final != nil {
		s.board = final
	}
	s.active = nil
	return s.guard.End(tok)
}

// ClearPath drops the run state of the last pathfinder run and keeps walls.
func (s *Session) ClearPath(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.guard.Busy() {
		ctxlog.FromContext(ctx).Info("Clear path ignored, run in progress.")
		return animate.ErrRunInProgress
	}
	s.board = s.board.ClearRunState()
	return nil
}

// Reset stops any animation, frees the board and rebuilds it empty.
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked(ctx)
	// cfg and endpoints were validated when they were installed.
	board, _ := grid.New(s.cfg, s.start, s.finish)
	s.board = board
	ctxlog.FromContext(ctx).Debug("Board reset.", "rows", s.cfg.Rows, "cols", s.cfg.Cols)
}

// Resize discards the board for a new configuration and endpoints. Any
// animation is stopped first. On error the session is unchanged apart from
// the stopped animation.
func (s *Session) Resize(ctx context.Context, cfg grid.Config, start, finish grid.Coord) error {
	board, err := grid.New(cfg, start, finish)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked(ctx)
	s.cfg, s.start, s.finish, s.board = cfg, start, finish, board
	ctxlog.FromContext(ctx).Debug("Board resized.", "rows", cfg.Rows, "cols", cfg.Cols)
	return nil
}

// stopLocked cancels the active animation and invalidates its token.
// s.mu must be held.
func (s *Session) stopLocked(ctx context.Context) {
	if s.active != nil {
		s.active.Cancel()
		s.active = nil
		ctxlog.FromContext(ctx).Debug("Active animation cancelled.")
	}
	s.guard.Reset()
	s.painting = false
}
