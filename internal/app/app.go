package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathviz/animate"
	"github.com/katalvlaran/pathviz/grid"
	"github.com/katalvlaran/pathviz/internal/config"
	"github.com/katalvlaran/pathviz/internal/ctxlog"
	"github.com/katalvlaran/pathviz/maze"
	"github.com/katalvlaran/pathviz/render"
	"github.com/katalvlaran/pathviz/scenario"
	"github.com/katalvlaran/pathviz/session"
)

// ErrBoardFlags is returned when board geometry flags are combined with a
// scenario file, which defines the board itself.
var ErrBoardFlags = errors.New("app: -rows, -cols and -cell-size cannot be combined with a scenario")

// App is one configured run of the visualizer.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp returns an App that draws frames to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")
	return &App{outW: outW, logger: logger, config: cfg}
}

// plan is the resolved work of a run.
type plan struct {
	board  *grid.Grid
	delays session.Options
	gen    maze.Generator
}

// Run generates the optional maze, then visualizes Dijkstra on the board,
// drawing every replayed step. Cancelling ctx stops the replay in flight.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	p, err := a.resolve(ctx)
	if err != nil {
		return err
	}
	s, err := session.NewFromGrid(p.board, session.WithDelays(p.delays.VisitDelay, p.delays.PathDelay, p.delays.WallDelay))
	if err != nil {
		return err
	}

	obsOpts := []render.ObserverOption{render.WithEvery(a.config.Every)}
	if a.config.Clear {
		obsOpts = append(obsOpts, render.WithClear())
	}
	obs := render.NewObserver(a.outW, render.New(a.outW, a.config.Color), s.Grid, obsOpts...)

	a.logger.Info("Board ready.",
		"rows", p.board.Rows(), "cols", p.board.Cols(),
		"start", p.board.Start().String(), "finish", p.board.Finish().String())

	if p.gen != nil {
		h, err := s.GenerateMaze(ctx, p.gen, obs)
		if err != nil {
			return fmt.Errorf("maze generation failed: %w", err)
		}
		if err := wait(ctx, s, h); err != nil {
			return err
		}
	}

	h, err := s.VisualizeDijkstra(ctx, obs)
	if err != nil {
		return fmt.Errorf("pathfinding failed: %w", err)
	}
	if err := wait(ctx, s, h); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return obs.Err()
}

// wait blocks until h finishes. If ctx ends first the session is reset.
func wait(ctx context.Context, s *session.Session, h *animate.Handle) error {
	select {
	case <-h.Done():
	case <-ctx.Done():
		s.Reset(ctx)
		<-h.Done()
	}
	if !h.Completed() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("playback interrupted: %w", err)
		}
		return errors.New("playback interrupted")
	}
	return nil
}

// resolve works out board, timing and maze from the scenario file and flags.
func (a *App) resolve(ctx context.Context) (*plan, error) {
	cfg := a.config
	vp := scenario.Viewport{Width: cfg.ViewportWidth, Height: cfg.ViewportHeight}
	p := &plan{delays: session.Options{
		VisitDelay: cfg.VisitDelay,
		PathDelay:  cfg.PathDelay,
		WallDelay:  cfg.WallDelay,
	}}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		a.logger.Debug("Using a time-based maze seed.", "seed", seed)
	}

	var (
		fromFile *scenario.Maze
		err      error
	)
	if cfg.ScenarioPath != "" {
		if cfg.Explicit["rows"] || cfg.Explicit["cols"] || cfg.Explicit["cell-size"] {
			return nil, ErrBoardFlags
		}
		sc, err := scenario.Load(ctx, cfg.ScenarioPath, vp)
		if err != nil {
			return nil, err
		}
		p.board, fromFile = sc.Board, sc.Maze
		if !cfg.Explicit["visit-delay"] {
			p.delays.VisitDelay = sc.Delays.VisitDelay
		}
		if !cfg.Explicit["path-delay"] {
			p.delays.PathDelay = sc.Delays.PathDelay
		}
		if !cfg.Explicit["wall-delay"] {
			p.delays.WallDelay = sc.Delays.WallDelay
		}
	} else if p.board, err = a.flagBoard(); err != nil {
		return nil, err
	}

	switch {
	case fromFile != nil && !cfg.Explicit["maze"]:
		p.gen, err = fromFile.Generator(seed)
	default:
		p.gen, err = maze.New(maze.Kind(cfg.Maze), maze.WithSeed(seed))
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// flagBoard builds an empty board from the geometry flags.
func (a *App) flagBoard() (*grid.Grid, error) {
	cfg := a.config
	gc := config.Default()
	gc.CellSizePx = cfg.CellSize
	if cfg.ViewportWidth > 0 || cfg.ViewportHeight > 0 {
		fitted, err := config.Layout(cfg.ViewportWidth, cfg.ViewportHeight, cfg.CellSize)
		if err != nil {
			return nil, err
		}
		gc = fitted
	}
	if cfg.Rows > 0 {
		gc.Rows = cfg.Rows
	}
	if cfg.Cols > 0 {
		gc.Cols = cfg.Cols
	}
	start, finish := config.DefaultEndpoints(gc)
	return grid.New(gc, start, finish)
}
