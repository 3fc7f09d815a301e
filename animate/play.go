package animate

import (
	"context"
	"time"

	"github.com/katalvlaran/pathviz/internal/ctxlog"
)

// Offsets returns the schedule of a sequence of n steps: step i fires at
// Offsets[i] = i·delay after Play, and the completion callback at
// Offsets[n] = n·delay. A negative delay counts as zero.
func Offsets(n int, delay time.Duration) []time.Duration {
	if delay < 0 {
		delay = 0
	}
	out := make([]time.Duration, n+1)
	for i := range out {
		out[i] = time.Duration(i) * delay
	}
	return out
}

// Play schedules onStep for every entry and onComplete after the last one,
// following Offsets(len(entries), delay). Deadlines are measured from the
// moment Play is called, so slow callbacks do not push later steps back.
//
// It returns immediately. An empty sequence still fires onComplete (at
// time 0) and never fires onStep. Cancelling the handle or ctx stops every
// pending callback, onComplete included. Either callback may be nil.
func Play[T any](ctx context.Context, entries []T, delay time.Duration, onStep func(T), onComplete func()) *Handle {
	h := newHandle(ctx)
	offsets := Offsets(len(entries), delay)
	began := time.Now()
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Animation scheduled.", "steps", len(entries), "delay", delay)

	go func() {
		defer close(h.done)
		defer h.cancel()
		for i, e := range entries {
			if !h.waitUntil(began.Add(offsets[i])) {
				logger.Debug("Animation cancelled.", "fired", i, "steps", len(entries))
				return
			}
			if onStep != nil {
				onStep(e)
			}
			h.steps.Add(1)
		}
		if !h.waitUntil(began.Add(offsets[len(entries)])) {
			logger.Debug("Animation cancelled before completion.", "steps", len(entries))
			return
		}
		h.completed.Store(true)
		if onComplete != nil {
			onComplete()
		}
		logger.Debug("Animation complete.", "steps", len(entries), "elapsed", time.Since(began))
	}()

	return h
}

// waitUntil sleeps until deadline and reports whether the handle is still
// live afterwards.
func (h *Handle) waitUntil(deadline time.Time) bool {
	d := time.Until(deadline)
	if d <= 0 {
		return h.ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-h.ctx.Done():
		return false
	case <-timer.C:
		return h.ctx.Err() == nil
	}
}

// Stage starts one sequence under ctx.
type Stage func(ctx context.Context) *Handle

// Sequence wraps a Play call as a Stage for Chain.
func Sequence[T any](entries []T, delay time.Duration, onStep func(T)) Stage {
	return func(ctx context.Context) *Handle {
		return Play(ctx, entries, delay, onStep, nil)
	}
}

// Chain runs stages one after another: each stage starts only after the
// previous one completed. onComplete fires after the last stage. Cancelling
// the returned handle cancels whichever stage is playing and skips the rest.
func Chain(ctx context.Context, onComplete func(), stages ...Stage) *Handle {
	h := newHandle(ctx)
	go func() {
		defer close(h.done)
		defer h.cancel()
		for _, start := range stages {
			sub := start(h.ctx)
			<-sub.Done()
			h.steps.Add(int64(sub.Steps()))
			if !sub.Completed() {
				return
			}
		}
		if h.ctx.Err() != nil {
			return
		}
		h.completed.Store(true)
		if onComplete != nil {
			onComplete()
		}
	}()
	return h
}
