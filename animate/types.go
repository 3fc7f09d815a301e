// Package animate replays a recorded trace over time.
//
// An algorithm run produces its whole trace up front; Play then fires one
// callback per entry at 0, D, 2D, … (N-1)D and a completion callback at N·D.
// Callbacks of one Play run serially on a single goroutine, so they never
// interleave with each other. Guard is the app-level busy flag that keeps two
// runs from interleaving against the same grid.
package animate

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrRunInProgress is returned by Guard.Begin while another run still holds
// the guard.
var ErrRunInProgress = errors.New("animate: run in progress")

// Handle controls one scheduled sequence (or a Chain of them).
type Handle struct {
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	completed atomic.Bool
	steps     atomic.Int64
}

func newHandle(parent context.Context) *Handle {
	ctx, cancel := context.WithCancel(parent)
	return &Handle{ctx: ctx, cancel: cancel, done: make(chan struct{})}
}

// Cancel stops the sequence. Callbacks that have not started yet never fire,
// including the completion callback. Safe to call more than once and from
// inside a callback.
func (h *Handle) Cancel() {
	h.cancel()
}

// Done is closed once the sequence has completed or was cancelled and no
// more callbacks will run.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Wait blocks until Done is closed. Do not call it from a callback of the
// same sequence.
func (h *Handle) Wait() {
	<-h.done
}

// Completed reports whether the completion callback was reached.
func (h *Handle) Completed() bool {
	return h.completed.Load()
}

// Steps returns how many step callbacks have run so far.
func (h *Handle) Steps() int {
	return int(h.steps.Load())
}

// Token identifies one acquisition of a Guard.
type Token uint64

// Guard is a busy flag with generation tokens. Begin hands out a token;
// only the holder of the current token can End the run. Reset invalidates
// every outstanding token, so completion callbacks of an abandoned run can
// no longer clear the flag of the run that replaced it.
type Guard struct {
	mu   sync.Mutex
	busy bool
	gen  Token
}

// Begin marks the guard busy and returns the run's token, or
// ErrRunInProgress if it is already busy.
func (g *Guard) Begin() (Token, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return 0, ErrRunInProgress
	}
	g.gen++
	g.busy = true
	return g.gen, nil
}

// End clears the busy flag if t is the current token and reports whether it
// did.
func (g *Guard) End(t Token) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.busy || t != g.gen {
		return false
	}
	g.busy = false
	return true
}

// Valid reports whether t still owns the guard.
func (g *Guard) Valid(t Token) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy && t == g.gen
}

// Reset clears the busy flag and invalidates the current token.
func (g *Guard) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	g.busy = false
}

// Busy reports whether a run holds the guard.
func (g *Guard) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}
