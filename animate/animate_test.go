package animate_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/animate"
)

func waitDone(t *testing.T, h *animate.Handle) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("handle never finished")
	}
}

// recorder collects callback events from the playback goroutine.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(ev string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

//----------------------------------------------------------------------------//
// Offsets / Play
//----------------------------------------------------------------------------//

func TestOffsets(t *testing.T) {
	d := 10 * time.Millisecond
	assert.Equal(t, []time.Duration{0, d, 2 * d, 3 * d}, animate.Offsets(3, d))
	assert.Equal(t, []time.Duration{0}, animate.Offsets(0, d))
	assert.Equal(t, []time.Duration{0, 0}, animate.Offsets(1, -d))
}

func TestPlay_EmptySequenceCompletes(t *testing.T) {
	var rec recorder
	h := animate.Play(context.Background(), []int(nil), time.Second,
		func(int) { rec.add("step") },
		func() { rec.add("complete") })
	waitDone(t, h)

	assert.Equal(t, []string{"complete"}, rec.list())
	assert.True(t, h.Completed())
	assert.Equal(t, 0, h.Steps())
}

func TestPlay_OrderAndTiming(t *testing.T) {
	var rec recorder
	entries := []string{"a", "b", "c", "d", "e"}
	delay := 2 * time.Millisecond

	began := time.Now()
	h := animate.Play(context.Background(), entries, delay,
		func(s string) { rec.add(s) },
		func() { rec.add("done") })
	waitDone(t, h)

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "done"}, rec.list())
	assert.GreaterOrEqual(t, time.Since(began), time.Duration(len(entries))*delay)
	assert.Equal(t, len(entries), h.Steps())
	assert.True(t, h.Completed())
}

func TestPlay_ZeroDelay(t *testing.T) {
	var rec recorder
	h := animate.Play(context.Background(), []string{"x", "y"}, 0, func(s string) { rec.add(s) }, nil)
	waitDone(t, h)
	assert.Equal(t, []string{"x", "y"}, rec.list())
	assert.True(t, h.Completed())
}

func TestPlay_CancelStopsPendingCallbacks(t *testing.T) {
	var rec recorder
	first := make(chan struct{}, 1)
	entries := make([]int, 20)

	h := animate.Play(context.Background(), entries, 50*time.Millisecond,
		func(int) {
			rec.add("step")
			select {
			case first <- struct{}{}:
			default:
			}
		},
		func() { rec.add("complete") })

	<-first
	h.Cancel()
	waitDone(t, h)

	assert.False(t, h.Completed())
	assert.NotContains(t, rec.list(), "complete")
	assert.Less(t, h.Steps(), len(entries))
	assert.Len(t, rec.list(), h.Steps())
}

func TestPlay_CancelFromCallback(t *testing.T) {
	var h *animate.Handle
	ready := make(chan struct{})
	var rec recorder
	h = animate.Play(context.Background(), []int{1, 2, 3}, 5*time.Millisecond,
		func(i int) {
			<-ready
			rec.add("step")
			if i == 1 {
				h.Cancel()
			}
		},
		func() { rec.add("complete") })
	close(ready)
	waitDone(t, h)

	assert.Equal(t, []string{"step"}, rec.list())
	assert.False(t, h.Completed())
}

func TestPlay_ParentContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	called := false
	h := animate.Play(ctx, []int{1, 2}, time.Hour, nil, func() { called = true })
	cancel()
	waitDone(t, h)
	assert.False(t, called)
	assert.False(t, h.Completed())
}

//----------------------------------------------------------------------------//
// Chain
//----------------------------------------------------------------------------//

func TestChain_RunsStagesInOrder(t *testing.T) {
	var rec recorder
	h := animate.Chain(context.Background(),
		func() { rec.add("complete") },
		animate.Sequence([]string{"v1", "v2", "v3"}, time.Millisecond, func(s string) { rec.add(s) }),
		animate.Sequence([]string{"p1", "p2"}, 2*time.Millisecond, func(s string) { rec.add(s) }),
	)
	waitDone(t, h)

	assert.Equal(t, []string{"v1", "v2", "v3", "p1", "p2", "complete"}, rec.list())
	assert.True(t, h.Completed())
	assert.Equal(t, 5, h.Steps())
}

func TestChain_EmptyStages(t *testing.T) {
	var rec recorder
	h := animate.Chain(context.Background(), func() { rec.add("complete") },
		animate.Sequence([]int(nil), time.Millisecond, nil),
		animate.Sequence([]int(nil), time.Millisecond, nil),
	)
	waitDone(t, h)
	assert.Equal(t, []string{"complete"}, rec.list())
}

func TestChain_CancelSkipsLaterStages(t *testing.T) {
	var rec recorder
	started := make(chan struct{}, 1)
	h := animate.Chain(context.Background(),
		func() { rec.add("complete") },
		animate.Sequence([]int{1, 2, 3}, time.Hour, func(int) {
			rec.add("v")
			started <- struct{}{}
		}),
		animate.Sequence([]int{1}, 0, func(int) { rec.add("p") }),
	)
	<-started
	h.Cancel()
	waitDone(t, h)

	assert.Equal(t, []string{"v"}, rec.list())
	assert.False(t, h.Completed())
}

//----------------------------------------------------------------------------//
// Guard
//----------------------------------------------------------------------------//

func TestGuard_BusyRejectsSecondRun(t *testing.T) {
	var g animate.Guard
	assert.False(t, g.Busy())

	tok, err := g.Begin()
	require.NoError(t, err)
	assert.True(t, g.Busy())
	assert.True(t, g.Valid(tok))

	_, err = g.Begin()
	assert.ErrorIs(t, err, animate.ErrRunInProgress)

	assert.True(t, g.End(tok))
	assert.False(t, g.Busy())
	assert.False(t, g.End(tok), "second End is a no-op")

	_, err = g.Begin()
	assert.NoError(t, err)
}

func TestGuard_ResetInvalidatesToken(t *testing.T) {
	var g animate.Guard
	old, err := g.Begin()
	require.NoError(t, err)

	g.Reset()
	assert.False(t, g.Busy())
	assert.False(t, g.Valid(old))

	cur, err := g.Begin()
	require.NoError(t, err)
	assert.NotEqual(t, old, cur)

	assert.False(t, g.End(old), "stale completion must not free the new run")
	assert.True(t, g.Busy())
	assert.True(t, g.End(cur))
}

// TestGuard_ReleasedByCompletion wires Guard and Play together the way an
// application does: the completion callback frees the guard.
func TestGuard_ReleasedByCompletion(t *testing.T) {
	var g animate.Guard
	tok, err := g.Begin()
	require.NoError(t, err)

	h := animate.Play(context.Background(), []int(nil), time.Millisecond, nil, func() { g.End(tok) })
	waitDone(t, h)
	assert.False(t, g.Busy())
}
