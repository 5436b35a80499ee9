package finder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/uia-mcp/internal/model"
)

func TestWaitFor_TaskbarByClassName(t *testing.T) {
	r := &fakeReader{frames: [][]model.Window{desktop()}}
	f := newTestFinder(t, r)

	out := f.WaitFor(context.Background(), model.ClassName("Shell_TrayWnd"), 2*time.Second)
	require.True(t, out.Found)
	assert.False(t, out.TimedOut)
	assert.False(t, out.Cancelled)
	assert.Less(t, out.Elapsed, 2*time.Second)
	assert.Equal(t, 1, out.Attempts)
	require.NotNil(t, out.Element)
	assert.Equal(t, "Shell_TrayWnd", out.Element.ClassName)
}

func TestWaitFor_ZeroTimeoutProbesOnce(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		r := &fakeReader{frames: [][]model.Window{desktop()}}
		f := newTestFinder(t, r, WithInterval(time.Hour))

		start := time.Now()
		out := f.WaitFor(context.Background(), model.Text("never"), timeout)
		assert.Less(t, time.Since(start), time.Second)
		assert.True(t, out.TimedOut)
		assert.False(t, out.Found)
		assert.Equal(t, 1, out.Attempts)
		assert.Equal(t, 1, r.listCalls())
	}
}

func TestWaitFor_ZeroTimeoutStillFinds(t *testing.T) {
	r := &fakeReader{frames: [][]model.Window{desktop()}}
	f := newTestFinder(t, r)

	out := f.WaitFor(context.Background(), model.Text("notepad"), 0)
	assert.True(t, out.Found)
	assert.False(t, out.TimedOut)
}

func TestWaitFor_AppearsLater(t *testing.T) {
	empty := []model.Window{}
	r := &fakeReader{frames: [][]model.Window{empty, empty, empty, desktop()}}
	f := newTestFinder(t, r, WithInterval(5*time.Millisecond))

	out := f.WaitFor(context.Background(), model.Text("notepad"), 5*time.Second)
	require.True(t, out.Found)
	assert.Equal(t, 4, out.Attempts)
	assert.Less(t, out.Elapsed, 5*time.Second)
	assert.Equal(t, "Untitled - Notepad", out.Element.Name)
}

func TestWaitFor_TimesOut(t *testing.T) {
	r := &fakeReader{frames: [][]model.Window{desktop()}}
	f := newTestFinder(t, r, WithInterval(10*time.Millisecond))

	out := f.WaitFor(context.Background(), model.AutomationID("missing"), 50*time.Millisecond)
	assert.True(t, out.TimedOut)
	assert.False(t, out.Found)
	assert.Nil(t, out.Element)
	assert.GreaterOrEqual(t, out.Elapsed, 50*time.Millisecond)
	assert.GreaterOrEqual(t, out.Attempts, 2)
}

func TestWaitFor_ProbeErrorsContinue(t *testing.T) {
	r := &fakeReader{
		frames:  [][]model.Window{desktop()},
		listErr: []error{errAccessDenied, errAccessDenied},
	}
	f := newTestFinder(t, r, WithInterval(time.Millisecond))

	out := f.WaitFor(context.Background(), model.Text("notepad"), 5*time.Second)
	require.True(t, out.Found)
	assert.Equal(t, 3, out.Attempts)
	assert.ErrorIs(t, out.LastErr, errAccessDenied)
}

func TestWaitFor_Cancelled(t *testing.T) {
	r := &fakeReader{frames: [][]model.Window{desktop()}}
	f := newTestFinder(t, r, WithInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	out := f.WaitFor(ctx, model.Text("never"), time.Hour)
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.True(t, out.Cancelled)
	assert.False(t, out.TimedOut)
	assert.False(t, out.Found)
	assert.Equal(t, 1, out.Attempts, "no probe after cancellation")
	assert.Equal(t, 1, r.listCalls())
}

func TestWaitFor_CancelInterruptsSlowSubtreeRead(t *testing.T) {
	r := &fakeReader{frames: [][]model.Window{desktop()}, readDelay: 300 * time.Millisecond}
	f := newTestFinder(t, r, WithInterval(10*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	out := f.WaitFor(ctx, model.AutomationID("missing"), 50*time.Millisecond)
	elapsed := time.Since(start)

	assert.True(t, out.Cancelled)
	assert.False(t, out.TimedOut)
	assert.False(t, out.Found)
	assert.Equal(t, 1, out.Attempts)
	assert.Less(t, elapsed, 250*time.Millisecond, "a full pass over four windows takes 1.2s")
	assert.Equal(t, 1, r.readCalls(), "no further windows read after cancellation")
}

func TestWaitFor_DeadlineInterruptsLaterAttempt(t *testing.T) {
	r := &fakeReader{
		frames:    [][]model.Window{{}, desktop()},
		readDelay: 200 * time.Millisecond,
	}
	f := newTestFinder(t, r, WithInterval(time.Millisecond))

	start := time.Now()
	out := f.WaitFor(context.Background(), model.AutomationID("missing"), 50*time.Millisecond)
	elapsed := time.Since(start)

	assert.True(t, out.TimedOut)
	assert.False(t, out.Cancelled)
	assert.Equal(t, 2, out.Attempts)
	assert.Less(t, elapsed, 180*time.Millisecond)
}

func TestWaitFor_AlreadyCancelled(t *testing.T) {
	r := &fakeReader{frames: [][]model.Window{desktop()}}
	f := newTestFinder(t, r)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := f.WaitFor(ctx, model.Text("notepad"), time.Second)
	assert.True(t, out.Cancelled)
	assert.Equal(t, 0, out.Attempts)
	assert.Equal(t, 0, r.listCalls())
}

func TestWaitFor_Point(t *testing.T) {
	r := &fakeReader{at: map[[2]int]*model.Element{
		{10, 20}: {Name: "OK", ControlType: model.ControlButton, Bounds: [4]int{0, 0, 50, 50}},
	}}
	f := newTestFinder(t, r, WithInterval(time.Millisecond))

	out := f.WaitFor(context.Background(), model.Point(10, 20), time.Second)
	require.True(t, out.Found)
	assert.Equal(t, "OK", out.Element.Name)

	out = f.WaitFor(context.Background(), model.Point(100, 100), 0)
	assert.True(t, out.TimedOut)
}

func TestWaitFor_InvalidSelector(t *testing.T) {
	r := &fakeReader{}
	f := newTestFinder(t, r)

	out := f.WaitFor(context.Background(), model.Selector{Kind: model.SelectorPoint, Value: "left"}, time.Second)
	assert.True(t, out.Invalid())
	assert.Equal(t, 0, out.Attempts)

	out = f.WaitFor(context.Background(), model.Selector{Kind: "xpath", Value: "//a"}, time.Second)
	assert.True(t, out.Invalid())
	assert.ErrorIs(t, out.LastErr, model.ErrInvalidSelectorKind)
}

func TestWaitFor_ConcurrentWaitsIndependent(t *testing.T) {
	r := &fakeReader{frames: [][]model.Window{desktop()}}
	f := newTestFinder(t, r, WithInterval(time.Millisecond))

	results := make(chan WaitOutcome, 2)
	go func() { results <- f.WaitFor(context.Background(), model.Text("notepad"), time.Second) }()
	go func() { results <- f.WaitFor(context.Background(), model.Text("absent"), 20*time.Millisecond) }()

	var found, timedOut int
	for range 2 {
		out := <-results
		if out.Found {
			found++
		}
		if out.TimedOut {
			timedOut++
		}
	}
	assert.Equal(t, 1, found)
	assert.Equal(t, 1, timedOut)
}
