package finder

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/mj1618/uia-mcp/internal/model"
)

// WaitOutcome is the terminal state of a WaitFor call. Exactly one of Found,
// TimedOut and Cancelled is set, unless the selector itself was invalid, in
// which case LastErr is set and all three are false.
type WaitOutcome struct {
	Found     bool
	TimedOut  bool
	Cancelled bool
	Elapsed   time.Duration
	Selector  model.Selector
	Element   *model.Element
	Attempts  int
	LastErr   error
}

// Invalid reports whether the wait was rejected before polling.
func (o WaitOutcome) Invalid() bool {
	return !o.Found && !o.TimedOut && !o.Cancelled && o.LastErr != nil
}

// WaitFor polls until sel resolves, timeout elapses or ctx is done. At least
// one probe is made even when timeout is zero or negative. Probe errors are
// logged and treated as a miss. Point selectors poll the hit-tester; the
// rest poll Find.
//
// ctx reaches into a running probe, so cancellation interrupts a slow
// subtree walk. The first probe runs to completion under ctx alone; later
// probes are also cut off at the deadline.
func (f *Finder) WaitFor(ctx context.Context, sel model.Selector, timeout time.Duration) WaitOutcome {
	start := time.Now()
	out := WaitOutcome{Selector: sel}

	probe, err := f.prober(sel)
	if err != nil {
		out.LastErr = err
		return out
	}

	deadline := start.Add(timeout)
	for {
		if ctx.Err() != nil {
			out.Cancelled = true
			out.Elapsed = time.Since(start)
			return out
		}

		out.Attempts++
		el, err := f.attempt(ctx, probe, out.Attempts, deadline)
		if err == nil && el != nil {
			out.Found = true
			out.Element = el
			out.Elapsed = time.Since(start)
			return out
		}
		if ctx.Err() != nil {
			out.Cancelled = true
			out.Elapsed = time.Since(start)
			return out
		}
		if errors.Is(err, context.DeadlineExceeded) {
			out.TimedOut = true
			out.Elapsed = time.Since(start)
			return out
		}
		if err != nil {
			out.LastErr = err
			f.logger.Warn("wait probe failed",
				zap.Stringer("selector", sel),
				zap.Int("attempt", out.Attempts),
				zap.Error(err))
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			out.TimedOut = true
			out.Elapsed = time.Since(start)
			return out
		}

		timer := time.NewTimer(min(f.interval, remaining))
		select {
		case <-ctx.Done():
			timer.Stop()
			out.Cancelled = true
			out.Elapsed = time.Since(start)
			return out
		case <-timer.C:
		}
	}
}

// attempt runs one probe. Only the first attempt may outlive the deadline.
func (f *Finder) attempt(ctx context.Context, probe func(context.Context) (*model.Element, error), n int, deadline time.Time) (*model.Element, error) {
	if n == 1 {
		return probe(ctx)
	}
	probeCtx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()
	return probe(probeCtx)
}

func (f *Finder) prober(sel model.Selector) (func(context.Context) (*model.Element, error), error) {
	if sel.Kind == model.SelectorPoint {
		if _, _, err := sel.Coordinates(); err != nil {
			return nil, err
		}
	} else if _, err := model.ParseSelectorKind(string(sel.Kind)); err != nil {
		return nil, err
	}
	return func(ctx context.Context) (*model.Element, error) { return f.Resolve(ctx, sel) }, nil
}
