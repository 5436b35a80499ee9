// Package finder locates windows and UI elements on the live desktop.
//
// Nothing is cached: every call re-reads the desktop through a
// platform.Reader, so results reflect windows opened, closed or moved
// since the previous call.
package finder

import (
	"time"

	"go.uber.org/zap"

	"github.com/mj1618/uia-mcp/internal/model"
	"github.com/mj1618/uia-mcp/internal/platform"
)

const (
	// DefaultTimeout is used by callers that do not supply a wait budget.
	DefaultTimeout = 5 * time.Second
	// DefaultInterval is the pause between poll cycles.
	DefaultInterval = 200 * time.Millisecond
)

// Finder resolves selectors and coordinates against a Reader.
type Finder struct {
	reader   platform.Reader
	logger   *zap.Logger
	interval time.Duration
	depth    int
}

// Option configures a Finder.
type Option func(*Finder)

// WithLogger sets the logger used for probe failures.
func WithLogger(l *zap.Logger) Option {
	return func(f *Finder) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithInterval overrides the poll interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(f *Finder) {
		if d > 0 {
			f.interval = d
		}
	}
}

// WithDepth limits how deep element subtrees are read (0 = unlimited).
func WithDepth(depth int) Option {
	return func(f *Finder) {
		if depth >= 0 {
			f.depth = depth
		}
	}
}

// New creates a Finder over reader.
func New(reader platform.Reader, opts ...Option) *Finder {
	f := &Finder{
		reader:   reader,
		logger:   zap.NewNop(),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Interval returns the configured poll interval.
func (f *Finder) Interval() time.Duration { return f.interval }

// Match is a successful resolution: the element and the top-level window
// it was found in. When the window itself matched, Element describes it.
type Match struct {
	Window  model.Window
	Element model.Element
}
