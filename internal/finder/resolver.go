package finder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mj1618/uia-mcp/internal/model"
)

// At hit-tests the desktop at a screen coordinate and returns the innermost
// element there. Points on the bare desktop, outside every monitor or on the
// shell's own windows yield nil without an error. Coordinates may be
// negative.
func (f *Finder) At(x, y int) (*model.Element, error) {
	el, err := f.reader.ElementAt(x, y)
	if err != nil {
		return nil, fmt.Errorf("hit-test at {%d,%d}: %w", x, y, err)
	}
	if el == nil {
		return nil, nil
	}
	if model.IsShellWindow(el.WindowTitle, el.WindowClass) || model.IsShellWindow(el.Name, el.ClassName) {
		return nil, nil
	}
	// Some providers answer with an ancestor that does not cover the point.
	if el.Bounds[2] > 0 && el.Bounds[3] > 0 && !el.Contains(x, y) {
		f.logger.Debug("dropping hit outside its own bounds",
			zap.Int("x", x), zap.Int("y", y), zap.Ints("bounds", el.Bounds[:]))
		return nil, nil
	}
	return el, nil
}

// Resolve returns the element a selector designates: a hit-test for point
// selectors, a Find for the rest. A nil element with a nil error is a miss.
func (f *Finder) Resolve(ctx context.Context, sel model.Selector) (*model.Element, error) {
	if sel.Kind == model.SelectorPoint {
		x, y, err := sel.Coordinates()
		if err != nil {
			return nil, err
		}
		return f.At(x, y)
	}
	m, err := f.Find(ctx, sel)
	if err != nil || m == nil {
		return nil, err
	}
	return &m.Element, nil
}
