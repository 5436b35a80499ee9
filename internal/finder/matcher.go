package finder

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mj1618/uia-mcp/internal/model"
	"github.com/mj1618/uia-mcp/internal/platform"
)

// Find returns the first window or element satisfying sel, walking windows
// in enumeration order. A nil Match with a nil error means nothing matched.
//
// Text selectors compare window titles. ClassName and AutomationId
// selectors test each window, then its element subtree in pre-order, before
// moving to the next window. A subtree that cannot be read is logged and
// skipped. ctx is checked before each subtree read; once it is done Find
// stops and returns ctx.Err().
func (f *Finder) Find(ctx context.Context, sel model.Selector) (*Match, error) {
	if sel.Kind == model.SelectorPoint {
		return nil, fmt.Errorf("%w: point selectors resolve by coordinates, use At", model.ErrInvalidSelectorKind)
	}
	if sel.Empty() {
		return nil, nil
	}

	windows, err := Windows(f.reader)
	if err != nil {
		return nil, err
	}

	for _, w := range windows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if sel.MatchesWindow(w) {
			return &Match{Window: w, Element: w.AsElement()}, nil
		}
		if sel.Kind == model.SelectorText {
			continue
		}

		elements, err := f.reader.ReadElements(ctx, platform.ReadOptions{Handle: w.Handle, Depth: f.depth})
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if err != nil {
			f.logger.Debug("skipping unreadable window",
				zap.String("title", w.Title),
				zap.String("class", w.ClassName),
				zap.Error(err))
			continue
		}
		if el := model.FirstMatch(elements, sel.MatchesElement); el != nil {
			el.WindowTitle = w.Title
			el.WindowClass = w.ClassName
			return &Match{Window: w, Element: *el}, nil
		}
	}
	return nil, nil
}
