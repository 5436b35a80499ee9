//go:build windows

package win32

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/mj1618/uia-mcp/internal/model"
	"github.com/mj1618/uia-mcp/internal/platform"
)

// Reader implements platform.Reader with user32 and UI Automation.
type Reader struct{}

// NewReader creates a new Windows reader.
func NewReader() *Reader {
	return &Reader{}
}

// ListWindows returns top-level windows in enumeration order. Untitled
// windows are kept: the taskbar (Shell_TrayWnd) has no title.
func (r *Reader) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	handles, err := enumWindows()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate windows: %w", err)
	}

	names := make(map[uint32]string)
	result := make([]model.Window, 0, len(handles))
	for _, hwnd := range handles {
		if opts.VisibleOnly && !windows.IsWindowVisible(hwnd) {
			continue
		}
		w := describeWindow(hwnd, names)
		if opts.VisibleOnly && !w.Visible {
			continue
		}
		if opts.PID != 0 && w.PID != opts.PID {
			continue
		}
		result = append(result, w)
	}
	return result, nil
}

// ReadElements reads the control-view subtree of a top-level window. A
// cancelled ctx abandons the walk and returns ctx.Err().
func (r *Reader) ReadElements(ctx context.Context, opts platform.ReadOptions) ([]model.Element, error) {
	if opts.Handle == 0 {
		return nil, fmt.Errorf("no window handle specified")
	}

	var elements []model.Element
	err := withAutomation(func(a *automation) error {
		root, err := a.elementFromHandle(opts.Handle)
		if err != nil {
			return err
		}
		defer root.Release()
		elements = a.readTree(ctx, root, opts.Depth, 0)
		return ctx.Err()
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read UI tree for window %#x: %w", opts.Handle, err)
	}
	if elements == nil {
		elements = []model.Element{}
	}
	return elements, nil
}

// ElementAt hit-tests the UI Automation tree at a screen point.
func (r *Reader) ElementAt(x, y int) (*model.Element, error) {
	var found *model.Element
	err := withAutomation(func(a *automation) error {
		el, err := a.elementFromPoint(x, y)
		if err != nil {
			return err
		}
		if el == nil {
			return nil
		}
		defer el.Release()
		if a.isRoot(el) {
			return nil
		}
		snap := snapshot(el)
		found = &snap
		return nil
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, nil
	}

	if root := rootWindowAt(x, y); root != 0 {
		found.WindowTitle = windowText(root)
		found.WindowClass = className(root)
	}
	return found, nil
}
