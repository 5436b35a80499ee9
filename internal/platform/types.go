package platform

import (
	"fmt"
	"strings"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// ParseMouseButton converts a string flag value to MouseButton.
func ParseMouseButton(s string) (MouseButton, error) {
	switch strings.ToLower(s) {
	case "left", "":
		return MouseLeft, nil
	case "right":
		return MouseRight, nil
	case "middle":
		return MouseMiddle, nil
	default:
		return MouseLeft, fmt.Errorf("unknown mouse button: %q (expected left, right, or middle)", s)
	}
}

// String returns the name robotgo and the CLI use for the button.
func (b MouseButton) String() string {
	switch b {
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "center"
	default:
		return "left"
	}
}

// ListOptions controls window listing.
type ListOptions struct {
	VisibleOnly bool // Skip windows that are not visible
	PID         int  // Filter by PID (0 = unset)
}

// ReadOptions selects the window whose element subtree is read.
type ReadOptions struct {
	Handle uintptr // Top-level window handle
	Depth  int     // Max traversal depth (0 = unlimited)
}
