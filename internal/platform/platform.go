package platform

import (
	"context"

	"github.com/mj1618/uia-mcp/internal/model"
)

// Reader reads windows and UI elements from the OS. Every call is a fresh
// read of live desktop state.
type Reader interface {
	// ListWindows returns top-level windows in OS enumeration (Z) order.
	ListWindows(opts ListOptions) ([]model.Window, error)

	// ReadElements returns the UI element subtree below the given window.
	// It stops early and returns ctx.Err() once ctx is done.
	ReadElements(ctx context.Context, opts ReadOptions) ([]model.Element, error)

	// ElementAt hit-tests the UI tree at a screen coordinate. It returns
	// nil, nil when no element occupies the point.
	ElementAt(x, y int) (*model.Element, error)
}

// Inputter simulates mouse and keyboard input.
type Inputter interface {
	Click(x, y int, button MouseButton, count int) error
	TypeText(text string, delayMs int) error
}

// Locale answers questions about the user's UI language.
type Locale interface {
	// UILanguage returns a BCP 47 tag such as "en-US" or "de-DE".
	UILanguage() string
}
