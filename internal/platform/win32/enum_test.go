//go:build windows

package win32

import (
	"strings"
	"testing"

	"golang.org/x/sys/windows"
)

func TestRectBounds(t *testing.T) {
	got := rectBounds(windows.Rect{Left: -1920, Top: 10, Right: -1820, Bottom: 60})
	want := [4]int{-1920, 10, 100, 50}
	if got != want {
		t.Errorf("rectBounds = %v, want %v", got, want)
	}
}

func TestEnumWindows_ReadsTitlesAndRects(t *testing.T) {
	handles, err := enumWindows()
	if err != nil {
		t.Fatalf("enumWindows: %v", err)
	}
	if len(handles) == 0 {
		t.Skip("no top-level windows in this session")
	}

	names := make(map[uint32]string)
	for _, hwnd := range handles {
		w := describeWindow(hwnd, names)
		if w.Bounds[2] < 0 || w.Bounds[3] < 0 {
			t.Errorf("window %#x (%q): negative extent %v", w.Handle, w.Title, w.Bounds)
		}
		if strings.ContainsRune(w.Title, 0) {
			t.Errorf("window %#x: title %q carries a NUL", w.Handle, w.Title)
		}
	}
}
