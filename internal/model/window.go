package model

import "strings"

// Window represents a top-level desktop window as read from the OS.
// Every field is a live read; nothing here is cached between calls.
type Window struct {
	Handle    uintptr `yaml:"handle"          json:"handle"`
	Title     string  `yaml:"title"           json:"title"`
	ClassName string  `yaml:"class"           json:"className"`
	App       string  `yaml:"app,omitempty"   json:"app,omitempty"`
	PID       int     `yaml:"pid"             json:"pid"`
	Bounds    [4]int  `yaml:"bounds"          json:"bounds"`
	Visible   bool    `yaml:"visible"         json:"visible"`
	Enabled   bool    `yaml:"enabled"         json:"enabled"`
}

// Shell window identity. Program Manager hosts the desktop icons and is never
// a useful match target.
const (
	ShellWindowTitle = "Program Manager"
	ShellWindowClass = "Progman"
	ShellWorkerClass = "WorkerW"
	DesktopRootClass = "#32769"
)

// IsShellWindow reports whether a window with this title/class is the
// desktop shell rather than an application window.
func IsShellWindow(title, className string) bool {
	if strings.EqualFold(strings.TrimSpace(title), ShellWindowTitle) {
		return true
	}
	return strings.EqualFold(className, ShellWindowClass) ||
		strings.EqualFold(className, ShellWorkerClass) ||
		strings.EqualFold(className, DesktopRootClass)
}

// AsElement describes the window itself as a UI element, used when a
// selector matches the top-level window rather than something inside it.
func (w Window) AsElement() Element {
	return Element{
		Name:        w.Title,
		ClassName:   w.ClassName,
		ControlType: ControlWindow,
		Bounds:      w.Bounds,
		Enabled:     w.Enabled,
		Visible:     w.Visible,
		WindowTitle: w.Title,
		WindowClass: w.ClassName,
	}
}
