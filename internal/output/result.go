package output

import (
	"errors"
	"fmt"

	"github.com/mj1618/uia-mcp/internal/finder"
	"github.com/mj1618/uia-mcp/internal/model"
)

// Rect is a bounding rectangle in virtual-screen pixels.
type Rect struct {
	X      int `yaml:"x"      json:"x"`
	Y      int `yaml:"y"      json:"y"`
	Width  int `yaml:"width"  json:"width"`
	Height int `yaml:"height" json:"height"`
}

// ElementInfo is the wire form of a UI element.
type ElementInfo struct {
	Name                string `yaml:"name"                json:"name"`
	AutomationID        string `yaml:"automationId"        json:"automationId"`
	ClassName           string `yaml:"className"           json:"className"`
	ControlType         string `yaml:"controlType"         json:"controlType"`
	BoundingRectangle   Rect   `yaml:"boundingRectangle"   json:"boundingRectangle"`
	IsEnabled           bool   `yaml:"isEnabled"           json:"isEnabled"`
	IsVisible           bool   `yaml:"isVisible"           json:"isVisible"`
	IsKeyboardFocusable bool   `yaml:"isKeyboardFocusable" json:"isKeyboardFocusable"`
	HasKeyboardFocus    bool   `yaml:"hasKeyboardFocus"    json:"hasKeyboardFocus"`
}

// ElementResult is returned by every find and inspect operation. Success is
// false only for faults; a clean miss is Success=true, Found=false.
type ElementResult struct {
	Success bool         `yaml:"success"           json:"success"`
	Found   bool         `yaml:"found"             json:"found"`
	Element *ElementInfo `yaml:"element,omitempty" json:"element,omitempty"`
	Message string       `yaml:"message,omitempty" json:"message,omitempty"`
}

// WaitResult is an ElementResult with wait telemetry.
type WaitResult struct {
	ElementResult `yaml:",inline"`
	Timeout       bool   `yaml:"timeout"             json:"timeout"`
	Cancelled     bool   `yaml:"cancelled,omitempty" json:"cancelled,omitempty"`
	WaitTime      int64  `yaml:"waitTime"            json:"waitTime"`
	Selector      string `yaml:"selector"            json:"selector"`
	SelectorType  string `yaml:"selectorType"        json:"selectorType"`
}

// ActionResult reports an input action performed on a resolved element.
type ActionResult struct {
	ElementResult `yaml:",inline"`
	Action        string `yaml:"action"      json:"action"`
	X             int    `yaml:"x,omitempty" json:"x,omitempty"`
	Y             int    `yaml:"y,omitempty" json:"y,omitempty"`
}

// WindowsResult is the output of a window listing.
type WindowsResult struct {
	Success bool           `yaml:"success" json:"success"`
	Count   int            `yaml:"count"   json:"count"`
	Windows []model.Window `yaml:"windows" json:"windows"`
}

// Info converts an element snapshot to its wire form. Negative extents are
// clamped to zero; the origin may be negative.
func Info(el model.Element) *ElementInfo {
	return &ElementInfo{
		Name:         el.Name,
		AutomationID: el.AutomationID,
		ClassName:    el.ClassName,
		ControlType:  el.ControlType,
		BoundingRectangle: Rect{
			X:      el.Bounds[0],
			Y:      el.Bounds[1],
			Width:  max(el.Bounds[2], 0),
			Height: max(el.Bounds[3], 0),
		},
		IsEnabled:           el.Enabled,
		IsVisible:           el.Visible,
		IsKeyboardFocusable: el.KeyboardFocusable,
		HasKeyboardFocus:    el.HasKeyboardFocus,
	}
}

// Formatter builds results with hints in the user's UI language.
type Formatter struct {
	hints hints
}

// NewFormatter returns a Formatter for a BCP 47 UI language such as "de-DE".
// Unsupported or empty languages fall back to English.
func NewFormatter(uiLanguage string) *Formatter {
	return &Formatter{hints: hintsFor(uiLanguage)}
}

// Describe renders a selector for messages: points as {x,y}, the rest as
// kind="value".
func Describe(sel model.Selector) string {
	if sel.Kind == model.SelectorPoint {
		if x, y, err := sel.Coordinates(); err == nil {
			return fmt.Sprintf("{%d,%d}", x, y)
		}
	}
	return sel.String()
}

// FromMatch reports the outcome of a selector lookup.
func (f *Formatter) FromMatch(sel model.Selector, m *finder.Match) ElementResult {
	if m == nil {
		return ElementResult{
			Success: true,
			Message: fmt.Sprintf("No element matched %s. %s", Describe(sel), f.hints.notFound),
		}
	}
	return ElementResult{Success: true, Found: true, Element: Info(m.Element)}
}

// FromElement reports the outcome of a hit-test at (x, y).
func (f *Formatter) FromElement(x, y int, el *model.Element) ElementResult {
	if el == nil {
		return ElementResult{
			Success: true,
			Message: fmt.Sprintf("No element found at {%d,%d}. %s", x, y, f.hints.nothingAtPoint),
		}
	}
	return ElementResult{Success: true, Found: true, Element: Info(*el)}
}

// FromFault reports a platform failure or invalid input. subject names what
// was being resolved, e.g. a selector or a point.
func (f *Formatter) FromFault(subject string, err error) ElementResult {
	msg := fmt.Sprintf("Failed to resolve %s: %v", subject, err)
	if errors.Is(err, model.ErrInvalidSelectorKind) {
		msg = fmt.Sprintf("Invalid request for %s: %v", subject, err)
	}
	return ElementResult{Success: false, Message: msg}
}

// FromWait reports a finished wait.
func (f *Formatter) FromWait(out finder.WaitOutcome) WaitResult {
	waitMs := out.Elapsed.Milliseconds()
	res := WaitResult{
		Timeout:      out.TimedOut,
		Cancelled:    out.Cancelled,
		WaitTime:     waitMs,
		Selector:     out.Selector.Value,
		SelectorType: string(out.Selector.Kind),
	}
	desc := Describe(out.Selector)

	switch {
	case out.Invalid():
		res.ElementResult = f.FromFault(desc, out.LastErr)
	case out.Found:
		res.ElementResult = ElementResult{Success: true, Found: true, Element: Info(*out.Element)}
	case out.Cancelled:
		res.ElementResult = ElementResult{
			Success: true,
			Message: fmt.Sprintf("Wait for %s cancelled after %dms", desc, waitMs),
		}
	default:
		msg := fmt.Sprintf("Timed out after %dms waiting for %s. %s", waitMs, desc, f.hints.timedOut)
		if out.LastErr != nil {
			msg += fmt.Sprintf(" Last error: %v", out.LastErr)
		}
		res.ElementResult = ElementResult{Success: true, Message: msg}
	}
	return res
}

// FromWindows wraps a window listing.
func FromWindows(windows []model.Window) WindowsResult {
	if windows == nil {
		windows = []model.Window{}
	}
	return WindowsResult{Success: true, Count: len(windows), Windows: windows}
}
