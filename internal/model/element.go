package model

// Element is a point-in-time snapshot of a UI Automation element.
type Element struct {
	Name              string    `yaml:"name,omitempty"          json:"name"`
	AutomationID      string    `yaml:"automation_id,omitempty" json:"automationId"`
	ClassName         string    `yaml:"class,omitempty"         json:"className"`
	ControlType       string    `yaml:"control_type"            json:"controlType"`
	Bounds            [4]int    `yaml:"bounds"                  json:"bounds"` // [x, y, width, height]
	Enabled           bool      `yaml:"enabled"                 json:"isEnabled"`
	Visible           bool      `yaml:"visible"                 json:"isVisible"`
	KeyboardFocusable bool      `yaml:"focusable,omitempty"     json:"isKeyboardFocusable"`
	HasKeyboardFocus  bool      `yaml:"focused,omitempty"       json:"hasKeyboardFocus"`
	WindowTitle       string    `yaml:"window,omitempty"        json:"-"` // Owning top-level window
	WindowClass       string    `yaml:"window_class,omitempty"  json:"-"`
	Children          []Element `yaml:"children,omitempty"      json:"-"`
}

// Center returns the midpoint of the element's bounding rectangle.
func (e Element) Center() (int, int) {
	return e.Bounds[0] + e.Bounds[2]/2, e.Bounds[1] + e.Bounds[3]/2
}

// Contains reports whether the screen point lies inside the element bounds.
// Coordinates may be negative on multi-monitor layouts.
func (e Element) Contains(x, y int) bool {
	return x >= e.Bounds[0] && x < e.Bounds[0]+e.Bounds[2] &&
		y >= e.Bounds[1] && y < e.Bounds[1]+e.Bounds[3]
}
