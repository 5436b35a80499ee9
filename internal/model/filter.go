package model

import "strings"

// FilterWindows returns windows whose title, class or owning app contains
// text (case-insensitive). Order is preserved. An empty filter returns the
// input unchanged.
func FilterWindows(windows []Window, text string) []Window {
	if text == "" {
		return windows
	}
	textLower := strings.ToLower(text)
	var result []Window
	for _, w := range windows {
		if strings.Contains(strings.ToLower(w.Title), textLower) ||
			strings.Contains(strings.ToLower(w.ClassName), textLower) ||
			strings.Contains(strings.ToLower(w.App), textLower) {
			result = append(result, w)
		}
	}
	if result == nil {
		result = []Window{}
	}
	return result
}

// WithoutShell drops desktop shell windows, keeping enumeration order.
func WithoutShell(windows []Window) []Window {
	result := make([]Window, 0, len(windows))
	for _, w := range windows {
		if IsShellWindow(w.Title, w.ClassName) {
			continue
		}
		result = append(result, w)
	}
	return result
}
