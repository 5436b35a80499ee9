package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SelectorKind says how a selector value is compared against candidates.
type SelectorKind string

const (
	SelectorText         SelectorKind = "text"
	SelectorClassName    SelectorKind = "className"
	SelectorAutomationID SelectorKind = "automationId"
	SelectorPoint        SelectorKind = "point"
)

// ErrInvalidSelectorKind is returned for an unrecognised selector type.
var ErrInvalidSelectorKind = errors.New("invalid selector type")

// ParseSelectorKind converts a caller-supplied selector type to a SelectorKind.
// Matching is case-insensitive and accepts snake_case spellings.
func ParseSelectorKind(s string) (SelectorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return SelectorText, nil
	case "classname", "class_name", "class":
		return SelectorClassName, nil
	case "automationid", "automation_id", "id":
		return SelectorAutomationID, nil
	case "point", "coordinates", "xy":
		return SelectorPoint, nil
	default:
		return "", fmt.Errorf("%w: %q (expected text, className, automationId, or point)", ErrInvalidSelectorKind, s)
	}
}

// Selector is a matching criterion paired with its raw text.
type Selector struct {
	Kind  SelectorKind
	Value string
}

// Text, ClassName, AutomationID and Point build selectors of each kind.
func Text(v string) Selector         { return Selector{Kind: SelectorText, Value: v} }
func ClassName(v string) Selector    { return Selector{Kind: SelectorClassName, Value: v} }
func AutomationID(v string) Selector { return Selector{Kind: SelectorAutomationID, Value: v} }
func Point(x, y int) Selector {
	return Selector{Kind: SelectorPoint, Value: fmt.Sprintf("%d,%d", x, y)}
}

// Empty reports whether the selector value is blank. Blank selectors never match.
func (s Selector) Empty() bool {
	return strings.TrimSpace(s.Value) == ""
}

// Coordinates parses a point selector value of the form "x,y".
func (s Selector) Coordinates() (int, int, error) {
	parts := strings.Split(s.Value, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid point %q: expected x,y", s.Value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s.Value, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q: %w", s.Value, err)
	}
	return x, y, nil
}

// String renders the selector as kind=value for messages and logs.
func (s Selector) String() string {
	return fmt.Sprintf("%s=%q", s.Kind, s.Value)
}

// MatchesWindow reports whether a top-level window satisfies the selector.
// Automation ids live on UI elements, so windows never match them directly.
func (s Selector) MatchesWindow(w Window) bool {
	if s.Empty() {
		return false
	}
	switch s.Kind {
	case SelectorText:
		return strings.Contains(strings.ToLower(w.Title), strings.ToLower(s.Value))
	case SelectorClassName:
		return strings.EqualFold(w.ClassName, strings.TrimSpace(s.Value))
	}
	return false
}

// MatchesElement reports whether a UI element satisfies the selector. Text
// selectors match window titles only, so they never match an element here.
func (s Selector) MatchesElement(el Element) bool {
	if s.Empty() {
		return false
	}
	v := strings.TrimSpace(s.Value)
	switch s.Kind {
	case SelectorClassName:
		return strings.EqualFold(el.ClassName, v)
	case SelectorAutomationID:
		return strings.EqualFold(el.AutomationID, v)
	}
	return false
}
