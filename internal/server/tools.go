package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("find_element_by_text",
			mcp.WithDescription("Find the first top-level window whose title contains the text (case-insensitive)"),
			mcp.WithString("text", mcp.Required(), mcp.Description("Title substring, e.g. 'notepad'")),
		),
		s.handleFindByText,
	)

	s.mcp.AddTool(
		mcp.NewTool("find_element_by_class_name",
			mcp.WithDescription("Find the first window or UI element with this class name (case-insensitive exact match)"),
			mcp.WithString("className", mcp.Required(), mcp.Description("Win32 or UIA class name, e.g. 'Shell_TrayWnd'")),
		),
		s.handleFindByClassName,
	)

	s.mcp.AddTool(
		mcp.NewTool("find_element_by_automation_id",
			mcp.WithDescription("Find the first UI element with this automation id (case-insensitive exact match)"),
			mcp.WithString("automationId", mcp.Required(), mcp.Description("UI Automation AutomationId")),
		),
		s.handleFindByAutomationID,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_element_properties",
			mcp.WithDescription("Get the properties of the UI element at a screen coordinate"),
			mcp.WithNumber("x", mcp.Required(), mcp.Description("Screen X (may be negative on secondary monitors)")),
			mcp.WithNumber("y", mcp.Required(), mcp.Description("Screen Y (may be negative on secondary monitors)")),
		),
		s.handleGetElementProperties,
	)

	s.mcp.AddTool(
		mcp.NewTool("wait_for_element",
			mcp.WithDescription("Poll until an element matching the selector appears or the timeout elapses"),
			mcp.WithString("selector", mcp.Required(), mcp.Description("Selector value; for point use 'x,y'")),
			mcp.WithString("selectorType",
				mcp.Description("text, className, automationId or point (default: text)"),
				mcp.Enum("text", "className", "automationId", "point"),
			),
			mcp.WithNumber("timeoutMs", mcp.Description("Wait budget in milliseconds (default: 5000)")),
		),
		s.handleWaitForElement,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List visible top-level windows in enumeration order"),
			mcp.WithString("filter", mcp.Description("Only windows whose title, class or app contains this text")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("click_element",
			mcp.WithDescription("Resolve an element and click the centre of its bounding rectangle"),
			mcp.WithString("selector", mcp.Required(), mcp.Description("Selector value; for point use 'x,y'")),
			mcp.WithString("selectorType", mcp.Description("text, className, automationId or point (default: text)")),
			mcp.WithString("button", mcp.Description("Mouse button: left, right, middle")),
			mcp.WithBoolean("double", mcp.Description("Double-click")),
		),
		s.handleClickElement,
	)

	s.mcp.AddTool(
		mcp.NewTool("type_into_element",
			mcp.WithDescription("Resolve an element, click it to focus, then type text"),
			mcp.WithString("selector", mcp.Required(), mcp.Description("Selector value; for point use 'x,y'")),
			mcp.WithString("selectorType", mcp.Description("text, className, automationId or point (default: text)")),
			mcp.WithString("text", mcp.Required(), mcp.Description("Text to type")),
			mcp.WithNumber("delay", mcp.Description("Delay between keystrokes in ms")),
		),
		s.handleTypeIntoElement,
	)
}
