package model

// Control type names reported for elements.
const (
	ControlButton  = "button"
	ControlEdit    = "edit"
	ControlWindow  = "window"
	ControlPane    = "pane"
	ControlUnknown = "unknown"
)

// ControlTypeMap maps UI Automation control type ids (UIA_*ControlTypeId)
// to short names.
var ControlTypeMap = map[int]string{
	50000: ControlButton,
	50001: "calendar",
	50002: "checkbox",
	50003: "combobox",
	50004: ControlEdit,
	50005: "hyperlink",
	50006: "image",
	50007: "listitem",
	50008: "list",
	50009: "menu",
	50010: "menubar",
	50011: "menuitem",
	50012: "progressbar",
	50013: "radiobutton",
	50014: "scrollbar",
	50015: "slider",
	50016: "spinner",
	50017: "statusbar",
	50018: "tab",
	50019: "tabitem",
	50020: "text",
	50021: "toolbar",
	50022: "tooltip",
	50023: "tree",
	50024: "treeitem",
	50025: "custom",
	50026: "group",
	50027: "thumb",
	50028: "datagrid",
	50029: "dataitem",
	50030: "document",
	50031: "splitbutton",
	50032: ControlWindow,
	50033: ControlPane,
	50034: "header",
	50035: "headeritem",
	50036: "table",
	50037: "titlebar",
	50038: "separator",
	50039: "semanticzoom",
	50040: "appbar",
}

// MapControlType converts a UIA control type id to its short name.
func MapControlType(id int) string {
	if name, ok := ControlTypeMap[id]; ok {
		return name
	}
	return ControlUnknown
}
