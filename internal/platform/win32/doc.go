// Package win32 provides the Windows implementation of the platform
// interfaces: top-level window enumeration through user32, UI element reads
// and hit-testing through UI Automation (COM), and input injection.
//
// Import it for side effects to register the provider:
//
//	import _ "github.com/mj1618/uia-mcp/internal/platform/win32"
package win32
