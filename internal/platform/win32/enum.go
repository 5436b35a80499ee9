//go:build windows

package win32

import (
	"strings"
	"syscall"
	"unsafe"

	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/sys/windows"

	"github.com/mj1618/uia-mcp/internal/model"
)

var (
	user32              = windows.NewLazySystemDLL("user32.dll")
	procIsWindowEnabled = user32.NewProc("IsWindowEnabled")
	procGetWindowTextW  = user32.NewProc("GetWindowTextW")
	procGetWindowRect   = user32.NewProc("GetWindowRect")
	procWindowFromPoint = user32.NewProc("WindowFromPoint")
	procGetAncestor     = user32.NewProc("GetAncestor")
)

const (
	gaRoot       = 2
	maxTextChars = 512
)

// enumCallback is created once: callbacks made with NewCallback are never
// freed and the runtime caps how many may exist.
var enumCallback = windows.NewCallback(func(hwnd windows.HWND, lparam uintptr) uintptr {
	handles := (*[]windows.HWND)(unsafe.Pointer(lparam))
	*handles = append(*handles, hwnd)
	return 1
})

// enumWindows lists top-level windows in EnumWindows (Z) order. The
// callback only collects handles; properties are read afterwards.
func enumWindows() ([]windows.HWND, error) {
	handles := new([]windows.HWND)
	if err := windows.EnumWindows(enumCallback, unsafe.Pointer(handles)); err != nil {
		return nil, err
	}
	return *handles, nil
}

// isCloaked reports whether DWM hides the window (suspended UWP apps,
// windows on other virtual desktops).
func isCloaked(hwnd windows.HWND) bool {
	var cloaked uint32
	err := windows.DwmGetWindowAttribute(hwnd, windows.DWMWA_CLOAKED, unsafe.Pointer(&cloaked), uint32(unsafe.Sizeof(cloaked)))
	return err == nil && cloaked != 0
}

func windowText(hwnd windows.HWND) string {
	buf := make([]uint16, maxTextChars)
	n, _, _ := procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return syscall.UTF16ToString(buf[:n])
}

func className(hwnd windows.HWND) string {
	buf := make([]uint16, 256)
	n, _ := windows.GetClassName(hwnd, &buf[0], int32(len(buf)))
	return syscall.UTF16ToString(buf[:n])
}

func isEnabled(hwnd windows.HWND) bool {
	ret, _, _ := procIsWindowEnabled.Call(uintptr(hwnd))
	return ret != 0
}

func windowRect(hwnd windows.HWND) windows.Rect {
	var r windows.Rect
	procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))
	return r
}

func rectBounds(r windows.Rect) [4]int {
	return [4]int{int(r.Left), int(r.Top), int(r.Right - r.Left), int(r.Bottom - r.Top)}
}

// describeWindow reads the live properties of hwnd.
func describeWindow(hwnd windows.HWND, names map[uint32]string) model.Window {
	var pid uint32
	_, _ = windows.GetWindowThreadProcessId(hwnd, &pid)

	r := windowRect(hwnd)

	return model.Window{
		Handle:    uintptr(hwnd),
		Title:     windowText(hwnd),
		ClassName: className(hwnd),
		App:       processName(pid, names),
		PID:       int(pid),
		Bounds:    rectBounds(r),
		Visible:   windows.IsWindowVisible(hwnd) && !isCloaked(hwnd),
		Enabled:   isEnabled(hwnd),
	}
}

// processName resolves a pid to its executable name without the .exe
// suffix, memoized per enumeration pass.
func processName(pid uint32, names map[uint32]string) string {
	if pid == 0 {
		return ""
	}
	if name, ok := names[pid]; ok {
		return name
	}
	name := ""
	if p, err := process.NewProcess(int32(pid)); err == nil {
		if n, err := p.Name(); err == nil {
			name = strings.TrimSuffix(n, ".exe")
		}
	}
	names[pid] = name
	return name
}

// rootWindowAt returns the top-level window under a screen point.
func rootWindowAt(x, y int) windows.HWND {
	args := pointArgs(x, y)
	hwnd, _, _ := procWindowFromPoint.Call(args...)
	if hwnd == 0 {
		return 0
	}
	root, _, _ := procGetAncestor.Call(hwnd, gaRoot)
	if root == 0 {
		return windows.HWND(hwnd)
	}
	return windows.HWND(root)
}
