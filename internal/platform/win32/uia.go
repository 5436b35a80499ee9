//go:build windows

package win32

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"

	"github.com/mj1618/uia-mcp/internal/model"
)

var (
	clsidCUIAutomation = ole.NewGUID("{FF48DBA4-60EF-4201-AA87-54103EEF594E}")
	iidIUIAutomation   = ole.NewGUID("{30CBE57D-D9D0-452A-AB13-7AC5AC4825EE}")
)

// IUIAutomation vtable slots.
const (
	uiaCompareElements         = 3
	uiaGetRootElement          = 5
	uiaElementFromHandle       = 6
	uiaElementFromPoint        = 7
	uiaGetControlViewCondition = 18
)

// IUIAutomationElement vtable slots.
const (
	elemFindAll                = 6
	elemGetCurrentControlType  = 21
	elemGetCurrentName         = 23
	elemGetCurrentHasFocus     = 26
	elemGetCurrentIsFocusable  = 27
	elemGetCurrentIsEnabled    = 28
	elemGetCurrentAutomationID = 29
	elemGetCurrentClassName    = 30
	elemGetCurrentIsOffscreen  = 38
	elemGetCurrentBoundingRect = 43
)

// IUIAutomationElementArray vtable slots.
const (
	arrayGetLength  = 3
	arrayGetElement = 4
)

const (
	treeScopeChildren = 0x2
	sFalse            = 0x1
)

// comCall invokes a COM method by vtable slot on obj.
func comCall(obj *ole.IUnknown, slot int, args ...uintptr) error {
	vtbl := (*[64]uintptr)(unsafe.Pointer(obj.RawVTable))
	callArgs := append([]uintptr{uintptr(unsafe.Pointer(obj))}, args...)
	hr, _, _ := syscall.SyscallN(vtbl[slot], callArgs...)
	if hr != 0 {
		return ole.NewError(hr)
	}
	return nil
}

// pointArgs packs a POINT passed by value. On 64-bit targets the 8-byte
// struct travels in a single register; on 386 it is two stack slots.
func pointArgs(x, y int) []uintptr {
	if unsafe.Sizeof(uintptr(0)) == 8 {
		return []uintptr{uintptr(uint32(int32(x))) | uintptr(uint32(int32(y)))<<32}
	}
	return []uintptr{uintptr(int32(x)), uintptr(int32(y))}
}

// automation wraps an IUIAutomation instance. It is only valid inside the
// withAutomation callback that created it.
type automation struct {
	uia *ole.IUnknown
}

// withAutomation runs fn on a locked OS thread with COM initialized and a
// fresh IUIAutomation instance. Each call is independent so concurrent
// callers never share COM state.
func withAutomation(fn func(a *automation) error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			return fmt.Errorf("CoInitializeEx: %w", err)
		}
	}
	defer ole.CoUninitialize()

	unk, err := ole.CreateInstance(clsidCUIAutomation, iidIUIAutomation)
	if err != nil {
		return fmt.Errorf("create UI Automation instance: %w", err)
	}
	defer unk.Release()

	return fn(&automation{uia: unk})
}

func (a *automation) elementFromPoint(x, y int) (*ole.IUnknown, error) {
	var el *ole.IUnknown
	args := append(pointArgs(x, y), uintptr(unsafe.Pointer(&el)))
	if err := comCall(a.uia, uiaElementFromPoint, args...); err != nil {
		return nil, fmt.Errorf("ElementFromPoint(%d,%d): %w", x, y, err)
	}
	return el, nil
}

func (a *automation) elementFromHandle(hwnd uintptr) (*ole.IUnknown, error) {
	var el *ole.IUnknown
	if err := comCall(a.uia, uiaElementFromHandle, hwnd, uintptr(unsafe.Pointer(&el))); err != nil {
		return nil, fmt.Errorf("ElementFromHandle(%#x): %w", hwnd, err)
	}
	if el == nil {
		return nil, fmt.Errorf("ElementFromHandle(%#x): no element", hwnd)
	}
	return el, nil
}

func (a *automation) isRoot(el *ole.IUnknown) bool {
	var root *ole.IUnknown
	if err := comCall(a.uia, uiaGetRootElement, uintptr(unsafe.Pointer(&root))); err != nil || root == nil {
		return false
	}
	defer root.Release()

	var same int32
	if err := comCall(a.uia, uiaCompareElements, uintptr(unsafe.Pointer(root)), uintptr(unsafe.Pointer(el)), uintptr(unsafe.Pointer(&same))); err != nil {
		return false
	}
	return same != 0
}

// children returns the control-view children of el. The caller releases them.
func (a *automation) children(el *ole.IUnknown) ([]*ole.IUnknown, error) {
	var cond *ole.IUnknown
	if err := comCall(a.uia, uiaGetControlViewCondition, uintptr(unsafe.Pointer(&cond))); err != nil {
		return nil, fmt.Errorf("ControlViewCondition: %w", err)
	}
	defer cond.Release()

	var arr *ole.IUnknown
	if err := comCall(el, elemFindAll, treeScopeChildren, uintptr(unsafe.Pointer(cond)), uintptr(unsafe.Pointer(&arr))); err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	if arr == nil {
		return nil, nil
	}
	defer arr.Release()

	var n int32
	if err := comCall(arr, arrayGetLength, uintptr(unsafe.Pointer(&n))); err != nil {
		return nil, fmt.Errorf("element array length: %w", err)
	}
	out := make([]*ole.IUnknown, 0, n)
	for i := int32(0); i < n; i++ {
		var child *ole.IUnknown
		if err := comCall(arr, arrayGetElement, uintptr(i), uintptr(unsafe.Pointer(&child))); err != nil || child == nil {
			continue
		}
		out = append(out, child)
	}
	return out, nil
}

// readTree snapshots the subtree below el, down to depth levels (0 = unlimited).
// Once ctx is done the remaining children are released unread.
func (a *automation) readTree(ctx context.Context, el *ole.IUnknown, depth, level int) []model.Element {
	if depth > 0 && level >= depth {
		return nil
	}
	if ctx.Err() != nil {
		return nil
	}
	kids, err := a.children(el)
	if err != nil {
		return nil
	}
	result := make([]model.Element, 0, len(kids))
	for _, kid := range kids {
		if ctx.Err() != nil {
			kid.Release()
			continue
		}
		snap := snapshot(kid)
		snap.Children = a.readTree(ctx, kid, depth, level+1)
		kid.Release()
		result = append(result, snap)
	}
	return result
}

func bstrProp(el *ole.IUnknown, slot int) string {
	var bstr *uint16
	if err := comCall(el, slot, uintptr(unsafe.Pointer(&bstr))); err != nil || bstr == nil {
		return ""
	}
	defer ole.SysFreeString((*int16)(unsafe.Pointer(bstr)))
	return ole.BstrToString(bstr)
}

func boolProp(el *ole.IUnknown, slot int) bool {
	var v int32
	if err := comCall(el, slot, uintptr(unsafe.Pointer(&v))); err != nil {
		return false
	}
	return v != 0
}

func intProp(el *ole.IUnknown, slot int) int {
	var v int32
	if err := comCall(el, slot, uintptr(unsafe.Pointer(&v))); err != nil {
		return 0
	}
	return int(v)
}

// snapshot reads the current property set of el. Individual property reads
// that fail leave their zero value; stale elements commonly fail some reads.
func snapshot(el *ole.IUnknown) model.Element {
	var r windows.Rect
	_ = comCall(el, elemGetCurrentBoundingRect, uintptr(unsafe.Pointer(&r)))

	return model.Element{
		Name:              bstrProp(el, elemGetCurrentName),
		AutomationID:      bstrProp(el, elemGetCurrentAutomationID),
		ClassName:         bstrProp(el, elemGetCurrentClassName),
		ControlType:       model.MapControlType(intProp(el, elemGetCurrentControlType)),
		Bounds:            rectBounds(r),
		Enabled:           boolProp(el, elemGetCurrentIsEnabled),
		Visible:           !boolProp(el, elemGetCurrentIsOffscreen),
		KeyboardFocusable: boolProp(el, elemGetCurrentIsFocusable),
		HasKeyboardFocus:  boolProp(el, elemGetCurrentHasFocus),
	}
}
