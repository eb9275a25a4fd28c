//go:build windows

package window

import (
	"fmt"
	"unsafe"

	"github.com/lxn/win"
)

// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 is (HANDLE)(-4)
var dpiAwarenessPerMonitorV2 = ^uintptr(3)

const (
	DefaultDPI      = 96
	mdtEffectiveDPI = 0
)

// EnablePerMonitorDPI makes monitor geometry and captures use physical pixels.
// It must run before the first monitor enumeration of the process.
func EnablePerMonitorDPI() error {
	if procSetProcessDpiAwarenessCtx.Find() != nil {
		return fmt.Errorf("%w: SetProcessDpiAwarenessContext", ErrProcUnavailable)
	}
	r, _, e := procSetProcessDpiAwarenessCtx.Call(dpiAwarenessPerMonitorV2)
	if r == 0 {
		return fmt.Errorf("SetProcessDpiAwarenessContext failed: %w", lastErrno(e))
	}
	return nil
}

// GetDPI returns the DPI of hwnd, falling back to the DPI of its nearest monitor.
func GetDPI(hwnd uintptr) (uint32, error) {
	if dpi := win.GetDpiForWindow(win.HWND(hwnd)); dpi != 0 {
		return dpi, nil
	}
	if hMon := MonitorFromWindow(hwnd); hMon != 0 {
		if dx, _, err := GetDpiForMonitor(hMon); err == nil {
			return dx, nil
		}
	}
	return DefaultDPI, fmt.Errorf("cannot determine DPI of %#x", hwnd)
}

// MonitorFromWindow returns the monitor nearest to hwnd.
func MonitorFromWindow(hwnd uintptr) uintptr {
	return uintptr(win.MonitorFromWindow(win.HWND(hwnd), win.MONITOR_DEFAULTTONEAREST))
}

// GetDpiForMonitor returns the effective DPI of hMonitor.
func GetDpiForMonitor(hMonitor uintptr) (dpiX, dpiY uint32, err error) {
	if procGetDpiForMonitor.Find() != nil {
		return DefaultDPI, DefaultDPI, fmt.Errorf("%w: GetDpiForMonitor", ErrProcUnavailable)
	}
	var dx, dy uint32
	hr, _, _ := procGetDpiForMonitor.Call(hMonitor, mdtEffectiveDPI,
		uintptr(unsafe.Pointer(&dx)), uintptr(unsafe.Pointer(&dy)))
	if hr != 0 {
		return DefaultDPI, DefaultDPI, fmt.Errorf("GetDpiForMonitor: HRESULT 0x%08X", uint32(hr))
	}
	return dx, dy, nil
}
