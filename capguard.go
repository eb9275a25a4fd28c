package capguard

import (
	"errors"

	"github.com/rpdg/capguard/screen"
	"github.com/rpdg/capguard/window"
)

type Window struct {
	HWND uintptr
}

// -----------------------------------------------------------------------------
// Window Discovery
// -----------------------------------------------------------------------------

func FindByTitle(title string) (*Window, error) {
	hwnd, err := window.FindByTitle(title)
	if err != nil {
		return nil, lookupErr(err)
	}
	return &Window{HWND: hwnd}, nil
}

func FindByClass(class string) (*Window, error) {
	hwnd, err := window.FindByClass(class)
	if err != nil {
		return nil, lookupErr(err)
	}
	return &Window{HWND: hwnd}, nil
}

func FindByPID(pid uint32) ([]*Window, error) {
	hwnds, err := window.FindByPID(pid)
	if err != nil {
		return nil, lookupErr(err)
	}
	return wrapAll(hwnds), nil
}

// FindByProcessName returns the top-level windows of a process by executable
// name, e.g. "notepad.exe".
func FindByProcessName(name string) ([]*Window, error) {
	hwnds, err := window.FindByProcessName(name)
	if err != nil {
		return nil, lookupErr(err)
	}
	return wrapAll(hwnds), nil
}

func wrapAll(hwnds []uintptr) []*Window {
	ws := make([]*Window, len(hwnds))
	for i, h := range hwnds {
		ws[i] = &Window{HWND: h}
	}
	return ws
}

func lookupErr(err error) error {
	if errors.Is(err, window.ErrNotSupported) {
		return ErrNotSupported
	}
	return ErrWindowNotFound
}

// -----------------------------------------------------------------------------
// Capture Exclusion
// -----------------------------------------------------------------------------

// IsExclusionSupported reports whether the OS build honors capture exclusion.
func IsExclusionSupported() bool {
	return window.Default().IsExclusionSupported()
}

func (w *Window) IsValid() bool {
	return window.Native().IsWindow(w.HWND)
}

// IsVisible reports whether the window is shown and not minimized. Exclusion
// works on hidden windows too; this only helps callers pick the right one.
func (w *Window) IsVisible() bool {
	return window.IsVisible(w.HWND)
}

// ExcludeFromCapture hides the window from screen capture output, or shows it
// again when enable is false.
func (w *Window) ExcludeFromCapture(enable bool) error {
	res := window.Default().SetExcludedFromCapture(w.HWND, enable)
	if !res.Succeeded {
		return &ExclusionError{Code: res.ErrorCode}
	}
	return nil
}

// DisplayAffinity returns the window's current WDA_* value.
func (w *Window) DisplayAffinity() (uint32, error) {
	return window.Default().DisplayAffinity(w.HWND)
}

// -----------------------------------------------------------------------------
// Monitors & Capture
// -----------------------------------------------------------------------------

func Monitors() ([]screen.Monitor, error) {
	return screen.Monitors()
}

// CaptureMonitor captures the monitor at index, falling back to monitor 0 when
// index is out of range.
func CaptureMonitor(index int) (*screen.PixelBuffer, error) {
	return screen.CaptureMonitor(index)
}

// -----------------------------------------------------------------------------
// Coordinate & DPI
// -----------------------------------------------------------------------------

func EnablePerMonitorDPI() error {
	return window.EnablePerMonitorDPI()
}

// DPI returns the window's DPI, or the DPI of its nearest monitor.
func (w *Window) DPI() (uint32, error) {
	return window.GetDPI(w.HWND)
}
