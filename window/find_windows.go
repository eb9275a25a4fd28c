//go:build windows

package window

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// FindByTitle returns the top-level window whose title is exactly title.
func FindByTitle(title string) (uintptr, error) {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, fmt.Errorf("invalid title %q: %w", title, err)
	}
	hwnd := win.FindWindow(nil, p)
	if hwnd == 0 {
		return 0, fmt.Errorf("%w: title %q", ErrWindowNotFound, title)
	}
	return uintptr(hwnd), nil
}

// FindByClass returns the first top-level window registered with class.
func FindByClass(class string) (uintptr, error) {
	p, err := windows.UTF16PtrFromString(class)
	if err != nil {
		return 0, fmt.Errorf("invalid class %q: %w", class, err)
	}
	hwnd := win.FindWindow(p, nil)
	if hwnd == 0 {
		return 0, fmt.Errorf("%w: class %q", ErrWindowNotFound, class)
	}
	return uintptr(hwnd), nil
}

type pidQuery struct {
	pid   uint32
	hwnds []uintptr
}

var enumWindowsProc = windows.NewCallback(func(hwnd, data uintptr) uintptr {
	q := (*pidQuery)(unsafe.Pointer(data))
	var pid uint32
	win.GetWindowThreadProcessId(win.HWND(hwnd), &pid)
	if pid == q.pid {
		q.hwnds = append(q.hwnds, hwnd)
	}
	return 1 // continue
})

// FindByPID returns every top-level window owned by pid, visible or not.
func FindByPID(pid uint32) ([]uintptr, error) {
	q := &pidQuery{pid: pid}

	var pinner runtime.Pinner
	pinner.Pin(q)
	defer pinner.Unpin()

	// EnumWindows only fails on a bad callback; an empty result is checked below.
	procEnumWindows.Call(enumWindowsProc, uintptr(unsafe.Pointer(q)))

	if len(q.hwnds) == 0 {
		return nil, fmt.Errorf("%w: pid %d", ErrWindowNotFound, pid)
	}
	return q.hwnds, nil
}

// IsVisible reports whether hwnd is shown and not minimized.
func IsVisible(hwnd uintptr) bool {
	h := win.HWND(hwnd)
	return win.IsWindowVisible(h) && !win.IsIconic(h)
}
