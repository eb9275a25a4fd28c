//go:build windows

package window

import (
	"testing"

	"github.com/lxn/win"
)

func TestNativeIsWindow(t *testing.T) {
	sys := Native()
	if sys.IsWindow(0) {
		t.Fatal("IsWindow(0) = true")
	}
	if desktop := uintptr(win.GetDesktopWindow()); !sys.IsWindow(desktop) {
		t.Fatalf("IsWindow(desktop %#x) = false", desktop)
	}
}

func TestNativeKernelVersion(t *testing.T) {
	v, err := Native().KernelVersion()
	if err != nil {
		t.Fatalf("KernelVersion: %v", err)
	}
	if v.Major < 6 || v.Build == 0 {
		t.Fatalf("implausible kernel version %s", v)
	}
}

func TestNativeSetExcludedFromCaptureZeroHandle(t *testing.T) {
	res := New(Native()).SetExcludedFromCapture(0, true)
	if res.Succeeded || res.ErrorCode != ErrorInvalidWindowHandle {
		t.Fatalf("result = %+v", res)
	}
}
