//go:build windows

package window

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

type nativeSystem struct{}

// Native returns the user32/ntdll backed System.
func Native() System {
	return nativeSystem{}
}

func (nativeSystem) IsWindow(hwnd uintptr) bool {
	r, _, _ := procIsWindow.Call(hwnd)
	return r != 0
}

func (nativeSystem) SetDisplayAffinity(hwnd uintptr, affinity uint32) error {
	if procSetWindowDisplayAffinity.Find() != nil {
		return Errno(windows.ERROR_PROC_NOT_FOUND)
	}

	procSetLastError.Call(0)
	r, _, e := procSetWindowDisplayAffinity.Call(hwnd, uintptr(affinity))
	if r == 0 {
		return lastErrno(e)
	}
	return nil
}

func (nativeSystem) DisplayAffinity(hwnd uintptr) (uint32, error) {
	if procGetWindowDisplayAffinity.Find() != nil {
		return 0, Errno(windows.ERROR_PROC_NOT_FOUND)
	}

	var affinity uint32
	r, _, e := procGetWindowDisplayAffinity.Call(hwnd, uintptr(unsafe.Pointer(&affinity)))
	if r == 0 {
		return 0, lastErrno(e)
	}
	return affinity, nil
}

func (nativeSystem) KernelVersion() (Version, error) {
	if procRtlGetVersion.Find() != nil {
		return Version{}, ErrProcUnavailable
	}

	// windows.RtlGetVersion panics when the export is missing, so the proc is
	// called directly. The size field is unexported and leads the struct.
	var info windows.OsVersionInfoEx
	*(*uint32)(unsafe.Pointer(&info)) = uint32(unsafe.Sizeof(info))
	status, _, _ := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&info)))
	if status != 0 {
		return Version{}, fmt.Errorf("RtlGetVersion: NTSTATUS 0x%08X", uint32(status))
	}
	return Version{Major: info.MajorVersion, Minor: info.MinorVersion, Build: info.BuildNumber}, nil
}

func (nativeSystem) ReportedVersion() (Version, error) {
	v, err := windows.GetVersion()
	if err != nil {
		return Version{}, fmt.Errorf("GetVersion: %w", err)
	}
	return Version{
		Major: uint32(byte(v)),
		Minor: uint32(byte(v >> 8)),
		Build: uint32(uint16(v >> 16)),
	}, nil
}

// lastErrno converts the error returned by LazyProc.Call into an Errno.
func lastErrno(err error) error {
	var errno windows.Errno
	if errors.As(err, &errno) {
		return Errno(errno)
	}
	return Errno(0)
}
