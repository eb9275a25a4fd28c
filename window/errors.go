package window

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSupported is returned by the native System on platforms without user32.
	ErrNotSupported = errors.New("window: not supported on this platform")

	// ErrProcUnavailable implies a system DLL export could not be resolved.
	ErrProcUnavailable = errors.New("window: system procedure unavailable")

	// ErrWindowNotFound implies no top-level window matched the lookup.
	ErrWindowNotFound = errors.New("window: not found")
)

// Errno is a platform last-error code captured right after a failing call.
type Errno uint32

func (e Errno) Error() string {
	return fmt.Sprintf("win32 error %d", uint32(e))
}

// errorCode extracts the last-error code carried by err, or 0 when none is known.
func errorCode(err error) uint32 {
	var errno Errno
	if errors.As(err, &errno) {
		return uint32(errno)
	}
	return 0
}
