package capguard

import (
	"errors"
	"fmt"

	"github.com/rpdg/capguard/screen"
	"github.com/rpdg/capguard/window"
)

var (
	// ErrWindowNotFound implies the target window could not be located by Title or Class.
	ErrWindowNotFound = window.ErrWindowNotFound

	// ErrWindowGone implies the window handle is no longer valid.
	ErrWindowGone = errors.New("window is gone or invalid")

	// ErrNotSupported implies the platform lacks the required APIs.
	ErrNotSupported = errors.New("not supported on this platform")

	// ErrUnknownMethod implies a Bridge call named no known operation.
	ErrUnknownMethod = errors.New("unknown bridge method")

	// ErrEnumerationFailed implies the monitor-listing facility failed outright.
	ErrEnumerationFailed = screen.ErrEnumerationFailed

	// ErrCaptureFailed implies geometry resolution, surface creation or the blit failed.
	ErrCaptureFailed = screen.ErrCaptureFailed
)

// ArgumentError reports a malformed Bridge call. It signals a caller bug and is
// never used for platform failures.
type ArgumentError struct {
	Method string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Method, e.Reason)
}

// ExclusionError is returned by Window.ExcludeFromCapture when the toggle fails.
type ExclusionError struct {
	Code uint32
}

func (e *ExclusionError) Error() string {
	if e.Code == window.ErrorInvalidWindowHandle {
		return "exclude from capture: invalid window handle"
	}
	return fmt.Sprintf("exclude from capture failed: error %d", e.Code)
}

func (e *ExclusionError) Is(target error) bool {
	return target == ErrWindowGone && e.Code == window.ErrorInvalidWindowHandle
}
