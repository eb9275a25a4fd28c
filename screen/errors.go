package screen

import "errors"

var (
	// ErrNotSupported is returned by the platform Device where GDI is unavailable.
	ErrNotSupported = errors.New("screen: not supported on this platform")

	// ErrEnumerationFailed implies the display enumeration facility itself failed.
	ErrEnumerationFailed = errors.New("screen: monitor enumeration failed")

	// ErrNoMonitors implies enumeration succeeded but found no displays.
	ErrNoMonitors = errors.New("screen: no monitors attached")

	// ErrCaptureFailed wraps every capture failure. No partial buffer accompanies it.
	ErrCaptureFailed = errors.New("screen: capture failed")

	// ErrEmptyRegion implies a capture region with non-positive width or height.
	ErrEmptyRegion = errors.New("screen: empty capture region")

	// ErrRegionTooLarge implies the capture would exceed maxCaptureBytes.
	ErrRegionTooLarge = errors.New("screen: capture region too large")

	// ErrEmptyBuffer implies a PixelBuffer with no usable pixel data.
	ErrEmptyBuffer = errors.New("screen: empty pixel buffer")
)
