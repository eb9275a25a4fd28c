package screen

import (
	"fmt"

	"go.uber.org/zap"
)

// 4 bytes per pixel. Limit to approx 500MB (e.g. 11000 x 11000)
const maxCaptureBytes = 1024 * 1024 * 500

// Screen enumerates and captures monitors through a Device.
// It keeps no state between calls.
type Screen struct {
	dev Device
	log *zap.Logger
}

// Option configures a Screen.
type Option func(*Screen)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Screen) {
		if l != nil {
			s.log = l
		}
	}
}

// New returns a Screen backed by dev.
func New(dev Device, opts ...Option) *Screen {
	s := &Screen{dev: dev, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Default returns a Screen backed by the platform Device.
func Default(opts ...Option) *Screen {
	return New(PlatformDevice(), opts...)
}

// Monitors lists the attached displays. Indices are assigned 0..N-1 in enumeration
// order, counting only displays whose info query succeeded; the others are skipped.
// An empty slice is a valid result; an error means the enumeration itself failed.
func (s *Screen) Monitors() ([]Monitor, error) {
	handles, err := s.dev.Displays()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEnumerationFailed, err)
	}

	monitors := make([]Monitor, 0, len(handles))
	for _, h := range handles {
		d, err := s.dev.DisplayInfo(h)
		if err != nil {
			s.log.Warn("skipping monitor", zap.Uintptr("handle", h), zap.Error(err))
			continue
		}
		monitors = append(monitors, Monitor{
			Index:   len(monitors),
			Name:    d.Name,
			OriginX: int(d.Bounds.Left),
			OriginY: int(d.Bounds.Top),
			Width:   int(d.Bounds.Width()),
			Height:  int(d.Bounds.Height()),
			Primary: d.Primary,
			DPI:     d.DPI,
		})
	}
	return monitors, nil
}

// CaptureMonitor captures the monitor at index of a fresh enumeration.
// An index outside [0, count) captures monitor 0 instead of failing, so a caller
// holding a stale index still gets an image.
func (s *Screen) CaptureMonitor(index int) (*PixelBuffer, error) {
	monitors, err := s.Monitors()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}
	if len(monitors) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrCaptureFailed, ErrNoMonitors)
	}
	if index < 0 || index >= len(monitors) {
		s.log.Debug("monitor index out of range, using 0",
			zap.Int("index", index), zap.Int("count", len(monitors)))
		index = 0
	}
	return s.captureRect(monitors[index].Bounds())
}

// captureRect captures r, given in virtual-screen coordinates.
func (s *Screen) captureRect(r Rect) (*PixelBuffer, error) {
	width, height := int(r.Width()), int(r.Height())
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %w: %dx%d", ErrCaptureFailed, ErrEmptyRegion, width, height)
	}
	if int64(width)*int64(height)*4 > maxCaptureBytes {
		return nil, fmt.Errorf("%w: %w: %dx%d", ErrCaptureFailed, ErrRegionTooLarge, width, height)
	}

	buf := &PixelBuffer{
		Width:   width,
		Height:  height,
		OriginX: int(r.Left),
		OriginY: int(r.Top),
	}
	err := s.dev.Grab(r, func(raw []byte) {
		buf.Pixels = normalizeBGRX(raw, width*height)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}
	if buf.Pixels == nil {
		return nil, fmt.Errorf("%w: surface shorter than %dx%d", ErrCaptureFailed, width, height)
	}
	return buf, nil
}

// Monitors lists monitors using the platform Device.
func Monitors() ([]Monitor, error) {
	return Default().Monitors()
}

// CaptureMonitor captures a monitor using the platform Device.
func CaptureMonitor(index int) (*PixelBuffer, error) {
	return Default().CaptureMonitor(index)
}
