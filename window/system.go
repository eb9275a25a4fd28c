package window

import (
	"fmt"

	"go.uber.org/zap"
)

// Display affinity values accepted by SetWindowDisplayAffinity.
const (
	AffinityNone               uint32 = 0x00000000
	AffinityMonitor            uint32 = 0x00000001
	AffinityExcludeFromCapture uint32 = 0x00000011
)

// ErrorInvalidWindowHandle is ERROR_INVALID_WINDOW_HANDLE.
const ErrorInvalidWindowHandle uint32 = 1400

// Version is an OS version triple.
type Version struct {
	Major uint32
	Minor uint32
	Build uint32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Build)
}

// System is the slice of the platform API the window operations need.
type System interface {
	// IsWindow reports whether hwnd references a live window.
	IsWindow(hwnd uintptr) bool

	// SetDisplayAffinity applies affinity to hwnd. A failure carries an Errno.
	SetDisplayAffinity(hwnd uintptr, affinity uint32) error

	// DisplayAffinity returns the current affinity of hwnd.
	DisplayAffinity(hwnd uintptr) (uint32, error)

	// KernelVersion returns the manifest-independent OS version.
	// It returns ErrProcUnavailable when the low-level query does not exist.
	KernelVersion() (Version, error)

	// ReportedVersion returns the version reported by the compatibility-shimmed API.
	ReportedVersion() (Version, error)
}

// Manager runs window operations against a System.
type Manager struct {
	sys System
	log *zap.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// New returns a Manager backed by sys.
func New(sys System, opts ...Option) *Manager {
	m := &Manager{sys: sys, log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Default returns a Manager backed by the native platform API.
func Default(opts ...Option) *Manager {
	return New(Native(), opts...)
}
