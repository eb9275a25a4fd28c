//go:build !windows

package window

type nativeSystem struct{}

// Native returns a System that reports every operation as unsupported.
func Native() System {
	return nativeSystem{}
}

func (nativeSystem) IsWindow(uintptr) bool { return false }

func (nativeSystem) SetDisplayAffinity(uintptr, uint32) error { return ErrNotSupported }

func (nativeSystem) DisplayAffinity(uintptr) (uint32, error) { return 0, ErrNotSupported }

func (nativeSystem) KernelVersion() (Version, error) { return Version{}, ErrNotSupported }

func (nativeSystem) ReportedVersion() (Version, error) { return Version{}, ErrNotSupported }
