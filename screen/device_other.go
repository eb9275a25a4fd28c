//go:build !windows

package screen

type unsupportedDevice struct{}

// PlatformDevice returns a Device that fails every call with ErrNotSupported.
func PlatformDevice() Device {
	return unsupportedDevice{}
}

func (unsupportedDevice) Displays() ([]uintptr, error) { return nil, ErrNotSupported }

func (unsupportedDevice) DisplayInfo(uintptr) (Display, error) { return Display{}, ErrNotSupported }

func (unsupportedDevice) Grab(Rect, func([]byte)) error { return ErrNotSupported }

func VirtualBounds() (Rect, error) {
	return Rect{}, ErrNotSupported
}
