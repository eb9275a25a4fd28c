//go:build !windows

package window

const DefaultDPI = 96

func EnablePerMonitorDPI() error {
	return ErrNotSupported
}

func GetDPI(hwnd uintptr) (uint32, error) {
	return DefaultDPI, ErrNotSupported
}

func MonitorFromWindow(hwnd uintptr) uintptr {
	return 0
}

func GetDpiForMonitor(hMonitor uintptr) (dpiX, dpiY uint32, err error) {
	return DefaultDPI, DefaultDPI, ErrNotSupported
}
