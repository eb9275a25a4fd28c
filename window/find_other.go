//go:build !windows

package window

func FindByTitle(title string) (uintptr, error) {
	return 0, ErrNotSupported
}

func FindByClass(class string) (uintptr, error) {
	return 0, ErrNotSupported
}

func FindByPID(pid uint32) ([]uintptr, error) {
	return nil, ErrNotSupported
}

func IsVisible(hwnd uintptr) bool {
	return false
}
