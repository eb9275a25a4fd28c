package screen

// Device is the platform display API used by Screen.
type Device interface {
	// Displays returns the handles of attached displays in OS enumeration order.
	Displays() ([]uintptr, error)

	// DisplayInfo queries the name and bounds of one display.
	DisplayInfo(handle uintptr) (Display, error)

	// Grab copies bounds from the screen, including layered windows, and passes the
	// raw top-down 32bpp B,G,R,X surface to fn. raw is only valid while fn runs and
	// every OS resource is released before Grab returns. fn is not called on failure.
	Grab(bounds Rect, fn func(raw []byte)) error
}
