// Package capguard exposes three Windows capabilities to a host application:
// excluding a window from screen capture, enumerating display monitors, and
// capturing a monitor into an in-memory BGRA pixel buffer.
//
// Key Features:
// - Manifest-independent detection of WDA_EXCLUDEFROMCAPTURE support
// - Explicit window handle validation before the affinity change
// - Monitor capture with layered windows included and opaque alpha
// - A Bridge that validates host-supplied arguments and dispatches by name
//
// Example:
//
//	if capguard.IsExclusionSupported() {
//	    w, err := capguard.FindByTitle("Untitled - Notepad")
//	    if err != nil {
//	        panic(err)
//	    }
//	    w.ExcludeFromCapture(true)
//	}
//
//	buf, err := capguard.CaptureMonitor(0)
package capguard
