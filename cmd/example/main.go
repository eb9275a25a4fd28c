package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/rpdg/capguard"
	"github.com/rpdg/capguard/screen"
)

func main() {
	fmt.Println("=== capguard Library Example ===")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run returns instead of exiting so the deferred restore always happens.
func run() error {
	// 1. Enable DPI Awareness (monitor geometry in physical pixels)
	if err := capguard.EnablePerMonitorDPI(); err != nil {
		log.Printf("Warning: Failed to enable DPI awareness: %v", err)
	}

	// 2. Probe
	if !capguard.IsExclusionSupported() {
		log.Println("Capture exclusion needs Windows 10 2004 or later; the window will be blacked out instead.")
	}

	// 3. Find Window
	// Try the process name first, then the window class
	var w *capguard.Window
	if ws, err := capguard.FindByProcessName("notepad.exe"); err == nil && len(ws) > 0 {
		w = ws[0]
		fmt.Println("Found Notepad via process name")
	} else {
		w, err = capguard.FindByClass("Notepad")
		if err != nil {
			log.Println("Notepad not found, open it before running this example.")
			return nil
		}
		fmt.Println("Found Notepad via window class")
	}
	fmt.Printf("HWND %#x visible=%t\n", w.HWND, w.IsVisible())

	// 4. Hide it from capture
	if err := w.ExcludeFromCapture(true); err != nil {
		if errors.Is(err, capguard.ErrWindowGone) {
			return errors.New("window closed before it could be excluded")
		}
		return err
	}
	defer func() {
		if err := w.ExcludeFromCapture(false); err != nil {
			log.Printf("Warning: restore affinity: %v", err)
		}
	}()

	if aff, err := w.DisplayAffinity(); err == nil {
		fmt.Printf("Display affinity: %#x\n", aff)
	}

	// 5. Monitors & Capture
	monitors, err := capguard.Monitors()
	if err != nil {
		return err
	}
	for _, m := range monitors {
		fmt.Printf("   #%d %s %dx%d at %d,%d dpi=%d primary=%t\n", m.Index, m.Name, m.Width, m.Height, m.OriginX, m.OriginY, m.DPI, m.Primary)
	}

	buf, err := capguard.CaptureMonitor(0)
	if err != nil {
		return err
	}

	f, err := os.Create("capture.png")
	if err != nil {
		return err
	}
	defer f.Close()
	if err := screen.Encode(f, buf, screen.FormatPNG); err != nil {
		return err
	}
	fmt.Printf("Saved %dx%d capture to capture.png (Notepad should not appear)\n", buf.Width, buf.Height)
	return nil
}
