//go:build windows

package screen

import (
	"errors"
	"fmt"
	"runtime"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/rpdg/capguard/window"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	procCreateDIBSection    = gdi32.NewProc("CreateDIBSection")
)

// GDI Constants
const (
	captureBlt   = 0x40000000 // CAPTUREBLT: include layered windows
	dibRGBColors = 0
	hgdiError    = 0xFFFFFFFF
)

type monitorInfoEx struct {
	win.MONITORINFO
	DeviceName [win.CCHDEVICENAME]uint16
}

// One callback for the process lifetime; callback slots are a finite resource.
var enumMonitorProc = windows.NewCallback(func(hMonitor, hdc, rect, data uintptr) uintptr {
	handles := (*[]uintptr)(unsafe.Pointer(data))
	*handles = append(*handles, hMonitor)
	return 1
})

type gdiDevice struct{}

// PlatformDevice returns the GDI backed Device.
func PlatformDevice() Device {
	return gdiDevice{}
}

func (gdiDevice) Displays() ([]uintptr, error) {
	handles := make([]uintptr, 0, 4)

	var pinner runtime.Pinner
	pinner.Pin(&handles)
	defer pinner.Unpin()

	r, _, e := procEnumDisplayMonitors.Call(0, 0, enumMonitorProc, uintptr(unsafe.Pointer(&handles)))
	if r == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors: %w", e)
	}
	return handles, nil
}

func (gdiDevice) DisplayInfo(handle uintptr) (Display, error) {
	var mi monitorInfoEx
	mi.CbSize = uint32(unsafe.Sizeof(mi))

	r, _, e := procGetMonitorInfoW.Call(handle, uintptr(unsafe.Pointer(&mi)))
	if r == 0 {
		return Display{}, fmt.Errorf("GetMonitorInfoW: %w", e)
	}

	var dpi uint32
	if dx, _, err := window.GetDpiForMonitor(handle); err == nil {
		dpi = dx
	}
	return Display{
		Handle: handle,
		Name:   windows.UTF16ToString(mi.DeviceName[:]),
		Bounds: Rect{
			Left:   mi.RcMonitor.Left,
			Top:    mi.RcMonitor.Top,
			Right:  mi.RcMonitor.Right,
			Bottom: mi.RcMonitor.Bottom,
		},
		Primary: mi.DwFlags&win.MONITORINFOF_PRIMARY != 0,
		DPI:     dpi,
	}, nil
}

func (gdiDevice) Grab(bounds Rect, fn func(raw []byte)) error {
	width, height := bounds.Width(), bounds.Height()
	if width <= 0 || height <= 0 {
		return ErrEmptyRegion
	}

	// GetDC(0) returns the DC for the entire virtual screen
	hScreenDC := win.GetDC(0)
	if hScreenDC == 0 {
		return errors.New("GetDC failed")
	}
	defer win.ReleaseDC(0, hScreenDC)

	hMemDC := win.CreateCompatibleDC(hScreenDC)
	if hMemDC == 0 {
		return errors.New("CreateCompatibleDC failed")
	}
	defer win.DeleteDC(hMemDC)

	// Negative height gives a top-down DIB so row 0 is the topmost row.
	bmi := win.BITMAPINFO{
		BmiHeader: win.BITMAPINFOHEADER{
			BiSize:        uint32(unsafe.Sizeof(win.BITMAPINFOHEADER{})),
			BiWidth:       width,
			BiHeight:      -height,
			BiPlanes:      1,
			BiBitCount:    32,
			BiCompression: win.BI_RGB,
		},
	}

	var bits unsafe.Pointer
	hBitmap := createDIBSection(hScreenDC, &bmi, &bits)
	if hBitmap == 0 {
		return fmt.Errorf("CreateDIBSection failed: %d", win.GetLastError())
	}
	defer win.DeleteObject(win.HGDIOBJ(hBitmap))
	if bits == nil {
		return errors.New("CreateDIBSection returned no bits")
	}

	oldObj := win.SelectObject(hMemDC, win.HGDIOBJ(hBitmap))
	if oldObj == 0 || oldObj == hgdiError {
		return errors.New("SelectObject failed")
	}
	// Restore old object before deleting MemDC
	defer win.SelectObject(hMemDC, oldObj)

	// Because hBitmap is selected in hMemDC, this writes directly to bits.
	if !win.BitBlt(hMemDC, 0, 0, width, height, hScreenDC, bounds.Left, bounds.Top, win.SRCCOPY|captureBlt) {
		return fmt.Errorf("BitBlt failed: %d", win.GetLastError())
	}

	fn(unsafe.Slice((*byte)(bits), int(width)*int(height)*4))
	return nil
}

func createDIBSection(hdc win.HDC, bmi *win.BITMAPINFO, bits *unsafe.Pointer) win.HBITMAP {
	r, _, _ := procCreateDIBSection.Call(
		uintptr(hdc),
		uintptr(unsafe.Pointer(bmi)),
		dibRGBColors,
		uintptr(unsafe.Pointer(bits)),
		0, 0,
	)
	return win.HBITMAP(r)
}

// VirtualBounds returns the bounding rectangle of the entire virtual desktop.
// This includes all monitors.
func VirtualBounds() (Rect, error) {
	x := win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)
	y := win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)
	w := win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)
	h := win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)
	if w == 0 || h == 0 {
		return Rect{}, errors.New("GetSystemMetrics returned an empty virtual screen")
	}
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}, nil
}
