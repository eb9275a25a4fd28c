package screen

// Point represents a point in the Virtual Desktop coordinate system.
// Coordinates can be negative (e.g., secondary monitor to the left of primary).
type Point struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Box is a rectangle given by its top-left corner and size.
type Box struct {
	X      int32 `json:"x"`
	Y      int32 `json:"y"`
	Width  int32 `json:"width"`
	Height int32 `json:"height"`
}

// Rect represents a rectangle in the Virtual Desktop coordinate system.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Display is an attached display device as reported by a Device.
type Display struct {
	Handle  uintptr
	Name    string
	Bounds  Rect
	Primary bool
	DPI     uint32 // effective DPI, 0 when unknown
}

// Monitor describes a display at one position of a single enumeration.
// Index is only meaningful within the slice it came from: hot-plug or a
// resolution change may reorder displays between calls.
type Monitor struct {
	Index   int    `json:"index" yaml:"index"`
	Name    string `json:"name" yaml:"name"`
	OriginX int    `json:"originX" yaml:"originX"`
	OriginY int    `json:"originY" yaml:"originY"`
	Width   int    `json:"width" yaml:"width"`
	Height  int    `json:"height" yaml:"height"`
	Primary bool   `json:"primary" yaml:"primary"`
	DPI     uint32 `json:"dpi,omitempty" yaml:"dpi,omitempty"`
}

// Bounds returns the monitor rectangle in virtual-screen coordinates.
func (m Monitor) Bounds() Rect {
	return Rect{
		Left:   int32(m.OriginX),
		Top:    int32(m.OriginY),
		Right:  int32(m.OriginX + m.Width),
		Bottom: int32(m.OriginY + m.Height),
	}
}

// PixelBuffer holds a capture as top-down rows of B,G,R,A bytes with A fixed at 255.
// It owns Pixels; nothing in it refers to OS memory.
type PixelBuffer struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	OriginX int    `json:"originX"`
	OriginY int    `json:"originY"`
	Pixels  []byte `json:"pixelData"`
}
