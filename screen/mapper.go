package screen

import (
	"errors"
	"math"
)

// Size is a width/height pair.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MapOptions describes how an analysed image relates to the capture it came from.
type MapOptions struct {
	// Analysis is the size of the image the coordinates refer to. Zero means the
	// capture size.
	Analysis Size

	// Normalized marks incoming coordinates as fractions of Analysis.
	Normalized bool

	// Stretch marks Analysis as a non-uniform resize of the capture. Otherwise the
	// capture is assumed letterboxed into Analysis.
	Stretch bool

	// Padding overrides the centered letterbox padding.
	Padding *Point
}

// Mapper converts image coordinates back to virtual-screen coordinates.
type Mapper struct {
	cw, ch float64
	cx, cy float64
	aw, ah float64
	opts   MapOptions

	Scale   float64
	PadLeft float64
	PadTop  float64
}

// NewMapper returns a Mapper for a capture of size capture at origin.
func NewMapper(capture Size, origin Point, opts MapOptions) (*Mapper, error) {
	if capture.Width <= 0 || capture.Height <= 0 {
		return nil, errors.New("screen: mapper needs a non-empty capture size")
	}
	if opts.Analysis.Width < 0 || opts.Analysis.Height < 0 {
		return nil, errors.New("screen: negative analysis size")
	}
	if opts.Analysis.Width == 0 || opts.Analysis.Height == 0 {
		opts.Analysis = capture
	}

	m := &Mapper{
		cw:   float64(capture.Width),
		ch:   float64(capture.Height),
		cx:   float64(origin.X),
		cy:   float64(origin.Y),
		aw:   float64(opts.Analysis.Width),
		ah:   float64(opts.Analysis.Height),
		opts: opts,
	}

	if opts.Stretch {
		m.Scale = 1
		return m, nil
	}

	m.Scale = math.Min(m.aw/m.cw, m.ah/m.ch)
	if opts.Padding != nil {
		m.PadLeft = float64(opts.Padding.X)
		m.PadTop = float64(opts.Padding.Y)
	} else {
		m.PadLeft = math.Max(0, (m.aw-m.cw*m.Scale)/2)
		m.PadTop = math.Max(0, (m.ah-m.ch*m.Scale)/2)
	}
	return m, nil
}

// Mapper returns a Mapper for this capture.
func (b *PixelBuffer) Mapper(opts MapOptions) (*Mapper, error) {
	return NewMapper(Size{b.Width, b.Height}, Point{int32(b.OriginX), int32(b.OriginY)}, opts)
}

// ToScreenPoint maps (x, y) to a point clamped inside the captured region.
func (m *Mapper) ToScreenPoint(x, y float64) Point {
	if m.opts.Normalized {
		x *= m.aw
		y *= m.ah
	}

	var sx, sy float64
	if m.opts.Stretch {
		sx = m.cx + roundHalfUp(x*m.cw/m.aw)
		sy = m.cy + roundHalfUp(y*m.ch/m.ah)
	} else {
		sx = m.cx + roundHalfUp((x-m.PadLeft)/m.Scale)
		sy = m.cy + roundHalfUp((y-m.PadTop)/m.Scale)
	}

	return Point{
		X: int32(clamp(sx, m.cx, m.cx+m.cw-1)),
		Y: int32(clamp(sy, m.cy, m.cy+m.ch-1)),
	}
}

// ToScreenBox maps both corners of a box. The result is at least 1x1.
func (m *Mapper) ToScreenBox(x, y, width, height float64) Box {
	p1 := m.ToScreenPoint(x, y)
	p2 := m.ToScreenPoint(x+width, y+height)
	return Box{
		X:      p1.X,
		Y:      p1.Y,
		Width:  max(1, p2.X-p1.X),
		Height: max(1, p2.Y-p1.Y),
	}
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
