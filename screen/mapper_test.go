package screen

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapperIdentity(t *testing.T) {
	m, err := NewMapper(Size{1920, 1080}, Point{-1920, 0}, MapOptions{})
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	if got := m.ToScreenPoint(100, 200); got != (Point{-1820, 200}) {
		t.Fatalf("ToScreenPoint = %+v", got)
	}
}

func TestMapperLetterbox(t *testing.T) {
	// 1920x1080 fitted into 1000x1000: 562.5 px of content height, so 218.75 px
	// of padding top and bottom.
	m, err := NewMapper(Size{1920, 1080}, Point{0, 0}, MapOptions{Analysis: Size{1000, 1000}})
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	if m.PadLeft != 0 || math.Abs(m.PadTop-218.75) > 1e-9 {
		t.Fatalf("padding = %v,%v", m.PadLeft, m.PadTop)
	}

	tests := []struct {
		name string
		x, y float64
		want Point
	}{
		{"center", 500, 500, Point{960, 540}},
		{"top-left content", 0, 218.75, Point{0, 0}},
		{"padding clamps", 0, 0, Point{0, 0}},
		{"beyond clamps", 2000, 2000, Point{1919, 1079}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.ToScreenPoint(tt.x, tt.y); got != tt.want {
				t.Fatalf("ToScreenPoint(%v,%v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMapperStretchNormalized(t *testing.T) {
	m, err := NewMapper(Size{200, 100}, Point{10, 20}, MapOptions{
		Analysis:   Size{100, 100},
		Stretch:    true,
		Normalized: true,
	})
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	if got := m.ToScreenPoint(0.5, 0.25); got != (Point{110, 45}) {
		t.Fatalf("ToScreenPoint = %+v", got)
	}
}

func TestMapperExplicitPadding(t *testing.T) {
	m, err := NewMapper(Size{100, 100}, Point{}, MapOptions{
		Analysis: Size{200, 100},
		Padding:  &Point{X: 0, Y: 0},
	})
	if err != nil {
		t.Fatalf("NewMapper: %v", err)
	}
	if got := m.ToScreenPoint(50, 50); got != (Point{50, 50}) {
		t.Fatalf("ToScreenPoint = %+v", got)
	}
}

func TestMapperBox(t *testing.T) {
	m, _ := NewMapper(Size{100, 100}, Point{}, MapOptions{})
	got := m.ToScreenBox(10, 10, 0, 0)
	if diff := cmp.Diff(Box{X: 10, Y: 10, Width: 1, Height: 1}, got); diff != "" {
		t.Fatalf("box mismatch (-want +got):\n%s", diff)
	}
	got = m.ToScreenBox(10, 20, 30, 40)
	if diff := cmp.Diff(Box{X: 10, Y: 20, Width: 30, Height: 40}, got); diff != "" {
		t.Fatalf("box mismatch (-want +got):\n%s", diff)
	}
}

func TestNewMapperRejectsEmptyCapture(t *testing.T) {
	if _, err := NewMapper(Size{0, 10}, Point{}, MapOptions{}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := NewMapper(Size{10, 10}, Point{}, MapOptions{Analysis: Size{-1, 5}}); err == nil {
		t.Fatal("expected error")
	}
}

func TestPixelBufferMapper(t *testing.T) {
	buf := &PixelBuffer{Width: 10, Height: 10, OriginX: 100, OriginY: -50}
	m, err := buf.Mapper(MapOptions{})
	if err != nil {
		t.Fatalf("Mapper: %v", err)
	}
	if got := m.ToScreenPoint(3, 4); got != (Point{103, -46}) {
		t.Fatalf("ToScreenPoint = %+v", got)
	}
}
