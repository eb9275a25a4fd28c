package screen

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func sampleBuffer() *PixelBuffer {
	// 2x1: blue, red in BGRA.
	return &PixelBuffer{
		Width:  2,
		Height: 1,
		Pixels: []byte{255, 0, 0, 255, 0, 0, 255, 255},
	}
}

func TestRGBA(t *testing.T) {
	img, err := sampleBuffer().RGBA()
	if err != nil {
		t.Fatalf("RGBA: %v", err)
	}
	want := []byte{0, 0, 255, 255, 255, 0, 0, 255}
	if !bytes.Equal(img.Pix, want) {
		t.Fatalf("Pix = %v, want %v", img.Pix, want)
	}
	if img.Stride != 8 || img.Rect.Dx() != 2 || img.Rect.Dy() != 1 {
		t.Fatalf("unexpected geometry: stride %d rect %v", img.Stride, img.Rect)
	}
}

func TestRGBARejectsEmpty(t *testing.T) {
	tests := []*PixelBuffer{
		nil,
		{Width: 0, Height: 1},
		{Width: 2, Height: 2, Pixels: make([]byte, 8)},
	}
	for _, b := range tests {
		if _, err := b.RGBA(); !errors.Is(err, ErrEmptyBuffer) {
			t.Fatalf("RGBA(%+v): expected ErrEmptyBuffer, got %v", b, err)
		}
	}
}

func TestEncode(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		var out bytes.Buffer
		if err := Encode(&out, sampleBuffer(), FormatPNG); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		img, err := png.Decode(&out)
		if err != nil {
			t.Fatalf("png.Decode: %v", err)
		}
		r, g, b, a := img.At(1, 0).RGBA()
		if r>>8 != 255 || g != 0 || b != 0 || a>>8 != 255 {
			t.Fatalf("pixel (1,0) = %d,%d,%d,%d, want red", r>>8, g>>8, b>>8, a>>8)
		}
	})

	t.Run("bmp", func(t *testing.T) {
		var out bytes.Buffer
		if err := Encode(&out, sampleBuffer(), FormatBMP); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		img, err := bmp.Decode(&out)
		if err != nil {
			t.Fatalf("bmp.Decode: %v", err)
		}
		if img.Bounds().Dx() != 2 {
			t.Fatalf("width = %d", img.Bounds().Dx())
		}
		_, _, b, _ := img.At(0, 0).RGBA()
		if b>>8 != 255 {
			t.Fatalf("pixel (0,0) blue = %d, want 255", b>>8)
		}
	})

	t.Run("raw", func(t *testing.T) {
		var out bytes.Buffer
		buf := sampleBuffer()
		if err := Encode(&out, buf, FormatRaw); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(out.Bytes(), buf.Pixels) {
			t.Fatalf("raw = %v, want %v", out.Bytes(), buf.Pixels)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		if err := Encode(&bytes.Buffer{}, sampleBuffer(), Format("gif")); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"png": FormatPNG, " BMP ": FormatBMP, "Raw": FormatRaw} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("jpeg"); err == nil {
		t.Fatal("expected error for jpeg")
	}
	if FormatPNG.Ext() != ".png" {
		t.Fatalf("Ext() = %q", FormatPNG.Ext())
	}
}
