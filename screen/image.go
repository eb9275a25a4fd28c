package screen

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
)

// Format is an output encoding for a PixelBuffer.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
	FormatRaw Format = "raw" // B,G,R,A bytes as captured
)

// ParseFormat parses a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatBMP, FormatRaw:
		return f, nil
	default:
		return "", fmt.Errorf("unknown image format %q", s)
	}
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

func (b *PixelBuffer) validate() error {
	if b == nil || b.Width <= 0 || b.Height <= 0 || len(b.Pixels) < b.Width*b.Height*4 {
		return ErrEmptyBuffer
	}
	return nil
}

// RGBA converts the buffer to an *image.RGBA. The result does not share memory with b.
func (b *PixelBuffer) RGBA() (*image.RGBA, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	total := b.Width * b.Height * 4
	dst := make([]byte, total)

	// BGRA -> RGBA conversion loop
	for i := 0; i < total; i += 4 {
		dst[i] = b.Pixels[i+2]
		dst[i+1] = b.Pixels[i+1]
		dst[i+2] = b.Pixels[i]
		dst[i+3] = b.Pixels[i+3]
	}

	return &image.RGBA{
		Pix:    dst,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}, nil
}

// Encode writes b to w in format f.
func Encode(w io.Writer, b *PixelBuffer, f Format) error {
	if err := b.validate(); err != nil {
		return err
	}

	if f == FormatRaw {
		_, err := w.Write(b.Pixels[:b.Width*b.Height*4])
		return err
	}

	img, err := b.RGBA()
	if err != nil {
		return err
	}
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unknown image format %q", string(f))
	}
}
