package ppm

import (
	"fmt"
	"io"

	"github.com/softglow/goray/pkg/core"
)

// Encoder writes a P3 pixmap stream: header first, then width*height pixel
// lines in row-major order. It does not buffer; hand it a buffered writer
// when writing to a file.
type Encoder struct {
	w      io.Writer
	width  int
	height int
}

// NewEncoder creates an encoder for an image of the given dimensions
func NewEncoder(w io.Writer, width, height int) *Encoder {
	return &Encoder{w: w, width: width, height: height}
}

// WriteHeader writes the format tag, dimensions and maximum channel value
func (e *Encoder) WriteHeader() error {
	_, err := fmt.Fprintf(e.w, "P3\n%d %d\n255\n", e.width, e.height)
	return err
}

// WritePixel appends one pixel line
func (e *Encoder) WritePixel(pixelColor core.Vec3) error {
	return WriteColor(e.w, pixelColor)
}

// Encode writes the header and a whole framebuffer of frame[row][col]
// linear colors, top row first.
func (e *Encoder) Encode(frame [][]core.Vec3) error {
	if len(frame) != e.height {
		return fmt.Errorf("encode: got %d rows, want %d", len(frame), e.height)
	}
	if err := e.WriteHeader(); err != nil {
		return err
	}
	for y, row := range frame {
		if len(row) != e.width {
			return fmt.Errorf("encode row %d: got %d pixels, want %d", y, len(row), e.width)
		}
		for _, pixelColor := range row {
			if err := e.WritePixel(pixelColor); err != nil {
				return err
			}
		}
	}
	return nil
}
