// Package ppm converts linear colors to display pixels and serializes them
// as a plain-text pixmap (the "P3" format): an ASCII header followed by one
// "r g b" line per pixel in row-major order.
package ppm

import (
	"fmt"
	"io"
	"math"

	"github.com/softglow/goray/pkg/core"
)

// intensity is the allowed channel range before byte conversion. The ceiling
// sits just below 1 so that scaling by 256 and truncating can never reach 256.
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma applies the display gamma curve, approximated by a square
// root. Out-of-range linear light is expected from upstream shading math and
// maps to zero instead of failing.
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// Bytes converts a linear color into the three display channel bytes
func Bytes(pixelColor core.Vec3) (r, g, b uint8) {
	r = channelByte(pixelColor.X)
	g = channelByte(pixelColor.Y)
	b = channelByte(pixelColor.Z)
	return r, g, b
}

func channelByte(linear float64) uint8 {
	return uint8(256 * intensity.Clamp(LinearToGamma(linear)))
}

// WriteColor appends one pixel line to the output stream. Must be called once
// per pixel in row-major scan order to produce a valid image stream.
func WriteColor(w io.Writer, pixelColor core.Vec3) error {
	r, g, b := Bytes(pixelColor)
	_, err := fmt.Fprintf(w, "%d %d %d\n", r, g, b)
	return err
}
