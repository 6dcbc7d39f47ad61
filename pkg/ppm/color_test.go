package ppm

import (
	"bytes"
	"math"
	"testing"

	"github.com/softglow/goray/pkg/core"
)

func TestLinearToGamma(t *testing.T) {
	tests := []struct {
		name     string
		linear   float64
		expected float64
	}{
		{name: "zero", linear: 0, expected: 0},
		{name: "one", linear: 1, expected: 1},
		{name: "quarter", linear: 0.25, expected: 0.5},
		{name: "negative maps to zero", linear: -0.5, expected: 0},
		{name: "above one passes through", linear: 4, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToGamma(tt.linear); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("LinearToGamma(%f): expected %f, got %f", tt.linear, tt.expected, got)
			}
		})
	}
}

func TestWriteColor(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Vec3
		expected string
	}{
		{name: "black", color: core.NewVec3(0, 0, 0), expected: "0 0 0\n"},
		{name: "white", color: core.NewVec3(1, 1, 1), expected: "255 255 255\n"},
		{name: "mid gray", color: core.NewVec3(0.25, 0.25, 0.25), expected: "128 128 128\n"},
		{name: "mixed channels", color: core.NewVec3(1, 0.25, 0), expected: "255 128 0\n"},
		{name: "negative channels clamp to zero", color: core.NewVec3(-1, -0.001, 0), expected: "0 0 0\n"},
		{name: "overbright clamps to max", color: core.NewVec3(10, 2, 1.0001), expected: "255 255 255\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteColor(&buf, tt.color); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

// The ceiling keeps 256 unreachable: full intensity truncates to exactly 255.
func TestChannelBoundary(t *testing.T) {
	r, g, b := Bytes(core.NewVec3(1, 1, 1))
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("Expected 255 255 255 at full intensity, got %d %d %d", r, g, b)
	}

	// Just below the gamma value that scales to 255
	r, _, _ = Bytes(core.NewVec3(0.99, 0, 0))
	if r >= 255 {
		t.Errorf("Expected sub-maximum byte for 0.99, got %d", r)
	}
}
