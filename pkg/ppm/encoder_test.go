package ppm

import (
	"bytes"
	"testing"

	"github.com/softglow/goray/pkg/core"
)

func TestEncoder_Encode(t *testing.T) {
	frame := [][]core.Vec3{
		{core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 1)},
		{core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), core.NewVec3(0.25, 0.25, 0.25)},
	}

	var buf bytes.Buffer
	if err := NewEncoder(&buf, 3, 2).Encode(frame); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := "P3\n3 2\n255\n" +
		"255 0 0\n" +
		"0 255 0\n" +
		"0 0 255\n" +
		"255 255 255\n" +
		"0 0 0\n" +
		"128 128 128\n"
	if buf.String() != expected {
		t.Errorf("Expected stream:\n%q\ngot:\n%q", expected, buf.String())
	}
}

func TestEncoder_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, 400, 225).WriteHeader(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if buf.String() != "P3\n400 225\n255\n" {
		t.Errorf("Unexpected header %q", buf.String())
	}
}

func TestEncoder_DimensionMismatch(t *testing.T) {
	var buf bytes.Buffer

	if err := NewEncoder(&buf, 2, 2).Encode(make([][]core.Vec3, 1)); err == nil {
		t.Error("Expected error for wrong row count")
	}

	frame := [][]core.Vec3{
		make([]core.Vec3, 2),
		make([]core.Vec3, 3),
	}
	if err := NewEncoder(&buf, 2, 2).Encode(frame); err == nil {
		t.Error("Expected error for wrong row width")
	}
}
