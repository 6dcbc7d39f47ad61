package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/softglow/goray/pkg/core"
	"github.com/softglow/goray/pkg/geometry"
)

func testHit() *geometry.HitRecord {
	return &geometry.HitRecord{
		Point:     core.NewVec3(0, 0, -1),
		Normal:    core.NewVec3(0, 0, 1),
		T:         1.0,
		FrontFace: true,
	}
}

func TestLambertian_Scatter(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	rayIn := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	random := rand.New(rand.NewSource(42))
	hit := testHit()

	for i := 0; i < 100; i++ {
		scatter, ok := lambertian.Scatter(rayIn, hit, random)
		if !ok {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Attenuation != lambertian.Albedo {
			t.Fatalf("Expected attenuation %v, got %v", lambertian.Albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray must start at the hit point, got %v", scatter.Scattered.Origin)
		}
		// normal + unit vector never points below the surface
		if scatter.Scattered.Direction.Dot(hit.Normal) < -1e-9 {
			t.Fatalf("Scatter direction %v points below the surface", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Direction.NearZero() {
			t.Fatal("Scatter direction should never be near zero")
		}
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0)
	random := rand.New(rand.NewSource(42))
	hit := testHit()

	// 45 degree incoming ray reflects symmetrically about the normal
	rayIn := core.NewRay(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, -1))
	scatter, ok := metal.Scatter(rayIn, hit, random)
	if !ok {
		t.Fatal("Expected reflection, got absorption")
	}

	expected := core.NewVec3(1, 0, 1)
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected reflection %v, got %v", expected, scatter.Scattered.Direction)
	}
	if scatter.Attenuation != metal.Albedo {
		t.Errorf("Expected attenuation %v, got %v", metal.Albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzScatterStaysAboveSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.5)
	random := rand.New(rand.NewSource(7))
	hit := testHit()
	rayIn := core.NewRay(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, -1))

	scattered := 0
	for i := 0; i < 200; i++ {
		scatter, ok := metal.Scatter(rayIn, hit, random)
		if !ok {
			continue // absorbed
		}
		scattered++
		if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Fatalf("Accepted scatter %v points below the surface", scatter.Scattered.Direction)
		}
		// Fuzzed direction stays within the fuzz radius of the mirror direction
		mirror := core.NewVec3(1, 0, 1).Multiply(1 / math.Sqrt2)
		if scatter.Scattered.Direction.Subtract(mirror).Length() > metal.Fuzz+1e-9 {
			t.Fatalf("Scatter %v strays beyond the fuzz radius", scatter.Scattered.Direction)
		}
	}
	if scattered == 0 {
		t.Error("Expected at least some rays to scatter at fuzz 0.5")
	}
}

func TestNewMetal_ClampsFuzz(t *testing.T) {
	if m := NewMetal(core.NewVec3(1, 1, 1), 2.5); m.Fuzz != 1.0 {
		t.Errorf("Expected fuzz clamped to 1, got %f", m.Fuzz)
	}
	if m := NewMetal(core.NewVec3(1, 1, 1), -0.5); m.Fuzz != 0.0 {
		t.Errorf("Expected fuzz clamped to 0, got %f", m.Fuzz)
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0)
	random := rand.New(rand.NewSource(42))

	// Grazing setup where the reflection leaves along the surface
	hit := testHit()
	rayIn := core.NewRay(core.NewVec3(-1, 0, -1), core.NewVec3(1, 0, 0))

	if _, ok := metal.Scatter(rayIn, hit, random); ok {
		t.Error("Expected absorption when the reflection does not leave the surface")
	}
}
