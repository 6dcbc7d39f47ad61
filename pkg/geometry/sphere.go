package geometry

import (
	"fmt"
	"math"

	"github.com/softglow/goray/pkg/core"
)

// Sphere represents a sphere shape, immutable after construction
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material Material
}

// NewSphere creates a new sphere. A negative radius is clamped to zero:
// geometry parameters come from scene assembly, so correcting the value
// beats failing construction.
func NewSphere(center core.Vec3, radius float64, material Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   math.Max(0, radius),
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*HitRecord, error) {
	// A zero-radius sphere has no well-defined normal, so it hits nothing.
	if s.Radius == 0 {
		return nil, nil
	}

	// Substituting the ray into the sphere equation gives the quadratic
	// a*t² - 2h*t + c = 0
	oc := s.Center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	if a <= math.SmallestNonzeroFloat64 {
		return nil, fmt.Errorf("sphere hit with near-zero ray direction: %w", core.ErrDegenerate)
	}
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return nil, nil
	}
	sqrtD := math.Sqrt(discriminant)

	// The nearer root is the visible surface when the origin is outside the
	// sphere, so try it first.
	root := (h - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, nil
		}
	}

	rec := &HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Dividing by the radius normalizes the outward normal for free
	outwardNormal := rec.Point.Subtract(s.Center).Multiply(1 / s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)

	return rec, nil
}
