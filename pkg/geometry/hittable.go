package geometry

import (
	"math/rand"

	"github.com/softglow/goray/pkg/core"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, oriented against the ray when FrontFace
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object, owned by the scene
}

// SetFaceNormal sets the normal vector and determines front/back face.
// Centralized here so every geometry variant gets the same two-sided
// shading semantics: the stored normal always opposes the incoming ray.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect. Hit reports the nearest
// intersection with t strictly inside rayT, or (nil, nil) when there is none.
// A non-nil error means the query itself was degenerate (for example a ray
// with a near-zero direction) and no record was produced.
// Implementations must not mutate the geometry or the ray, so a scene can be
// queried concurrently once built.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval) (*HitRecord, error)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// Material interface for surfaces that can scatter rays
type Material interface {
	Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)
}
