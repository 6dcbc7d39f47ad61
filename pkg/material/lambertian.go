package material

import (
	"math/rand"

	"github.com/softglow/goray/pkg/core"
	"github.com/softglow/goray/pkg/geometry"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit *geometry.HitRecord, random *rand.Rand) (geometry.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// The random unit vector can cancel the normal almost exactly,
	// leaving a direction too small to trace; fall back to the normal.
	if scatterDirection.NearZero() {
		scatterDirection = hit.Normal
	}

	return geometry.ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: l.Albedo,
	}, true
}
