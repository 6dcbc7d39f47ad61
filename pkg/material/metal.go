package material

import (
	"math/rand"

	"github.com/softglow/goray/pkg/core"
	"github.com/softglow/goray/pkg/geometry"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material with fuzz clamped to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit *geometry.HitRecord, random *rand.Rand) (geometry.ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal)

	// Perturb the reflection for brushed-metal fuzziness
	if m.Fuzz > 0 {
		unit, err := reflected.Unit()
		if err != nil {
			return geometry.ScatterResult{}, false
		}
		reflected = unit.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
	}

	scattered := core.NewRay(hit.Point, reflected)

	// A ray perturbed below the surface is absorbed
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return geometry.ScatterResult{}, false
	}

	return geometry.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}
