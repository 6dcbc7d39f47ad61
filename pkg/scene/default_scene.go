package scene

import (
	"github.com/softglow/goray/pkg/core"
	"github.com/softglow/goray/pkg/geometry"
	"github.com/softglow/goray/pkg/material"
	"github.com/softglow/goray/pkg/renderer"
)

// Named colors used by scene assembly
var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
	ground  = core.NewVec3(0.8, 0.8, 0.0)
	rose    = core.NewVec3(0.7, 0.3, 0.3)
	silver  = core.NewVec3(0.8, 0.8, 0.8)
	gold    = core.NewVec3(0.8, 0.6, 0.2)
)

// NewDefaultScene creates the three-sphere scene over a large ground sphere
func NewDefaultScene(aspectRatio float64) *Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(ground)),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(rose)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewMetal(silver, 0.0)),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(gold, 0.3)),
	)

	return &Scene{
		Camera:         renderer.NewCamera(aspectRatio),
		World:          world,
		TopColor:       skyBlue,
		BottomColor:    white,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// NewMinimalScene creates a single diffuse sphere over a ground sphere,
// useful for quick renders and tests
func NewMinimalScene(aspectRatio float64) *Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(ground)),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(rose)),
	)

	return &Scene{
		Camera:         renderer.NewCamera(aspectRatio),
		World:          world,
		TopColor:       skyBlue,
		BottomColor:    white,
		SamplingConfig: renderer.SamplingConfig{SamplesPerPixel: 20, MaxDepth: 10},
	}
}

// Names lists the scenes available to callers that select by name
func Names() []string {
	return []string{"default", "minimal"}
}

// ByName returns the named scene, or nil when the name is unknown
func ByName(name string, aspectRatio float64) *Scene {
	switch name {
	case "default":
		return NewDefaultScene(aspectRatio)
	case "minimal":
		return NewMinimalScene(aspectRatio)
	default:
		return nil
	}
}
