package scene

import (
	"github.com/softglow/goray/pkg/core"
	"github.com/softglow/goray/pkg/geometry"
	"github.com/softglow/goray/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	World          *geometry.HittableList
	TopColor       core.Vec3 // Background gradient at the top of the frame
	BottomColor    core.Vec3 // Background gradient at the bottom of the frame
	SamplingConfig renderer.SamplingConfig
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors returns the background gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetWorld returns the root of the scene geometry
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.World.Objects)
}
