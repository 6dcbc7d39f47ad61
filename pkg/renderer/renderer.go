package renderer

import (
	"math"
	"math/rand"

	"github.com/softglow/goray/pkg/core"
	"github.com/softglow/goray/pkg/geometry"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports with the scene package
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetWorld() geometry.Hittable
}

// Renderer traces rays for one execution context. The scene is read-only,
// so independent renderers can share it; each renderer owns its RNG and
// counters and must not be used from multiple goroutines at once.
type Renderer struct {
	scene          Scene
	width          int
	height         int
	config         SamplingConfig
	random         *rand.Rand
	degenerateRays int
}

// NewRenderer creates a renderer with a seed-derived deterministic RNG
func NewRenderer(scene Scene, width, height int, config SamplingConfig, seed int64) *Renderer {
	return &Renderer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
		random: rand.New(rand.NewSource(seed)),
	}
}

// Reseed resets the renderer's RNG, making the next row deterministic
func (rt *Renderer) Reseed(seed int64) {
	rt.random = rand.New(rand.NewSource(seed))
}

// DegenerateRays returns how many rays were dropped as degenerate geometry
func (rt *Renderer) DegenerateRays() int {
	return rt.degenerateRays
}

// backgroundGradient returns a vertical gradient color based on ray direction
func (rt *Renderer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection, err := r.Direction.Unit()
	if err != nil {
		rt.degenerateRays++
		return core.Vec3{}
	}

	// Map the y-component from [-1,1] to [0,1] and lerp
	t := 0.5 * (unitDirection.Y + 1.0)
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rayColor returns the color for a given ray
func (rt *Renderer) rayColor(r core.Ray, depth int) core.Vec3 {
	// Past the bounce limit no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	// The lower bound skips self-intersections at t near zero
	hit, err := rt.scene.GetWorld().Hit(r, core.NewInterval(0.001, math.Inf(1)))
	if err != nil {
		// Degenerate geometry contributes no light; the render goes on
		rt.degenerateRays++
		return core.Vec3{}
	}
	if hit == nil {
		return rt.backgroundGradient(r)
	}

	scatter, ok := hit.Material.Scatter(r, hit, rt.random)
	if !ok {
		return core.Vec3{}
	}
	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1))
}

// RenderPixel averages jittered samples for the pixel at (x, y),
// where y counts down from the top row
func (rt *Renderer) RenderPixel(x, y int) core.Vec3 {
	var accum core.Vec3
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float64(x) + rt.random.Float64()) / float64(rt.width-1)
		t := 1.0 - (float64(y)+rt.random.Float64())/float64(rt.height-1)
		accum = accum.Add(rt.rayColor(rt.scene.GetCamera().GetRay(s, t), rt.config.MaxDepth))
	}
	return accum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
}

// RenderRow fills row with the pixels of scanline y, left to right
func (rt *Renderer) RenderRow(y int, row []core.Vec3) {
	for x := range row {
		row[x] = rt.RenderPixel(x, y)
	}
}

// Render renders the whole frame sequentially in scan order
func (rt *Renderer) Render() ([][]core.Vec3, RenderStats) {
	frame := NewFrame(rt.width, rt.height)
	for y := 0; y < rt.height; y++ {
		rt.RenderRow(y, frame[y])
	}

	stats := RenderStats{
		TotalPixels:    rt.width * rt.height,
		TotalSamples:   rt.width * rt.height * rt.config.SamplesPerPixel,
		DegenerateRays: rt.degenerateRays,
	}
	return frame, stats
}

// NewFrame allocates a width*height framebuffer of linear colors
func NewFrame(width, height int) [][]core.Vec3 {
	frame := make([][]core.Vec3, height)
	for y := range frame {
		frame[y] = make([]core.Vec3, width)
	}
	return frame
}
