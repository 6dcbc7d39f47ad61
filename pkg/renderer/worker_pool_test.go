package renderer

import (
	"testing"

	"github.com/softglow/goray/pkg/core"
	"github.com/softglow/goray/pkg/geometry"
)

func poolTestScene() Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, grayMaterial{}),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, grayMaterial{}),
	)
	return newTestScene(world)
}

func TestRenderFrame_CompletesEveryRow(t *testing.T) {
	const width, height = 16, 9
	config := SamplingConfig{SamplesPerPixel: 2, MaxDepth: 4}

	rowsSeen := make(map[int]bool)
	frame, stats := RenderFrame(poolTestScene(), width, height, config, 3, func(result RowResult) {
		rowsSeen[result.Row] = true
	})

	if len(rowsSeen) != height {
		t.Errorf("Expected %d distinct row callbacks, got %d", height, len(rowsSeen))
	}
	if len(frame) != height || len(frame[0]) != width {
		t.Fatalf("Expected %dx%d frame, got %dx%d", width, height, len(frame[0]), len(frame))
	}

	if stats.TotalPixels != width*height {
		t.Errorf("Expected %d pixels, got %d", width*height, stats.TotalPixels)
	}
	if stats.TotalSamples != width*height*config.SamplesPerPixel {
		t.Errorf("Expected %d samples, got %d", width*height*config.SamplesPerPixel, stats.TotalSamples)
	}

	// Background rows are never black, so a zero pixel means a skipped row
	for x, pixel := range frame[0] {
		if pixel == (core.Vec3{}) {
			t.Errorf("Top row pixel %d was never rendered", x)
		}
	}
}

func TestRenderFrame_DeterministicAcrossSchedules(t *testing.T) {
	const width, height = 12, 8
	config := SamplingConfig{SamplesPerPixel: 2, MaxDepth: 4}
	scene := poolTestScene()

	// Row seeds travel with the tasks, so worker count must not matter
	a, _ := RenderFrame(scene, width, height, config, 1, nil)
	b, _ := RenderFrame(scene, width, height, config, 4, nil)

	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("Pixel (%d,%d) depends on worker count: %v vs %v", x, y, a[y][x], b[y][x])
			}
		}
	}
}

func TestWorkerPool_StartStop(t *testing.T) {
	const width, height = 8, 4
	wp := NewWorkerPool(poolTestScene(), width, height, SamplingConfig{SamplesPerPixel: 1, MaxDepth: 2}, 2)
	if wp.GetNumWorkers() != 2 {
		t.Fatalf("Expected 2 workers, got %d", wp.GetNumWorkers())
	}

	frame := NewFrame(width, height)
	wp.Start()
	for y := 0; y < height; y++ {
		wp.SubmitTask(RowTask{Row: y, Seed: int64(y), Frame: frame})
	}
	for i := 0; i < height; i++ {
		if _, ok := wp.GetResult(); !ok {
			t.Fatal("Result queue closed before all rows completed")
		}
	}
	wp.Stop()

	// After Stop the result queue must be closed
	if _, ok := wp.GetResult(); ok {
		t.Error("Expected closed result queue after Stop")
	}
}
