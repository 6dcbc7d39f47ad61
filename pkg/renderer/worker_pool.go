package renderer

import (
	"runtime"
	"sync"

	"github.com/softglow/goray/pkg/core"
)

// RowTask represents one scanline rendering task for the worker pool
type RowTask struct {
	Row   int   // Scanline index, 0 is the top row
	Seed  int64 // RNG seed, carried by the task so results do not depend on scheduling
	Frame [][]core.Vec3
}

// RowResult contains the result from rendering a scanline
type RowResult struct {
	Row   int
	Stats RenderStats
}

// WorkerPool renders scanlines in parallel. The scene is read-only and each
// worker owns its renderer, so workers share nothing but the framebuffer,
// which they write at non-overlapping row indices.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline rendering tasks
type Worker struct {
	ID          int
	renderer    *Renderer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(scene Scene, width, height int, config SamplingConfig, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, height),
		resultQueue: make(chan RowResult, height),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    NewRenderer(scene, width, height, config, int64(i)),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed scanline result
func (wp *WorkerPool) GetResult() (RowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Reseed per task so a row's pixels depend on the row, not on
		// which worker picked it up
		w.renderer.Reseed(task.Seed)

		before := w.renderer.DegenerateRays()
		row := task.Frame[task.Row]
		w.renderer.RenderRow(task.Row, row)

		w.resultQueue <- RowResult{
			Row: task.Row,
			Stats: RenderStats{
				TotalPixels:    len(row),
				TotalSamples:   len(row) * w.renderer.config.SamplesPerPixel,
				DegenerateRays: w.renderer.DegenerateRays() - before,
			},
		}
	}
}

// RenderFrame renders a full frame through a worker pool and returns it with
// merged stats. onRow, when non-nil, is called once per completed scanline in
// completion order; the framebuffer itself always ends up in scan order.
func RenderFrame(scene Scene, width, height int, config SamplingConfig, numWorkers int, onRow func(RowResult)) ([][]core.Vec3, RenderStats) {
	frame := NewFrame(width, height)

	wp := NewWorkerPool(scene, width, height, config, numWorkers)
	wp.Start()
	for y := 0; y < height; y++ {
		wp.SubmitTask(RowTask{Row: y, Seed: int64(y), Frame: frame})
	}

	var stats RenderStats
	for i := 0; i < height; i++ {
		result, ok := wp.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
		if onRow != nil {
			onRow(result)
		}
	}
	wp.Stop()

	return frame, stats
}
