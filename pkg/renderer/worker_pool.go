package renderer

import (
	"runtime"
	"sync"
)

// RowBand is a contiguous range of image rows [Y0, Y1)
type RowBand struct {
	Y0, Y1 int
}

// NewRowBands splits height rows into bands of at most rowsPerBand rows
func NewRowBands(height, rowsPerBand int) []RowBand {
	if rowsPerBand <= 0 {
		rowsPerBand = 1
	}
	bands := make([]RowBand, 0, (height+rowsPerBand-1)/rowsPerBand)
	for y := 0; y < height; y += rowsPerBand {
		bands = append(bands, RowBand{Y0: y, Y1: min(y+rowsPerBand, height)})
	}
	return bands
}

// RowTask represents a band rendering task for the worker pool
type RowTask struct {
	Band        RowBand
	TaskID      int          // For deterministic ordering
	Camera      *Camera      // Shared, read-only
	Framebuffer *Framebuffer // Shared framebuffer; each task writes only its own rows
}

// RowResult contains the result from rendering a band
type RowResult struct {
	TaskID int
	Band   RowBand
	Stats  RayStats
}

// WorkerPool manages parallel band rendering
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual band rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan RowTask
	resultQueue chan RowResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// maxTasks bounds the queues so that submitting never blocks.
func NewWorkerPool(world World, config Config, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan RowTask, maxTasks),
		resultQueue: make(chan RowResult, maxTasks),
		numWorkers:  numWorkers,
	}

	// Each worker owns a raytracer so ray statistics are never shared
	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   NewRaytracer(world, config),
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

// Stop waits for queued tasks to finish and shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task RowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
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
		w.raytracer.ResetStats()

		// Bands never overlap, so writing straight into the shared framebuffer is safe
		w.raytracer.RenderRows(task.Camera, task.Framebuffer, task.Band.Y0, task.Band.Y1)

		w.resultQueue <- RowResult{
			TaskID: task.TaskID,
			Band:   task.Band,
			Stats:  w.raytracer.Stats(),
		}
	}
}
