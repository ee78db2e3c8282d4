package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Render traces every pixel of the image described by config and returns the
// framebuffer together with the merged statistics of all workers.
func Render(world World, config Config, logger core.Logger) (*Framebuffer, RenderStats) {
	startTime := time.Now()

	camera := NewCamera(config.Width, config.Height, config.FOV)
	fb := NewFramebuffer(config.Width, config.Height)
	bands := NewRowBands(config.Height, config.RowsPerTask)

	pool := NewWorkerPool(world, config, config.NumWorkers, len(bands))
	logger.Printf("Rendering %dx%d with %d workers (%d row bands)\n",
		config.Width, config.Height, pool.GetNumWorkers(), len(bands))

	pool.Start()
	for i, band := range bands {
		pool.SubmitTask(RowTask{
			Band:        band,
			TaskID:      i,
			Camera:      camera,
			Framebuffer: fb,
		})
	}
	pool.Stop()

	stats := RenderStats{
		TotalPixels: config.Width * config.Height,
		Workers:     pool.GetNumWorkers(),
	}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Tasks++
		stats.Add(result.Stats)
	}
	stats.Duration = time.Since(startTime)

	logger.Printf("Render completed in %v: %d rays (%.2f per pixel), %d shadow rays, max depth %d\n",
		stats.Duration, stats.Rays, stats.RaysPerPixel(), stats.ShadowRays, stats.MaxDepth)

	return fb, stats
}
