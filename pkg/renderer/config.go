package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Config contains rendering configuration
type Config struct {
	Width       int       // Image width in pixels
	Height      int       // Image height in pixels
	FOV         float64   // Vertical field of view in radians
	MaxDepth    int       // Deepest recursion level that is still shaded (primary rays are depth 0)
	Bias        float32   // Offset along the normal for secondary ray origins
	Background  core.Vec3 // Color returned for misses and past MaxDepth
	NumWorkers  int       // Number of parallel workers (0 = use CPU count)
	RowsPerTask int       // Image rows handed to a worker at a time
}

// DefaultConfig returns the classic 1024x768, 60° render settings
func DefaultConfig() Config {
	return Config{
		Width:       1024,
		Height:      768,
		FOV:         math.Pi / 3,
		MaxDepth:    4,
		Bias:        1e-3,
		Background:  core.NewVec3(0.2, 0.7, 0.8),
		NumWorkers:  0,
		RowsPerTask: 16,
	}
}

// MergeConfig returns base with every non-zero field of override applied
func MergeConfig(base, override Config) Config {
	result := base

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.FOV != 0 {
		result.FOV = override.FOV
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Bias != 0 {
		result.Bias = override.Bias
	}
	if override.Background != (core.Vec3{}) {
		result.Background = override.Background
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}
	if override.RowsPerTask != 0 {
		result.RowsPerTask = override.RowsPerTask
	}

	return result
}
