package renderer

import "time"

// RayStats counts the work done by one Raytracer
type RayStats struct {
	Rays       int // Rays that were intersected with the scene (primary and secondary)
	ShadowRays int // Shadow rays toward lights
	MaxDepth   int // Deepest recursion level that was intersected
}

func (s *RayStats) recordRay(depth int) {
	s.Rays++
	s.MaxDepth = max(s.MaxDepth, depth)
}

// Add folds another worker's counts into s
func (s *RayStats) Add(other RayStats) {
	s.Rays += other.Rays
	s.ShadowRays += other.ShadowRays
	s.MaxDepth = max(s.MaxDepth, other.MaxDepth)
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Workers     int           // Number of workers used
	Tasks       int           // Number of row bands rendered
	Duration    time.Duration // Wall-clock render time
	RayStats
}

// RaysPerPixel returns the average number of scene rays traced per pixel
func (s RenderStats) RaysPerPixel() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.Rays) / float64(s.TotalPixels)
}
