package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestRayStats_Add(t *testing.T) {
	a := RayStats{Rays: 10, ShadowRays: 30, MaxDepth: 2}
	b := RayStats{Rays: 5, ShadowRays: 3, MaxDepth: 4}

	a.Add(b)
	expected := RayStats{Rays: 15, ShadowRays: 33, MaxDepth: 4}
	if a != expected {
		t.Errorf("Expected %+v, got %+v", expected, a)
	}
}

func TestRayStats_RecordRay(t *testing.T) {
	var s RayStats
	for _, depth := range []int{0, 3, 1} {
		s.recordRay(depth)
	}
	if s.Rays != 3 || s.MaxDepth != 3 {
		t.Errorf("Expected 3 rays at max depth 3, got %+v", s)
	}
}

func TestRenderStats_RaysPerPixel(t *testing.T) {
	stats := RenderStats{TotalPixels: 4, RayStats: RayStats{Rays: 10}}
	if got := stats.RaysPerPixel(); math.Abs(got-2.5) > 1e-12 {
		t.Errorf("Expected 2.5 rays per pixel, got %f", got)
	}

	empty := RenderStats{}
	if got := empty.RaysPerPixel(); got != 0 {
		t.Errorf("Expected 0 for an empty render, got %f", got)
	}
}

func TestMergeConfig(t *testing.T) {
	base := DefaultConfig()

	merged := MergeConfig(base, Config{Width: 320, NumWorkers: 3})
	if merged.Width != 320 || merged.NumWorkers != 3 {
		t.Errorf("Expected overrides to apply, got %+v", merged)
	}
	if merged.Height != base.Height || merged.FOV != base.FOV || merged.MaxDepth != base.MaxDepth {
		t.Errorf("Expected untouched fields to keep defaults, got %+v", merged)
	}
	if merged.Background != base.Background || merged.Bias != base.Bias {
		t.Errorf("Expected shading defaults to survive, got %+v", merged)
	}

	sky := core.NewVec3(0, 0, 1)
	if got := MergeConfig(base, Config{Background: sky}); got.Background != sky {
		t.Errorf("Expected background override %v, got %v", sky, got.Background)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Width != 1024 || config.Height != 768 {
		t.Errorf("Expected 1024x768, got %dx%d", config.Width, config.Height)
	}
	if math.Abs(config.FOV-math.Pi/3) > 1e-12 {
		t.Errorf("Expected 60° field of view, got %f", config.FOV)
	}
	if config.MaxDepth != 4 {
		t.Errorf("Expected max depth 4, got %d", config.MaxDepth)
	}
	if config.Background != core.NewVec3(0.2, 0.7, 0.8) {
		t.Errorf("Unexpected background %v", config.Background)
	}
}
