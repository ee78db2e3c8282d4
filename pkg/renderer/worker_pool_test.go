package renderer

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func TestNewRowBands(t *testing.T) {
	tests := []struct {
		name     string
		height   int
		rows     int
		expected []RowBand
	}{
		{"even split", 6, 3, []RowBand{{0, 3}, {3, 6}}},
		{"remainder", 7, 3, []RowBand{{0, 3}, {3, 6}, {6, 7}}},
		{"single band", 4, 16, []RowBand{{0, 4}}},
		{"non-positive rows", 2, 0, []RowBand{{0, 1}, {1, 2}}},
		{"empty image", 0, 4, []RowBand{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRowBands(tt.height, tt.rows)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d bands, got %d: %v", len(tt.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Band %d: expected %v, got %v", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestWorkerPool_CoversEveryRowOnce(t *testing.T) {
	// Every ray misses, so each shaded pixel becomes the background
	world := &emptyWorld{}
	config := smallConfig(3)
	config.Background = core.NewVec3(1, 0, 1)

	camera := NewCamera(config.Width, config.Height, config.FOV)
	fb := NewFramebuffer(config.Width, config.Height)
	bands := NewRowBands(config.Height, config.RowsPerTask)

	pool := NewWorkerPool(world, config, 3, len(bands))
	if pool.GetNumWorkers() != 3 {
		t.Fatalf("Expected 3 workers, got %d", pool.GetNumWorkers())
	}
	pool.Start()
	for i, band := range bands {
		pool.SubmitTask(RowTask{Band: band, TaskID: i, Camera: camera, Framebuffer: fb})
	}
	pool.Stop()

	seen := make(map[int]bool)
	total := RayStats{}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if seen[result.TaskID] {
			t.Errorf("Task %d reported twice", result.TaskID)
		}
		seen[result.TaskID] = true
		if want := (result.Band.Y1 - result.Band.Y0) * config.Width; result.Stats.Rays != want {
			t.Errorf("Task %d: expected %d rays, got %d", result.TaskID, want, result.Stats.Rays)
		}
		total.Add(result.Stats)
	}

	if len(seen) != len(bands) {
		t.Errorf("Expected %d results, got %d", len(bands), len(seen))
	}
	if total.Rays != config.Width*config.Height {
		t.Errorf("Expected one ray per pixel, got %d", total.Rays)
	}
	for idx, c := range fb.Pixels {
		if c != config.Background {
			t.Fatalf("Pixel %d was not rendered: %v", idx, c)
		}
	}
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	pool := NewWorkerPool(&emptyWorld{}, DefaultConfig(), 0, 1)
	if pool.GetNumWorkers() <= 0 {
		t.Errorf("Expected CPU-count workers, got %d", pool.GetNumWorkers())
	}
}

// emptyWorld is an empty world that is safe to share between goroutines
type emptyWorld struct{}

func (emptyWorld) Intersect(origin, direction core.Vec3) (scene.Hit, bool) {
	return scene.Hit{}, false
}

func (emptyWorld) GetLights() []scene.Light { return nil }
