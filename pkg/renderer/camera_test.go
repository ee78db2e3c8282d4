package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func TestCamera_ScreenPointFormula(t *testing.T) {
	width, height := 1024, 768
	fov := math.Pi / 3
	camera := NewCamera(width, height, fov)

	tests := []struct {
		i, j int
	}{
		{0, 0}, {1023, 767}, {512, 384}, {100, 700},
	}

	tanHalf := math.Tan(fov / 2)
	for _, tt := range tests {
		p := camera.ScreenPoint(tt.i, tt.j)

		expectedX := (2*(float64(tt.i)+0.5)/float64(width) - 1) * tanHalf * float64(width) / float64(height)
		expectedY := -(2*(float64(tt.j)+0.5)/float64(height) - 1) * tanHalf
		if math.Abs(float64(p.X)-expectedX) > 1e-5 || math.Abs(float64(p.Y)-expectedY) > 1e-5 {
			t.Errorf("Pixel (%d, %d): expected (%f, %f), got (%f, %f)", tt.i, tt.j, expectedX, expectedY, p.X, p.Y)
		}
	}
}

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(64, 48, math.Pi/3)

	for _, pixel := range [][2]int{{0, 0}, {63, 0}, {0, 47}, {63, 47}, {32, 24}} {
		ray := camera.GetRay(pixel[0], pixel[1])

		if ray.Origin != (core.Vec3{}) {
			t.Errorf("Expected rays from the origin, got %v", ray.Origin)
		}
		if math.Abs(float64(ray.Direction.Length()-1)) > 1e-6 {
			t.Errorf("Pixel %v: direction %v is not unit length", pixel, ray.Direction)
		}
		if ray.Direction.Z >= 0 {
			t.Errorf("Pixel %v: expected camera to look down -z, got %v", pixel, ray.Direction)
		}
	}
}

func TestCamera_Orientation(t *testing.T) {
	camera := NewCamera(64, 48, math.Pi/3)

	topLeft := camera.GetRay(0, 0).Direction
	if topLeft.X >= 0 || topLeft.Y <= 0 {
		t.Errorf("Expected top-left pixel to look up and left, got %v", topLeft)
	}
	bottomRight := camera.GetRay(63, 47).Direction
	if bottomRight.X <= 0 || bottomRight.Y >= 0 {
		t.Errorf("Expected bottom-right pixel to look down and right, got %v", bottomRight)
	}

	// Opposite corners are mirror images
	if math.Abs(float64(topLeft.X+bottomRight.X)) > 1e-6 || math.Abs(float64(topLeft.Y+bottomRight.Y)) > 1e-6 {
		t.Errorf("Expected symmetric corners, got %v and %v", topLeft, bottomRight)
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	// The vertical extent of the image plane at z=-1 is 2*tan(fov/2)
	fov := math.Pi / 2
	camera := NewCamera(2, 2, fov)

	top := camera.ScreenPoint(0, 0)
	bottom := camera.ScreenPoint(0, 1)
	if math.Abs(float64(top.Y-bottom.Y)-1) > 1e-6 {
		t.Errorf("Expected adjacent pixel centers one unit apart at 90°, got %f", top.Y-bottom.Y)
	}
	if camera.Width() != 2 || camera.Height() != 2 {
		t.Errorf("Expected 2x2 camera, got %dx%d", camera.Width(), camera.Height())
	}
}
