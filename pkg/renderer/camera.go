package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Camera generates primary rays. It sits at the origin looking down -z.
type Camera struct {
	width, height int
	tanHalfFov    float32
	aspectRatio   float32
	origin        core.Vec3
}

// NewCamera creates a camera for a width x height image with vertical field of view fov (radians)
func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{
		width:       width,
		height:      height,
		tanHalfFov:  float32(math.Tan(fov / 2)),
		aspectRatio: float32(width) / float32(height),
		origin:      core.NewVec3(0, 0, 0),
	}
}

// ScreenPoint maps the center of pixel (i, j) onto the image plane at z = -1.
// Pixel (0, 0) is the top-left corner.
func (c *Camera) ScreenPoint(i, j int) core.Vec2 {
	x := (2*(float32(i)+0.5)/float32(c.width) - 1) * c.tanHalfFov * c.aspectRatio
	y := -(2*(float32(j)+0.5)/float32(c.height) - 1) * c.tanHalfFov
	return core.NewVec2(x, y)
}

// GetRay returns the unit-length primary ray through pixel (i, j)
func (c *Camera) GetRay(i, j int) core.Ray {
	p := c.ScreenPoint(i, j)
	direction := core.NewVec3(p.X, p.Y, -1).Normalize()
	return core.NewRay(c.origin, direction)
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }
