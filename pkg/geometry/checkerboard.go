package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Checkerboard is a horizontal floor plane at height Y, clipped to a finite
// window and shaded with two alternating tile colors.
type Checkerboard struct {
	Y               float32   // Height of the plane
	HalfWidth       float32   // Tiles exist where |x| < HalfWidth
	Near, Far       float32   // Tiles exist where Far < z < Near
	TileScale       float32   // Tile index is floor(coordinate * TileScale)
	OddColor        core.Vec3 // Color of tiles whose index sum is odd
	EvenColor       core.Vec3 // Color of tiles whose index sum is even
	Dim             float32   // Factor applied to both tile colors
	ParallelEpsilon float32   // Rays with |direction.Y| at or below this never hit the floor
}

// DefaultCheckerboard returns the floor used by the default scene:
// y = -4, |x| < 10, -30 < z < -10, tiles two units wide.
func DefaultCheckerboard() *Checkerboard {
	return &Checkerboard{
		Y:               -4,
		HalfWidth:       10,
		Near:            -10,
		Far:             -30,
		TileScale:       0.5,
		OddColor:        core.NewVec3(1, 1, 1),
		EvenColor:       core.NewVec3(1, 0.7, 0.3),
		Dim:             0.3,
		ParallelEpsilon: 1e-3,
	}
}

// Intersect returns the distance to the floor along a unit-length direction.
// Misses when the ray is near-parallel, points away, or lands outside the window.
func (c *Checkerboard) Intersect(origin, direction core.Vec3) (float32, core.Vec3, bool) {
	if float32(math.Abs(float64(direction.Y))) <= c.ParallelEpsilon {
		return 0, core.Vec3{}, false
	}

	d := (c.Y - origin.Y) / direction.Y
	if d <= 0 {
		return 0, core.Vec3{}, false
	}

	point := origin.Add(direction.Multiply(d))
	if !c.Contains(point) {
		return 0, core.Vec3{}, false
	}
	return d, point, true
}

// Contains reports whether a point on the plane lies inside the tiled window
func (c *Checkerboard) Contains(point core.Vec3) bool {
	return float32(math.Abs(float64(point.X))) < c.HalfWidth && point.Z < c.Near && point.Z > c.Far
}

// Normal returns the floor's up-facing normal
func (c *Checkerboard) Normal() core.Vec3 {
	return core.NewVec3(0, 1, 0)
}

// ColorAt returns the dimmed tile color at a point on the floor
func (c *Checkerboard) ColorAt(point core.Vec3) core.Vec3 {
	ix := int64(math.Floor(float64(point.X * c.TileScale)))
	iz := int64(math.Floor(float64(point.Z * c.TileScale)))

	color := c.EvenColor
	if (ix+iz)&1 != 0 {
		color = c.OddColor
	}
	return color.Multiply(c.Dim)
}

// MaterialAt returns the opaque diffuse material for the tile under point
func (c *Checkerboard) MaterialAt(point core.Vec3) material.Material {
	return material.NewDiffuse(c.ColorAt(point))
}
