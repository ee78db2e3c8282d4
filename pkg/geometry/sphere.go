package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float32
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, mat material.Material) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect returns the distance along a unit-length direction to the nearest
// point where the ray enters (or, from inside, leaves) the sphere.
// Spheres entirely behind the origin are reported as a miss.
func (s Sphere) Intersect(origin, direction core.Vec3) (float32, bool) {
	// Project the origin-to-center vector onto the ray
	l := s.Center.Subtract(origin)
	tca := l.Dot(direction)

	// Squared distance between the center and the ray's closest approach
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	thc := float32(math.Sqrt(float64(r2 - d2)))
	t0 := tca - thc
	t1 := tca + thc
	if t0 < 0 {
		t0 = t1
	}
	if t0 < 0 {
		return 0, false
	}
	return t0, true
}

// NormalAt returns the outward unit normal for a point on the sphere's surface
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
