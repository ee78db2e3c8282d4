package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Reflect mirrors direction d about the surface normal n: d - 2n(d·n)
func Reflect(d, n core.Vec3) core.Vec3 {
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}

// Refract bends direction d through a surface with normal n using Snell's law.
// n is the outward normal; when d leaves the surface (d·n > 0) the normal is
// flipped and the index ratio inverted. The second return value is false on
// total internal reflection, in which case no refracted direction exists.
func Refract(d, n core.Vec3, refractiveIndex float32) (core.Vec3, bool) {
	cosi := -max(-1, min(1, d.Dot(n)))
	etai, etat := float32(1), refractiveIndex
	normal := n

	// Ray is inside the object: swap the indices and invert the normal
	if cosi < 0 {
		cosi = -cosi
		etai, etat = etat, etai
		normal = n.Negate()
	}

	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Vec3{}, false
	}

	sqrtK := float32(math.Sqrt(float64(k)))
	return d.Multiply(eta).Add(normal.Multiply(eta*cosi - sqrtK)), true
}

// CriticalAngle returns the angle (radians, measured from the normal) beyond
// which a ray travelling inside a medium of the given index is totally
// internally reflected. Indices <= 1 have no critical angle and return π/2.
func CriticalAngle(refractiveIndex float32) float64 {
	if refractiveIndex <= 1 {
		return math.Pi / 2
	}
	return math.Asin(1 / float64(refractiveIndex))
}
