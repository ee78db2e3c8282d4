package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// MaxDistance is the distance past which a hit counts as background
const MaxDistance float32 = 1000

// Light is a point light
type Light struct {
	Position  core.Vec3
	Intensity float32 // Scalar gain, > 0
}

// NewLight creates a new point light
func NewLight(position core.Vec3, intensity float32) Light {
	return Light{Position: position, Intensity: intensity}
}

// Scene contains all the elements needed for rendering.
// It is built once and only read while rendering, so it can be shared by workers.
type Scene struct {
	Spheres []geometry.Sphere      // Objects in the scene
	Lights  []Light                // Lights in the scene
	Floor   *geometry.Checkerboard // Optional checkerboard floor (nil = none)
}

// NewScene creates a scene without a floor
func NewScene(spheres []geometry.Sphere, lights []Light) *Scene {
	return &Scene{Spheres: spheres, Lights: lights}
}

// Hit describes the closest surface found along a ray
type Hit struct {
	Point    core.Vec3
	Normal   core.Vec3 // Outward unit normal
	Distance float32
	Material material.Material
}

// Intersect finds the closest surface along a unit-length direction.
// The second return value is false when nothing lies within MaxDistance.
func (s *Scene) Intersect(origin, direction core.Vec3) (Hit, bool) {
	var closest Hit
	spheresDist := float32(math.MaxFloat32)

	for i := range s.Spheres {
		sphere := &s.Spheres[i]
		dist, ok := sphere.Intersect(origin, direction)
		if !ok || dist >= spheresDist {
			continue
		}
		spheresDist = dist
		closest.Distance = dist
		closest.Point = origin.Add(direction.Multiply(dist))
		closest.Normal = sphere.NormalAt(closest.Point)
		closest.Material = sphere.Material
	}

	floorDist := float32(math.MaxFloat32)
	if s.Floor != nil {
		if dist, point, ok := s.Floor.Intersect(origin, direction); ok && dist < spheresDist {
			floorDist = dist
			closest.Distance = dist
			closest.Point = point
			closest.Normal = s.Floor.Normal()
			closest.Material = s.Floor.MaterialAt(point)
		}
	}

	if min(spheresDist, floorDist) >= MaxDistance {
		return Hit{}, false
	}
	return closest, true
}

// GetLights returns the scene's lights
func (s *Scene) GetLights() []Light {
	return s.Lights
}

// GetPrimitiveCount returns the number of intersectable objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := len(s.Spheres)
	if s.Floor != nil {
		count++
	}
	return count
}
