package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultScene creates the classic four-sphere scene: ivory, glass, red
// rubber and mirror spheres over a checkerboard floor, lit by three lights.
func NewDefaultScene() *Scene {
	spheres := []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, material.Ivory),
		geometry.NewSphere(core.NewVec3(-1.0, -1.5, -12), 2, material.Glass),
		geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, material.RedRubber),
		geometry.NewSphere(core.NewVec3(7, 5, -18), 4, material.Mirror),
	}

	lights := []Light{
		NewLight(core.NewVec3(-20, 20, 20), 1.5),
		NewLight(core.NewVec3(30, 50, -25), 1.8),
		NewLight(core.NewVec3(30, 20, 30), 1.7),
	}

	s := NewScene(spheres, lights)
	s.Floor = geometry.DefaultCheckerboard()
	return s
}

// NewSingleSphereScene creates a minimal scene with one gray diffuse sphere
// and one light. Useful as a quick smoke render.
func NewSingleSphereScene() *Scene {
	gray := material.NewDiffuse(core.NewVec3(0.4, 0.4, 0.4))
	spheres := []geometry.Sphere{
		geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, gray),
	}
	lights := []Light{
		NewLight(core.NewVec3(-20, 20, 20), 1.5),
	}
	return NewScene(spheres, lights)
}
