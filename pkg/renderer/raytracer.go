package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// World is what the raytracer needs from a scene
type World interface {
	Intersect(origin, direction core.Vec3) (scene.Hit, bool)
	GetLights() []scene.Light
}

var white = core.NewVec3(1, 1, 1)

// Raytracer evaluates colors with recursive Phong shading, reflection and refraction.
// A Raytracer keeps per-instance statistics and must not be shared between goroutines.
type Raytracer struct {
	world  World
	config Config
	stats  RayStats
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world World, config Config) *Raytracer {
	return &Raytracer{
		world:  world,
		config: config,
	}
}

// Stats returns the ray counts accumulated since creation or the last ResetStats
func (rt *Raytracer) Stats() RayStats {
	return rt.stats
}

// ResetStats clears the accumulated ray counts
func (rt *Raytracer) ResetStats() {
	rt.stats = RayStats{}
}

// CastRay returns the color seen along a unit-length direction.
// depth is the number of bounces that produced this ray (0 for primary rays).
func (rt *Raytracer) CastRay(origin, direction core.Vec3, depth int) core.Vec3 {
	if depth > rt.config.MaxDepth {
		return rt.config.Background
	}

	rt.stats.recordRay(depth)
	hit, isHit := rt.world.Intersect(origin, direction)
	if !isHit {
		return rt.config.Background
	}

	m := hit.Material
	n := hit.Normal

	reflectDir := material.Reflect(direction, n).Normalize()
	reflectColor := rt.CastRay(rt.offsetOrigin(hit.Point, reflectDir, n), reflectDir, depth+1)

	// Total internal reflection leaves the refraction term dark
	var refractColor core.Vec3
	if refractDir, ok := material.Refract(direction, n, m.RefractiveIndex); ok {
		refractDir = refractDir.Normalize()
		refractColor = rt.CastRay(rt.offsetOrigin(hit.Point, refractDir, n), refractDir, depth+1)
	}

	diffuse, specular := rt.directLighting(hit, direction)

	return m.DiffuseColor.Multiply(diffuse * m.Albedo.X).
		Add(white.Multiply(specular * m.Albedo.Y)).
		Add(reflectColor.Multiply(m.Albedo.Z)).
		Add(refractColor.Multiply(m.Albedo.W))
}

// directLighting sums the diffuse and specular intensities from every unoccluded light
func (rt *Raytracer) directLighting(hit scene.Hit, direction core.Vec3) (diffuse, specular float32) {
	n := hit.Normal
	exponent := hit.Material.SpecularExponent

	for _, light := range rt.world.GetLights() {
		toLight := light.Position.Subtract(hit.Point)
		lightDistance := toLight.Length()
		lightDir := toLight.Normalize()

		shadowOrigin := rt.offsetOrigin(hit.Point, lightDir, n)
		rt.stats.ShadowRays++
		if shadowHit, occluded := rt.world.Intersect(shadowOrigin, lightDir); occluded &&
			shadowHit.Point.Subtract(shadowOrigin).Length() < lightDistance {
			continue
		}

		diffuse += light.Intensity * max(0, lightDir.Dot(n))

		highlight := max(0, -material.Reflect(lightDir.Negate(), n).Dot(direction))
		specular += pow32(highlight, exponent) * light.Intensity
	}

	return diffuse, specular
}

// pow32 raises base to exp in single precision. math has no float32 Pow, so
// the power is evaluated in float64 and rounded once on the way out.
func pow32(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}

// offsetOrigin nudges point off the surface to the side that direction leaves through
func (rt *Raytracer) offsetOrigin(point, direction, normal core.Vec3) core.Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(rt.config.Bias))
	}
	return point.Add(normal.Multiply(rt.config.Bias))
}

// RenderRows shades every pixel of rows [y0, y1) into the framebuffer
func (rt *Raytracer) RenderRows(camera *Camera, fb *Framebuffer, y0, y1 int) {
	for j := y0; j < y1; j++ {
		row := fb.Row(j)
		for i := range row {
			ray := camera.GetRay(i, j)
			row[i] = rt.CastRay(ray.Origin, ray.Direction, 0)
		}
	}
}
