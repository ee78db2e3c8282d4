package material

import "github.com/df07/go-phong-raytracer/pkg/core"

// Material describes how a surface responds to light under the Phong model.
// It is a plain value: hit results carry a copy.
type Material struct {
	RefractiveIndex float32 // Index of refraction (1.0 = no bending)

	// Albedo holds the four blend gains applied to the shading terms:
	// X diffuse, Y specular, Z mirror reflection, W refraction.
	// The weights are independent and need not sum to one.
	Albedo core.Vec4

	DiffuseColor     core.Vec3 // Lambertian color, usually within [0,1]
	SpecularExponent float32   // Phong shininess, > 0
}

// NewMaterial creates a new material
func NewMaterial(refractiveIndex float32, albedo core.Vec4, diffuseColor core.Vec3, specularExponent float32) Material {
	return Material{
		RefractiveIndex:  refractiveIndex,
		Albedo:           albedo,
		DiffuseColor:     diffuseColor,
		SpecularExponent: specularExponent,
	}
}

// NewDiffuse creates an opaque, purely Lambertian material
func NewDiffuse(color core.Vec3) Material {
	return NewMaterial(1.0, core.NewVec4(1, 0, 0, 0), color, 1)
}

// Preset materials used by the default scene
var (
	Ivory     = NewMaterial(1.0, core.NewVec4(0.6, 0.3, 0.1, 0.0), core.NewVec3(0.4, 0.4, 0.3), 50)
	Glass     = NewMaterial(1.5, core.NewVec4(0.0, 0.5, 0.1, 0.8), core.NewVec3(0.6, 0.7, 0.8), 125)
	RedRubber = NewMaterial(1.0, core.NewVec4(0.9, 0.1, 0.0, 0.0), core.NewVec3(0.3, 0.1, 0.1), 10)
	Mirror    = NewMaterial(1.0, core.NewVec4(0.0, 10.0, 0.8, 0.0), core.NewVec3(1.0, 1.0, 1.0), 1425)
)

