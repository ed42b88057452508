package scene

import "scene-viewer/core"

// Material describes Phong surface properties for a mesh.
type Material struct {
	Name      string
	Albedo    core.Color // base diffuse color (multiplied with albedo texture if set)
	Specular  core.Color // specular highlight color
	Shininess float32    // Phong shininess exponent (1-256+)
	Unlit     bool       // skip lighting calculation, output raw albedo/texture color

	// Optional albedo texture; if set, it is multiplied with Albedo.
	// Upload via the renderer before drawing.
	AlbedoTexture *Texture
}

// DefaultMaterial returns a plain white matte material.
func DefaultMaterial() *Material {
	return &Material{
		Name:      "Default",
		Albedo:    core.ColorWhite,
		Specular:  core.Color{R: 0.3, G: 0.3, B: 0.3, A: 1},
		Shininess: 32,
	}
}

// NewMaterial creates a material with the given albedo color.
func NewMaterial(name string, albedo core.Color) *Material {
	return &Material{
		Name:      name,
		Albedo:    albedo,
		Specular:  core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1},
		Shininess: 32,
	}
}

// NewUnlitMaterial creates a material that renders at full albedo
// brightness regardless of scene lighting. Used for markers, helper
// geometry and debug lines.
func NewUnlitMaterial(name string, albedo core.Color) *Material {
	return &Material{
		Name:   name,
		Albedo: albedo,
		Unlit:  true,
	}
}
