package creature

import (
	"image"
	"image/color"

	"lowpoly-creature/internal/texture"
)

// Material is the opaque surface handle packaged with the creature asset.
// Shading graphs and texture synthesis live outside this repository; the
// pipeline only carries the handle through to whatever renders the mesh.
type Material struct {
	BaseColor color.NRGBA
	Roughness float64
	Texture   *image.NRGBA // optional skin texture, nil for flat color
}

// DefaultMaterial is the matte gray elephant skin.
func DefaultMaterial() Material {
	return Material{
		BaseColor: color.NRGBA{R: 0x99, G: 0x9b, B: 0x9f, A: 0xff},
		Roughness: 0.85,
	}
}

// LoadMaterial builds a material around a skin texture file (PNG, JPEG, TGA).
func LoadMaterial(texturePath string) (Material, error) {
	img, err := texture.Load(texturePath)
	if err != nil {
		return Material{}, err
	}
	m := DefaultMaterial()
	m.Texture = img
	return m, nil
}
