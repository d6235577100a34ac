package material

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// ColoringType selects how a surface gets its base color
type ColoringType int

const (
	ColoringSolid ColoringType = iota
	ColoringTexture
)

// Coloring is a closed variant: a flat color or a texture sampled by UV
type Coloring struct {
	Type    ColoringType
	Solid   core.Color
	Texture *Texture
}

// SolidColoring returns a flat coloring
func SolidColoring(color core.Color) Coloring {
	return Coloring{Type: ColoringSolid, Solid: color}
}

// TextureColoring returns a coloring sampled from texture
func TextureColoring(texture *Texture) Coloring {
	return Coloring{Type: ColoringTexture, Texture: texture}
}

// SurfaceType classifies how a surface responds to light
type SurfaceType int

const (
	SurfaceDiffuse SurfaceType = iota
	SurfaceReflective
	// SurfaceRefractive is accepted but shaded as diffuse; refraction is not traced.
	SurfaceRefractive
)

func (s SurfaceType) String() string {
	switch s {
	case SurfaceDiffuse:
		return "diffuse"
	case SurfaceReflective:
		return "reflective"
	case SurfaceRefractive:
		return "refractive"
	default:
		return fmt.Sprintf("SurfaceType(%d)", int(s))
	}
}

// SurfaceKind is a closed variant over diffuse, reflective and refractive surfaces.
// Reflectivity is only meaningful for reflective surfaces.
type SurfaceKind struct {
	Type         SurfaceType
	Reflectivity float64
}

// Diffuse returns a purely diffuse surface kind
func Diffuse() SurfaceKind {
	return SurfaceKind{Type: SurfaceDiffuse}
}

// Reflective returns a mirror surface that blends reflectivity of the reflected color
func Reflective(reflectivity float64) SurfaceKind {
	return SurfaceKind{Type: SurfaceReflective, Reflectivity: reflectivity}
}

// Refractive returns the refractive placeholder surface kind
func Refractive() SurfaceKind {
	return SurfaceKind{Type: SurfaceRefractive}
}

// Material describes an object's appearance
type Material struct {
	Coloring Coloring
	Albedo   float64 // Expected in [0, 1], not enforced
	Surface  SurfaceKind
}

// NewMaterial creates a new material
func NewMaterial(coloring Coloring, albedo float64, surface SurfaceKind) Material {
	return Material{
		Coloring: coloring,
		Albedo:   albedo,
		Surface:  surface,
	}
}

// NewSolidDiffuse is shorthand for a flat-colored diffuse material
func NewSolidDiffuse(color core.Color, albedo float64) Material {
	return NewMaterial(SolidColoring(color), albedo, Diffuse())
}

// Color resolves the surface color at texture coordinates uv
func (m Material) Color(uv core.Vec2) core.Color {
	switch m.Coloring.Type {
	case ColoringSolid:
		return m.Coloring.Solid
	case ColoringTexture:
		return m.Coloring.Texture.ColorAt(uv)
	default:
		panic(fmt.Sprintf("material: unknown coloring type %d", m.Coloring.Type))
	}
}

// Reflectivity returns the mirror blend factor and whether the surface reflects at all
func (m Material) Reflectivity() (float64, bool) {
	if m.Surface.Type != SurfaceReflective {
		return 0, false
	}
	return m.Surface.Reflectivity, true
}

// Validate reports materials that would make shading misbehave
func (m Material) Validate() error {
	switch m.Coloring.Type {
	case ColoringSolid:
	case ColoringTexture:
		if err := m.Coloring.Texture.Validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown coloring type %d", m.Coloring.Type)
	}

	if math.IsNaN(m.Albedo) || math.IsInf(m.Albedo, 0) {
		return fmt.Errorf("albedo %v is not finite", m.Albedo)
	}

	switch m.Surface.Type {
	case SurfaceDiffuse, SurfaceRefractive:
	case SurfaceReflective:
		r := m.Surface.Reflectivity
		if math.IsNaN(r) || r < 0 || r > 1 {
			return fmt.Errorf("reflectivity %v must be in [0, 1]", r)
		}
	default:
		return fmt.Errorf("unknown surface type %d", m.Surface.Type)
	}
	return nil
}
