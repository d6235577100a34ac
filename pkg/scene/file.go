package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/material"
	"gopkg.in/yaml.v3"
)

const (
	defaultFOV    = 90.0
	defaultAlbedo = 1.0
)

// File is the YAML form of a scene description
type File struct {
	Width             int          `yaml:"width"`
	Height            int          `yaml:"height"`
	FOV               float64      `yaml:"fov,omitempty"`
	MaxRecursionDepth int          `yaml:"max_recursion_depth"`
	Background        *[3]int      `yaml:"background,omitempty"`
	Camera            *[3]float64  `yaml:"camera,omitempty"`
	Lights            []LightSpec  `yaml:"lights"`
	Objects           []ObjectSpec `yaml:"objects"`
}

// LightSpec describes a point or directional light
type LightSpec struct {
	Type      string      `yaml:"type"`
	Position  *[3]float64 `yaml:"position,omitempty"`
	Direction *[3]float64 `yaml:"direction,omitempty"`
	Color     *[3]int     `yaml:"color,omitempty"`
	Intensity float64     `yaml:"intensity"`
}

// ObjectSpec pairs a mesh with its material
type ObjectSpec struct {
	Mesh     MeshSpec     `yaml:"mesh"`
	Material MaterialSpec `yaml:"material"`
}

// MeshSpec describes a sphere (center, radius) or a plane (origin, normal)
type MeshSpec struct {
	Type   string      `yaml:"type"`
	Center *[3]float64 `yaml:"center,omitempty"`
	Radius float64     `yaml:"radius,omitempty"`
	Origin *[3]float64 `yaml:"origin,omitempty"`
	Normal *[3]float64 `yaml:"normal,omitempty"`
}

// MaterialSpec describes coloring and surface response.
// Exactly one of Color, Texture or Checkerboard selects the coloring.
type MaterialSpec struct {
	Color        *[3]int           `yaml:"color,omitempty"`
	Texture      string            `yaml:"texture,omitempty"` // Image path, relative to the scene file
	Checkerboard *CheckerboardSpec `yaml:"checkerboard,omitempty"`
	Albedo       *float64          `yaml:"albedo,omitempty"`
	Surface      string            `yaml:"surface,omitempty"` // diffuse (default), reflective, refractive
	Reflectivity float64           `yaml:"reflectivity,omitempty"`
}

// CheckerboardSpec describes a procedural two-color checker texture
type CheckerboardSpec struct {
	Width  int       `yaml:"width"`
	Height int       `yaml:"height"`
	Size   int       `yaml:"size"`
	Colors [2][3]int `yaml:"colors"`
}

// Load reads, builds and validates a YAML scene file
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	scene, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return scene, nil
}

// Parse builds a scene from YAML. Relative texture paths are resolved against baseDir.
func Parse(data []byte, baseDir string) (*Scene, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty scene file")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	scene, err := file.Build(baseDir)
	if err != nil {
		return nil, err
	}
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	return scene, nil
}

// Build converts the description into a Scene without validating it
func (f *File) Build(baseDir string) (*Scene, error) {
	s := &Scene{
		Width:             f.Width,
		Height:            f.Height,
		FOV:               f.FOV,
		MaxRecursionDepth: f.MaxRecursionDepth,
	}
	if s.FOV == 0 {
		s.FOV = defaultFOV
	}

	if f.Background != nil {
		bg, err := toColor(*f.Background)
		if err != nil {
			return nil, invalid("background", "%v", err)
		}
		s.Background = bg
	}
	if f.Camera != nil {
		s.CameraPosition = toVec3(*f.Camera)
	}

	for i, spec := range f.Lights {
		light, err := spec.build()
		if err != nil {
			return nil, invalid(fmt.Sprintf("lights[%d]", i), "%v", err)
		}
		s.Lights = append(s.Lights, light)
	}

	for i, spec := range f.Objects {
		mesh, err := spec.Mesh.build()
		if err != nil {
			return nil, invalid(fmt.Sprintf("objects[%d].mesh", i), "%v", err)
		}
		mat, err := spec.Material.build(baseDir)
		if err != nil {
			return nil, invalid(fmt.Sprintf("objects[%d].material", i), "%v", err)
		}
		s.Objects = append(s.Objects, geometry.NewObject(mesh, mat))
	}

	return s, nil
}

func (l LightSpec) build() (lights.Light, error) {
	color := core.White
	if l.Color != nil {
		c, err := toColor(*l.Color)
		if err != nil {
			return lights.Light{}, err
		}
		color = c
	}

	switch lights.LightType(l.Type) {
	case lights.LightTypePoint:
		if l.Position == nil {
			return lights.Light{}, fmt.Errorf("point light requires a position")
		}
		return lights.NewPointLight(toVec3(*l.Position), color, l.Intensity), nil
	case lights.LightTypeDirectional:
		if l.Direction == nil {
			return lights.Light{}, fmt.Errorf("directional light requires a direction")
		}
		direction := toVec3(*l.Direction)
		if direction.LengthSquared() == 0 {
			return lights.Light{}, fmt.Errorf("directional light direction must be non-zero")
		}
		return lights.NewDirectionalLight(direction, color, l.Intensity), nil
	default:
		return lights.Light{}, fmt.Errorf("unknown light type %q", l.Type)
	}
}

func (m MeshSpec) build() (geometry.Mesh, error) {
	switch m.Type {
	case "sphere":
		if m.Center == nil {
			return geometry.Mesh{}, fmt.Errorf("sphere requires a center")
		}
		return geometry.SphereMesh(geometry.NewSphere(toVec3(*m.Center), m.Radius)), nil
	case "plane":
		if m.Origin == nil || m.Normal == nil {
			return geometry.Mesh{}, fmt.Errorf("plane requires an origin and a normal")
		}
		normal := toVec3(*m.Normal)
		if normal.LengthSquared() == 0 {
			return geometry.Mesh{}, fmt.Errorf("plane normal must be non-zero")
		}
		return geometry.PlaneMesh(geometry.NewPlane(toVec3(*m.Origin), normal)), nil
	default:
		return geometry.Mesh{}, fmt.Errorf("unknown mesh type %q", m.Type)
	}
}

func (m MaterialSpec) build(baseDir string) (material.Material, error) {
	coloring, err := m.coloring(baseDir)
	if err != nil {
		return material.Material{}, err
	}

	albedo := defaultAlbedo
	if m.Albedo != nil {
		albedo = *m.Albedo
	}

	var surface material.SurfaceKind
	switch m.Surface {
	case "", "diffuse":
		surface = material.Diffuse()
	case "reflective":
		surface = material.Reflective(m.Reflectivity)
	case "refractive":
		surface = material.Refractive()
	default:
		return material.Material{}, fmt.Errorf("unknown surface %q", m.Surface)
	}

	return material.NewMaterial(coloring, albedo, surface), nil
}

func (m MaterialSpec) coloring(baseDir string) (material.Coloring, error) {
	set := 0
	for _, present := range []bool{m.Color != nil, m.Texture != "", m.Checkerboard != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return material.Coloring{}, fmt.Errorf("exactly one of color, texture or checkerboard is required")
	}

	switch {
	case m.Color != nil:
		c, err := toColor(*m.Color)
		if err != nil {
			return material.Coloring{}, err
		}
		return material.SolidColoring(c), nil

	case m.Texture != "":
		path := m.Texture
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		texture, err := loaders.LoadTexture(path)
		if err != nil {
			return material.Coloring{}, err
		}
		return material.TextureColoring(texture), nil

	default:
		cb := m.Checkerboard
		if cb.Width <= 0 || cb.Height <= 0 || cb.Size <= 0 {
			return material.Coloring{}, fmt.Errorf("checkerboard width, height and size must be positive")
		}
		c1, err := toColor(cb.Colors[0])
		if err != nil {
			return material.Coloring{}, err
		}
		c2, err := toColor(cb.Colors[1])
		if err != nil {
			return material.Coloring{}, err
		}
		return material.TextureColoring(material.NewCheckerboardTexture(cb.Width, cb.Height, cb.Size, c1, c2)), nil
	}
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func toColor(c [3]int) (core.Color, error) {
	for _, ch := range c {
		if ch < 0 || ch > 255 {
			return core.Color{}, fmt.Errorf("color channel %d out of range [0, 255]", ch)
		}
	}
	return core.NewColor(uint8(c[0]), uint8(c[1]), uint8(c[2])), nil
}
