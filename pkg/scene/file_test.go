package scene

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
	"github.com/df07/go-raytracer/pkg/material"
)

const fullSceneYAML = `# Scene: Full
width: 320
height: 240
fov: 60
max_recursion_depth: 4
background: [10, 20, 30]
camera: [0, 1, 5]
lights:
  - type: point
    position: [1, 2, 3]
    color: [255, 200, 100]
    intensity: 500
  - type: directional
    direction: [0, -2, 0]
    intensity: 1.5
objects:
  - mesh: {type: plane, origin: [0, -1, 0], normal: [0, -3, 0]}
    material:
      checkerboard: {width: 2, height: 2, size: 1, colors: [[255, 255, 255], [0, 0, 0]]}
      albedo: 0.5
  - mesh: {type: sphere, center: [0, 0, -3], radius: 1.5}
    material:
      color: [230, 230, 230]
      albedo: 0.8
      surface: reflective
      reflectivity: 0.7
  - mesh: {type: sphere, center: [2, 0, -3], radius: 0.5}
    material:
      color: [10, 20, 30]
      surface: refractive
`

func TestParseFullScene(t *testing.T) {
	s, err := Parse([]byte(fullSceneYAML), ".")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if s.Width != 320 || s.Height != 240 || s.FOV != 60 || s.MaxRecursionDepth != 4 {
		t.Errorf("Unexpected scene settings: %dx%d fov %v depth %d", s.Width, s.Height, s.FOV, s.MaxRecursionDepth)
	}
	if s.Background != core.NewColor(10, 20, 30) {
		t.Errorf("Background = %v", s.Background)
	}
	if s.CameraPosition != core.NewVec3(0, 1, 5) {
		t.Errorf("CameraPosition = %v", s.CameraPosition)
	}

	if len(s.Lights) != 2 {
		t.Fatalf("Expected 2 lights, got %d", len(s.Lights))
	}
	point := s.Lights[0]
	if point.Type != lights.LightTypePoint || point.Position != core.NewVec3(1, 2, 3) || point.Tint != core.NewColor(255, 200, 100) || point.Power != 500 {
		t.Errorf("Unexpected point light: %+v", point)
	}
	dir := s.Lights[1]
	if dir.Type != lights.LightTypeDirectional || dir.Heading != core.NewVec3(0, -1, 0) || dir.Tint != core.White {
		t.Errorf("Unexpected directional light: %+v", dir)
	}

	if len(s.Objects) != 3 {
		t.Fatalf("Expected 3 objects, got %d", len(s.Objects))
	}
	floor := s.Objects[0]
	if floor.Mesh.Type != geometry.MeshPlane || floor.Mesh.Plane.Normal != core.NewVec3(0, -1, 0) {
		t.Errorf("Expected plane with normalized normal, got %+v", floor.Mesh)
	}
	if floor.Material.Coloring.Type != material.ColoringTexture || floor.Material.Albedo != 0.5 {
		t.Errorf("Expected textured floor with albedo 0.5, got %+v", floor.Material)
	}

	mirror := s.Objects[1]
	if r, ok := mirror.Material.Reflectivity(); !ok || r != 0.7 {
		t.Errorf("Expected reflectivity 0.7, got %v %v", r, ok)
	}
	if mirror.Mesh.Sphere.Radius != 1.5 {
		t.Errorf("Expected radius 1.5, got %v", mirror.Mesh.Sphere.Radius)
	}

	glass := s.Objects[2]
	if glass.Material.Surface.Type != material.SurfaceRefractive {
		t.Errorf("Expected refractive surface, got %v", glass.Material.Surface.Type)
	}
	if glass.Material.Albedo != 1.0 {
		t.Errorf("Expected default albedo 1.0, got %v", glass.Material.Albedo)
	}
}

func TestParseDefaults(t *testing.T) {
	s, err := Parse([]byte(minimalSceneYAML), ".")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.FOV != 90 {
		t.Errorf("Expected default fov 90, got %v", s.FOV)
	}
	if s.Background != core.Black {
		t.Errorf("Expected black background, got %v", s.Background)
	}
	if s.CameraPosition != (core.Vec3{}) {
		t.Errorf("Expected camera at origin, got %v", s.CameraPosition)
	}
	if s.Objects[0].Material.Surface.Type != material.SurfaceDiffuse {
		t.Errorf("Expected diffuse by default")
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name        string
		yaml        string
		wantInvalid bool   // errors.Is(err, ErrInvalidScene)
		contains    string // substring of the error message
	}{
		{"empty", "", false, "empty scene file"},
		{"syntax", "width: [1,", false, "failed to parse YAML"},
		{"unknown field", "width: 4\nheigth: 3\n", false, "heigth"},
		{"short vector", "width: 4\nheight: 3\ncamera: [1, 2]\n", false, "failed to parse YAML"},
		{"zero width", "width: 0\nheight: 3\n", true, "width"},
		{"bad fov", "width: 4\nheight: 3\nfov: 180\n", true, "fov"},
		{"negative depth", "width: 4\nheight: 3\nmax_recursion_depth: -1\n", true, "max_recursion_depth"},
		{"background range", "width: 4\nheight: 3\nbackground: [0, 300, 0]\n", true, "background"},
		{"unknown light", "width: 4\nheight: 3\nlights: [{type: spot, intensity: 1}]\n", true, "lights[0]"},
		{"point without position", "width: 4\nheight: 3\nlights: [{type: point, intensity: 1}]\n", true, "position"},
		{"zero direction", "width: 4\nheight: 3\nlights: [{type: directional, direction: [0, 0, 0], intensity: 1}]\n", true, "non-zero"},
		{"negative intensity", "width: 4\nheight: 3\nlights: [{type: directional, direction: [0, 0, -1], intensity: -1}]\n", true, "intensity"},
		{"zero radius", "width: 4\nheight: 3\nobjects: [{mesh: {type: sphere, center: [0, 0, 0], radius: 0}, material: {color: [1, 1, 1]}}]\n", true, "objects[0].mesh"},
		{"unknown mesh", "width: 4\nheight: 3\nobjects: [{mesh: {type: cube}, material: {color: [1, 1, 1]}}]\n", true, "cube"},
		{"zero normal", "width: 4\nheight: 3\nobjects: [{mesh: {type: plane, origin: [0, 0, 0], normal: [0, 0, 0]}, material: {color: [1, 1, 1]}}]\n", true, "normal"},
		{"no coloring", "width: 4\nheight: 3\nobjects: [{mesh: {type: sphere, center: [0, 0, 0], radius: 1}, material: {albedo: 1}}]\n", true, "exactly one"},
		{"two colorings", "width: 4\nheight: 3\nobjects: [{mesh: {type: sphere, center: [0, 0, 0], radius: 1}, material: {color: [1, 1, 1], texture: a.png}}]\n", true, "exactly one"},
		{"bad reflectivity", "width: 4\nheight: 3\nobjects: [{mesh: {type: sphere, center: [0, 0, 0], radius: 1}, material: {color: [1, 1, 1], surface: reflective, reflectivity: 1.5}}]\n", true, "reflectivity"},
		{"unknown surface", "width: 4\nheight: 3\nobjects: [{mesh: {type: sphere, center: [0, 0, 0], radius: 1}, material: {color: [1, 1, 1], surface: glossy}}]\n", true, "glossy"},
		{"missing texture", "width: 4\nheight: 3\nobjects: [{mesh: {type: sphere, center: [0, 0, 0], radius: 1}, material: {texture: missing.png}}]\n", true, "missing.png"},
		{"bad checkerboard", "width: 4\nheight: 3\nobjects: [{mesh: {type: sphere, center: [0, 0, 0], radius: 1}, material: {checkerboard: {width: 0, height: 2, size: 1, colors: [[0, 0, 0], [1, 1, 1]]}}}]\n", true, "checkerboard"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml), t.TempDir())
			if err == nil {
				t.Fatal("Expected error")
			}
			if got := errors.Is(err, ErrInvalidScene); got != tc.wantInvalid {
				t.Errorf("errors.Is(err, ErrInvalidScene) = %v, want %v (err: %v)", got, tc.wantInvalid, err)
			}
			if !strings.Contains(err.Error(), tc.contains) {
				t.Errorf("Error %q does not mention %q", err.Error(), tc.contains)
			}
		})
	}
}

func TestLoadWithRelativeTexture(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "textures"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 12, G: 34, B: 56, A: 255})
	f, err := os.Create(filepath.Join(dir, "textures", "swatch.png"))
	if err != nil {
		t.Fatalf("Failed to create texture: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode texture: %v", err)
	}
	f.Close()

	path := writeSceneFile(t, dir, "textured.yaml", `width: 4
height: 3
objects:
  - mesh: {type: sphere, center: [0, 0, -3], radius: 1}
    material: {texture: textures/swatch.png}
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got := s.Objects[0].Material.Color(core.NewVec2(0.3, 0.7))
	if got != core.NewColor(12, 34, 56) {
		t.Errorf("Expected texture color, got %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected wrapped not-exist error, got %v", err)
	}
}
