package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
	"github.com/df07/go-raytracer/pkg/material"
)

func TestSpawnPrimeRay(t *testing.T) {
	s := &Scene{Width: 800, Height: 600, FOV: 90}

	tests := []struct {
		name   string
		x, y   int
		checks func(d core.Vec3) bool
	}{
		{"top-left points up-left", 0, 0, func(d core.Vec3) bool { return d.X < 0 && d.Y > 0 && d.Z < 0 }},
		{"top-right points up-right", 799, 0, func(d core.Vec3) bool { return d.X > 0 && d.Y > 0 && d.Z < 0 }},
		{"bottom-left points down-left", 0, 599, func(d core.Vec3) bool { return d.X < 0 && d.Y < 0 && d.Z < 0 }},
		{"bottom-right points down-right", 799, 599, func(d core.Vec3) bool { return d.X > 0 && d.Y < 0 && d.Z < 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := s.SpawnPrimeRay(tt.x, tt.y)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Expected origin at zero, got %v", ray.Origin)
			}
			if math.Abs(ray.Direction.Length()-1) > 1e-9 {
				t.Errorf("Expected unit direction, got length %v", ray.Direction.Length())
			}
			if !tt.checks(ray.Direction) {
				t.Errorf("Unexpected direction %v", ray.Direction)
			}
		})
	}
}

func TestSpawnPrimeRayCenter(t *testing.T) {
	// Odd dimensions put a pixel center exactly on the axis
	s := &Scene{Width: 3, Height: 3, FOV: 60, CameraPosition: core.NewVec3(1, 2, 3)}
	ray := s.SpawnPrimeRay(1, 1)

	if ray.Origin != core.NewVec3(1, 2, 3) {
		t.Errorf("Expected camera position origin, got %v", ray.Origin)
	}
	want := core.NewVec3(0, 0, -1)
	if ray.Direction.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", want, ray.Direction)
	}
}

func TestSpawnPrimeRayFieldOfView(t *testing.T) {
	// With fov 90 and a square image, the far edge of the sensor sits at x = 1
	s := &Scene{Width: 2, Height: 2, FOV: 90}
	d := s.SpawnPrimeRay(1, 0).Direction
	// Pixel center is at sensor (0.5, 0.5), so direction ~ (0.5, 0.5, -1)
	want := core.NewVec3(0.5, 0.5, -1).Normalize()
	if d.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", want, d)
	}
}

func TestSpawnPrimeRayAspect(t *testing.T) {
	// Square pixels: the horizontal angle per pixel equals the vertical one
	for _, size := range [][2]int{{400, 200}, {200, 400}} {
		s := &Scene{Width: size[0], Height: size[1], FOV: 90}
		left := s.SpawnPrimeRay(0, size[1]/2)
		right := s.SpawnPrimeRay(1, size[1]/2)
		top := s.SpawnPrimeRay(size[0]/2, 0)
		below := s.SpawnPrimeRay(size[0]/2, 1)

		dx := right.Direction.X/-right.Direction.Z - left.Direction.X/-left.Direction.Z
		dy := top.Direction.Y/-top.Direction.Z - below.Direction.Y/-below.Direction.Z
		if math.Abs(dx-dy) > 1e-9 {
			t.Errorf("%dx%d: pixel pitch differs: dx=%v dy=%v", size[0], size[1], dx, dy)
		}
	}
}

func validScene() *Scene {
	return &Scene{
		Width:  4,
		Height: 3,
		FOV:    90,
		Lights: []lights.Light{lights.NewPointLight(core.NewVec3(0, 2, 0), core.White, 100)},
		Objects: []geometry.Object{
			geometry.NewObject(
				geometry.SphereMesh(geometry.NewSphere(core.NewVec3(0, 0, -3), 1)),
				material.NewSolidDiffuse(core.White, 1),
			),
		},
	}
}

func TestValidate(t *testing.T) {
	if err := validScene().Validate(); err != nil {
		t.Fatalf("Expected valid scene, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(s *Scene)
		field  string
	}{
		{"zero width", func(s *Scene) { s.Width = 0 }, "width"},
		{"negative height", func(s *Scene) { s.Height = -1 }, "height"},
		{"zero fov", func(s *Scene) { s.FOV = 0 }, "fov"},
		{"nan fov", func(s *Scene) { s.FOV = math.NaN() }, "fov"},
		{"negative depth", func(s *Scene) { s.MaxRecursionDepth = -2 }, "max_recursion_depth"},
		{"nan camera", func(s *Scene) { s.CameraPosition = core.NewVec3(math.NaN(), 0, 0) }, "camera"},
		{"negative light", func(s *Scene) { s.Lights[0].Power = -1 }, "lights[0]"},
		{"zero radius", func(s *Scene) { s.Objects[0].Mesh.Sphere.Radius = 0 }, "objects[0].mesh"},
		{"non-unit plane normal", func(s *Scene) {
			s.Objects = append(s.Objects, geometry.NewObject(
				geometry.PlaneMesh(geometry.Plane{Origin: core.NewVec3(0, -1, 0), Normal: core.NewVec3(0, -2, 0)}),
				material.NewSolidDiffuse(core.White, 1),
			))
		}, "objects[1].mesh"},
		{"reflectivity above one", func(s *Scene) { s.Objects[0].Material.Surface = material.Reflective(1.2) }, "objects[0].material"},
		{"empty texture", func(s *Scene) {
			s.Objects[0].Material.Coloring = material.TextureColoring(material.NewTexture(material.NewPixelGrid(0, 0, nil)))
		}, "objects[0].material"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validScene()
			tt.mutate(s)
			err := s.Validate()
			if !errors.Is(err, ErrInvalidScene) {
				t.Fatalf("Expected ErrInvalidScene, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestGetPrimitiveCount(t *testing.T) {
	if got := NewDefaultScene().GetPrimitiveCount(); got != 5 {
		t.Errorf("Expected 5 objects in default scene, got %d", got)
	}
}
