package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
	"github.com/df07/go-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres in front of a back wall over a gray floor,
// lit by a directional light and two point lights
func NewDefaultScene() *Scene {
	s := &Scene{
		Width:             1600,
		Height:            1200,
		FOV:               90.0,
		MaxRecursionDepth: 3,
		Lights: []lights.Light{
			lights.NewDirectionalLight(core.NewVec3(0.25, -0.5, -0.5), core.White, 2.0),
			lights.NewPointLight(core.NewVec3(0.3, -0.7, -1.5), core.White, 300.0),
			lights.NewPointLight(core.NewVec3(0.0, 10.0, -10.0), core.White, 10000.0),
		},
	}

	// Configured plane normals point away from the camera
	floor := geometry.NewPlane(core.NewVec3(0, -3, 0), core.NewVec3(0, -1, 0))
	backWall := geometry.NewPlane(core.NewVec3(0, 0, -20), core.NewVec3(0, 0, -1))

	s.Objects = []geometry.Object{
		geometry.NewObject(geometry.PlaneMesh(floor), material.NewSolidDiffuse(core.NewColor(60, 60, 60), 0.38)),
		geometry.NewObject(geometry.PlaneMesh(backWall), material.NewSolidDiffuse(core.NewColor(90, 160, 220), 0.38)),
		geometry.NewObject(
			geometry.SphereMesh(geometry.NewSphere(core.NewVec3(-1, 0, -3), 1.0)),
			material.NewSolidDiffuse(core.NewColor(150, 10, 20), 0.38),
		),
		geometry.NewObject(
			geometry.SphereMesh(geometry.NewSphere(core.NewVec3(1, 1, -2), 1.0)),
			material.NewSolidDiffuse(core.NewColor(40, 10, 200), 0.38),
		),
		geometry.NewObject(
			geometry.SphereMesh(geometry.NewSphere(core.NewVec3(-1, 0, -8), 3.0)),
			material.NewSolidDiffuse(core.NewColor(10, 200, 60), 0.18),
		),
	}

	return s
}

// NewSingleSphereScene creates one diffuse sphere at the origin lit head-on by a
// directional light, viewed from five units back
func NewSingleSphereScene() *Scene {
	return &Scene{
		Width:             800,
		Height:            600,
		FOV:               90.0,
		MaxRecursionDepth: 0,
		CameraPosition:    core.NewVec3(0, 0, 5),
		Lights: []lights.Light{
			lights.NewDirectionalLight(core.NewVec3(0, 0, -1), core.White, 1.0),
		},
		Objects: []geometry.Object{
			geometry.NewObject(
				geometry.SphereMesh(geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0)),
				material.NewSolidDiffuse(core.NewColor(200, 20, 50), 1.0),
			),
		},
	}
}
