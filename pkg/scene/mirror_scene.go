package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
	"github.com/df07/go-raytracer/pkg/material"
)

// NewMirrorScene creates a mirrored sphere flanked by colored spheres over a
// partially reflective floor
func NewMirrorScene() *Scene {
	mirror := material.NewMaterial(material.SolidColoring(core.NewColor(230, 230, 230)), 0.6, material.Reflective(0.8))
	glossyFloor := material.NewMaterial(material.SolidColoring(core.NewColor(80, 80, 90)), 0.5, material.Reflective(0.25))

	return &Scene{
		Width:             800,
		Height:            450,
		FOV:               70.0,
		MaxRecursionDepth: 5,
		Background:        core.NewColor(20, 20, 30),
		Lights: []lights.Light{
			lights.NewDirectionalLight(core.NewVec3(-0.3, -1, -0.6), core.White, 3.0),
			lights.NewPointLight(core.NewVec3(2, 3, -2), core.NewColor(255, 230, 200), 2000.0),
		},
		Objects: []geometry.Object{
			geometry.NewObject(
				geometry.PlaneMesh(geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, -1, 0))),
				glossyFloor,
			),
			geometry.NewObject(
				geometry.SphereMesh(geometry.NewSphere(core.NewVec3(0, 0.2, -5), 1.2)),
				mirror,
			),
			geometry.NewObject(
				geometry.SphereMesh(geometry.NewSphere(core.NewVec3(-2.4, -0.2, -4), 0.8)),
				material.NewSolidDiffuse(core.NewColor(220, 40, 40), 0.9),
			),
			geometry.NewObject(
				geometry.SphereMesh(geometry.NewSphere(core.NewVec3(2.4, -0.2, -4), 0.8)),
				material.NewSolidDiffuse(core.NewColor(40, 200, 80), 0.9),
			),
		},
	}
}

// NewTextureScene creates checkerboard-textured surfaces without loading any files
func NewTextureScene() *Scene {
	floorChecks := material.NewCheckerboardTexture(2, 2, 1, core.NewColor(230, 230, 230), core.NewColor(40, 40, 40))
	ballChecks := material.NewCheckerboardTexture(16, 8, 1, core.NewColor(250, 200, 40), core.NewColor(40, 80, 200))

	return &Scene{
		Width:             640,
		Height:            480,
		FOV:               75.0,
		MaxRecursionDepth: 2,
		Background:        core.NewColor(135, 180, 235),
		Lights: []lights.Light{
			lights.NewDirectionalLight(core.NewVec3(0.2, -1, -0.4), core.White, 3.5),
		},
		Objects: []geometry.Object{
			geometry.NewObject(
				geometry.PlaneMesh(geometry.NewPlane(core.NewVec3(0, -1.5, 0), core.NewVec3(0, -1, 0))),
				material.NewMaterial(material.TextureColoring(floorChecks), 0.8, material.Diffuse()),
			),
			geometry.NewObject(
				geometry.SphereMesh(geometry.NewSphere(core.NewVec3(0, 0, -4), 1.5)),
				material.NewMaterial(material.TextureColoring(ballChecks), 0.9, material.Reflective(0.1)),
			),
		},
	}
}
