package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
)

// Scene contains all the elements needed for rendering.
// It is treated as immutable once rendering starts.
type Scene struct {
	Width             int        // Image width in pixels
	Height            int        // Image height in pixels
	FOV               float64    // Field of view in degrees
	MaxRecursionDepth int        // Maximum number of mirror bounces per primary ray
	CameraPosition    core.Vec3  // Origin of every primary ray (world origin by default)
	Background        core.Color // Color returned for rays that miss everything
	Lights            []lights.Light
	Objects           []geometry.Object
}

// SpawnPrimeRay returns the camera ray through the center of pixel (x, y).
// The camera looks down -z with +y up; pixels stay square for any aspect ratio.
func (s *Scene) SpawnPrimeRay(x, y int) core.Ray {
	// + 0.5 to center the ray in the pixel
	sensorX := (float64(x) + 0.5) / float64(s.Width)
	sensorY := (float64(y) + 0.5) / float64(s.Height)

	// Map to [-1, 1] and flip y
	sensorX = 2.0*sensorX - 1.0
	sensorY = 1.0 - 2.0*sensorY

	// Adjust for the aspect ratio
	if s.Width > s.Height {
		sensorX *= float64(s.Width) / float64(s.Height)
	} else {
		sensorY *= float64(s.Height) / float64(s.Width)
	}

	// Adjust for the field of view
	fovAdjustment := math.Tan(s.FOV * math.Pi / 180.0 / 2.0)
	sensorX *= fovAdjustment
	sensorY *= fovAdjustment

	direction := core.NewVec3(sensorX, sensorY, -1.0).Normalize()
	return core.NewRay(s.CameraPosition, direction)
}

// Validate checks every rendering precondition so that bad input fails here
// instead of silently producing NaN pixels
func (s *Scene) Validate() error {
	if s.Width <= 0 {
		return invalid("width", "must be positive, got %d", s.Width)
	}
	if s.Height <= 0 {
		return invalid("height", "must be positive, got %d", s.Height)
	}
	if !(s.FOV > 0 && s.FOV < 180) {
		return invalid("fov", "must be in (0, 180) degrees, got %v", s.FOV)
	}
	if s.MaxRecursionDepth < 0 {
		return invalid("max_recursion_depth", "must be non-negative, got %d", s.MaxRecursionDepth)
	}
	if !s.CameraPosition.IsFinite() {
		return invalid("camera", "position %v is not finite", s.CameraPosition)
	}

	for i, light := range s.Lights {
		if err := light.Validate(); err != nil {
			return invalid(fmt.Sprintf("lights[%d]", i), "%v", err)
		}
	}

	for i, object := range s.Objects {
		if err := object.Mesh.Validate(); err != nil {
			return invalid(fmt.Sprintf("objects[%d].mesh", i), "%v", err)
		}
		if err := object.Material.Validate(); err != nil {
			return invalid(fmt.Sprintf("objects[%d].material", i), "%v", err)
		}
	}

	return nil
}

// GetPrimitiveCount returns the total number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}
