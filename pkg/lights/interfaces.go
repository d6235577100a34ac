package lights

import "github.com/df07/go-raytracer/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeDirectional LightType = "directional"
)

// Illuminator is what the shading loop needs from a light source
type Illuminator interface {
	// Color returns the light's color
	Color() core.Color

	// Intensity returns the light's intensity as seen from point
	Intensity(point core.Vec3) float64

	// Direction returns the unit vector FROM point TO the light
	Direction(point core.Vec3) core.Vec3

	// Distance returns the distance from point to the light (+Inf for directional lights)
	Distance(point core.Vec3) float64
}
