package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Light is a closed variant over point and directional lights.
// Position is used by point lights, Heading by directional lights.
type Light struct {
	Type     LightType
	Position core.Vec3
	Heading  core.Vec3 // Direction the light travels (directional lights)
	Tint     core.Color
	Power    float64
}

// NewPointLight creates a light radiating from position with inverse-square falloff
func NewPointLight(position core.Vec3, color core.Color, intensity float64) Light {
	return Light{
		Type:     LightTypePoint,
		Position: position,
		Tint:     color,
		Power:    intensity,
	}
}

// NewDirectionalLight creates a light arriving from infinitely far away along direction
func NewDirectionalLight(direction core.Vec3, color core.Color, intensity float64) Light {
	return Light{
		Type:    LightTypeDirectional,
		Heading: direction.Normalize(),
		Tint:    color,
		Power:   intensity,
	}
}

// Color returns the light's color
func (l Light) Color() core.Color {
	return l.Tint
}

// Intensity returns the intensity reaching point.
// Point lights fall off as intensity / (4π d²); directional lights do not attenuate.
func (l Light) Intensity(point core.Vec3) float64 {
	switch l.Type {
	case LightTypePoint:
		r2 := l.Position.Subtract(point).LengthSquared()
		return l.Power / (4.0 * math.Pi * r2)
	case LightTypeDirectional:
		return l.Power
	default:
		panic(fmt.Sprintf("lights: unknown light type %q", l.Type))
	}
}

// Direction returns the unit vector from point toward the light
func (l Light) Direction(point core.Vec3) core.Vec3 {
	switch l.Type {
	case LightTypePoint:
		return l.Position.Subtract(point).Normalize()
	case LightTypeDirectional:
		return l.Heading.Negate().Normalize()
	default:
		panic(fmt.Sprintf("lights: unknown light type %q", l.Type))
	}
}

// Distance returns the Euclidean distance to a point light, +Inf for directional lights
func (l Light) Distance(point core.Vec3) float64 {
	switch l.Type {
	case LightTypePoint:
		return l.Position.Subtract(point).Length()
	case LightTypeDirectional:
		return math.Inf(1)
	default:
		panic(fmt.Sprintf("lights: unknown light type %q", l.Type))
	}
}

// Validate reports a light that would produce NaNs or negative light
func (l Light) Validate() error {
	switch l.Type {
	case LightTypePoint:
		if !l.Position.IsFinite() {
			return fmt.Errorf("point light position %v is not finite", l.Position)
		}
	case LightTypeDirectional:
		if !l.Heading.IsFinite() || l.Heading.LengthSquared() == 0 {
			return fmt.Errorf("directional light direction %v is degenerate", l.Heading)
		}
	default:
		return fmt.Errorf("unknown light type %q", l.Type)
	}
	if math.IsNaN(l.Power) || math.IsInf(l.Power, 0) || l.Power < 0 {
		return fmt.Errorf("light intensity %v must be finite and non-negative", l.Power)
	}
	return nil
}
