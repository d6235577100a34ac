package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
)

// MinHitDistance is the smallest ray parameter accepted as a hit by every shape.
// Hits at or behind it are misses, so a ray leaving a surface never re-hits it at t≈0.
const MinHitDistance = 0.001

// Shape is implemented by every primitive. Ray directions are unit length.
type Shape interface {
	// IntersectDistance returns the nearest hit distance greater than MinHitDistance
	IntersectDistance(ray core.Ray) (float64, bool)

	// SurfaceNormal returns the unit surface normal at a point on the shape
	SurfaceNormal(hitPoint core.Vec3) core.Vec3

	// TextureCoords returns the UV parameterization of a point on the shape
	TextureCoords(hitPoint core.Vec3) core.Vec2
}
