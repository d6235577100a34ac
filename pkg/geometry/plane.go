package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// parallelEpsilon bounds |normal·direction| below which a ray is treated as parallel
const parallelEpsilon = 1e-6

// Plane represents an infinite plane defined by a point and normal.
// The configured normal faces away from the lit side: SurfaceNormal returns its negation.
type Plane struct {
	Origin core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
}

// NewPlane creates a new plane
func NewPlane(origin, normal core.Vec3) Plane {
	return Plane{
		Origin: origin,
		Normal: normal.Normalize(), // Ensure normal is normalized
	}
}

// IntersectDistance tests if a ray intersects with the plane
func (p Plane) IntersectDistance(ray core.Ray) (float64, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray parallel to (or lying in) the plane
	if math.Abs(denominator) < parallelEpsilon {
		return 0, false
	}

	// t = (origin - ray_origin) · normal / (direction · normal)
	t := p.Origin.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= MinHitDistance {
		return 0, false
	}
	return t, true
}

// SurfaceNormal returns the negated configured normal regardless of viewing side
func (p Plane) SurfaceNormal(hitPoint core.Vec3) core.Vec3 {
	return p.Normal.Negate()
}

// TextureCoords projects hitPoint onto an orthonormal basis lying in the plane
func (p Plane) TextureCoords(hitPoint core.Vec3) core.Vec2 {
	xAxis, yAxis := p.basis()
	hitVec := hitPoint.Subtract(p.Origin)
	return core.NewVec2(hitVec.Dot(xAxis), hitVec.Dot(yAxis))
}

// basis builds the in-plane axes: normal×(0,0,1) when the normal has a z component,
// normal×(1,1,0) otherwise, falling back to the other seed if the first is parallel.
func (p Plane) basis() (core.Vec3, core.Vec3) {
	zSeed := core.NewVec3(0, 0, 1)
	diagSeed := core.NewVec3(1, 1, 0)

	primary, fallback := diagSeed, zSeed
	if p.Normal.Z != 0 {
		primary, fallback = zSeed, diagSeed
	}

	xAxis := p.Normal.Cross(primary)
	if xAxis.LengthSquared() < 1e-12 {
		xAxis = p.Normal.Cross(fallback)
	}
	xAxis = xAxis.Normalize()
	yAxis := p.Normal.Cross(xAxis).Normalize()
	return xAxis, yAxis
}

// Validate rejects planes with a non-unit normal
func (p Plane) Validate() error {
	if !p.Origin.IsFinite() {
		return fmt.Errorf("plane origin %v is not finite", p.Origin)
	}
	if !p.Normal.IsFinite() || math.Abs(p.Normal.Length()-1) > 1e-6 {
		return fmt.Errorf("plane normal %v must be unit length", p.Normal)
	}
	return nil
}
