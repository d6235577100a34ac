package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{
		Center: center,
		Radius: radius,
	}
}

// IntersectDistance tests if a ray intersects with the sphere.
// It returns the entry root, or the exit root when the ray starts inside the sphere.
// Spheres entirely behind the ray origin are misses.
func (s Sphere) IntersectDistance(ray core.Ray) (float64, bool) {
	// Project the center onto the ray
	line := s.Center.Subtract(ray.Origin)
	adj := line.Dot(ray.Direction)

	// Squared distance from the center to the closest point on the ray
	distance2 := line.Dot(line) - adj*adj
	radius2 := s.Radius * s.Radius
	if distance2 > radius2 {
		return 0, false
	}

	// Half chord length
	thickness := math.Sqrt(radius2 - distance2)

	near := adj - thickness
	if near > MinHitDistance {
		return near, true
	}
	far := adj + thickness
	if far > MinHitDistance {
		return far, true
	}
	return 0, false
}

// SurfaceNormal returns the outward normal at hitPoint
func (s Sphere) SurfaceNormal(hitPoint core.Vec3) core.Vec3 {
	return hitPoint.Subtract(s.Center).Normalize()
}

// TextureCoords maps hitPoint to spherical coordinates:
// u = (1 + atan2(z, x)/π)/2, v = acos(y/r)/π
func (s Sphere) TextureCoords(hitPoint core.Vec3) core.Vec2 {
	hitVec := hitPoint.Subtract(s.Center)
	phi := math.Atan2(hitVec.Z, hitVec.X)
	theta := math.Acos(math.Max(-1, math.Min(1, hitVec.Y/s.Radius)))

	return core.NewVec2(
		0.5*(1.0+phi/math.Pi),
		theta/math.Pi,
	)
}

// Validate rejects spheres that would produce NaNs
func (s Sphere) Validate() error {
	if !s.Center.IsFinite() {
		return fmt.Errorf("sphere center %v is not finite", s.Center)
	}
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("sphere radius %v must be positive and finite", s.Radius)
	}
	return nil
}
