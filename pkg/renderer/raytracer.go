package renderer

import (
	"image"
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/lights"
	"github.com/df07/go-raytracer/pkg/scene"
)

// Raytracer traces rays against an immutable scene. It holds no mutable
// state, so one instance can be shared by every worker.
type Raytracer struct {
	scene *scene.Scene
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene) *Raytracer {
	return &Raytracer{scene: s}
}

// HitWorld finds the nearest object along the ray with a linear scan
func (rt *Raytracer) HitWorld(ray core.Ray) (geometry.Intersection, bool) {
	var closest geometry.Intersection
	hitAnything := false

	for i := range rt.scene.Objects {
		hit, ok := rt.scene.Objects[i].Intersect(ray)
		if ok && (!hitAnything || hit.Distance < closest.Distance) {
			closest = hit
			hitAnything = true
		}
	}

	return closest, hitAnything
}

// Trace returns the color seen along ray. depth counts the mirror bounces
// already taken; primary rays start at 0.
func (rt *Raytracer) Trace(ray core.Ray, depth int) core.Color {
	hit, ok := rt.HitWorld(ray)
	if !ok {
		return rt.scene.Background
	}

	object := hit.Object
	hitPoint := ray.At(hit.Distance)
	normal := object.SurfaceNormal(hitPoint)
	surfaceColor := object.Material.Color(object.TextureCoords(hitPoint))

	direct := rt.directLight(hitPoint, normal, surfaceColor, object.Material.Albedo)

	reflectivity, reflective := object.Material.Reflectivity()
	if !reflective || depth >= rt.scene.MaxRecursionDepth {
		return direct
	}

	// No origin bias: geometry.MinHitDistance keeps the ray off the surface it leaves
	reflected := rt.Trace(core.NewRay(hitPoint, ray.Direction.Reflect(normal)), depth+1)
	return direct.Scale(1 - reflectivity).Add(reflected.Scale(reflectivity))
}

// directLight sums the Lambertian contribution of every light. There is no
// occlusion test, so every light reaches every surface facing it.
func (rt *Raytracer) directLight(point, normal core.Vec3, surface core.Color, albedo float64) core.Color {
	var r, g, b float64

	for i := range rt.scene.Lights {
		r, g, b = accumulateLight(&rt.scene.Lights[i], point, normal, surface, albedo, r, g, b)
	}

	return core.ColorFromFloats(r, g, b)
}

func accumulateLight(light lights.Illuminator, point, normal core.Vec3, surface core.Color, albedo, r, g, b float64) (float64, float64, float64) {
	ndotl := math.Max(0, normal.Dot(light.Direction(point)))
	if ndotl == 0 {
		return r, g, b
	}

	factor := ndotl * light.Intensity(point) * albedo / math.Pi
	lc := light.Color()

	r += math.Trunc(channelProduct(surface.R, lc.R) * factor)
	g += math.Trunc(channelProduct(surface.G, lc.G) * factor)
	b += math.Trunc(channelProduct(surface.B, lc.B) * factor)
	return r, g, b
}

// channelProduct is (s/255)*(l/255)*255 with a single rounding step
func channelProduct(s, l uint8) float64 {
	return float64(s) * float64(l) / 255
}

// RenderBounds renders the pixels inside bounds into raster and returns how
// many were written. Callers give concurrent calls disjoint bounds.
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, raster *Raster) int {
	bounds = bounds.Intersect(raster.Bounds())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			raster.SetColor(x, y, rt.Trace(rt.scene.SpawnPrimeRay(x, y), 0))
		}
	}
	return bounds.Dx() * bounds.Dy()
}

// Render traces every pixel on the calling goroutine
func (rt *Raytracer) Render() *Raster {
	raster := NewRaster(rt.scene.Width, rt.scene.Height)
	rt.RenderBounds(raster.Bounds(), raster)
	return raster
}
