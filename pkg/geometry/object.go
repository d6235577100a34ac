package geometry

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/material"
)

// Object is a renderable mesh with a material
type Object struct {
	Material material.Material
	Mesh     Mesh
}

// Intersection records a ray hit and the object it hit
type Intersection struct {
	Distance float64
	Object   *Object
}

// NewObject creates a new object
func NewObject(mesh Mesh, mat material.Material) Object {
	return Object{
		Material: mat,
		Mesh:     mesh,
	}
}

// Intersect tests the ray against the object's mesh
func (o *Object) Intersect(ray core.Ray) (Intersection, bool) {
	distance, ok := o.Mesh.IntersectDistance(ray)
	if !ok {
		return Intersection{}, false
	}
	return Intersection{Distance: distance, Object: o}, true
}

// SurfaceNormal returns the mesh normal at hitPoint
func (o *Object) SurfaceNormal(hitPoint core.Vec3) core.Vec3 {
	return o.Mesh.SurfaceNormal(hitPoint)
}

// TextureCoords returns the mesh UV at hitPoint
func (o *Object) TextureCoords(hitPoint core.Vec3) core.Vec2 {
	return o.Mesh.TextureCoords(hitPoint)
}
