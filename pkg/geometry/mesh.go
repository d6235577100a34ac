package geometry

import (
	"fmt"

	"github.com/df07/go-raytracer/pkg/core"
)

// MeshType identifies the active primitive of a Mesh
type MeshType int

const (
	MeshSphere MeshType = iota
	MeshPlane
)

func (t MeshType) String() string {
	switch t {
	case MeshSphere:
		return "sphere"
	case MeshPlane:
		return "plane"
	default:
		return fmt.Sprintf("MeshType(%d)", int(t))
	}
}

// Mesh is a closed variant over the supported primitives.
// Only the field selected by Type is meaningful.
type Mesh struct {
	Type   MeshType
	Sphere Sphere
	Plane  Plane
}

// SphereMesh wraps a sphere
func SphereMesh(s Sphere) Mesh {
	return Mesh{Type: MeshSphere, Sphere: s}
}

// PlaneMesh wraps a plane
func PlaneMesh(p Plane) Mesh {
	return Mesh{Type: MeshPlane, Plane: p}
}

func (m Mesh) shape() Shape {
	switch m.Type {
	case MeshSphere:
		return m.Sphere
	case MeshPlane:
		return m.Plane
	default:
		panic(fmt.Sprintf("geometry: unknown mesh type %d", m.Type))
	}
}

// IntersectDistance dispatches to the active primitive
func (m Mesh) IntersectDistance(ray core.Ray) (float64, bool) {
	return m.shape().IntersectDistance(ray)
}

// SurfaceNormal dispatches to the active primitive
func (m Mesh) SurfaceNormal(hitPoint core.Vec3) core.Vec3 {
	return m.shape().SurfaceNormal(hitPoint)
}

// TextureCoords dispatches to the active primitive
func (m Mesh) TextureCoords(hitPoint core.Vec3) core.Vec2 {
	return m.shape().TextureCoords(hitPoint)
}

// Validate dispatches to the active primitive
func (m Mesh) Validate() error {
	switch m.Type {
	case MeshSphere:
		return m.Sphere.Validate()
	case MeshPlane:
		return m.Plane.Validate()
	default:
		return fmt.Errorf("unknown mesh type %d", m.Type)
	}
}
