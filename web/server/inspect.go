package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/renderer"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Color        string                 `json:"color,omitempty"` // Rendered pixel color
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// extractMaterialInfo describes the surface response and coloring of a material
func extractMaterialInfo(mat material.Material, uv core.Vec2) (string, map[string]interface{}) {
	properties := map[string]interface{}{
		"albedo": mat.Albedo,
		"color":  hexColor(mat.Color(uv)),
	}

	switch mat.Coloring.Type {
	case material.ColoringSolid:
		properties["coloring"] = "solid"
	case material.ColoringTexture:
		properties["coloring"] = "texture"
		properties["textureSize"] = [2]int{mat.Coloring.Texture.Width(), mat.Coloring.Texture.Height()}
		properties["uv"] = [2]float64{uv.X, uv.Y}
	}

	if reflectivity, ok := mat.Reflectivity(); ok {
		properties["reflectivity"] = reflectivity
	}
	return mat.Surface.Type.String(), properties
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(mesh geometry.Mesh) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch mesh.Type {
	case geometry.MeshSphere:
		properties["center"] = vecArray(mesh.Sphere.Center)
		properties["radius"] = mesh.Sphere.Radius
	case geometry.MeshPlane:
		properties["origin"] = vecArray(mesh.Plane.Origin)
		properties["normal"] = vecArray(mesh.Plane.Normal)
	}
	return mesh.Type.String(), properties
}

// handleInspect casts the primary ray through a pixel and describes what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	query := r.URL.Query()
	pixelX, err := parseIntParam(query, "x", -1, 0, req.Width-1)
	if err != nil || pixelX < 0 {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := parseIntParam(query, "y", -1, 0, req.Height-1)
	if err != nil || pixelY < 0 {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.resolveScene(req.Scene)
	if err != nil {
		writeJSONError(w, sceneErrorStatus(err), err.Error())
		return
	}
	sceneObj.Width = req.Width
	sceneObj.Height = req.Height
	if req.Depth >= 0 {
		sceneObj.MaxRecursionDepth = req.Depth
	}
	if err := sceneObj.Validate(); err != nil {
		writeJSONError(w, sceneErrorStatus(err), err.Error())
		return
	}

	raytracer := renderer.NewRaytracer(sceneObj)
	ray := sceneObj.SpawnPrimeRay(pixelX, pixelY)
	hit, ok := raytracer.HitWorld(ray)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Color: hexColor(sceneObj.Background)})
		return
	}

	point := ray.At(hit.Distance)
	uv := hit.Object.TextureCoords(point)
	materialType, materialProps := extractMaterialInfo(hit.Object.Material, uv)
	geometryType, geometryProps := extractGeometryInfo(hit.Object.Mesh)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(point),
		Normal:       vecArray(hit.Object.SurfaceNormal(point)),
		Distance:     hit.Distance,
		Color:        hexColor(raytracer.Trace(ray, 0)),
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
