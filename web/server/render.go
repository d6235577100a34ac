package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/renderer"
	"github.com/df07/go-raytracer/pkg/scene"
)

const (
	defaultSceneID = "default"
	minDimension   = 1
	maxDimension   = 2000
	maxDepth       = 50
)

var contentTypes = map[loaders.ImageFormat]string{
	loaders.FormatPNG:  "image/png",
	loaders.FormatJPEG: "image/jpeg",
	loaders.FormatBMP:  "image/bmp",
	loaders.FormatTIFF: "image/tiff",
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene  string              // Scene ID (e.g., "mirror" or "yaml:mirror-room")
	Width  int                 // Image width
	Height int                 // Image height
	Depth  int                 // Mirror bounce budget, -1 keeps the scene's own
	Format loaders.ImageFormat // Response encoding
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene"), Format: loaders.FormatPNG}
	if req.Scene == "" {
		req.Scene = defaultSceneID
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 300, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", -1, 0, maxDepth); err != nil {
		return nil, err
	}

	if format := query.Get("format"); format != "" {
		req.Format = loaders.ImageFormat(format)
		if req.Format == "jpg" {
			req.Format = loaders.FormatJPEG
		}
		if _, ok := contentTypes[req.Format]; !ok {
			return nil, fmt.Errorf("unsupported format: %s", format)
		}
	}

	return req, nil
}

// handleRender renders a scene and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
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

	renderID := "render-" + strconv.FormatInt(s.renders.Add(1), 10)
	logger := NewWebLogger(renderID, s.logger)

	// Use request context to stop rendering when the client disconnects
	raster, stats, err := renderer.Render(r.Context(), sceneObj, renderer.DefaultConfig(), logger)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrInvalidScene) {
			status = http.StatusUnprocessableEntity
		}
		writeJSONError(w, status, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, raster.ToRGBA(), req.Format); err != nil {
		writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", contentTypes[req.Format])
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Workers", strconv.Itoa(stats.NumWorkers))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
