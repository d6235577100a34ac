package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/df07/go-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port      int
	scenesDir string
	logger    *log.Logger
	renders   atomic.Int64 // Render ID counter
}

// NewServer creates a new web server. YAML scenes are discovered in scenesDir.
func NewServer(port int, scenesDir string) *Server {
	return &Server{
		port:      port,
		scenesDir: scenesDir,
		logger:    log.Default(),
	}
}

// Handler returns the HTTP routes served by Start
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/scenes", s.handleScenes)
	mux.HandleFunc("GET /api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("GET /api/render", s.handleRender)
	mux.HandleFunc("GET /api/inspect", s.handleInspect)
	return mux
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("Starting web server on http://localhost%s", addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		s.logger.Printf("Shutting down web server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and discovered scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSceneConfig returns the scene's own settings and the request limits
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = defaultSceneID
	}

	sceneObj, err := s.resolveScene(sceneName)
	if err != nil {
		writeJSONError(w, sceneErrorStatus(err), err.Error())
		return
	}

	response := map[string]interface{}{
		"scene": sceneName,
		"defaults": map[string]interface{}{
			"width":             sceneObj.Width,
			"height":            sceneObj.Height,
			"fov":               sceneObj.FOV,
			"maxRecursionDepth": sceneObj.MaxRecursionDepth,
			"objects":           sceneObj.GetPrimitiveCount(),
			"lights":            len(sceneObj.Lights),
		},
		"limits": map[string]interface{}{
			"width":  map[string]int{"min": minDimension, "max": maxDimension},
			"height": map[string]int{"min": minDimension, "max": maxDimension},
			"depth":  map[string]int{"min": 0, "max": maxDepth},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// resolveScene accepts built-in IDs and "yaml:<name>" IDs from the scenes
// directory. Arbitrary file paths are refused.
func (s *Server) resolveScene(id string) (*scene.Scene, error) {
	if name, ok := strings.CutPrefix(id, "yaml:"); ok {
		if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
			return nil, fmt.Errorf("%w: %s", scene.ErrUnknownScene, id)
		}
	} else if _, ok := scene.NewBuiltinScene(id); !ok {
		return nil, fmt.Errorf("%w: %s", scene.ErrUnknownScene, id)
	}
	return scene.Resolve(id, s.scenesDir)
}

// sceneErrorStatus maps scene resolution errors to HTTP status codes
func sceneErrorStatus(err error) int {
	switch {
	case errors.Is(err, scene.ErrUnknownScene), errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	case errors.Is(err, scene.ErrInvalidScene):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
