package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "default")
	Pixels  int    `json:"pixels"`  // Canvas width and height
	Threads int    `json:"threads"` // Row bands (0 = use CPU count)
}

// handleRender renders the requested scene and responds with the PPM image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	renderID := uuid.NewString()
	w.Header().Set("X-Render-ID", renderID)
	logger := NewRequestLogger(renderID)

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Parse request parameters
	req, err := s.parseRenderRequest(r)
	if err != nil {
		logger.Printf("Invalid request: %v\n", err)
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sceneObj, err := scene.ByName(req.Scene)
	if err != nil {
		logger.Printf("Invalid request: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	config := renderer.Config{CanvasPixels: req.Pixels, Threads: req.Threads}
	rt := renderer.NewRaytracer(sceneObj, config, logger)

	// Use request context to stop rendering when the client disconnects
	c, _, err := rt.RenderParallel(r.Context())
	if err != nil {
		logger.Printf("Render error: %v\n", err)
		status := http.StatusInternalServerError
		if errors.Is(err, renderer.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}
		http.Error(w, fmt.Sprintf("Render error: %v", err), status)
		return
	}

	w.Header().Set("Content-Type", "image/x-portable-pixmap")
	w.WriteHeader(http.StatusOK)
	if err := c.WritePPM(w); err != nil {
		logger.Printf("Error writing image: %v\n", err)
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "default"
	}

	var err error
	if req.Pixels, err = parseIntParam(r.URL.Query(), "pixels", 100, 1, 2000); err != nil {
		return nil, err
	}
	if req.Threads, err = parseIntParam(r.URL.Query(), "threads", 0, 0, 256); err != nil {
		return nil, err
	}

	return req, nil
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
