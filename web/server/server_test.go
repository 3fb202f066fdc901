package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/df07/go-sphere-tracer/pkg/scene"
)

func TestHandleHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestHandleScenes(t *testing.T) {
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scenes", nil))

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(rec.Body).Decode(&scenes); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if len(scenes) != len(scene.Names()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.Names()), len(scenes))
	}
}

func TestHandleRender(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/render?scene=squashed&pixels=20&threads=4", nil)
	NewServer(0).Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/x-portable-pixmap" {
		t.Errorf("Expected PPM content type, got %q", ct)
	}
	if _, err := uuid.Parse(rec.Header().Get("X-Render-ID")); err != nil {
		t.Errorf("Expected a UUID render ID, got %q", rec.Header().Get("X-Render-ID"))
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("P3\n20 20\n255\n")) {
		t.Errorf("Unexpected PPM body: %q", rec.Body.String())
	}
}

func TestHandleRender_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"unknown scene", "/api/render?scene=cornell"},
		{"non-numeric pixels", "/api/render?pixels=abc"},
		{"pixels out of range", "/api/render?pixels=0"},
		{"negative threads", "/api/render?threads=-1"},
		{"more threads than rows", "/api/render?pixels=4&threads=8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestHandleRender_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	NewServer(0).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/render", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rec.Code)
	}
}
