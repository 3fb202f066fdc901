package renderer

import (
	"errors"
	"runtime"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"single thread", Config{CanvasPixels: 10, Threads: 1}, false},
		{"one thread per row", Config{CanvasPixels: 10, Threads: 10}, false},
		{"zero pixels", Config{CanvasPixels: 0, Threads: 1}, true},
		{"negative threads", Config{CanvasPixels: 10, Threads: -2}, true},
		{"too many threads", Config{CanvasPixels: 10, Threads: 11}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_ResolvedThreads(t *testing.T) {
	if got := (Config{CanvasPixels: 100, Threads: 7}).ResolvedThreads(); got != 7 {
		t.Errorf("Expected explicit thread count 7, got %d", got)
	}

	expected := min(runtime.NumCPU(), 100)
	if got := (Config{CanvasPixels: 100}).ResolvedThreads(); got != expected {
		t.Errorf("Expected %d auto-detected threads, got %d", expected, got)
	}
	if got := (Config{CanvasPixels: 1}).ResolvedThreads(); got != 1 {
		t.Errorf("Expected auto-detect to be capped at the row count, got %d", got)
	}
}
