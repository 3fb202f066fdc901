package renderer

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidConfig is returned for render configurations that cannot be rendered
var ErrInvalidConfig = errors.New("invalid render config")

// Config contains the render parameters owned by the caller
type Config struct {
	CanvasPixels int // Width and height of the square canvas
	Threads      int // Number of row bands rendered in parallel (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		CanvasPixels: 100,
		Threads:      0, // Auto-detect CPU count
	}
}

// Validate checks that the configuration can be rendered
func (c Config) Validate() error {
	if c.CanvasPixels <= 0 {
		return fmt.Errorf("%w: canvas pixels must be positive, got %d", ErrInvalidConfig, c.CanvasPixels)
	}
	if c.Threads < 0 {
		return fmt.Errorf("%w: threads must not be negative, got %d", ErrInvalidConfig, c.Threads)
	}
	if c.Threads > c.CanvasPixels {
		return fmt.Errorf("%w: %d threads for %d rows leaves bands empty", ErrInvalidConfig, c.Threads, c.CanvasPixels)
	}
	return nil
}

// ResolvedThreads returns the number of bands to use, substituting the CPU count
// (capped at the row count) when Threads is 0
func (c Config) ResolvedThreads() int {
	if c.Threads > 0 {
		return c.Threads
	}
	return max(1, min(runtime.NumCPU(), c.CanvasPixels))
}
