package canvas

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives an exported image
type Sink interface {
	Write(data []byte) error
}

// FileSink writes exported images to a path on disk
type FileSink struct {
	Path string
}

// Write implements Sink
func (s FileSink) Write(data []byte) error {
	return WriteFile(s.Path, data)
}

// WriteFile writes data to path, creating parent directories as needed
func WriteFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write image file %s: %w", path, err)
	}
	return nil
}

// Export encodes the canvas as PPM and hands it to sink
func Export(c *Canvas, sink Sink) error {
	return sink.Write(c.PPM())
}
