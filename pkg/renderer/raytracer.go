package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/canvas"
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// Raytracer renders a scene onto a square canvas
type Raytracer struct {
	scene  scene.Scene
	config Config
	camera *Camera
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(s scene.Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = discardLogger{}
	}
	return &Raytracer{
		scene:  s,
		config: config,
		camera: NewCamera(s, config.CanvasPixels),
		logger: logger,
	}
}

// Render renders the whole canvas on the calling goroutine
func (rt *Raytracer) Render() (*canvas.Canvas, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	size := rt.config.CanvasPixels
	c := canvas.New(size, size)

	stats, err := rt.renderRows(context.Background(), c, 0)
	if err != nil {
		return nil, RenderStats{}, err
	}
	stats.Bands = 1
	stats.RowsPerBand = size
	stats.Duration = time.Since(start)

	rt.logger.Printf("Rendered %dx%d canvas in %v (%d hits)\n", size, size, stats.Duration, stats.Hits)
	return c, stats, nil
}

// RenderParallel splits the canvas into Threads bands of equal height and renders
// each band on its own goroutine. Rows left over after the division are not
// rendered and keep the background colour.
func (rt *Raytracer) RenderParallel(ctx context.Context) (*canvas.Canvas, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	start := time.Now()
	size := rt.config.CanvasPixels
	bands := rt.config.ResolvedThreads()
	rowsPerBand := size / bands

	results, err := runBands(ctx, bands, func(ctx context.Context, band int) (*canvas.Canvas, RenderStats, error) {
		sub := canvas.New(size, rowsPerBand)
		stats, err := rt.renderRows(ctx, sub, band*rowsPerBand)
		return sub, stats, err
	})
	if err != nil {
		return nil, RenderStats{}, err
	}

	final := canvas.New(size, size)
	final.Fill(rt.scene.Background)

	stats := RenderStats{
		Bands:       bands,
		RowsPerBand: rowsPerBand,
		DroppedRows: size - bands*rowsPerBand,
	}
	for _, result := range results {
		if err := final.Blit(result.Canvas, result.Band*rowsPerBand); err != nil {
			return nil, RenderStats{}, fmt.Errorf("band %d: %w", result.Band, err)
		}
		stats.merge(result.Stats)
	}
	stats.Duration = time.Since(start)

	if stats.DroppedRows > 0 {
		rt.logger.Printf("Render warning: %d rows do not divide into %d bands and were left blank\n", stats.DroppedRows, bands)
	}
	rt.logger.Printf("Rendered %dx%d canvas in %v across %d bands (%d hits)\n", size, size, stats.Duration, bands, stats.Hits)
	return final, stats, nil
}

// renderRows fills every row of c, treating row 0 of c as canvas row startRow
func (rt *Raytracer) renderRows(ctx context.Context, c *canvas.Canvas, startRow int) (RenderStats, error) {
	stats := RenderStats{TotalPixels: c.Width * c.Height}

	for row := 0; row < c.Height; row++ {
		if err := ctx.Err(); err != nil {
			return RenderStats{}, err
		}
		y := startRow + row
		for x := 0; x < c.Width; x++ {
			colour, hit, err := rt.colourAt(x, y)
			if err != nil {
				return RenderStats{}, fmt.Errorf("pixel (%d, %d): %w", x, y, err)
			}
			if hit {
				stats.Hits++
			}
			if err := c.WritePixel(x, row, colour); err != nil {
				return RenderStats{}, err
			}
		}
	}

	return stats, nil
}

// colourAt traces the ray through pixel (x, y)
func (rt *Raytracer) colourAt(x, y int) (core.Colour, bool, error) {
	ray := rt.camera.GetRay(x, y)
	xs, err := rt.scene.Object.Intersect(ray)
	if err != nil {
		return core.Colour{}, false, err
	}
	if _, ok := xs.Hit(); ok {
		return rt.scene.HitColour, true, nil
	}
	return rt.scene.Background, false, nil
}

// Render renders s single-threaded
func Render(s scene.Scene, config Config) (*canvas.Canvas, error) {
	c, _, err := NewRaytracer(s, config, nil).Render()
	return c, err
}

// RenderParallel renders s across config.Threads row bands
func RenderParallel(ctx context.Context, s scene.Scene, config Config) (*canvas.Canvas, error) {
	c, _, err := NewRaytracer(s, config, nil).RenderParallel(ctx)
	return c, err
}
