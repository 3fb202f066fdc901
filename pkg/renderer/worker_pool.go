package renderer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-sphere-tracer/pkg/canvas"
)

// bandResult is a rendered band tagged with its index so it can be placed
// regardless of completion order
type bandResult struct {
	Band   int
	Canvas *canvas.Canvas
	Stats  RenderStats
}

// bandFunc renders one band into a canvas of its own
type bandFunc func(ctx context.Context, band int) (*canvas.Canvas, RenderStats, error)

// runBands starts one worker per band and waits for all of them.
// The first error, or a recovered panic, cancels the remaining workers and is returned.
// On success the results are indexed by band.
func runBands(ctx context.Context, bands int, render bandFunc) ([]bandResult, error) {
	g, gctx := errgroup.WithContext(ctx)

	// Buffered so no worker blocks on send while the coordinator waits
	resultQueue := make(chan bandResult, bands)

	for band := 0; band < bands; band++ {
		band := band // per-iteration copy (go.mod targets pre-1.22 loop semantics)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("band %d panicked: %v", band, r)
				}
			}()

			c, stats, renderErr := render(gctx, band)
			if renderErr != nil {
				return fmt.Errorf("band %d: %w", band, renderErr)
			}
			resultQueue <- bandResult{Band: band, Canvas: c, Stats: stats}
			return nil
		})
	}

	err := g.Wait()
	close(resultQueue)
	if err != nil {
		return nil, err
	}

	results := make([]bandResult, bands)
	for result := range resultQueue {
		results[result.Band] = result
	}
	return results, nil
}
