package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Hits        int           // Pixels whose ray struck the object
	Bands       int           // Row bands rendered (1 when single-threaded)
	RowsPerBand int           // Rows in each band
	DroppedRows int           // Trailing rows left at the background colour
	Duration    time.Duration // Wall-clock render time
}

// merge folds a band's counters into the totals
func (s *RenderStats) merge(band RenderStats) {
	s.TotalPixels += band.TotalPixels
	s.Hits += band.Hits
}

// HitRatio returns the fraction of rendered pixels that hit the object
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.TotalPixels)
}
