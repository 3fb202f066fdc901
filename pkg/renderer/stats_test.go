package renderer

import "testing"

func TestRenderStats_Merge(t *testing.T) {
	var total RenderStats
	total.merge(RenderStats{TotalPixels: 100, Hits: 25})
	total.merge(RenderStats{TotalPixels: 100, Hits: 75})

	if total.TotalPixels != 200 || total.Hits != 100 {
		t.Errorf("Expected 200 pixels and 100 hits, got %+v", total)
	}
	if got := total.HitRatio(); got != 0.5 {
		t.Errorf("Expected hit ratio 0.5, got %v", got)
	}
	if got := (RenderStats{}).HitRatio(); got != 0 {
		t.Errorf("Expected zero hit ratio for empty stats, got %v", got)
	}
}
