package raster

import "testing"

func TestScanlineBoundsStepMatchesAnalyticBoundary(t *testing.T) {
	var b ScanlineBounds
	// Sorted top-to-bottom by descending Y: v0=(0,10), v1=(5,5), v2=(0,0).
	b.Init([2]float32{0, 10}, [2]float32{5, 5}, [2]float32{0, 0}, 100)

	// At y=7, between v0.y=10 and v1.y=5, the right edge is v0->v1
	// (x = 5*(10-7)/5 = 3), not the v1->v2 edge extrapolated past its
	// own segment.
	xMin, xMax := b.Step(7)
	if xMin != 0 {
		t.Fatalf("xMin = %d, want 0", xMin)
	}
	if xMax != 3 {
		t.Fatalf("xMax = %d, want 3 (edge p0->p1 at y=7)", xMax)
	}

	// At y=2, below v1.y=5, the right edge is v1->v2 (x = 5*2/5 = 2).
	xMin, xMax = b.Step(2)
	if xMin != 0 {
		t.Fatalf("xMin = %d, want 0", xMin)
	}
	if xMax != 2 {
		t.Fatalf("xMax = %d, want 2 (edge p1->p2 at y=2)", xMax)
	}
}
