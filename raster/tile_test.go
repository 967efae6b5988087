package raster

import "testing"

func TestScanlineOffsetCoversEveryThreadExactlyOnce(t *testing.T) {
	const numThreads = 7
	const numScanlines = 33

	for scanline := 0; scanline < numScanlines; scanline++ {
		seen := make(map[int]bool, numThreads)
		for id := 0; id < numThreads; id++ {
			off := ScanlineOffset(numThreads, id, scanline)
			if off < 0 || off >= numThreads {
				t.Fatalf("scanline %d thread %d: offset %d out of range", scanline, id, off)
			}
			if seen[off] {
				t.Fatalf("scanline %d: offset %d claimed by more than one thread", scanline, off)
			}
			seen[off] = true
		}
	}
}

func TestTileSplitFavorsHorizontal(t *testing.T) {
	cases := []struct {
		threads          int
		wantCols, wantRows int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{4, 2, 2},
		{8, 4, 2},
	}
	for _, c := range cases {
		cols, rows := TileSplit(c.threads)
		if cols != c.wantCols || rows != c.wantRows {
			t.Errorf("TileSplit(%d) = (%d,%d), want (%d,%d)", c.threads, cols, rows, c.wantCols, c.wantRows)
		}
		if cols*rows < c.threads {
			t.Errorf("TileSplit(%d): cols*rows=%d covers fewer than %d threads", c.threads, cols*rows, c.threads)
		}
	}
}

func TestSubregionTilesDoNotOverlap(t *testing.T) {
	const w, h, numThreads = 64, 48, 6
	covered := make([][]bool, h)
	for i := range covered {
		covered[i] = make([]bool, w)
	}
	for id := 0; id < numThreads; id++ {
		x0, x1, y0, y1 := Subregion(w, h, numThreads, id)
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if covered[y][x] {
					t.Fatalf("pixel (%d,%d) covered by more than one thread", x, y)
				}
				covered[y][x] = true
			}
		}
	}
}

func TestPartitionIndicesSplitsWholePrimitives(t *testing.T) {
	const totalVerts = 300 // 100 triangles
	const vertsPerPrim = 3
	const numThreads = 4

	var total int
	for id := 0; id < numThreads; id++ {
		begin, end := PartitionIndices(totalVerts, numThreads, id, vertsPerPrim)
		if (end-begin)%vertsPerPrim != 0 {
			t.Fatalf("thread %d: range [%d,%d) is not a whole number of primitives", id, begin, end)
		}
		total += end - begin
	}
	if total != totalVerts {
		t.Fatalf("partitioned %d verts, want %d", total, totalVerts)
	}
}

func TestPartitionIndicesHandlesFewerPrimsThanThreads(t *testing.T) {
	begin, end := PartitionIndices(6, 8, 7, 3) // 2 prims, 8 threads
	if end-begin != 0 {
		t.Fatalf("thread beyond active range should get empty span, got [%d,%d)", begin, end)
	}
}
