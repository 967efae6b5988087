package raster

import "testing"

func TestRasterizeLineCoversEndpoints(t *testing.T) {
	line := Line{
		V0: ScreenVertex{X: 1, Y: 1, Z: 0, W: 1},
		V1: ScreenVertex{X: 8, Y: 1, Z: 0, W: 1},
	}
	viewport := Viewport{X: 0, Y: 0, Width: 10, Height: 10}

	var sawStart, sawEnd bool
	RasterizeLine(line, viewport, nil, func(f Fragment) {
		if f.X == 1 && f.Y == 1 {
			sawStart = true
		}
		if f.X == 8 && f.Y == 1 {
			sawEnd = true
		}
	})
	if !sawStart || !sawEnd {
		t.Fatalf("expected both endpoints covered, start=%v end=%v", sawStart, sawEnd)
	}
}

func TestRasterizePointOutsideViewportEmitsNothing(t *testing.T) {
	p := Point{V: ScreenVertex{X: 50, Y: 50, Z: 0, W: 1}}
	viewport := Viewport{X: 0, Y: 0, Width: 10, Height: 10}

	var hits int
	RasterizePoint(p, viewport, nil, func(f Fragment) { hits++ })
	if hits != 0 {
		t.Fatalf("expected 0 fragments for an out-of-viewport point, got %d", hits)
	}
}

func TestRasterizeTriangleWireOnlyEmitsBoundaryPixels(t *testing.T) {
	tri := Triangle{
		V0: ScreenVertex{X: 0, Y: 0, Z: 0, W: 1},
		V1: ScreenVertex{X: 20, Y: 0, Z: 0, W: 1},
		V2: ScreenVertex{X: 0, Y: 20, Z: 0, W: 1},
	}
	viewport := Viewport{X: 0, Y: 0, Width: 20, Height: 20}

	filled := 0
	RasterizeTriangle(tri, viewport, nil, func(f Fragment) { filled++ })

	wire := 0
	RasterizeTriangleWire(tri, viewport, nil, func(f Fragment) { wire++ })

	if wire == 0 {
		t.Fatal("expected at least one wire fragment")
	}
	if wire >= filled {
		t.Fatalf("wire fragment count %d should be far smaller than filled count %d", wire, filled)
	}
}
