package raster

import "github.com/chewxy/math32"

// EmitFunc receives one rasterized fragment.
type EmitFunc func(Fragment)

// OwnsScanline reports whether the calling worker owns scanline y and
// should rasterize it; pool injects the scanline_offset ownership test so
// this package stays free of thread/worker concepts.
type OwnsScanline func(y int) bool

// RasterizeTriangle scans the bounding box of tri clipped to viewport,
// emitting one Fragment per covered sample on scanlines owns reports as
// owned by the caller. Degenerate (zero-area) triangles are skipped.
func RasterizeTriangle(tri Triangle, viewport Viewport, owns OwnsScanline, emit EmitFunc) {
	v0, v1, v2 := tri.V0, tri.V1, tri.V2

	minX := min3(v0.X, v1.X, v2.X)
	minY := min3(v0.Y, v1.Y, v2.Y)
	maxX := max3(v0.X, v1.X, v2.X)
	maxY := max3(v0.Y, v1.Y, v2.Y)

	x0 := clampInt(int(math32.Floor(minX)), viewport.X, viewport.X+viewport.Width-1)
	y0 := clampInt(int(math32.Floor(minY)), viewport.Y, viewport.Y+viewport.Height-1)
	x1 := clampInt(int(math32.Ceil(maxX)), viewport.X, viewport.X+viewport.Width-1)
	y1 := clampInt(int(math32.Ceil(maxY)), viewport.Y, viewport.Y+viewport.Height-1)
	if x1 < x0 || y1 < y0 {
		return
	}

	area := ComputeTriangleArea(v0, v1, v2)
	if area == 0 {
		return
	}
	invArea := 1 / area

	e12 := NewEdgeFunction(v1.X, v1.Y, v2.X, v2.Y)
	e20 := NewEdgeFunction(v2.X, v2.Y, v0.X, v0.Y)
	e01 := NewEdgeFunction(v0.X, v0.Y, v1.X, v1.Y)

	bias0, bias1, bias2 := edgeBias(e12, area), edgeBias(e20, area), edgeBias(e01, area)

	for y := y0; y <= y1; y++ {
		if owns != nil && !owns(y) {
			continue
		}
		py := float32(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float32(x) + 0.5

			w0 := (e12.Evaluate(px, py) + bias0) * invArea
			w1 := (e20.Evaluate(px, py) + bias1) * invArea
			w2 := (e01.Evaluate(px, py) + bias2) * invArea

			if !coveredByFillRule(w0, w1, w2, area) {
				continue
			}
			emit(buildFragment(v0, v1, v2, x, y, w0, w1, w2))
		}
	}
}

// RasterizeTriangleWire emits only the fragments on the left and right
// boundary of each scanline the triangle covers, tracing its outline
// without filling the interior.
func RasterizeTriangleWire(tri Triangle, viewport Viewport, owns OwnsScanline, emit EmitFunc) {
	v0, v1, v2 := tri.V0, tri.V1, tri.V2
	area := ComputeTriangleArea(v0, v1, v2)
	if area == 0 {
		return
	}
	invArea := 1 / area

	var bounds ScanlineBounds
	bounds.Init([2]float32{v0.X, v0.Y}, [2]float32{v1.X, v1.Y}, [2]float32{v2.X, v2.Y}, viewport.X+viewport.Width)

	minY := clampInt(int(math32.Floor(min3(v0.Y, v1.Y, v2.Y))), viewport.Y, viewport.Y+viewport.Height-1)
	maxY := clampInt(int(math32.Ceil(max3(v0.Y, v1.Y, v2.Y))), viewport.Y, viewport.Y+viewport.Height-1)

	e12 := NewEdgeFunction(v1.X, v1.Y, v2.X, v2.Y)
	e20 := NewEdgeFunction(v2.X, v2.Y, v0.X, v0.Y)
	e01 := NewEdgeFunction(v0.X, v0.Y, v1.X, v1.Y)

	for y := minY; y <= maxY; y++ {
		if owns != nil && !owns(y) {
			continue
		}
		xMin, xMax := bounds.Step(float32(y) + 0.5)
		for _, x := range uniqueInts(xMin, xMax) {
			px, py := float32(x)+0.5, float32(y)+0.5
			w0 := e12.Evaluate(px, py) * invArea
			w1 := e20.Evaluate(px, py) * invArea
			w2 := e01.Evaluate(px, py) * invArea
			if !coveredByFillRule(w0, w1, w2, area) {
				continue
			}
			emit(buildFragment(v0, v1, v2, x, y, w0, w1, w2))
		}
	}
}

func uniqueInts(a, b int) []int {
	if a == b {
		return []int{a}
	}
	return []int{a, b}
}

func coveredByFillRule(w0, w1, w2, area float32) bool {
	if area > 0 {
		return w0 >= 0 && w1 >= 0 && w2 >= 0
	}
	return w0 <= 0 && w1 <= 0 && w2 <= 0
}

func buildFragment(v0, v1, v2 ScreenVertex, x, y int, w0, w1, w2 float32) Fragment {
	oneOverW := w0*v0.W + w1*v1.W + w2*v2.W
	depth := w0*v0.Z + w1*v1.Z + w2*v2.Z

	frag := Fragment{
		X:        x,
		Y:        y,
		Depth:    depth,
		Bary:     [3]float32{w0, w1, w2},
		OneOverW: oneOverW,
	}
	if n := varyingCount(v0.Varyings, v1.Varyings, v2.Varyings); n > 0 {
		frag.Varyings = make([]float32, n)
		InterpolateVaryings(v0.Varyings, v1.Varyings, v2.Varyings, w0, w1, w2, v0.W, v1.W, v2.W, frag.Varyings)
	}
	return frag
}

// edgeBias applies the top-left fill rule: edges that are top or left
// edges include samples exactly on the edge (bias 0); others exclude them
// by biasing the evaluated area away from zero in the failing direction.
func edgeBias(e EdgeFunction, area float32) float32 {
	topLeft := e.IsTopLeft()
	if area < 0 {
		topLeft = !topLeft
	}
	if topLeft {
		return 0
	}
	return -1e-5
}

func varyingCount(a, b, c []float32) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if len(c) < n {
		n = len(c)
	}
	return n
}

func min3(a, b, c float32) float32 {
	return min32(min32(a, b), c)
}

func max3(a, b, c float32) float32 {
	return max32(max32(a, b), c)
}
