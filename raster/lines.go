package raster

import "github.com/chewxy/math32"

// RasterizeLine walks a DDA with float32 per-step increments from v0 to
// v1, emitting one Fragment per covered pixel on scanlines owns reports
// as owned. The segment is not clipped; steps landing outside viewport
// are dropped one by one.
func RasterizeLine(line Line, viewport Viewport, owns OwnsScanline, emit EmitFunc) {
	v0, v1 := line.V0, line.V1
	dx := v1.X - v0.X
	dy := v1.Y - v0.Y
	steps := int(math32.Max(math32.Abs(dx), math32.Abs(dy)))
	if steps == 0 {
		emitLinePoint(v0, viewport, owns, emit)
		return
	}

	xInc := dx / float32(steps)
	yInc := dy / float32(steps)
	zInc := (v1.Z - v0.Z) / float32(steps)
	wInc := (v1.W - v0.W) / float32(steps)

	x, y, z, w := v0.X, v0.Y, v0.Z, v0.W
	for i := 0; i <= steps; i++ {
		v := ScreenVertex{X: x, Y: y, Z: z, W: w, Varyings: lerpVaryings(v0.Varyings, v1.Varyings, float32(i)/float32(steps))}
		emitLinePoint(v, viewport, owns, emit)
		x += xInc
		y += yInc
		z += zInc
		w += wInc
	}
}

// RasterizePoint emits a single fragment for v if it falls inside viewport
// and on a scanline owns reports as owned.
func RasterizePoint(p Point, viewport Viewport, owns OwnsScanline, emit EmitFunc) {
	emitLinePoint(p.V, viewport, owns, emit)
}

func emitLinePoint(v ScreenVertex, viewport Viewport, owns OwnsScanline, emit EmitFunc) {
	x := int(v.X)
	y := int(v.Y)
	if x < viewport.X || x >= viewport.X+viewport.Width || y < viewport.Y || y >= viewport.Y+viewport.Height {
		return
	}
	if owns != nil && !owns(y) {
		return
	}
	emit(Fragment{
		X:        x,
		Y:        y,
		Depth:    v.Z,
		Bary:     [3]float32{1, 0, 0},
		OneOverW: v.W,
		Varyings: v.Varyings,
	})
}

func lerpVaryings(a, b []float32, t float32) []float32 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return nil
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}
