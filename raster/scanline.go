package raster

import "github.com/chewxy/math32"

// ScanlineBounds computes, for each integer scanline y crossing a sorted
// triangle, the [xMin, xMax] span covered by that triangle's two active
// edges. Vertices are pre-sorted top-to-bottom so the "upper" edge
// (v0->v2) and the two "lower" edges (v0->v1, v1->v2) can be stepped with
// a single division each, rather than re-deriving the intersection for
// every row.
type ScanlineBounds struct {
	v0, v1 [2]float32
	p20y   float32
	p21xy  float32
	p10xy  float32
	p20x   float32
	bboxMaxX int
}

// Init sorts p0, p1, p2 by descending Y (X is not used to break ties on
// equal Y) and precomputes the per-edge slopes used by Step. fboWidth clamps the
// returned xMax.
func (b *ScanlineBounds) Init(p0, p1, p2 [2]float32, fboWidth int) {
	if p0[1] < p1[1] {
		p0, p1 = p1, p0
	}
	if p1[1] < p2[1] {
		p1, p2 = p2, p1
	}
	if p0[1] < p1[1] {
		p0, p1 = p1, p0
	}

	b.v0 = p0
	b.v1 = p1
	b.p20y = p2[1] - p0[1]
	if b.p20y == 0 {
		b.p20y = 1e-6
	}
	dy21 := p2[1] - p1[1]
	if dy21 == 0 {
		dy21 = 1e-6
	}
	dy10 := p1[1] - p0[1]
	if dy10 == 0 {
		dy10 = 1e-6
	}
	b.p21xy = (p2[0] - p1[0]) / dy21
	b.p10xy = (p1[0] - p0[0]) / dy10
	b.p20x = p2[0] - p0[0]
	b.bboxMaxX = fboWidth - 1
}

// Step returns the inclusive [xMin, xMax] pixel span at scanline y.
func (b *ScanlineBounds) Step(yf float32) (xMin, xMax int) {
	d0 := yf - b.v0[1]
	d1 := yf - b.v1[1]
	alpha := d0 / b.p20y
	secondHalf := d1 < 0

	a := b.p21xy*d1 + b.v1[0]
	bx := b.p10xy*d0 + b.v0[0]

	left := b.p20x*alpha + b.v0[0]
	var right float32
	if secondHalf {
		right = a
	} else {
		right = bx
	}

	if right < left {
		left, right = right, left
	}

	xMin = clampInt(int(math32.Floor(left)), 0, b.bboxMaxX)
	xMax = clampInt(int(math32.Ceil(right)), 0, b.bboxMaxX)
	return xMin, xMax
}
