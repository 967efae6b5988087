package pool

import "github.com/gogpu/swr/raster"

// MaxBinnedPrimitives caps how many triangles a single producer can bin
// for one draw call before the vertex stage must stop accepting more
// (the draw call itself is never this large in practice; the limit
// exists so the bin storage has a fixed, cache-friendly size).
const MaxBinnedPrimitives = 4096

// Bins holds the per-producer triangle queues a draw call's vertex stage
// fills and its fragment stage drains. Each producer owns a disjoint
// slice, so filling bins requires no cross-producer synchronization.
type Bins struct {
	tris   [][]raster.Triangle
	lines  [][]raster.Line
	points [][]raster.Point
}

// NewBins allocates empty per-producer queues for numProducers workers.
func NewBins(numProducers int) *Bins {
	b := &Bins{
		tris:   make([][]raster.Triangle, numProducers),
		lines:  make([][]raster.Line, numProducers),
		points: make([][]raster.Point, numProducers),
	}
	for i := range b.tris {
		b.tris[i] = make([]raster.Triangle, 0, 64)
	}
	return b
}

// Push appends a triangle to producer's queue. Callers are expected to
// call this only from the producer's own goroutine.
func (b *Bins) Push(producer int, tri raster.Triangle) bool {
	if len(b.tris[producer]) >= MaxBinnedPrimitives {
		return false
	}
	b.tris[producer] = append(b.tris[producer], tri)
	return true
}

// PushLine appends a line segment to producer's queue.
func (b *Bins) PushLine(producer int, line raster.Line) bool {
	if len(b.lines[producer]) >= MaxBinnedPrimitives {
		return false
	}
	b.lines[producer] = append(b.lines[producer], line)
	return true
}

// PushPoint appends a point to producer's queue.
func (b *Bins) PushPoint(producer int, p raster.Point) bool {
	if len(b.points[producer]) >= MaxBinnedPrimitives {
		return false
	}
	b.points[producer] = append(b.points[producer], p)
	return true
}

// Reset clears every producer's queue without releasing backing storage.
func (b *Bins) Reset() {
	for i := range b.tris {
		b.tris[i] = b.tris[i][:0]
		b.lines[i] = b.lines[i][:0]
		b.points[i] = b.points[i][:0]
	}
}

// ForEach calls fn for every binned triangle across every producer, in
// producer order. Safe to call only once every producer has finished its
// vertex-stage pass (the Pool phase barrier guarantees this).
func (b *Bins) ForEach(fn func(raster.Triangle)) {
	for _, q := range b.tris {
		for _, tri := range q {
			fn(tri)
		}
	}
}

// ForEachLine calls fn for every binned line across every producer.
func (b *Bins) ForEachLine(fn func(raster.Line)) {
	for _, q := range b.lines {
		for _, l := range q {
			fn(l)
		}
	}
}

// ForEachPoint calls fn for every binned point across every producer.
func (b *Bins) ForEachPoint(fn func(raster.Point)) {
	for _, q := range b.points {
		for _, p := range q {
			fn(p)
		}
	}
}

// Count returns the total number of binned primitives across all producers.
func (b *Bins) Count() int {
	n := 0
	for _, q := range b.tris {
		n += len(q)
	}
	for _, q := range b.lines {
		n += len(q)
	}
	for _, q := range b.points {
		n += len(q)
	}
	return n
}
