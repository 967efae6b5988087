package raster

import (
	"sync"

	"github.com/gogpu/swr/types"
)

// DepthBuffer is a per-pixel float32 depth plane with test-and-conditional-
// write semantics shared by every fragment-stage worker.
type DepthBuffer struct {
	data          []float32
	width, height int
	clearValue    float32
	mu            sync.RWMutex
}

// NewDepthBuffer allocates a depth buffer cleared to clearValue (1.0 for a
// conventional far plane, 0.0 under reversed-Z).
func NewDepthBuffer(width, height int, clearValue float32) *DepthBuffer {
	d := &DepthBuffer{
		data:       make([]float32, width*height),
		width:      width,
		height:     height,
		clearValue: clearValue,
	}
	d.clearLocked(clearValue)
	return d
}

func (d *DepthBuffer) clearLocked(value float32) {
	for i := range d.data {
		d.data[i] = value
	}
}

// Clear resets every depth sample to value, remembering it as the value
// Resize clears the reallocated buffer to.
func (d *DepthBuffer) Clear(value float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clearValue = value
	d.clearLocked(value)
}

// Get returns the depth sample at (x, y).
func (d *DepthBuffer) Get(x, y int) float32 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.data[y*d.width+x]
}

// Set stores a depth sample at (x, y).
func (d *DepthBuffer) Set(x, y int, depth float32) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.data[y*d.width+x] = depth
}

// TestAndSet performs the depth compare and, if write is true and the
// compare passes, stores the new depth. Returns whether the compare
// passed (i.e. whether the fragment survives the depth test).
func (d *DepthBuffer) TestAndSet(x, y int, depth float32, compare types.CompareFunc, write bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	idx := y*d.width + x
	passed := compare.Evaluate(depth, d.data[idx])
	if passed && write {
		d.data[idx] = depth
	}
	return passed
}

// Resize reallocates the buffer for new dimensions, clearing it to the
// last clear value.
func (d *DepthBuffer) Resize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.width, d.height = width, height
	d.data = make([]float32, width*height)
	d.clearLocked(d.clearValue)
}

// Width returns the buffer's width in pixels.
func (d *DepthBuffer) Width() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.width
}

// Height returns the buffer's height in pixels.
func (d *DepthBuffer) Height() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.height
}
