package swr

import (
	"github.com/gogpu/swr/core"
	"github.com/gogpu/swr/raster"
)

// Framebuffer groups up to pool.MaxColorOutputs color attachments with a
// depth attachment; both a color and a depth attachment are needed before
// it can be drawn into (see IsComplete). All attachments share dimensions:
// AttachColor rejects a mismatched texture rather than deferring to draw
// time, and AttachDepth always sizes the depth buffer to the framebuffer.
type Framebuffer struct {
	width, height int
	color         [4]*Texture
	numColor      int
	depth         *raster.DepthBuffer
}

// NewFramebuffer creates an empty framebuffer of the given dimensions.
// AttachColor/AttachDepth populate it before it can be drawn into.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{width: width, height: height}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// AttachColor binds tex as color output index. Returns IncompleteFramebuffer
// if tex's dimensions don't match the framebuffer, or a ValidationError if
// index is out of range.
func (f *Framebuffer) AttachColor(index int, tex *Texture) error {
	if index < 0 || index >= len(f.color) {
		return core.NewValidationErrorf("Framebuffer", "index", "color attachment index %d out of range", index)
	}
	if tex.Width() != f.width || tex.Height() != f.height {
		return core.NewIncompleteFramebufferErrorf(
			"attachment is %dx%d, framebuffer is %dx%d", tex.Width(), tex.Height(), f.width, f.height)
	}
	f.color[index] = tex
	if index+1 > f.numColor {
		f.numColor = index + 1
	}
	return nil
}

// AttachDepth binds a depth buffer for the framebuffer, created with the
// given clear value (use 0 for reversed-Z, 1 otherwise).
func (f *Framebuffer) AttachDepth(clearValue float32) {
	f.depth = raster.NewDepthBuffer(f.width, f.height, clearValue)
}

// NumColorOutputs reports how many color attachment slots are bound.
func (f *Framebuffer) NumColorOutputs() int { return f.numColor }

// ColorAttachment returns the texture bound at index, or nil.
func (f *Framebuffer) ColorAttachment(index int) *Texture {
	if index < 0 || index >= len(f.color) {
		return nil
	}
	return f.color[index]
}

// DepthAttachment returns the bound depth buffer, or nil if AttachDepth
// was never called.
func (f *Framebuffer) DepthAttachment() *raster.DepthBuffer {
	return f.depth
}

// IsComplete reports whether the framebuffer has at least one color
// attachment and a depth attachment, matching the invariant checked
// before a draw call or clear is dispatched.
func (f *Framebuffer) IsComplete() bool {
	return f.numColor > 0 && f.depth != nil
}
