package swr

import (
	"github.com/gogpu/swr/core"
	"github.com/gogpu/swr/types"
)

// ClearColor fills color attachment index of target with c. Returns
// IncompleteFramebuffer if no attachment is bound at that index.
func (ctx *Context) ClearColor(target core.FramebufferID, index int, c types.Color) error {
	fb, err := ctx.framebuffers.Get(target)
	if err != nil {
		return err
	}
	tex := fb.ColorAttachment(index)
	if tex == nil {
		return core.ErrIncompleteFramebuffer
	}
	tex.Clear(c)
	return nil
}

// ClearDepth resets target's depth attachment to value. Returns
// IncompleteFramebuffer if target has no depth attachment.
func (ctx *Context) ClearDepth(target core.FramebufferID, value float32) error {
	fb, err := ctx.framebuffers.Get(target)
	if err != nil {
		return err
	}
	depth := fb.DepthAttachment()
	if depth == nil {
		return core.ErrIncompleteFramebuffer
	}
	depth.Clear(value)
	return nil
}
