// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package swr is a CPU-only, multithreaded software rasterizer: a fixed
// vertex/fragment pipeline driven entirely by Go shader functions, with
// no GPU, driver or FFI dependency.
package swr

import (
	"log/slog"
	"runtime"

	"github.com/gogpu/swr/core"
	"github.com/gogpu/swr/internal/rlog"
	"github.com/gogpu/swr/pool"
	"github.com/gogpu/swr/shader"
	"github.com/gogpu/swr/types"
)

// VertexBuffer holds raw, caller-interpreted vertex component bytes.
type VertexBuffer struct {
	Data []byte
}

// IndexBuffer holds a draw call's index stream.
type IndexBuffer struct {
	Data []uint32
}

// UniformBuffer holds raw bytes a shader program decodes itself; layout is
// entirely up to the VertexFunc/FragmentFunc pair bound to a draw.
type UniformBuffer struct {
	Data []byte
}

// VertexArray binds a set of vertex buffers to a shader's attribute slots.
type VertexArray struct {
	Buffers    []core.VertexBufferID
	Attributes []types.VertexAttribute
}

// Context owns every resource registry and the worker pool draws run on.
// A Context is safe for concurrent use by multiple goroutines issuing
// independent draw calls against different framebuffers; a single
// framebuffer's attachments are not safe to draw into concurrently from
// two goroutines at once (matching §4's single-draw-at-a-time model).
type Context struct {
	pool *pool.Pool

	reversedZ    bool
	ptvCacheSize int

	vertexBuffers  *core.VertexBufferRegistry[*VertexBuffer]
	indexBuffers   *core.IndexBufferRegistry[*IndexBuffer]
	uniformBuffers *core.UniformBufferRegistry[*UniformBuffer]
	textures       *core.TextureRegistry[*Texture]
	vertexArrays   *core.VertexArrayRegistry[VertexArray]
	shaders        *core.ShaderRegistry[shader.Program]
	framebuffers   *core.FramebufferRegistry[*Framebuffer]
}

// ContextOption configures a Context at construction time.
type ContextOption func(*Context)

// WithThreadCount pins the worker pool to n threads instead of
// runtime.NumCPU(). n is clamped to at least 1.
func WithThreadCount(n int) ContextOption {
	return func(c *Context) {
		c.pool = pool.New(n)
	}
}

// WithReversedZ makes DefaultDepthClearValue report 0 instead of 1, for
// callers to pass to AttachDepth/ClearDepth. Combined with a CompareGreater
// depth func on the shader program, this gives the reversed-Z convention
// that improves floating-point depth precision distribution. It does not
// change any program's DepthFunc.
func WithReversedZ(enabled bool) ContextOption {
	return func(c *Context) { c.reversedZ = enabled }
}

// WithPTVCacheSize sets the per-worker post-transform-vertex cache size
// used by every draw call. 0 disables the cache.
func WithPTVCacheSize(n int) ContextOption {
	return func(c *Context) { c.ptvCacheSize = n }
}

// WithLogger routes the rasterizer's diagnostic logging through l.
func WithLogger(l *slog.Logger) ContextOption {
	return func(c *Context) { rlog.Set(l) }
}

// NewContext creates a Context with a worker pool sized to runtime.NumCPU()
// unless overridden by WithThreadCount.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		pool:           pool.New(runtime.NumCPU()),
		ptvCacheSize:   256,
		vertexBuffers:  core.NewVertexBufferRegistry[*VertexBuffer](),
		indexBuffers:   core.NewIndexBufferRegistry[*IndexBuffer](),
		uniformBuffers: core.NewUniformBufferRegistry[*UniformBuffer](),
		textures:       core.NewTextureRegistry[*Texture](),
		vertexArrays:   core.NewVertexArrayRegistry[VertexArray](),
		shaders:        core.NewShaderRegistry[shader.Program](),
		framebuffers:   core.NewFramebufferRegistry[*Framebuffer](),
	}
	for _, opt := range opts {
		opt(c)
	}
	rlog.Get().Debug("context created", "threads", c.pool.NumWorkers(), "reversedZ", c.reversedZ)
	return c
}

// NumThreads returns the worker pool's size.
func (c *Context) NumThreads() int { return c.pool.NumWorkers() }

// ReversedZ reports whether this context was configured with WithReversedZ.
func (c *Context) ReversedZ() bool { return c.reversedZ }

// DefaultDepthClearValue returns 0 under reversed-Z and 1 otherwise.
func (c *Context) DefaultDepthClearValue() float32 {
	if c.reversedZ {
		return 0
	}
	return 1
}
