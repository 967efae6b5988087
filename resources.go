package swr

import (
	"github.com/gogpu/swr/core"
	"github.com/gogpu/swr/shader"
	"github.com/gogpu/swr/types"
)

// CreateVertexBuffer uploads data into a new vertex buffer and returns its
// handle. data is copied; later writes by the caller do not affect it.
func (c *Context) CreateVertexBuffer(data []byte) core.VertexBufferID {
	buf := make([]byte, len(data))
	copy(buf, data)
	return c.vertexBuffers.Register(&VertexBuffer{Data: buf})
}

// GetVertexBuffer returns the vertex buffer identified by id.
func (c *Context) GetVertexBuffer(id core.VertexBufferID) (*VertexBuffer, error) {
	return c.vertexBuffers.Get(id)
}

// DestroyVertexBuffer releases id and frees its storage.
func (c *Context) DestroyVertexBuffer(id core.VertexBufferID) error {
	_, err := c.vertexBuffers.Unregister(id)
	return err
}

// CreateIndexBuffer uploads an index stream and returns its handle.
func (c *Context) CreateIndexBuffer(indices []uint32) core.IndexBufferID {
	buf := make([]uint32, len(indices))
	copy(buf, indices)
	return c.indexBuffers.Register(&IndexBuffer{Data: buf})
}

// GetIndexBuffer returns the index buffer identified by id.
func (c *Context) GetIndexBuffer(id core.IndexBufferID) (*IndexBuffer, error) {
	return c.indexBuffers.Get(id)
}

// DestroyIndexBuffer releases id and frees its storage.
func (c *Context) DestroyIndexBuffer(id core.IndexBufferID) error {
	_, err := c.indexBuffers.Unregister(id)
	return err
}

// CreateUniformBuffer uploads raw uniform bytes and returns its handle.
func (c *Context) CreateUniformBuffer(data []byte) core.UniformBufferID {
	buf := make([]byte, len(data))
	copy(buf, data)
	return c.uniformBuffers.Register(&UniformBuffer{Data: buf})
}

// WriteUniformBuffer replaces the contents of an existing uniform buffer
// without reallocating its handle, the common case for a per-frame
// transform block.
func (c *Context) WriteUniformBuffer(id core.UniformBufferID, data []byte) error {
	return c.uniformBuffers.GetMut(id, func(ub **UniformBuffer) {
		buf := make([]byte, len(data))
		copy(buf, data)
		(*ub).Data = buf
	})
}

// GetUniformBuffer returns the uniform buffer identified by id.
func (c *Context) GetUniformBuffer(id core.UniformBufferID) (*UniformBuffer, error) {
	return c.uniformBuffers.Get(id)
}

// DestroyUniformBuffer releases id and frees its storage.
func (c *Context) DestroyUniformBuffer(id core.UniformBufferID) error {
	_, err := c.uniformBuffers.Unregister(id)
	return err
}

// CreateTexture allocates a zeroed texture and returns its handle.
func (c *Context) CreateTexture(width, height int, format types.PixelFormat, layout types.TexelLayout) core.TextureID {
	return c.textures.Register(NewTexture(width, height, format, layout))
}

// GetTexture returns the texture identified by id.
func (c *Context) GetTexture(id core.TextureID) (*Texture, error) {
	return c.textures.Get(id)
}

// DestroyTexture releases id and frees its storage.
func (c *Context) DestroyTexture(id core.TextureID) error {
	_, err := c.textures.Unregister(id)
	return err
}

// CreateVertexArray binds a set of vertex buffers to attribute slots and
// returns a handle to the binding.
func (c *Context) CreateVertexArray(buffers []core.VertexBufferID, attributes []types.VertexAttribute) core.VertexArrayID {
	bufs := make([]core.VertexBufferID, len(buffers))
	copy(bufs, buffers)
	attrs := make([]types.VertexAttribute, len(attributes))
	copy(attrs, attributes)
	return c.vertexArrays.Register(VertexArray{Buffers: bufs, Attributes: attrs})
}

// GetVertexArray returns the vertex array identified by id.
func (c *Context) GetVertexArray(id core.VertexArrayID) (VertexArray, error) {
	return c.vertexArrays.Get(id)
}

// DestroyVertexArray releases id.
func (c *Context) DestroyVertexArray(id core.VertexArrayID) error {
	_, err := c.vertexArrays.Unregister(id)
	return err
}

// CreateShader registers a vertex/fragment program pair and returns a
// handle to it. Returns ErrShaderContractViolation if either stage is nil
// or the declared varying/output counts break the contract Program.IsValid
// checks.
func (c *Context) CreateShader(p shader.Program) (core.ShaderID, error) {
	if !p.IsValid() {
		return core.ShaderID{}, core.NewShaderContractError("program", 2, 0)
	}
	return c.shaders.Register(p), nil
}

// GetShader returns the shader program identified by id.
func (c *Context) GetShader(id core.ShaderID) (shader.Program, error) {
	return c.shaders.Get(id)
}

// DestroyShader releases id.
func (c *Context) DestroyShader(id core.ShaderID) error {
	_, err := c.shaders.Unregister(id)
	return err
}

// CreateFramebuffer allocates an empty framebuffer; attach color and depth
// targets with AttachColor/AttachDepth on the returned resource before
// drawing into it.
func (c *Context) CreateFramebuffer(width, height int) core.FramebufferID {
	return c.framebuffers.Register(NewFramebuffer(width, height))
}

// GetFramebuffer returns the framebuffer identified by id.
func (c *Context) GetFramebuffer(id core.FramebufferID) (*Framebuffer, error) {
	return c.framebuffers.Get(id)
}

// DestroyFramebuffer releases id.
func (c *Context) DestroyFramebuffer(id core.FramebufferID) error {
	_, err := c.framebuffers.Unregister(id)
	return err
}
