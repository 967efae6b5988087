package swr

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/swr/core"
	"github.com/gogpu/swr/pool"
	"github.com/gogpu/swr/raster"
	"github.com/gogpu/swr/types"
)

// DrawParams describes one draw call against a bound framebuffer.
type DrawParams struct {
	Shader      core.ShaderID
	VertexArray core.VertexArrayID
	Uniforms    core.UniformBufferID
	Primitive   types.PrimitiveMode
	VertexCount int
	Indices     core.IndexBufferID // only read when Primitive.Indexed()
	Viewport    raster.Viewport
}

// Draw rasterizes one primitive batch into target, running the bound
// shader's vertex and fragment programs across every worker in c's pool.
// Returns IncompleteFramebuffer if target lacks a color or a depth
// attachment, or a handle error if any referenced resource does not exist.
func (c *Context) Draw(target core.FramebufferID, params DrawParams) error {
	req, err := c.buildDrawRequest(target, params)
	if err != nil {
		return err
	}
	pool.Draw(c.pool, req)
	return nil
}

// DrawInstanced issues instanceCount draws of the same batch, each with
// VertexInput.Instance set to its index, so a vertex program can offset
// position or select per-instance attributes from the uniform buffer.
func (c *Context) DrawInstanced(target core.FramebufferID, params DrawParams, instanceCount int) error {
	req, err := c.buildDrawRequest(target, params)
	if err != nil {
		return err
	}
	for i := 0; i < instanceCount; i++ {
		req.Instance = i
		pool.Draw(c.pool, req)
	}
	return nil
}

func (c *Context) buildDrawRequest(target core.FramebufferID, params DrawParams) (pool.DrawRequest, error) {
	fb, err := c.framebuffers.Get(target)
	if err != nil {
		return pool.DrawRequest{}, err
	}
	if !fb.IsComplete() {
		return pool.DrawRequest{}, core.ErrIncompleteFramebuffer
	}

	prog, err := c.shaders.Get(params.Shader)
	if err != nil {
		return pool.DrawRequest{}, err
	}
	if prog.NumOutputs > fb.NumColorOutputs() {
		return pool.DrawRequest{}, core.NewAttachmentError(
			"shader declares %d outputs, framebuffer has %d color attachments", prog.NumOutputs, fb.NumColorOutputs())
	}
	va, err := c.vertexArrays.Get(params.VertexArray)
	if err != nil {
		return pool.DrawRequest{}, err
	}

	var uniformData []byte
	if !params.Uniforms.IsZero() {
		ub, err := c.uniformBuffers.Get(params.Uniforms)
		if err != nil {
			return pool.DrawRequest{}, err
		}
		uniformData = ub.Data
	}

	var indices []uint32
	if params.Primitive.Indexed() {
		ib, err := c.indexBuffers.Get(params.Indices)
		if err != nil {
			return pool.DrawRequest{}, err
		}
		indices = ib.Data
	}

	buffers := make([][]byte, len(va.Buffers))
	for i, id := range va.Buffers {
		vb, err := c.vertexBuffers.Get(id)
		if err != nil {
			return pool.DrawRequest{}, err
		}
		buffers[i] = vb.Data
	}
	for i, a := range va.Attributes {
		if a.Buffer < 0 || a.Buffer >= len(buffers) {
			return pool.DrawRequest{}, core.NewValidationErrorf("VertexArray", "attributes",
				"attribute %d references buffer %d, vertex array has %d", i, a.Buffer, len(buffers))
		}
	}

	req := pool.DrawRequest{
		Program:      prog,
		Primitive:    params.Primitive,
		VertexCount:  params.VertexCount,
		Indices:      indices,
		Uniforms:     uniformData,
		Viewport:     params.Viewport,
		PTVCacheSize: c.ptvCacheSize,
		FetchAttributes: func(vertexIndex int) [][]float32 {
			return fetchAttributes(buffers, va.Attributes, vertexIndex)
		},
	}

	for i := 0; i < fb.NumColorOutputs(); i++ {
		tex := fb.ColorAttachment(i)
		if tex == nil {
			continue
		}
		req.ReadColor[i] = tex.ReadColor
		req.WriteColor[i] = tex.WriteColor
	}
	req.NumColorOutputs = fb.NumColorOutputs()
	req.DepthBuffer = fb.DepthAttachment()

	return req, nil
}

// fetchAttributes decodes one vertex's bound attribute components from
// their source buffers according to each VertexAttribute's layout.
func fetchAttributes(buffers [][]byte, attrs []types.VertexAttribute, vertexIndex int) [][]float32 {
	out := make([][]float32, len(attrs))
	for i, a := range attrs {
		buf := buffers[a.Buffer]
		base := a.ByteOffset + uint64(vertexIndex)*a.ByteStride
		comps := make([]float32, a.Dimension)
		compSize := uint64(a.Scalar.Size())
		for d := 0; d < a.Dimension; d++ {
			off := base + uint64(d)*compSize
			comps[d] = decodeVertexScalar(buf[off:off+compSize], a.Scalar)
		}
		out[i] = comps
	}
	return out
}

func decodeVertexScalar(b []byte, kind types.VertexScalar) float32 {
	switch kind {
	case types.VertexScalarU8:
		return float32(b[0])
	case types.VertexScalarI8:
		return float32(int8(b[0]))
	case types.VertexScalarU16:
		return float32(binary.LittleEndian.Uint16(b))
	case types.VertexScalarI16:
		return float32(int16(binary.LittleEndian.Uint16(b)))
	case types.VertexScalarU32:
		return float32(binary.LittleEndian.Uint32(b))
	case types.VertexScalarI32:
		return float32(int32(binary.LittleEndian.Uint32(b)))
	case types.VertexScalarF32:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	default:
		return 0
	}
}
