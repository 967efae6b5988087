package swr

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/swr/core"
	"github.com/gogpu/swr/raster"
	"github.com/gogpu/swr/shader"
	"github.com/gogpu/swr/types"
)

func packFloats(vs ...float32) []byte {
	buf := make([]byte, 4*len(vs))
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func TestDrawSolidColorTriangleFillsCenterPixel(t *testing.T) {
	ctx := NewContext(WithThreadCount(4))

	vb := ctx.CreateVertexBuffer(packFloats(
		-0.8, -0.8, 0, 1,
		0.8, -0.8, 0, 1,
		0, 0.8, 0, 1,
	))
	va := ctx.CreateVertexArray([]core.VertexBufferID{vb}, []types.VertexAttribute{
		{Buffer: 0, ByteOffset: 0, ByteStride: 16, Dimension: 4, Scalar: types.VertexScalarF32},
	})
	ub := ctx.CreateUniformBuffer(packFloats(1, 0, 0, 1))
	sh, err := ctx.CreateShader(shader.Program{
		Vertex:      shader.SolidColorVertex,
		Fragment:    shader.SolidColorFragment,
		NumVaryings: 0,
		NumOutputs:  1,
	})
	require.NoError(t, err)

	fb := ctx.CreateFramebuffer(16, 16)
	fbRes, err := ctx.GetFramebuffer(fb)
	require.NoError(t, err)
	require.NoError(t, fbRes.AttachColor(0, NewTexture(16, 16, types.FormatRGBA8, types.TexelLayoutLinear)))
	fbRes.AttachDepth(1)

	require.NoError(t, ctx.ClearColor(fb, 0, types.Color{A: 1}))

	err = ctx.Draw(fb, DrawParams{
		Shader:      sh,
		VertexArray: va,
		Uniforms:    ub,
		Primitive:   types.PrimitiveTriangles,
		VertexCount: 3,
		Viewport:    raster.Viewport{X: 0, Y: 0, Width: 16, Height: 16, MinDepth: 0, MaxDepth: 1},
	})
	require.NoError(t, err)

	tex := fbRes.ColorAttachment(0)
	center := tex.ReadColor(8, 10)
	require.InDelta(t, float32(1), center.R, 1e-2)
	require.InDelta(t, float32(0), center.G, 1e-2)
}

func TestDrawReturnsErrorForIncompleteFramebuffer(t *testing.T) {
	ctx := NewContext(WithThreadCount(1))
	fb := ctx.CreateFramebuffer(4, 4)

	err := ctx.Draw(fb, DrawParams{})
	require.ErrorIs(t, err, core.ErrIncompleteFramebuffer)
}

func TestDrawReturnsErrorForUnknownShader(t *testing.T) {
	ctx := NewContext(WithThreadCount(1))
	fb := ctx.CreateFramebuffer(4, 4)
	fbRes, err := ctx.GetFramebuffer(fb)
	require.NoError(t, err)
	require.NoError(t, fbRes.AttachColor(0, NewTexture(4, 4, types.FormatRGBA8, types.TexelLayoutLinear)))
	fbRes.AttachDepth(1)

	err = ctx.Draw(fb, DrawParams{Primitive: types.PrimitiveTriangles})
	require.Error(t, err)
}

func TestDrawReturnsErrorForColorOnlyFramebufferMissingDepth(t *testing.T) {
	ctx := NewContext(WithThreadCount(1))
	fb := ctx.CreateFramebuffer(4, 4)
	fbRes, err := ctx.GetFramebuffer(fb)
	require.NoError(t, err)
	require.NoError(t, fbRes.AttachColor(0, NewTexture(4, 4, types.FormatRGBA8, types.TexelLayoutLinear)))

	err = ctx.Draw(fb, DrawParams{Primitive: types.PrimitiveTriangles})
	require.ErrorIs(t, err, core.ErrIncompleteFramebuffer)
}

func TestCreateShaderRejectsContractViolation(t *testing.T) {
	ctx := NewContext(WithThreadCount(1))

	_, err := ctx.CreateShader(shader.Program{
		Vertex:              shader.SolidColorVertex,
		Fragment:            shader.SolidColorFragment,
		NumVaryings:         1,
		NumFragmentVaryings: 2, // fragment wants more varyings than the vertex writes
		NumOutputs:          1,
	})
	require.ErrorIs(t, err, core.ErrShaderContractViolation)

	_, err = ctx.CreateShader(shader.Program{
		Vertex:     shader.SolidColorVertex,
		Fragment:   shader.SolidColorFragment,
		NumOutputs: 0, // fragment.num_outputs >= 1 violated
	})
	require.ErrorIs(t, err, core.ErrShaderContractViolation)
}

func TestDrawReturnsAttachmentMismatchForOutputCount(t *testing.T) {
	ctx := NewContext(WithThreadCount(1))

	vb := ctx.CreateVertexBuffer(packFloats(
		-0.8, -0.8, 0, 1,
		0.8, -0.8, 0, 1,
		0, 0.8, 0, 1,
	))
	va := ctx.CreateVertexArray([]core.VertexBufferID{vb}, []types.VertexAttribute{
		{Buffer: 0, ByteOffset: 0, ByteStride: 16, Dimension: 4, Scalar: types.VertexScalarF32},
	})
	ub := ctx.CreateUniformBuffer(packFloats(1, 0, 0, 1))
	sh, err := ctx.CreateShader(shader.Program{
		Vertex:     shader.SolidColorVertex,
		Fragment:   shader.SolidColorFragment,
		NumOutputs: 2, // declares two outputs
	})
	require.NoError(t, err)

	fb := ctx.CreateFramebuffer(8, 8)
	fbRes, err := ctx.GetFramebuffer(fb)
	require.NoError(t, err)
	require.NoError(t, fbRes.AttachColor(0, NewTexture(8, 8, types.FormatRGBA8, types.TexelLayoutLinear)))
	fbRes.AttachDepth(1) // only one color attachment bound

	err = ctx.Draw(fb, DrawParams{
		Shader:      sh,
		VertexArray: va,
		Uniforms:    ub,
		Primitive:   types.PrimitiveTriangles,
		VertexCount: 3,
		Viewport:    raster.Viewport{X: 0, Y: 0, Width: 8, Height: 8, MinDepth: 0, MaxDepth: 1},
	})
	require.ErrorIs(t, err, core.ErrAttachmentMismatch)
}
