package swr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/swr/core"
	"github.com/gogpu/swr/raster"
	"github.com/gogpu/swr/shader"
	"github.com/gogpu/swr/types"
)

func newSolidColorShader(t *testing.T, ctx *Context) core.ShaderID {
	sh, err := ctx.CreateShader(shader.Program{
		Vertex:     shader.SolidColorVertex,
		Fragment:   shader.SolidColorFragment,
		NumOutputs: 1,
		DepthTest:  true,
		DepthWrite: true,
		DepthFunc:  types.CompareLess,
	})
	require.NoError(t, err)
	return sh
}

func drawFullscreenTriangle(t *testing.T, ctx *Context, fb core.FramebufferID, sh core.ShaderID, z float32, color types.Color, blend types.BlendMode, depthTest bool) {
	vb := ctx.CreateVertexBuffer(packFloats(
		-0.8, -0.8, z, 1,
		0.8, -0.8, z, 1,
		0, 0.8, z, 1,
	))
	va := ctx.CreateVertexArray([]core.VertexBufferID{vb}, []types.VertexAttribute{
		{Buffer: 0, ByteOffset: 0, ByteStride: 16, Dimension: 4, Scalar: types.VertexScalarF32},
	})
	ub := ctx.CreateUniformBuffer(packFloats(color.R, color.G, color.B, color.A))

	prog, err := ctx.GetShader(sh)
	require.NoError(t, err)
	prog.BlendMode = blend
	prog.DepthTest = depthTest

	customSh, err := ctx.CreateShader(prog)
	require.NoError(t, err)

	err = ctx.Draw(fb, DrawParams{
		Shader:      customSh,
		VertexArray: va,
		Uniforms:    ub,
		Primitive:   types.PrimitiveTriangles,
		VertexCount: 3,
		Viewport:    raster.Viewport{X: 0, Y: 0, Width: 16, Height: 16, MinDepth: 0, MaxDepth: 1},
	})
	require.NoError(t, err)
}

func newFilledFramebuffer(t *testing.T, ctx *Context, background types.Color) core.FramebufferID {
	fb := ctx.CreateFramebuffer(16, 16)
	fbRes, err := ctx.GetFramebuffer(fb)
	require.NoError(t, err)
	require.NoError(t, fbRes.AttachColor(0, NewTexture(16, 16, types.FormatRGBA8, types.TexelLayoutLinear)))
	fbRes.AttachDepth(ctx.DefaultDepthClearValue())
	require.NoError(t, ctx.ClearColor(fb, 0, background))
	require.NoError(t, ctx.ClearDepth(fb, ctx.DefaultDepthClearValue()))
	return fb
}

func TestDepthTestRejectsFartherFragmentBehindNearer(t *testing.T) {
	ctx := NewContext(WithThreadCount(2))
	fb := newFilledFramebuffer(t, ctx, types.Color{A: 1})
	sh := newSolidColorShader(t, ctx)

	// Nearer, red, drawn first: clip z=-0.5 maps to screen depth 0.25.
	drawFullscreenTriangle(t, ctx, fb, sh, -0.5, types.Color{R: 1, A: 1}, types.BlendOff, true)
	// Farther, green, drawn second: clip z=0.5 maps to screen depth 0.75,
	// must be rejected by the depth test (CompareLess) against the
	// nearer triangle's already-written 0.25.
	drawFullscreenTriangle(t, ctx, fb, sh, 0.5, types.Color{G: 1, A: 1}, types.BlendOff, true)

	fbRes, err := ctx.GetFramebuffer(fb)
	require.NoError(t, err)
	center := fbRes.ColorAttachment(0).ReadColor(8, 10)
	require.InDelta(t, float32(1), center.R, 1e-2)
	require.InDelta(t, float32(0), center.G, 1e-2)
}

func TestAlphaBlendProducesExactCompositedValue(t *testing.T) {
	ctx := NewContext(WithThreadCount(2))
	background := types.Color{B: 1, A: 1}
	fb := newFilledFramebuffer(t, ctx, background)
	sh := newSolidColorShader(t, ctx)

	src := types.Color{R: 1, A: 0.5}
	drawFullscreenTriangle(t, ctx, fb, sh, 0, src, types.BlendAlpha, false)

	fbRes, err := ctx.GetFramebuffer(fb)
	require.NoError(t, err)
	center := fbRes.ColorAttachment(0).ReadColor(8, 10)

	// BlendAlpha: out = src*src.A + dst*(1-src.A) per channel, alpha
	// out = src.A + dst.A*(1-src.A).
	want := types.Color{
		R: src.R*src.A + background.R*(1-src.A),
		G: src.G*src.A + background.G*(1-src.A),
		B: src.B*src.A + background.B*(1-src.A),
		A: src.A + background.A*(1-src.A),
	}
	require.InDelta(t, want.R, center.R, 1e-2)
	require.InDelta(t, want.G, center.G, 1e-2)
	require.InDelta(t, want.B, center.B, 1e-2)
	require.InDelta(t, want.A, center.A, 1e-2)
}

func TestIndexedAndExplicitDrawsProduceIdenticalPixels(t *testing.T) {
	ctx := NewContext(WithThreadCount(2))

	vertexData := packFloats(
		-0.8, -0.8, 0, 1,
		0.8, -0.8, 0, 1,
		0, 0.8, 0, 1,
	)
	uniformData := packFloats(1, 0.5, 0.25, 1)

	buildAndDraw := func(primitive types.PrimitiveMode, withIndices bool) []byte {
		vb := ctx.CreateVertexBuffer(vertexData)
		va := ctx.CreateVertexArray([]core.VertexBufferID{vb}, []types.VertexAttribute{
			{Buffer: 0, ByteOffset: 0, ByteStride: 16, Dimension: 4, Scalar: types.VertexScalarF32},
		})
		ub := ctx.CreateUniformBuffer(uniformData)
		sh, err := ctx.CreateShader(shader.Program{
			Vertex:     shader.SolidColorVertex,
			Fragment:   shader.SolidColorFragment,
			NumOutputs: 1,
		})
		require.NoError(t, err)

		fb := newFilledFramebuffer(t, ctx, types.Color{A: 1})

		params := DrawParams{
			Shader:      sh,
			VertexArray: va,
			Uniforms:    ub,
			Primitive:   primitive,
			VertexCount: 3,
			Viewport:    raster.Viewport{X: 0, Y: 0, Width: 16, Height: 16, MinDepth: 0, MaxDepth: 1},
		}
		if withIndices {
			params.Indices = ctx.CreateIndexBuffer([]uint32{0, 1, 2})
		}
		require.NoError(t, ctx.Draw(fb, params))

		fbRes, err := ctx.GetFramebuffer(fb)
		require.NoError(t, err)
		return fbRes.ColorAttachment(0).Data()
	}

	explicit := buildAndDraw(types.PrimitiveTriangles, false)
	indexed := buildAndDraw(types.PrimitiveIndexedTriangles, true)
	require.Equal(t, explicit, indexed)
}

func TestDrawIsInvariantUnderThreadCount(t *testing.T) {
	vertexData := packFloats(
		-0.8, -0.8, 0, 1,
		0.8, -0.8, 0, 1,
		0, 0.8, 0, 1,
	)
	uniformData := packFloats(0.2, 0.6, 0.9, 1)

	renderWith := func(threads int) []byte {
		ctx := NewContext(WithThreadCount(threads))
		vb := ctx.CreateVertexBuffer(vertexData)
		va := ctx.CreateVertexArray([]core.VertexBufferID{vb}, []types.VertexAttribute{
			{Buffer: 0, ByteOffset: 0, ByteStride: 16, Dimension: 4, Scalar: types.VertexScalarF32},
		})
		ub := ctx.CreateUniformBuffer(uniformData)
		sh, err := ctx.CreateShader(shader.Program{
			Vertex:     shader.SolidColorVertex,
			Fragment:   shader.SolidColorFragment,
			NumOutputs: 1,
		})
		require.NoError(t, err)

		fb := newFilledFramebuffer(t, ctx, types.Color{A: 1})
		require.NoError(t, ctx.Draw(fb, DrawParams{
			Shader:      sh,
			VertexArray: va,
			Uniforms:    ub,
			Primitive:   types.PrimitiveTriangles,
			VertexCount: 3,
			Viewport:    raster.Viewport{X: 0, Y: 0, Width: 16, Height: 16, MinDepth: 0, MaxDepth: 1},
		}))

		fbRes, err := ctx.GetFramebuffer(fb)
		require.NoError(t, err)
		return fbRes.ColorAttachment(0).Data()
	}

	baseline := renderWith(1)
	for _, n := range []int{2, 4, 8} {
		require.Equal(t, baseline, renderWith(n), "thread count %d produced different pixels than 1", n)
	}
}
