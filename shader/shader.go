package shader

import (
	"github.com/gogpu/swr/raster"
	"github.com/gogpu/swr/types"
)

// VertexInput is the data fetched for one vertex before the vertex
// program runs: its attribute components, gathered from the bound vertex
// buffers according to the vertex array's VertexAttribute descriptors.
type VertexInput struct {
	Index      int
	Instance   int
	Attributes [][]float32 // one slice per bound VertexAttribute
}

// VertexFunc transforms one vertex into clip space and produces the
// varyings the fragment program will receive, perspective-interpolated.
// uniforms is the raw contents of the bound uniform buffer.
type VertexFunc func(in VertexInput, uniforms []byte) (position [4]float32, varyings []float32)

// FragmentFunc computes a fragment's output color(s) from its
// interpolated varyings. Returning discard=true drops the fragment
// before the depth write and blend stages.
type FragmentFunc func(frag raster.Fragment, uniforms []byte) (outputs [4]types.Color, numOutputs int, discard bool)

// MaxVaryings bounds the number of varying vectors a shader contract may
// declare on either side of the vertex/fragment boundary.
const MaxVaryings = 4

// MaxOutputs bounds the number of color outputs a fragment program may
// declare, matching the framebuffer's MAX_COLOR_ATTACHMENTS.
const MaxOutputs = 4

// Program bundles a vertex/fragment pair with the fixed-function pipeline
// state a draw call needs: culling, winding, blending and depth control.
// Bundling state with the shader value (rather than dispatching on it
// dynamically per fragment) keeps the hot loop monomorphic.
type Program struct {
	Vertex   VertexFunc
	Fragment FragmentFunc

	// NumVaryings is the number of varying vectors the vertex program
	// writes. NumFragmentVaryings is the number the fragment program
	// reads; the contract requires NumVaryings >= NumFragmentVaryings,
	// since a fragment program may not read varyings the vertex program
	// never wrote.
	NumVaryings         int
	NumFragmentVaryings int
	NumOutputs          int

	CullMode   types.CullMode
	FrontFace  types.FrontFace
	BlendMode  types.BlendMode
	DepthTest  bool
	DepthWrite bool
	DepthFunc  types.CompareFunc
}

// IsValid reports whether both stages are set and the declared contract
// counts obey the shader invariant: varying counts within [0, MaxVaryings],
// NumVaryings >= NumFragmentVaryings, and at least one fragment output
// within [1, MaxOutputs].
func (p Program) IsValid() bool {
	if p.Vertex == nil || p.Fragment == nil {
		return false
	}
	if p.NumVaryings < 0 || p.NumVaryings > MaxVaryings {
		return false
	}
	if p.NumFragmentVaryings < 0 || p.NumFragmentVaryings > p.NumVaryings {
		return false
	}
	if p.NumOutputs < 1 || p.NumOutputs > MaxOutputs {
		return false
	}
	return true
}
