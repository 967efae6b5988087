package pool

import (
	"github.com/gogpu/swr/raster"
	"github.com/gogpu/swr/shader"
	"github.com/gogpu/swr/types"
)

// MaxColorOutputs bounds the number of simultaneous color attachments a
// fragment program may write in one draw call.
const MaxColorOutputs = 4

// DrawRequest describes one draw call: the primitives to assemble, the
// shader program to run them through, and the callbacks the fragment
// stage uses to read/write the target attachments. Keeping the targets
// behind callbacks (rather than passing a Framebuffer type in) keeps
// this package free of any dependency on the resource store.
type DrawRequest struct {
	Program     shader.Program
	Primitive   types.PrimitiveMode
	VertexCount int
	Indices     []uint32 // used when Primitive.Indexed()
	Instance    int      // passed through to VertexInput.Instance for instanced draws

	// FetchAttributes resolves one vertex's bound attribute components
	// (one slice per VertexAttribute) for the given vertex index.
	FetchAttributes func(vertexIndex int) [][]float32
	Uniforms        []byte

	Viewport raster.Viewport

	// PTVCacheSize sets the per-worker post-transform-vertex cache size
	// (0 disables it).
	PTVCacheSize int

	NumColorOutputs int
	ReadColor       [MaxColorOutputs]func(x, y int) types.Color
	WriteColor      [MaxColorOutputs]func(x, y int, c types.Color)

	DepthBuffer *raster.DepthBuffer
}

// Draw runs the vertex stage (assembly, clipping, binning) and the
// fragment stage (scanline-owned rasterization, depth test, blend) of
// req across p's workers, returning once every worker has finished both
// phases.
func Draw(p *Pool, req DrawRequest) {
	n := p.NumWorkers()
	bins := NewBins(n)
	vertsPerPrim := req.Primitive.VertsPerPrimitive()

	p.Run(func(id int) {
		begin, end := raster.PartitionIndices(indexCount(req), n, id, vertsPerPrim)
		runVertexStage(id, begin, end, req, bins)
	})

	p.Run(func(id int) {
		runFragmentStage(id, n, req, bins)
	})
}

func indexCount(req DrawRequest) int {
	if req.Primitive.Indexed() {
		return len(req.Indices)
	}
	return req.VertexCount
}

func vertexIndexAt(req DrawRequest, i int) int {
	if req.Primitive.Indexed() {
		return int(req.Indices[i])
	}
	return i
}
