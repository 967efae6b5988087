package pool

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/swr/raster"
	"github.com/gogpu/swr/shader"
	"github.com/gogpu/swr/types"
)

// ptvCache is a small direct-mapped post-transform-vertex cache: shading
// the same vertex index twice inside one producer's partition (shared by
// adjacent triangles in a strip-like index buffer) is skipped on a hit.
// Correctness never depends on the cache; it is a pure throughput knob and
// may be sized to zero to disable it entirely.
type ptvCache struct {
	size   int
	index  []int
	clip   []raster.ClipVertex
	filled []bool
}

func newPTVCache(size int) *ptvCache {
	if size <= 0 {
		return nil
	}
	return &ptvCache{
		size:   size,
		index:  make([]int, size),
		clip:   make([]raster.ClipVertex, size),
		filled: make([]bool, size),
	}
}

func (c *ptvCache) lookup(vertexIndex int) (raster.ClipVertex, bool) {
	if c == nil {
		return raster.ClipVertex{}, false
	}
	slot := vertexIndex % c.size
	if c.filled[slot] && c.index[slot] == vertexIndex {
		return c.clip[slot], true
	}
	return raster.ClipVertex{}, false
}

func (c *ptvCache) store(vertexIndex int, v raster.ClipVertex) {
	if c == nil {
		return
	}
	slot := vertexIndex % c.size
	c.index[slot] = vertexIndex
	c.clip[slot] = v
	c.filled[slot] = true
}

func runVertexStage(producer, begin, end int, req DrawRequest, bins *Bins) {
	if begin >= end {
		return
	}
	vertsPerPrim := req.Primitive.VertsPerPrimitive()
	cache := newPTVCache(req.PTVCacheSize)

	shadeVertex := func(vertexIndex int) raster.ClipVertex {
		if cv, ok := cache.lookup(vertexIndex); ok {
			return cv
		}
		attrs := req.FetchAttributes(vertexIndex)
		in := shader.VertexInput{Index: vertexIndex, Instance: req.Instance, Attributes: attrs}
		pos, varyings := req.Program.Vertex(in, req.Uniforms)
		cv := raster.ClipVertex{Position: pos, Varyings: varyings}
		cache.store(vertexIndex, cv)
		return cv
	}

	for i := begin; i+vertsPerPrim <= end; i += vertsPerPrim {
		switch vertsPerPrim {
		case 3:
			v0 := shadeVertex(vertexIndexAt(req, i))
			v1 := shadeVertex(vertexIndexAt(req, i+1))
			v2 := shadeVertex(vertexIndexAt(req, i+2))
			emitTriangle(producer, req, bins, v0, v1, v2)
		case 2:
			v0 := shadeVertex(vertexIndexAt(req, i))
			v1 := shadeVertex(vertexIndexAt(req, i+1))
			emitLine(producer, req, bins, v0, v1)
		default:
			v0 := shadeVertex(vertexIndexAt(req, i))
			emitPoint(producer, req, bins, v0)
		}
	}
}

func emitTriangle(producer int, req DrawRequest, bins *Bins, v0, v1, v2 raster.ClipVertex) {
	c0, c1, c2 := raster.ComputeOutcode(v0.Position), raster.ComputeOutcode(v1.Position), raster.ComputeOutcode(v2.Position)
	if raster.TriangleTrivialReject(c0, c1, c2) {
		return
	}

	var clipped [][3]raster.ClipVertex
	if raster.TriangleTrivialAccept(c0, c1, c2) {
		clipped = [][3]raster.ClipVertex{{v0, v1, v2}}
	} else {
		clipped = raster.ClipTriangle(v0, v1, v2)
	}

	for _, tri := range clipped {
		sv0, ok0 := toScreen(tri[0], req.Viewport)
		sv1, ok1 := toScreen(tri[1], req.Viewport)
		sv2, ok2 := toScreen(tri[2], req.Viewport)
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		area := raster.ComputeTriangleArea(sv0, sv1, sv2)
		if area == 0 {
			continue
		}
		if req.Program.CullMode != types.CullNone {
			back := raster.IsBackFacing(area, req.Program.FrontFace)
			if (req.Program.CullMode == types.CullBack && back) || (req.Program.CullMode == types.CullFront && !back) {
				continue
			}
		}

		bins.Push(producer, raster.Triangle{V0: sv0, V1: sv1, V2: sv2})
	}
}

// toScreen performs the perspective divide and viewport transform. A
// clip-space vertex with non-finite or non-positive w is discarded here,
// at the vertex boundary, rather than propagated into the fragment stage.
func toScreen(v raster.ClipVertex, vp raster.Viewport) (raster.ScreenVertex, bool) {
	w := v.Position[3]
	if w <= 0 || math32.IsInf(w, 0) || math32.IsNaN(w) {
		return raster.ScreenVertex{}, false
	}
	invW := 1 / w
	ndcX := v.Position[0] * invW
	ndcY := v.Position[1] * invW
	ndcZ := v.Position[2] * invW

	x := (ndcX*0.5 + 0.5) * float32(vp.Width)
	y := (1 - (ndcY*0.5 + 0.5)) * float32(vp.Height)
	z := vp.MinDepth + (ndcZ*0.5+0.5)*(vp.MaxDepth-vp.MinDepth)

	return raster.ScreenVertex{
		X:        x + float32(vp.X),
		Y:        y + float32(vp.Y),
		Z:        z,
		W:        invW,
		Varyings: v.Varyings,
	}, true
}
