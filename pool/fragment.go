package pool

import (
	"github.com/gogpu/swr/raster"
	"github.com/gogpu/swr/types"
)

// runFragmentStage drains bins for the primitives worker id owns (by the
// scanline_offset rule) and shades, depth-tests, blends and writes every
// fragment they produce. Every worker runs this over the full bin set;
// ownership is decided per scanline rather than by splitting the bin list,
// so a triangle spanning many rows is shaded by several workers at once.
func runFragmentStage(id, n int, req DrawRequest, bins *Bins) {
	owns := func(y int) bool {
		return raster.ScanlineOffset(n, id, y) == 0
	}

	wire := req.Primitive == types.PrimitiveTriWire || req.Primitive == types.PrimitiveIndexedTriWire

	bins.ForEach(func(tri raster.Triangle) {
		if wire {
			raster.RasterizeTriangleWire(tri, req.Viewport, owns, func(f raster.Fragment) {
				shadeFragment(req, f)
			})
			return
		}
		raster.RasterizeTriangle(tri, req.Viewport, owns, func(f raster.Fragment) {
			shadeFragment(req, f)
		})
	})

	bins.ForEachLine(func(l raster.Line) {
		raster.RasterizeLine(l, req.Viewport, owns, func(f raster.Fragment) {
			shadeFragment(req, f)
		})
	})

	bins.ForEachPoint(func(p raster.Point) {
		raster.RasterizePoint(p, req.Viewport, owns, func(f raster.Fragment) {
			shadeFragment(req, f)
		})
	})
}

func shadeFragment(req DrawRequest, frag raster.Fragment) {
	outputs, numOutputs, discard := req.Program.Fragment(frag, req.Uniforms)
	if discard {
		return
	}

	if req.Program.DepthTest {
		if req.DepthBuffer == nil {
			return
		}
		if !req.DepthBuffer.TestAndSet(frag.X, frag.Y, frag.Depth, req.Program.DepthFunc, req.Program.DepthWrite) {
			return
		}
	}

	if numOutputs > req.NumColorOutputs {
		numOutputs = req.NumColorOutputs
	}
	for i := 0; i < numOutputs; i++ {
		if req.WriteColor[i] == nil {
			continue
		}
		src := outputs[i]
		if req.Program.BlendMode == types.BlendOff {
			req.WriteColor[i](frag.X, frag.Y, src)
			continue
		}
		var dst types.Color
		if req.ReadColor[i] != nil {
			dst = req.ReadColor[i](frag.X, frag.Y)
		}
		req.WriteColor[i](frag.X, frag.Y, raster.Blend(src, dst, req.Program.BlendMode))
	}
}
