package pool

import "github.com/gogpu/swr/raster"

// emitLine bins a line segment for the fragment stage. The segment is not
// clipped: it is dropped when both endpoints lie outside the same frustum
// plane or when either endpoint has a non-positive or non-finite w, and is
// otherwise binned whole; pixels outside the viewport are dropped when the
// line is rasterized.
func emitLine(producer int, req DrawRequest, bins *Bins, v0, v1 raster.ClipVertex) {
	c0, c1 := raster.ComputeOutcode(v0.Position), raster.ComputeOutcode(v1.Position)
	if c0&c1 != 0 {
		return
	}

	sv0, ok0 := toScreen(v0, req.Viewport)
	sv1, ok1 := toScreen(v1, req.Viewport)
	if !ok0 || !ok1 {
		return
	}
	bins.PushLine(producer, raster.Line{V0: sv0, V1: sv1})
}
