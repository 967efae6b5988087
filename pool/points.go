package pool

import "github.com/gogpu/swr/raster"

func emitPoint(producer int, req DrawRequest, bins *Bins, v raster.ClipVertex) {
	if raster.ComputeOutcode(v.Position) != 0 {
		return
	}
	sv, ok := toScreen(v, req.Viewport)
	if !ok {
		return
	}
	bins.PushPoint(producer, raster.Point{V: sv})
}
