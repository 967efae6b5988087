package raster

import "github.com/gogpu/swr/types"

// EdgeFunction evaluates twice the signed area of the triangle formed by
// the directed edge (x0,y0)->(x1,y1) and a point: positive for points on
// the left of the edge, negative for points on the right.
type EdgeFunction struct {
	A, B, C float32
}

// NewEdgeFunction builds the edge function for the directed edge
// (x0,y0)->(x1,y1).
func NewEdgeFunction(x0, y0, x1, y1 float32) EdgeFunction {
	return EdgeFunction{
		A: y0 - y1,
		B: x1 - x0,
		C: x0*y1 - x1*y0,
	}
}

// Evaluate returns the signed area at (x, y).
func (e EdgeFunction) Evaluate(x, y float32) float32 {
	return e.A*x + e.B*y + e.C
}

// IsTopLeft reports whether this edge is a top or left edge under the
// fill-rule convention, so a sample exactly on the edge is included on
// only one of the two triangles that share it.
func (e EdgeFunction) IsTopLeft() bool {
	isLeft := e.A > 0
	isTop := e.A == 0 && e.B < 0
	return isLeft || isTop
}

// ComputeTriangleArea returns twice the signed area of the screen-space
// triangle (positive for counter-clockwise winding).
func ComputeTriangleArea(v0, v1, v2 ScreenVertex) float32 {
	return (v1.X-v0.X)*(v2.Y-v0.Y) - (v2.X-v0.X)*(v1.Y-v0.Y)
}

// IsBackFacing reports whether a triangle of the given signed area is
// back-facing under frontFace.
func IsBackFacing(area float32, frontFace types.FrontFace) bool {
	if frontFace == types.FrontFaceCCW {
		return area < 0
	}
	return area > 0
}
