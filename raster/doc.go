// Package raster implements the pure geometry and pixel math of the
// rasterizer: tile/scanline partitioning, homogeneous clipping, edge
// functions, perspective-correct interpolation, depth testing and
// blending. Nothing in this package touches goroutines or the resource
// store; pool uses it to drive the vertex and fragment stages.
package raster
