// Package types holds the wire-level enums and descriptors shared by the
// core resource store, the rasterizer and the shader package: pixel
// formats, vertex attribute formats, compare functions, culling and
// blending state.
package types
