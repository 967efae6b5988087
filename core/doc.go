// Package core provides the generation-checked handle system the rasterizer
// uses to hand out and validate resource identifiers: vertex/index/uniform
// buffers, textures, vertex arrays, shaders and framebuffers all share the
// same Index+Epoch scheme so a stale handle is rejected rather than aliasing
// a reused slot.
package core
