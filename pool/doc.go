// Package pool runs the vertex and fragment stages of a draw call across a
// fixed set of workers. One worker is always the goroutine that called
// Draw, so a single-threaded caller still gets correct results with zero
// extra goroutines. Producers (vertex-stage workers) bin finished
// primitives into per-producer slices; consumers (fragment-stage workers)
// each own a disjoint, interleaved set of scanlines so no pixel is ever
// touched by two workers. Color textures and the depth buffer still take
// their own lock on every read and write.
package pool
