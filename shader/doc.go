// Package shader defines the vertex and fragment program types user code
// supplies to a draw call, plus a handful of builtin programs used by
// tests and simple draws.
package shader
