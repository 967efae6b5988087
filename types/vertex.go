package types

// VertexScalar identifies the scalar storage type of one vertex attribute
// component, analogous to a teacher VertexFormat but decoupled from the
// component count so a dimension (1-4) applies uniformly.
type VertexScalar uint8

const (
	VertexScalarU8 VertexScalar = iota
	VertexScalarI8
	VertexScalarU16
	VertexScalarI16
	VertexScalarU32
	VertexScalarI32
	VertexScalarF32
)

// Size returns the byte size of one component of this scalar type.
func (s VertexScalar) Size() int {
	switch s {
	case VertexScalarU8, VertexScalarI8:
		return 1
	case VertexScalarU16, VertexScalarI16:
		return 2
	case VertexScalarU32, VertexScalarI32, VertexScalarF32:
		return 4
	default:
		return 0
	}
}

// VertexAttribute describes one attribute binding within a vertex array:
// the byte offset and stride into its source buffer, the component count
// (dimension) and the scalar storage type of each component.
type VertexAttribute struct {
	Buffer     int // index into the vertex array's bound buffer list
	ByteOffset uint64
	ByteStride uint64
	Dimension  int // 1-4 components
	Scalar     VertexScalar
}
