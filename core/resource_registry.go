package core

// The marker types backing ID[M] are sealed to this package (Marker's
// method is unexported), so a caller outside core cannot name
// Registry[T, vertexBufferMarker] directly. The thin wrappers below give
// each resource kind its own registry type, generic only over the stored
// value T, so the rest of the module can declare fields of these types
// without ever needing to spell out a marker type.

// VertexBufferRegistry stores vertex buffer resources of type T.
type VertexBufferRegistry[T any] struct{ r *Registry[T, vertexBufferMarker] }

func NewVertexBufferRegistry[T any]() *VertexBufferRegistry[T] {
	return &VertexBufferRegistry[T]{r: NewRegistry[T, vertexBufferMarker]()}
}
func (s *VertexBufferRegistry[T]) Register(item T) VertexBufferID { return s.r.Register(item) }
func (s *VertexBufferRegistry[T]) Get(id VertexBufferID) (T, error) { return s.r.Get(id) }
func (s *VertexBufferRegistry[T]) GetMut(id VertexBufferID, fn func(*T)) error {
	return s.r.GetMut(id, fn)
}
func (s *VertexBufferRegistry[T]) Unregister(id VertexBufferID) (T, error) { return s.r.Unregister(id) }
func (s *VertexBufferRegistry[T]) Contains(id VertexBufferID) bool         { return s.r.Contains(id) }
func (s *VertexBufferRegistry[T]) Count() uint64                          { return s.r.Count() }

// IndexBufferRegistry stores index buffer resources of type T.
type IndexBufferRegistry[T any] struct{ r *Registry[T, indexBufferMarker] }

func NewIndexBufferRegistry[T any]() *IndexBufferRegistry[T] {
	return &IndexBufferRegistry[T]{r: NewRegistry[T, indexBufferMarker]()}
}
func (s *IndexBufferRegistry[T]) Register(item T) IndexBufferID { return s.r.Register(item) }
func (s *IndexBufferRegistry[T]) Get(id IndexBufferID) (T, error) { return s.r.Get(id) }
func (s *IndexBufferRegistry[T]) Unregister(id IndexBufferID) (T, error) { return s.r.Unregister(id) }
func (s *IndexBufferRegistry[T]) Contains(id IndexBufferID) bool        { return s.r.Contains(id) }
func (s *IndexBufferRegistry[T]) Count() uint64                         { return s.r.Count() }

// UniformBufferRegistry stores uniform buffer resources of type T.
type UniformBufferRegistry[T any] struct{ r *Registry[T, uniformBufferMarker] }

func NewUniformBufferRegistry[T any]() *UniformBufferRegistry[T] {
	return &UniformBufferRegistry[T]{r: NewRegistry[T, uniformBufferMarker]()}
}
func (s *UniformBufferRegistry[T]) Register(item T) UniformBufferID { return s.r.Register(item) }
func (s *UniformBufferRegistry[T]) Get(id UniformBufferID) (T, error) { return s.r.Get(id) }
func (s *UniformBufferRegistry[T]) GetMut(id UniformBufferID, fn func(*T)) error {
	return s.r.GetMut(id, fn)
}
func (s *UniformBufferRegistry[T]) Unregister(id UniformBufferID) (T, error) {
	return s.r.Unregister(id)
}
func (s *UniformBufferRegistry[T]) Contains(id UniformBufferID) bool { return s.r.Contains(id) }
func (s *UniformBufferRegistry[T]) Count() uint64                   { return s.r.Count() }

// TextureRegistry stores texture resources of type T.
type TextureRegistry[T any] struct{ r *Registry[T, textureMarker] }

func NewTextureRegistry[T any]() *TextureRegistry[T] {
	return &TextureRegistry[T]{r: NewRegistry[T, textureMarker]()}
}
func (s *TextureRegistry[T]) Register(item T) TextureID       { return s.r.Register(item) }
func (s *TextureRegistry[T]) Get(id TextureID) (T, error)     { return s.r.Get(id) }
func (s *TextureRegistry[T]) Unregister(id TextureID) (T, error) { return s.r.Unregister(id) }
func (s *TextureRegistry[T]) Contains(id TextureID) bool      { return s.r.Contains(id) }
func (s *TextureRegistry[T]) Count() uint64                   { return s.r.Count() }

// VertexArrayRegistry stores vertex array resources of type T.
type VertexArrayRegistry[T any] struct{ r *Registry[T, vertexArrayMarker] }

func NewVertexArrayRegistry[T any]() *VertexArrayRegistry[T] {
	return &VertexArrayRegistry[T]{r: NewRegistry[T, vertexArrayMarker]()}
}
func (s *VertexArrayRegistry[T]) Register(item T) VertexArrayID { return s.r.Register(item) }
func (s *VertexArrayRegistry[T]) Get(id VertexArrayID) (T, error) { return s.r.Get(id) }
func (s *VertexArrayRegistry[T]) GetMut(id VertexArrayID, fn func(*T)) error {
	return s.r.GetMut(id, fn)
}
func (s *VertexArrayRegistry[T]) Unregister(id VertexArrayID) (T, error) { return s.r.Unregister(id) }
func (s *VertexArrayRegistry[T]) Contains(id VertexArrayID) bool        { return s.r.Contains(id) }
func (s *VertexArrayRegistry[T]) Count() uint64                        { return s.r.Count() }

// ShaderRegistry stores shader program resources of type T.
type ShaderRegistry[T any] struct{ r *Registry[T, shaderMarker] }

func NewShaderRegistry[T any]() *ShaderRegistry[T] {
	return &ShaderRegistry[T]{r: NewRegistry[T, shaderMarker]()}
}
func (s *ShaderRegistry[T]) Register(item T) ShaderID       { return s.r.Register(item) }
func (s *ShaderRegistry[T]) Get(id ShaderID) (T, error)     { return s.r.Get(id) }
func (s *ShaderRegistry[T]) Unregister(id ShaderID) (T, error) { return s.r.Unregister(id) }
func (s *ShaderRegistry[T]) Contains(id ShaderID) bool      { return s.r.Contains(id) }
func (s *ShaderRegistry[T]) Count() uint64                  { return s.r.Count() }

// FramebufferRegistry stores framebuffer resources of type T.
type FramebufferRegistry[T any] struct{ r *Registry[T, framebufferMarker] }

func NewFramebufferRegistry[T any]() *FramebufferRegistry[T] {
	return &FramebufferRegistry[T]{r: NewRegistry[T, framebufferMarker]()}
}
func (s *FramebufferRegistry[T]) Register(item T) FramebufferID { return s.r.Register(item) }
func (s *FramebufferRegistry[T]) Get(id FramebufferID) (T, error) { return s.r.Get(id) }
func (s *FramebufferRegistry[T]) Unregister(id FramebufferID) (T, error) { return s.r.Unregister(id) }
func (s *FramebufferRegistry[T]) Contains(id FramebufferID) bool        { return s.r.Contains(id) }
func (s *FramebufferRegistry[T]) Count() uint64                        { return s.r.Count() }
