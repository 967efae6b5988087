package types

import "fmt"

// ScalarKind identifies the storage type of a single pixel channel.
type ScalarKind uint8

const (
	ScalarU8 ScalarKind = iota
	ScalarU16
	ScalarU32
	ScalarU64
	ScalarF16
	ScalarF32
	ScalarF64
)

// Size returns the byte size of one channel of this kind.
func (k ScalarKind) Size() int {
	switch k {
	case ScalarU8:
		return 1
	case ScalarU16, ScalarF16:
		return 2
	case ScalarU32, ScalarF32:
		return 4
	case ScalarU64, ScalarF64:
		return 8
	default:
		return 0
	}
}

// PixelFormat names the full cross product of {R,RG,RGB,RGBA} channel
// layouts against {u8,u16,u32,u64,f16,f32,f64} scalar storage.
type PixelFormat uint8

const (
	FormatR8 PixelFormat = iota
	FormatR16
	FormatR32
	FormatR64
	FormatR16F
	FormatR32F
	FormatR64F

	FormatRG8
	FormatRG16
	FormatRG32
	FormatRG64
	FormatRG16F
	FormatRG32F
	FormatRG64F

	FormatRGB8
	FormatRGB16
	FormatRGB32
	FormatRGB64
	FormatRGB16F
	FormatRGB32F
	FormatRGB64F

	FormatRGBA8
	FormatRGBA16
	FormatRGBA32
	FormatRGBA64
	FormatRGBA16F
	FormatRGBA32F
	FormatRGBA64F
)

type formatInfo struct {
	channels int
	kind     ScalarKind
	name     string
}

var formatTable = map[PixelFormat]formatInfo{
	FormatR8:   {1, ScalarU8, "R8"},
	FormatR16:  {1, ScalarU16, "R16"},
	FormatR32:  {1, ScalarU32, "R32"},
	FormatR64:  {1, ScalarU64, "R64"},
	FormatR16F: {1, ScalarF16, "R16F"},
	FormatR32F: {1, ScalarF32, "R32F"},
	FormatR64F: {1, ScalarF64, "R64F"},

	FormatRG8:   {2, ScalarU8, "RG8"},
	FormatRG16:  {2, ScalarU16, "RG16"},
	FormatRG32:  {2, ScalarU32, "RG32"},
	FormatRG64:  {2, ScalarU64, "RG64"},
	FormatRG16F: {2, ScalarF16, "RG16F"},
	FormatRG32F: {2, ScalarF32, "RG32F"},
	FormatRG64F: {2, ScalarF64, "RG64F"},

	FormatRGB8:   {3, ScalarU8, "RGB8"},
	FormatRGB16:  {3, ScalarU16, "RGB16"},
	FormatRGB32:  {3, ScalarU32, "RGB32"},
	FormatRGB64:  {3, ScalarU64, "RGB64"},
	FormatRGB16F: {3, ScalarF16, "RGB16F"},
	FormatRGB32F: {3, ScalarF32, "RGB32F"},
	FormatRGB64F: {3, ScalarF64, "RGB64F"},

	FormatRGBA8:   {4, ScalarU8, "RGBA8"},
	FormatRGBA16:  {4, ScalarU16, "RGBA16"},
	FormatRGBA32:  {4, ScalarU32, "RGBA32"},
	FormatRGBA64:  {4, ScalarU64, "RGBA64"},
	FormatRGBA16F: {4, ScalarF16, "RGBA16F"},
	FormatRGBA32F: {4, ScalarF32, "RGBA32F"},
	FormatRGBA64F: {4, ScalarF64, "RGBA64F"},
}

// Channels returns the number of color channels in the format (1-4).
func (f PixelFormat) Channels() int {
	return formatTable[f].channels
}

// ScalarKind returns the per-channel storage type of the format.
func (f PixelFormat) ScalarKind() ScalarKind {
	return formatTable[f].kind
}

// BytesPerTexel returns the size in bytes of one texel in this format.
func (f PixelFormat) BytesPerTexel() int {
	info := formatTable[f]
	return info.channels * info.kind.Size()
}

// String returns the format's canonical name.
func (f PixelFormat) String() string {
	if info, ok := formatTable[f]; ok {
		return info.name
	}
	return fmt.Sprintf("PixelFormat(%d)", uint8(f))
}

// TexelLayout describes how texels are addressed within a texture's storage.
type TexelLayout uint8

const (
	// TexelLayoutLinear addresses texels in row-major order.
	TexelLayoutLinear TexelLayout = iota
	// TexelLayoutSwizzled2x2 groups texels into 2x2 Z-order blocks, improving
	// cache locality for axis-aligned texture sampling.
	TexelLayoutSwizzled2x2
)
