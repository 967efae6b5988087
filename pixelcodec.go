package swr

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/swr/types"
)

// decodeTexel reads channels in texel order (R, G, B, A as present) and
// normalizes them to [0, 1] for integer kinds; float kinds pass through
// unclamped so HDR values survive round trips.
func decodeTexel(b []byte, format types.PixelFormat) types.Color {
	channels := format.Channels()
	kind := format.ScalarKind()
	stride := kind.Size()

	var v [4]float32
	for i := 0; i < channels; i++ {
		v[i] = decodeChannel(b[i*stride:(i+1)*stride], kind)
	}

	c := types.Color{A: 1}
	switch {
	case channels == 1:
		c.R, c.G, c.B = v[0], v[0], v[0]
	case channels == 2:
		c.R, c.G, c.B = v[0], v[1], 0
	case channels == 3:
		c.R, c.G, c.B = v[0], v[1], v[2]
	case channels >= 4:
		c.R, c.G, c.B, c.A = v[0], v[1], v[2], v[3]
	}
	return c
}

// encodeTexel writes c's first `channels` components into b.
func encodeTexel(b []byte, format types.PixelFormat, c types.Color) {
	channels := format.Channels()
	kind := format.ScalarKind()
	stride := kind.Size()

	v := [4]float32{c.R, c.G, c.B, c.A}
	for i := 0; i < channels; i++ {
		encodeChannel(b[i*stride:(i+1)*stride], kind, v[i])
	}
}

func decodeChannel(b []byte, kind types.ScalarKind) float32 {
	switch kind {
	case types.ScalarU8:
		return float32(b[0]) / 255
	case types.ScalarU16:
		return float32(binary.LittleEndian.Uint16(b)) / 65535
	case types.ScalarU32:
		return float32(binary.LittleEndian.Uint32(b)) / 4294967295
	case types.ScalarU64:
		return float32(binary.LittleEndian.Uint64(b)) / 18446744073709551615
	case types.ScalarF16:
		return float16ToFloat32(binary.LittleEndian.Uint16(b))
	case types.ScalarF32:
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	case types.ScalarF64:
		return float32(math.Float64frombits(binary.LittleEndian.Uint64(b)))
	default:
		return 0
	}
}

func encodeChannel(b []byte, kind types.ScalarKind, v float32) {
	switch kind {
	case types.ScalarU8:
		b[0] = byte(clamp01(v) * 255)
	case types.ScalarU16:
		binary.LittleEndian.PutUint16(b, uint16(clamp01(v)*65535))
	case types.ScalarU32:
		binary.LittleEndian.PutUint32(b, uint32(clamp01(v)*4294967295))
	case types.ScalarU64:
		binary.LittleEndian.PutUint64(b, uint64(clamp01(v)*18446744073709551615))
	case types.ScalarF16:
		binary.LittleEndian.PutUint16(b, float32ToFloat16(v))
	case types.ScalarF32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(v))
	case types.ScalarF64:
		binary.LittleEndian.PutUint64(b, math.Float64bits(float64(v)))
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// float16ToFloat32 and float32ToFloat16 implement the IEEE 754 binary16
// conversion by hand: none of this repo's dependencies carry a half-float
// codec, and the conversion is small enough not to warrant pulling one in
// for this alone (see DESIGN.md).
func float16ToFloat32(h uint16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := (h >> 10) & 0x1f
	frac := uint32(h & 0x3ff)

	switch {
	case exp == 0 && frac == 0:
		return math.Float32frombits(sign)
	case exp == 0x1f:
		if frac == 0 {
			return math.Float32frombits(sign | 0x7f800000)
		}
		return math.Float32frombits(sign | 0x7f800000 | (frac << 13))
	case exp == 0:
		// subnormal half -> normalized float32
		e := 1
		for frac&0x400 == 0 {
			frac <<= 1
			e--
		}
		frac &= 0x3ff
		bits := sign | uint32(int32(e)+127-15)<<23 | (frac << 13)
		return math.Float32frombits(bits)
	default:
		bits := sign | (uint32(exp)-15+127)<<23 | (frac << 13)
		return math.Float32frombits(bits)
	}
}

func float32ToFloat16(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xff) - 127 + 15
	frac := bits & 0x7fffff

	switch {
	case exp <= 0:
		return sign
	case exp >= 0x1f:
		return sign | 0x7c00
	default:
		return sign | uint16(exp)<<10 | uint16(frac>>13)
	}
}
