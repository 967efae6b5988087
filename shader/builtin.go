package shader

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/swr/raster"
	"github.com/gogpu/swr/types"
)

// SolidColorVertex passes position through unmodified (already clip-space
// in Attributes[0][0:4]) and emits no varyings; the fragment stage reads
// its color from uniforms directly.
func SolidColorVertex(in VertexInput, uniforms []byte) (position [4]float32, varyings []float32) {
	pos := in.Attributes[0]
	return [4]float32{pos[0], pos[1], pos[2], pos[3]}, nil
}

// SolidColorFragment paints every covered fragment the color packed as
// four little-endian float32s at the start of uniforms.
func SolidColorFragment(frag raster.Fragment, uniforms []byte) (outputs [4]types.Color, numOutputs int, discard bool) {
	c := decodeColor(uniforms)
	return [4]types.Color{c}, 1, false
}

// VertexColorVertex forwards a per-vertex RGBA color (Attributes[1]) as a
// varying so it gets perspective-interpolated across the triangle.
func VertexColorVertex(in VertexInput, uniforms []byte) (position [4]float32, varyings []float32) {
	pos := in.Attributes[0]
	color := in.Attributes[1]
	return [4]float32{pos[0], pos[1], pos[2], pos[3]}, []float32{color[0], color[1], color[2], color[3]}
}

// VertexColorFragment outputs the interpolated vertex color varying.
func VertexColorFragment(frag raster.Fragment, uniforms []byte) (outputs [4]types.Color, numOutputs int, discard bool) {
	v := frag.Varyings
	return [4]types.Color{{R: v[0], G: v[1], B: v[2], A: v[3]}}, 1, false
}

// BarycentricFragment visualizes a fragment's barycentric weights as a
// color, useful for verifying rasterizer coverage and the fill rule.
func BarycentricFragment(frag raster.Fragment, uniforms []byte) (outputs [4]types.Color, numOutputs int, discard bool) {
	return [4]types.Color{{R: frag.Bary[0], G: frag.Bary[1], B: frag.Bary[2], A: 1}}, 1, false
}

// DepthFragment visualizes a fragment's depth as a grayscale color.
func DepthFragment(frag raster.Fragment, uniforms []byte) (outputs [4]types.Color, numOutputs int, discard bool) {
	return [4]types.Color{{R: frag.Depth, G: frag.Depth, B: frag.Depth, A: 1}}, 1, false
}

func decodeColor(b []byte) types.Color {
	if len(b) < 16 {
		return types.Color{}
	}
	return types.Color{
		R: decodeFloat32(b[0:4]),
		G: decodeFloat32(b[4:8]),
		B: decodeFloat32(b[8:12]),
		A: decodeFloat32(b[12:16]),
	}
}

func decodeFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
