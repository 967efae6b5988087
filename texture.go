package swr

import (
	"sync"

	"github.com/chewxy/math32"

	"github.com/gogpu/swr/types"
)

// Texture stores pixel data for one of the formats in types.PixelFormat.
// Data is page-resident for the whole texture; mip levels and array
// layers are out of scope (Non-goal).
type Texture struct {
	mu     sync.RWMutex
	width  int
	height int
	format types.PixelFormat
	layout types.TexelLayout
	data   []byte
}

// NewTexture allocates a zeroed texture of the given dimensions and format.
func NewTexture(width, height int, format types.PixelFormat, layout types.TexelLayout) *Texture {
	size := width * height * format.BytesPerTexel()
	return &Texture{
		width:  width,
		height: height,
		format: format,
		layout: layout,
		data:   make([]byte, size),
	}
}

func (t *Texture) Width() int                { return t.width }
func (t *Texture) Height() int               { return t.height }
func (t *Texture) Format() types.PixelFormat { return t.format }
func (t *Texture) Layout() types.TexelLayout { return t.layout }

// texelOffset maps (x, y) to a byte offset, applying the 2x2 swizzle
// when the texture uses TexelLayoutSwizzled2x2.
func (t *Texture) texelOffset(x, y int) int {
	bpt := t.format.BytesPerTexel()
	if t.layout == types.TexelLayoutLinear {
		return (y*t.width + x) * bpt
	}
	return swizzle2x2(x, y, t.width) * bpt
}

// swizzle2x2 interleaves the low bit of x and y so 2x2 pixel blocks are
// contiguous in memory, improving cache locality for bilinear sampling.
func swizzle2x2(x, y, width int) int {
	blockCols := (width + 1) / 2
	bx, by := x/2, y/2
	lx, ly := x&1, y&1
	blockIndex := by*blockCols + bx
	return blockIndex*4 + ly*2 + lx
}

// ReadColor returns the texel at (x, y) decoded to a float Color.
func (t *Texture) ReadColor(x, y int) types.Color {
	t.mu.RLock()
	defer t.mu.RUnlock()
	off := t.texelOffset(x, y)
	return decodeTexel(t.data[off:off+t.format.BytesPerTexel()], t.format)
}

// WriteColor encodes c into the texel at (x, y).
func (t *Texture) WriteColor(x, y int, c types.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	off := t.texelOffset(x, y)
	encodeTexel(t.data[off:off+t.format.BytesPerTexel()], t.format, c)
}

// Clear fills every texel with c.
func (t *Texture) Clear(c types.Color) {
	t.mu.Lock()
	defer t.mu.Unlock()
	bpt := t.format.BytesPerTexel()
	for i := 0; i < len(t.data); i += bpt {
		encodeTexel(t.data[i:i+bpt], t.format, c)
	}
}

// Data returns a copy of the raw texel bytes.
func (t *Texture) Data() []byte {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]byte, len(t.data))
	copy(out, t.data)
	return out
}

// Sample reconstructs a color at normalized coordinates (u, v), each
// typically in [0, 1], using filter to choose between nearest and
// bilinear reconstruction and wrap to address coordinates outside that
// range.
func (t *Texture) Sample(u, v float32, filter types.FilterMode, wrap types.WrapMode) types.Color {
	if filter == types.FilterBilinear {
		return t.sampleBilinear(u, v, wrap)
	}
	return t.sampleNearest(u, v, wrap)
}

func (t *Texture) sampleNearest(u, v float32, wrap types.WrapMode) types.Color {
	fx := u*float32(t.width) - 0.5
	fy := v*float32(t.height) - 0.5
	x := wrapCoord(int(math32.Round(fx)), t.width, wrap)
	y := wrapCoord(int(math32.Round(fy)), t.height, wrap)
	return t.ReadColor(x, y)
}

func (t *Texture) sampleBilinear(u, v float32, wrap types.WrapMode) types.Color {
	fx := u*float32(t.width) - 0.5
	fy := v*float32(t.height) - 0.5
	x0 := int(math32.Floor(fx))
	y0 := int(math32.Floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	x0w := wrapCoord(x0, t.width, wrap)
	x1w := wrapCoord(x0+1, t.width, wrap)
	y0w := wrapCoord(y0, t.height, wrap)
	y1w := wrapCoord(y0+1, t.height, wrap)

	c00 := t.ReadColor(x0w, y0w)
	c10 := t.ReadColor(x1w, y0w)
	c01 := t.ReadColor(x0w, y1w)
	c11 := t.ReadColor(x1w, y1w)

	top := lerpColor(c00, c10, tx)
	bottom := lerpColor(c01, c11, tx)
	return lerpColor(top, bottom, ty)
}

func lerpColor(a, b types.Color, t float32) types.Color {
	return types.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// wrapCoord addresses an out-of-range integer texel coordinate according
// to wrap, clamping the result into [0, size-1].
func wrapCoord(x, size int, wrap types.WrapMode) int {
	if size <= 1 {
		return 0
	}
	if wrap == types.WrapRepeat {
		x %= size
		if x < 0 {
			x += size
		}
		return x
	}
	return clampTexel(x, size)
}

// SampleCube selects the cube-map face and in-face texel pierced by
// direction d, treating the receiver's height as six stacked square
// faces of width x width (+X, -X, +Y, -Y, +Z, -Z order), the layout
// a cube texture built from six Texture uploads is flattened into.
func (t *Texture) SampleCube(dx, dy, dz float32) types.Color {
	face, u, v := cubeFace(dx, dy, dz)
	size := t.width
	x := clampTexel(int((u+1)*0.5*float32(size)), size)
	y := clampTexel(int((v+1)*0.5*float32(size)), size)
	return t.ReadColor(x, face*size+y)
}

func clampTexel(v, size int) int {
	if v < 0 {
		return 0
	}
	if v >= size {
		return size - 1
	}
	return v
}

func cubeFace(x, y, z float32) (face int, u, v float32) {
	ax, ay, az := abs32(x), abs32(y), abs32(z)
	switch {
	case ax >= ay && ax >= az:
		if x > 0 {
			return 0, -z / ax, -y / ax
		}
		return 1, z / ax, -y / ax
	case ay >= ax && ay >= az:
		if y > 0 {
			return 2, x / ay, z / ay
		}
		return 3, x / ay, -z / ay
	default:
		if z > 0 {
			return 4, x / az, -y / az
		}
		return 5, -x / az, -y / az
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
