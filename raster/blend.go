package raster

import "github.com/gogpu/swr/types"

func applyFactor(factor types.BlendFactor, src, dst types.Color, alphaOnly bool) float32 {
	switch factor {
	case types.BlendFactorZero:
		return 0
	case types.BlendFactorOne:
		return 1
	case types.BlendFactorSrcColor:
		if alphaOnly {
			return src.A
		}
		return 1 // callers scale component-wise; alpha handled by alphaOnly path
	case types.BlendFactorOneMinusSrcColor:
		if alphaOnly {
			return 1 - src.A
		}
		return 1
	case types.BlendFactorSrcAlpha:
		return src.A
	case types.BlendFactorOneMinusSrcAlpha:
		return 1 - src.A
	case types.BlendFactorDstColor:
		if alphaOnly {
			return dst.A
		}
		return 1
	case types.BlendFactorOneMinusDstColor:
		if alphaOnly {
			return 1 - dst.A
		}
		return 1
	case types.BlendFactorDstAlpha:
		return dst.A
	case types.BlendFactorOneMinusDstAlpha:
		return 1 - dst.A
	default:
		return 0
	}
}

func applyOp(op types.BlendOperation, s, d float32) float32 {
	switch op {
	case types.BlendOpAdd:
		return s + d
	case types.BlendOpSubtract:
		return s - d
	case types.BlendOpReverseSubtract:
		return d - s
	case types.BlendOpMin:
		return min32(s, d)
	case types.BlendOpMax:
		return max32(s, d)
	default:
		return s + d
	}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clamp01(v float32) float32 {
	return max32(0, min32(1, v))
}

func blendChannel(srcC, dstC float32, src, dst types.Color, comp types.BlendComponent) float32 {
	srcFactor := applyFactor(comp.SrcFactor, src, dst, false)
	dstFactor := applyFactor(comp.DstFactor, src, dst, false)
	// Color-component factors (SrcColor/DstColor/OneMinus variants) scale by
	// the channel itself rather than alpha; resolve that here so the shared
	// applyFactor table only needs to special-case the alpha-only factors.
	switch comp.SrcFactor {
	case types.BlendFactorSrcColor:
		srcFactor = srcC
	case types.BlendFactorOneMinusSrcColor:
		srcFactor = 1 - srcC
	case types.BlendFactorDstColor:
		srcFactor = dstC
	case types.BlendFactorOneMinusDstColor:
		srcFactor = 1 - dstC
	}
	switch comp.DstFactor {
	case types.BlendFactorSrcColor:
		dstFactor = srcC
	case types.BlendFactorOneMinusSrcColor:
		dstFactor = 1 - srcC
	case types.BlendFactorDstColor:
		dstFactor = dstC
	case types.BlendFactorOneMinusDstColor:
		dstFactor = 1 - dstC
	}
	return clamp01(applyOp(comp.Operation, srcC*srcFactor, dstC*dstFactor))
}

// Blend combines src over dst under mode, returning the resulting color.
// BlendOff returns src unchanged (direct overwrite semantics).
func Blend(src, dst types.Color, mode types.BlendMode) types.Color {
	color, alpha, enabled := mode.Components()
	if !enabled {
		return src
	}
	return types.Color{
		R: blendChannel(src.R, dst.R, src, dst, color),
		G: blendChannel(src.G, dst.G, src, dst, color),
		B: blendChannel(src.B, dst.B, src, dst, color),
		A: blendChannel(src.A, dst.A, src, dst, alpha),
	}
}
