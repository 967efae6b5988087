package raster

import (
	"testing"

	"github.com/gogpu/swr/types"
)

func TestBlendOffReturnsSourceUnchanged(t *testing.T) {
	src := types.Color{R: 1, G: 0, B: 0, A: 0.5}
	dst := types.Color{R: 0, G: 1, B: 0, A: 1}
	got := Blend(src, dst, types.BlendOff)
	if got != src {
		t.Errorf("Blend(off) = %+v, want %+v", got, src)
	}
}

func TestBlendAlphaOverOpaqueBackground(t *testing.T) {
	src := types.Color{R: 1, G: 0, B: 0, A: 0.5}
	dst := types.Color{R: 0, G: 0, B: 1, A: 1}
	got := Blend(src, dst, types.BlendAlpha)

	wantR := float32(0.5)
	wantB := float32(0.5)
	if absf(got.R-wantR) > 1e-5 {
		t.Errorf("R = %f, want %f", got.R, wantR)
	}
	if absf(got.B-wantB) > 1e-5 {
		t.Errorf("B = %f, want %f", got.B, wantB)
	}
}

func TestBlendAdditive(t *testing.T) {
	src := types.Color{R: 0.3, G: 0.3, B: 0.3, A: 1}
	dst := types.Color{R: 0.3, G: 0.3, B: 0.3, A: 1}
	got := Blend(src, dst, types.BlendAdditive)
	if absf(got.R-0.6) > 1e-5 {
		t.Errorf("R = %f, want 0.6", got.R)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
