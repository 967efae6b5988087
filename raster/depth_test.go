package raster

import (
	"testing"

	"github.com/gogpu/swr/types"
)

func TestDepthBufferTestAndSet(t *testing.T) {
	d := NewDepthBuffer(4, 4, 1.0)

	if !d.TestAndSet(1, 1, 0.5, types.CompareLess, true) {
		t.Fatal("closer fragment should pass CompareLess against the far clear value")
	}
	if got := d.Get(1, 1); got != 0.5 {
		t.Fatalf("Get(1,1) = %f, want 0.5", got)
	}
	if d.TestAndSet(1, 1, 0.9, types.CompareLess, true) {
		t.Fatal("farther fragment should fail CompareLess against the stored 0.5")
	}
	if got := d.Get(1, 1); got != 0.5 {
		t.Fatalf("failed test should not have written: Get(1,1) = %f, want 0.5", got)
	}
}

func TestDepthBufferWriteFalseLeavesBufferUnchanged(t *testing.T) {
	d := NewDepthBuffer(2, 2, 1.0)
	passed := d.TestAndSet(0, 0, 0.1, types.CompareLess, false)
	if !passed {
		t.Fatal("expected test to pass")
	}
	if got := d.Get(0, 0); got != 1.0 {
		t.Fatalf("write=false should not modify buffer, got %f", got)
	}
}
