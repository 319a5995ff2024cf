package render

import (
	"math"
	"testing"
)

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(1, 1, ColorRed)
	fb.Clear(ColorBlack)
	fb.ClearDepth()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if fb.GetPixel(x, y) != ColorBlack {
				t.Fatalf("pixel (%d,%d) not cleared", x, y)
			}
			if !math.IsInf(fb.GetDepth(x, y), 1) {
				t.Fatalf("depth (%d,%d) = %v, want +Inf", x, y, fb.GetDepth(x, y))
			}
		}
	}
}

func TestDrawLineDepthWritesCloser(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.Clear(ColorBlack)
	fb.ClearDepth()

	fb.DrawLineDepth(0, 5, 9, 5, ColorRed, 100)
	if fb.GetPixel(4, 5) != ColorRed {
		t.Fatal("first segment not drawn")
	}

	// Farther segment over the same row must not overwrite.
	fb.DrawLineDepth(0, 5, 9, 5, ColorBlue, 200)
	if fb.GetPixel(4, 5) != ColorRed {
		t.Error("farther segment overwrote a closer pixel")
	}
	if fb.GetDepth(4, 5) != 100 {
		t.Errorf("depth = %v, want 100", fb.GetDepth(4, 5))
	}

	// Closer segment wins.
	fb.DrawLineDepth(0, 5, 9, 5, ColorGreen, 50)
	if fb.GetPixel(4, 5) != ColorGreen {
		t.Error("closer segment did not overwrite")
	}
	if fb.GetDepth(4, 5) != 50 {
		t.Errorf("depth = %v, want 50", fb.GetDepth(4, 5))
	}
}

func TestDrawLineDepthSegmentDepthIsConstant(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.Clear(ColorBlack)
	fb.ClearDepth()

	fb.DrawLineDepth(0, 0, 9, 9, ColorRed, 42)
	for i := 0; i < 10; i++ {
		if d := fb.GetDepth(i, i); d != 42 {
			t.Fatalf("depth at (%d,%d) = %v, want constant 42", i, i, d)
		}
	}
}

func TestDrawLineDepthClipsToBounds(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Clear(ColorBlack)
	fb.ClearDepth()

	// Endpoints well outside the raster: must not panic, and the in-bounds
	// portion of the row is drawn.
	fb.DrawLineDepth(-20, 3, 30, 3, ColorBlue, 1)
	for x := 0; x < 8; x++ {
		if fb.GetPixel(x, 3) != ColorBlue {
			t.Fatalf("pixel (%d,3) not drawn", x)
		}
	}
	if fb.GetPixel(0, 0) != ColorBlack {
		t.Error("pixel off the line was written")
	}
}

func TestDrawLineDepthSinglePixel(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Clear(ColorBlack)
	fb.ClearDepth()

	fb.DrawLineDepth(4, 4, 4, 4, ColorRed, 7)
	if fb.GetPixel(4, 4) != ColorRed {
		t.Error("degenerate line did not paint its pixel")
	}
}
