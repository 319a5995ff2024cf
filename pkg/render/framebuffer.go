// Package render implements the orbit-camera rendering pipeline for pathview.
package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

// Framebuffer holds the per-frame color and depth planes. Depth is the
// minimum squared camera distance seen so far at each pixel. Both slices are
// reused across frames: Clear and ClearDepth reset in place, nothing is
// reallocated.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // row-major
	Depth  []float64    // squared distances, +Inf when empty
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
		Depth:  make([]float64, width*height),
	}
}

// Clear fills the color plane with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// ClearDepth resets every depth cell to +Inf.
func (fb *Framebuffer) ClearDepth() {
	inf := math.Inf(1)
	for i := range fb.Depth {
		fb.Depth[i] = inf
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// GetDepth returns the depth at (x, y), or +Inf if out of bounds.
func (fb *Framebuffer) GetDepth(x, y int) float64 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return math.Inf(1)
	}
	return fb.Depth[y*fb.Width+x]
}

// DrawLineDepth draws a line from (x0, y0) to (x1, y1) using Bresenham's
// algorithm. Every visited in-bounds pixel is written only when distSq beats
// the stored depth, and then color and depth are overwritten together. The
// whole segment shares one squared distance; depth is not interpolated along
// the line, so a segment wins or loses the z-test as a unit.
func (fb *Framebuffer) DrawLineDepth(x0, y0, x1, y1 int, c color.RGBA, distSq float64) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for {
		if x >= 0 && x < fb.Width && y >= 0 && y < fb.Height {
			idx := y*fb.Width + x
			if distSq < fb.Depth[idx] {
				fb.Pixels[idx] = c
				fb.Depth[idx] = distSq
			}
		}

		if x == x1 && y == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
