package path

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Gradient is a linear RGB ramp from a start to an end color over a fixed
// number of steps. Generators color their points by sampling it at the point
// index.
type Gradient struct {
	start colorful.Color
	end   colorful.Color
	steps int
}

// NewGradient creates a gradient over the given number of steps.
func NewGradient(start, end color.RGBA, steps int) Gradient {
	return Gradient{
		start: toColorful(start),
		end:   toColorful(end),
		steps: steps,
	}
}

// Steps returns the number of samples in the gradient.
func (g Gradient) Steps() int { return g.steps }

// At returns the color at the given step. The endpoints map to the start and
// end colors exactly; a single-step gradient is the start color.
func (g Gradient) At(step int) color.RGBA {
	if step < 0 {
		step = 0
	}
	if step >= g.steps && g.steps > 0 {
		step = g.steps - 1
	}

	t := 0.0
	if g.steps > 1 {
		t = float64(step) / float64(g.steps-1)
	}

	r, gg, b := g.start.BlendRgb(g.end, t).RGB255()
	return color.RGBA{r, gg, b, 255}
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
