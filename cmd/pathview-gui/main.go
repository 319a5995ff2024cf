// pathview-gui - windowed orbit-camera trajectory viewer.
//
// Same controls as the terminal viewer: h/l azimuth, j/k polar, u/o roll,
// z (+shift) radius, f (+shift) focal, w/a/s/d/e/q center, 0 reset.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pathview/pathview/pkg/path"
	"github.com/pathview/pathview/pkg/render"
)

const (
	defaultRadius = 300.0
	defaultFocal  = 40.0
)

var (
	sourceKind = flag.String("source", "prime", "trajectory source: prime|cube|lorenz|knot|lissajous|sphere|file|gltf")
	sourceFile = flag.String("file", "", "data file (x,y,z lines) or glTF document for the file sources")
	steps      = flag.Int("steps", 10000, "number of points for the generated sources")
	size       = flag.Int("size", 800, "window and raster size in pixels")
	startColor = flag.String("start-color", "255,0,0", "gradient start color (R,G,B)")
	endColor   = flag.String("end-color", "0,0,255", "gradient end color (R,G,B)")
)

type game struct {
	points   []path.Point
	orbit    *render.Orbit
	renderer *render.Renderer
	img      *ebiten.Image
	dirty    bool
	size     int
}

func newGame(points []path.Point, size int) *game {
	return &game{
		points:   points,
		orbit:    render.NewOrbit(defaultRadius, defaultFocal, size, size),
		renderer: render.NewRenderer(size, size),
		img:      ebiten.NewImage(size, size),
		dirty:    true,
		size:     size,
	}
}

// keyBindings maps held keys to camera deltas. Each poll applies one discrete
// step per pressed key, so key repeat gives the original's one-degree-per-tick
// feel.
func (g *game) pollInput() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	apply := func(key ebiten.Key, fn func()) {
		if ebiten.IsKeyPressed(key) {
			fn()
			g.dirty = true
		}
	}

	apply(ebiten.KeyH, g.orbit.DecAzimuth)
	apply(ebiten.KeyL, g.orbit.IncAzimuth)
	apply(ebiten.KeyJ, g.orbit.DecPolar)
	apply(ebiten.KeyK, g.orbit.IncPolar)
	apply(ebiten.KeyU, g.orbit.DecRoll)
	apply(ebiten.KeyO, g.orbit.IncRoll)

	apply(ebiten.KeyZ, func() {
		if shift {
			g.orbit.IncRadius()
		} else {
			g.orbit.DecRadius()
		}
	})
	apply(ebiten.KeyF, func() {
		if shift {
			g.orbit.IncFocalLength()
		} else {
			g.orbit.DecFocalLength()
		}
	})

	apply(ebiten.KeyA, func() { g.orbit.MoveRight(-1) })
	apply(ebiten.KeyD, func() { g.orbit.MoveRight(1) })
	apply(ebiten.KeyW, func() { g.orbit.MoveUp(-1) })
	apply(ebiten.KeyS, func() { g.orbit.MoveUp(1) })
	apply(ebiten.KeyE, func() { g.orbit.MoveForward(1) })
	apply(ebiten.KeyQ, func() { g.orbit.MoveForward(-1) })

	apply(ebiten.KeyDigit0, func() { g.orbit.Reset(defaultRadius, defaultFocal) })
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.pollInput()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty {
		fb := g.renderer.Render(g.points, g.orbit.Pose())
		g.img.WritePixels(fb.ToImage().Pix)
		g.dirty = false
	}
	screen.DrawImage(g.img, nil)

	title := fmt.Sprintf("pathview az=%d pol=%d roll=%d r=%.0f f=%.0f",
		g.orbit.Azimuth(), g.orbit.Polar(), g.orbit.Roll(),
		g.orbit.Radius(), g.orbit.FocalLength())
	ebiten.SetWindowTitle(title)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}

func parseColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("parse %q as R,G,B: %w", s, err)
	}
	return color.RGBA{r, g, b, 255}, nil
}

func run() error {
	start, err := parseColor(*startColor)
	if err != nil {
		return err
	}
	end, err := parseColor(*endColor)
	if err != nil {
		return err
	}

	points, err := path.Source{
		Kind:  *sourceKind,
		Steps: *steps,
		File:  *sourceFile,
		Start: start,
		End:   end,
	}.Points()
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("pathview")
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetTPS(60)
	return ebiten.RunGame(newGame(points, *size))
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
