package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/pathview/pathview/pkg/path"
	"github.com/pathview/pathview/pkg/render"
)

const viewerFPS = 60

// spin animates a decaying azimuth velocity after a spacebar impulse. The
// spring drives the velocity toward zero; whole accumulated degrees are
// emitted as discrete camera steps so the orbit still only ever moves by its
// documented one-degree increments.
type spin struct {
	velocity float64 // degrees per tick
	accel    float64 // internal spring velocity
	partial  float64 // accumulated fraction of a degree
	spring   harmonica.Spring
}

func newSpin(fps int) *spin {
	// Frequency 1.5, damping 1.0: critically damped, a few seconds of coast.
	return &spin{spring: harmonica.NewSpring(harmonica.FPS(fps), 1.5, 1.0)}
}

func (s *spin) impulse(degPerTick float64) {
	s.velocity += degPerTick
}

// step advances the spring one tick and returns how many whole degree steps
// to apply (signed).
func (s *spin) step() int {
	s.velocity, s.accel = s.spring.Update(s.velocity, s.accel, 0)
	s.partial += s.velocity

	whole := int(s.partial)
	s.partial -= float64(whole)
	return whole
}

var (
	hudLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c6c6c"))
	hudValue = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd7a7")).Bold(true)
)

func runViewer(points []path.Point) error {
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	// One terminal row is two framebuffer rows (half blocks); the bottom row
	// is reserved for the HUD.
	fbWidth, fbHeight := width, (height-1)*2
	renderer := render.NewRenderer(fbWidth, fbHeight)
	orbit := render.NewOrbit(defaultRadius, defaultFocal, fbWidth, fbHeight)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	spinner := newSpin(viewerFPS)
	dirty := true // no prior frame yet

	ticker := time.NewTicker(time.Second / viewerFPS)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil

		case ev := <-term.Events():
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				fbWidth, fbHeight = width, (height-1)*2
				renderer = render.NewRenderer(fbWidth, fbHeight)
				orbit.SetScreenSize(fbWidth, fbHeight)
				dirty = true

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
				case ev.MatchString("h", "left"):
					orbit.DecAzimuth()
					dirty = true
				case ev.MatchString("l", "right"):
					orbit.IncAzimuth()
					dirty = true
				case ev.MatchString("j", "down"):
					orbit.DecPolar()
					dirty = true
				case ev.MatchString("k", "up"):
					orbit.IncPolar()
					dirty = true
				case ev.MatchString("u"):
					orbit.DecRoll()
					dirty = true
				case ev.MatchString("o"):
					orbit.IncRoll()
					dirty = true
				case ev.MatchString("z"):
					orbit.DecRadius()
					dirty = true
				case ev.MatchString("shift+z"):
					orbit.IncRadius()
					dirty = true
				case ev.MatchString("f"):
					orbit.DecFocalLength()
					dirty = true
				case ev.MatchString("shift+f"):
					orbit.IncFocalLength()
					dirty = true
				case ev.MatchString("a"):
					orbit.MoveRight(-1)
					dirty = true
				case ev.MatchString("d"):
					orbit.MoveRight(1)
					dirty = true
				case ev.MatchString("w"):
					orbit.MoveUp(-1)
					dirty = true
				case ev.MatchString("s"):
					orbit.MoveUp(1)
					dirty = true
				case ev.MatchString("e"):
					orbit.MoveForward(1)
					dirty = true
				case ev.MatchString("q"):
					orbit.MoveForward(-1)
					dirty = true
				case ev.MatchString("space"):
					spinner.impulse(2.5)
				case ev.MatchString("0"):
					orbit.Reset(defaultRadius, defaultFocal)
					dirty = true
				}
			}

		case <-ticker.C:
			if degrees := spinner.step(); degrees != 0 {
				for i := 0; i < degrees; i++ {
					orbit.IncAzimuth()
				}
				for i := 0; i > degrees; i-- {
					orbit.DecAzimuth()
				}
				dirty = true
			}

			if !dirty {
				continue
			}
			dirty = false

			fb := renderer.Render(points, orbit.Pose())
			fb.Draw(term, uv.Rect(0, 0, width, height-1))
			if err := term.Display(); err != nil {
				cleanup()
				return fmt.Errorf("display: %w", err)
			}
			drawHUD(orbit, height, len(points))
		}
	}
}

// drawHUD prints one camera-state line on the reserved bottom row.
func drawHUD(orbit *render.Orbit, termHeight, pointCount int) {
	center := orbit.Center()
	line := fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s  %s %s  %s %s",
		hudLabel.Render("az"), hudValue.Render(fmt.Sprintf("%3d°", orbit.Azimuth())),
		hudLabel.Render("pol"), hudValue.Render(fmt.Sprintf("%3d°", orbit.Polar())),
		hudLabel.Render("roll"), hudValue.Render(fmt.Sprintf("%3d°", orbit.Roll())),
		hudLabel.Render("r"), hudValue.Render(fmt.Sprintf("%.0f", orbit.Radius())),
		hudLabel.Render("f"), hudValue.Render(fmt.Sprintf("%.0f", orbit.FocalLength())),
		hudLabel.Render("c"), hudValue.Render(fmt.Sprintf("(%.0f,%.0f,%.0f)", center.X, center.Y, center.Z)),
		hudLabel.Render("pts"), hudValue.Render(fmt.Sprintf("%d", pointCount)),
	)

	fmt.Printf("\x1b[%d;1H\x1b[2K%s", termHeight, line)
}
