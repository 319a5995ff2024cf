// pathview - orbit-camera 3D trajectory viewer for the terminal.
//
// Controls:
//
//	h/l         - Orbit azimuth left/right
//	j/k         - Orbit polar tilt down/up
//	u/o         - Roll left/right
//	z/Z         - Camera radius in/out
//	f/F         - Focal length down/up
//	w/a/s/d     - Pan the look-at center along the screen basis
//	e/q         - Dolly the center along the view normal
//	Space       - Spin impulse (decays on a spring)
//	0           - Reset camera
//	Esc         - Quit
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathview/pathview/pkg/path"
)

const (
	defaultRadius = 300.0
	defaultFocal  = 40.0
)

var (
	sourceKind string
	sourceFile string
	steps      int
	startColor string
	endColor   string
)

var rootCmd = &cobra.Command{
	Use:   "pathview",
	Short: "View 3D point trajectories in your terminal",
	Long: `pathview renders an ordered 3D point path as seen from an orbiting
camera, with depth-sorted connective line segments, using half-block cells in
the terminal. Trajectories come from built-in generators (prime walk, Lorenz
attractor, torus knot, ...), from x,y,z data files, or from glTF documents.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := buildPoints()
		if err != nil {
			return err
		}
		return runViewer(points)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&sourceKind, "source", "prime", "trajectory source: prime|cube|lorenz|knot|lissajous|sphere|file|gltf")
	pf.StringVar(&sourceFile, "file", "", "data file (x,y,z lines) or glTF document for the file sources")
	pf.IntVar(&steps, "steps", 10000, "number of points for the generated sources")
	pf.StringVar(&startColor, "start-color", "255,0,0", "gradient start color (R,G,B)")
	pf.StringVar(&endColor, "end-color", "0,0,255", "gradient end color (R,G,B)")

	rootCmd.AddCommand(snapshotCmd)
}

func buildPoints() ([]path.Point, error) {
	start, err := parseColor(startColor)
	if err != nil {
		return nil, fmt.Errorf("start-color: %w", err)
	}
	end, err := parseColor(endColor)
	if err != nil {
		return nil, fmt.Errorf("end-color: %w", err)
	}

	src := path.Source{
		Kind:  sourceKind,
		Steps: steps,
		File:  sourceFile,
		Start: start,
		End:   end,
	}
	return src.Points()
}

func parseColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("parse %q as R,G,B: %w", s, err)
	}
	return color.RGBA{r, g, b, 255}, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
