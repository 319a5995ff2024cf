package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathview/pathview/pkg/render"
)

var (
	snapOut     string
	snapWidth   int
	snapHeight  int
	snapAzimuth int
	snapPolar   int
	snapRoll    int
	snapRadius  float64
	snapFocal   float64
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one frame to a PNG file",
	RunE: func(cmd *cobra.Command, args []string) error {
		points, err := buildPoints()
		if err != nil {
			return err
		}

		orbit := render.NewOrbit(snapRadius, snapFocal, snapWidth, snapHeight)
		// Angles only move through their documented one-degree steps.
		for i := 0; i < snapAzimuth%360; i++ {
			orbit.IncAzimuth()
		}
		for i := 0; i < snapPolar%360; i++ {
			orbit.IncPolar()
		}
		for i := 0; i < snapRoll%360; i++ {
			orbit.IncRoll()
		}

		renderer := render.NewRenderer(snapWidth, snapHeight)
		fb := renderer.Render(points, orbit.Pose())
		if err := fb.SavePNG(snapOut); err != nil {
			return fmt.Errorf("save png: %w", err)
		}

		fmt.Printf("Wrote %s (%dx%d, %d points)\n", snapOut, snapWidth, snapHeight, len(points))
		return nil
	},
}

func init() {
	f := snapshotCmd.Flags()
	f.StringVar(&snapOut, "out", "pathview.png", "output PNG file")
	f.IntVar(&snapWidth, "width", 800, "raster width in pixels")
	f.IntVar(&snapHeight, "height", 800, "raster height in pixels")
	f.IntVar(&snapAzimuth, "azimuth", 0, "camera azimuth in degrees")
	f.IntVar(&snapPolar, "polar", 0, "camera polar tilt in degrees")
	f.IntVar(&snapRoll, "roll", 0, "camera roll in degrees")
	f.Float64Var(&snapRadius, "radius", defaultRadius, "orbit radius")
	f.Float64Var(&snapFocal, "focal", defaultFocal, "focal length")
}
