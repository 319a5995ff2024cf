package path

import (
	"image/color"

	"github.com/pathview/pathview/pkg/math3d"
)

// CubeGrid returns a flat red test figure on the z=0 plane: rungs across the
// top and bottom edges and along the left and right edges of a square. Useful
// for eyeballing the projection because the expected shape is obvious.
func CubeGrid() []Point {
	red := color.RGBA{255, 0, 0, 255}
	var points []Point

	for x := -5; x <= 5; x++ {
		points = append(points,
			Point{Position: math3d.V3(float64(x), 10, 0), Color: red},
			Point{Position: math3d.V3(float64(x), -10, 0), Color: red},
		)
	}

	for y := -5; y <= 5; y++ {
		points = append(points,
			Point{Position: math3d.V3(-10, float64(y), 0), Color: red},
			Point{Position: math3d.V3(10, float64(y), 0), Color: red},
		)
	}

	return points
}
