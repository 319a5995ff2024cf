// Package path produces the ordered 3D point sequences pathview renders.
// Sequence order is the only adjacency signal: consecutive points are joined
// by line segments, so a generator may legitimately place visually distant
// points next to each other.
package path

import (
	"image/color"

	"github.com/pathview/pathview/pkg/math3d"
)

// Point is one colored sample of a trajectory.
type Point struct {
	Position math3d.Vec3
	Color    color.RGBA
}
