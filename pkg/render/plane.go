package render

import (
	"math"

	"github.com/pathview/pathview/pkg/math3d"
)

// parallelEpsilon is the threshold below which a segment is treated as
// parallel to a plane (including the degenerate case of lying in it).
const parallelEpsilon = 1e-10

// BoundaryPlane is one of the four unbounded planes bounding the view
// rectangle. Each contains the camera apex and one edge of the screen, and is
// used only to reconnect trajectory edges that leave the visible region.
type BoundaryPlane struct {
	point  math3d.Vec3 // anchor on the screen edge
	normal math3d.Vec3
}

// NewBoundaryPlane builds the plane through edge corners a, b and the camera
// apex. The normal is cross(b-a, apex-a).
func NewBoundaryPlane(a, b, apex math3d.Vec3) BoundaryPlane {
	return BoundaryPlane{
		point:  a,
		normal: b.Sub(a).Cross(apex.Sub(a)),
	}
}

// Intersect returns the point where the segment start→end crosses the plane.
// The intersection is bounded to the segment: ok is false when the segment is
// parallel to the plane or the crossing lies outside [start, end], so a
// returned point always lies on the original 3D segment.
func (p BoundaryPlane) Intersect(start, end math3d.Vec3) (math3d.Vec3, bool) {
	d := end.Sub(start)
	denom := p.normal.Dot(d)
	if math.Abs(denom) < parallelEpsilon {
		return math3d.Vec3{}, false
	}

	t := p.normal.Dot(p.point.Sub(start)) / denom
	if t < 0 || t > 1 {
		return math3d.Vec3{}, false
	}

	return start.Add(d.Scale(t)), true
}
