package render

import (
	"math"

	"github.com/pathview/pathview/pkg/math3d"
)

// Screen is the finite rectangular image plane in 3D space the camera
// projects onto. U and V are the basis vectors spanning the rectangle in
// pixel units; they need not be orthogonal but must be non-degenerate.
type Screen struct {
	Center math3d.Vec3
	U, V   math3d.Vec3
	Width  int
	Height int

	normal  math3d.Vec3
	uu, vv  float64 // cached U·U and V·V
	corners [4]math3d.Vec3
}

// Corner indices into Screen.Corners.
const (
	CornerTopLeft = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// NewScreen creates a screen centered at center, spanned by u and v, covering
// width x height pixels. Corners are precomputed from the half extents.
func NewScreen(center, u, v math3d.Vec3, width, height int) Screen {
	halfW := float64(width) / 2
	halfH := float64(height) / 2

	du := u.Scale(halfW)
	dv := v.Scale(halfH)

	return Screen{
		Center: center,
		U:      u,
		V:      v,
		Width:  width,
		Height: height,
		normal: u.Cross(v),
		uu:     u.Dot(u),
		vv:     v.Dot(v),
		corners: [4]math3d.Vec3{
			CornerTopLeft:     center.Sub(du).Sub(dv),
			CornerTopRight:    center.Add(du).Sub(dv),
			CornerBottomLeft:  center.Sub(du).Add(dv),
			CornerBottomRight: center.Add(du).Add(dv),
		},
	}
}

// Corners returns the four rectangle corners
// (top-left, top-right, bottom-left, bottom-right).
func (s *Screen) Corners() [4]math3d.Vec3 {
	return s.corners
}

// Project maps a 3D target to integer pixel coordinates as seen from camera.
//
// The visibility gate requires the camera and target on the same side of the
// plane with the camera strictly closer to it. The rule is deliberately
// asymmetric; in the orbit rig's default pose the screen sits beyond the
// camera and the ray parameter comes out negative. Changing it to a
// conventional plane-splits-segment test changes visible output.
func (s *Screen) Project(camera, target math3d.Vec3) (x, y int, ok bool) {
	d1 := camera.Sub(s.Center).Dot(s.normal)
	d2 := target.Sub(s.Center).Dot(s.normal)

	if d1*d2 <= 0 || math.Abs(d1) >= math.Abs(d2) {
		return 0, 0, false
	}

	t := -d1 / s.normal.Dot(target.Sub(camera))
	q := camera.Add(target.Sub(camera).Scale(t))

	diff := q.Sub(s.Center)
	u := diff.Dot(s.U) / s.uu
	v := diff.Dot(s.V) / s.vv

	x = int(math.Round(u + float64(s.Width)/2))
	y = int(math.Round(v + float64(s.Height)/2))
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0, 0, false
	}

	return x, y, true
}
