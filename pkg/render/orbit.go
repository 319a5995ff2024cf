package render

import (
	"math"

	"github.com/pathview/pathview/pkg/math3d"
)

const fullCircle = 360

func rad(deg int) float64 {
	return float64(deg) * math.Pi / 180
}

// Pose is a consistent snapshot of the camera for one rendered frame: the
// camera position, the screen it projects onto, and the four boundary planes
// bounding the view rectangle. Planes are ordered top, right, bottom, left;
// edge reconnection depends on that order.
type Pose struct {
	Camera math3d.Vec3
	Screen Screen
	Planes [4]BoundaryPlane
}

// ClipEdge tests the 3D segment start→end against the boundary planes in
// their fixed order and returns the first intersection found. First match,
// not nearest: the tie-break is deterministic, not a geometric best fit.
func (p *Pose) ClipEdge(start, end math3d.Vec3) (math3d.Vec3, bool) {
	for _, plane := range p.Planes {
		if q, ok := plane.Intersect(start, end); ok {
			return q, true
		}
	}
	return math3d.Vec3{}, false
}

// Orbit is a spherical-coordinate camera rig: azimuth, polar tilt and roll as
// integer degrees in [0,360), an orbit radius, a focal length, and a look-at
// center. Angles step by whole degrees with wraparound; radius and focal
// length have hard floors. All mutation goes through the Inc/Dec/Move
// methods, and a fresh Pose must be derived after each change.
type Orbit struct {
	polar   int
	azimuth int
	roll    int

	radius      float64
	focalLength float64
	center      math3d.Vec3

	width  int
	height int
}

// NewOrbit creates an orbit rig at angle zero looking at the origin.
func NewOrbit(radius, focalLength float64, width, height int) *Orbit {
	return &Orbit{
		radius:      radius,
		focalLength: focalLength,
		width:       width,
		height:      height,
	}
}

// Pose derives the camera position, screen and boundary planes for the
// current parameters.
func (o *Orbit) Pose() Pose {
	a := rad(o.azimuth)
	p := rad(o.polar)
	r := rad(o.roll)

	dir := math3d.V3(
		math.Sin(a)*math.Cos(p),
		math.Sin(p),
		math.Cos(a)*math.Cos(p),
	)

	camera := o.center.Add(dir.Scale(o.radius))
	// The screen sits beyond the camera along the same ray, focalLength past it.
	screenCenter := o.center.Add(dir.Scale(o.radius + o.focalLength))

	uBase := math3d.V3(math.Cos(a), 0, -math.Sin(a))
	vBase := math3d.V3(
		-math.Sin(a)*math.Sin(p),
		math.Cos(p),
		-math.Cos(a)*math.Sin(p),
	)

	cosR, sinR := math.Cos(r), math.Sin(r)
	u := uBase.Scale(cosR).Sub(vBase.Scale(sinR))
	v := uBase.Scale(sinR).Add(vBase.Scale(cosR))

	screen := NewScreen(screenCenter, u, v, o.width, o.height)
	c := screen.Corners()

	return Pose{
		Camera: camera,
		Screen: screen,
		Planes: [4]BoundaryPlane{
			NewBoundaryPlane(c[CornerTopLeft], c[CornerTopRight], camera),
			NewBoundaryPlane(c[CornerTopRight], c[CornerBottomRight], camera),
			NewBoundaryPlane(c[CornerBottomLeft], c[CornerBottomRight], camera),
			NewBoundaryPlane(c[CornerBottomLeft], c[CornerTopLeft], camera),
		},
	}
}

func incAngle(a int) int {
	if a == fullCircle-1 {
		return 0
	}
	return a + 1
}

func decAngle(a int) int {
	if a == 0 {
		return fullCircle - 1
	}
	return a - 1
}

// IncPolar steps the polar tilt up one degree, wrapping at 360.
func (o *Orbit) IncPolar() { o.polar = incAngle(o.polar) }

// DecPolar steps the polar tilt down one degree, wrapping at 0.
func (o *Orbit) DecPolar() { o.polar = decAngle(o.polar) }

// IncAzimuth steps the azimuth up one degree, wrapping at 360.
func (o *Orbit) IncAzimuth() { o.azimuth = incAngle(o.azimuth) }

// DecAzimuth steps the azimuth down one degree, wrapping at 0.
func (o *Orbit) DecAzimuth() { o.azimuth = decAngle(o.azimuth) }

// IncRoll steps the roll up one degree, wrapping at 360.
func (o *Orbit) IncRoll() { o.roll = incAngle(o.roll) }

// DecRoll steps the roll down one degree, wrapping at 0.
func (o *Orbit) DecRoll() { o.roll = decAngle(o.roll) }

// IncRadius grows the orbit radius by one unit, unbounded.
func (o *Orbit) IncRadius() { o.radius++ }

// DecRadius shrinks the orbit radius by one unit. Decrements that would land
// below the 1.0 floor are silent no-ops.
func (o *Orbit) DecRadius() {
	if o.radius-1 >= 1.0 {
		o.radius--
	}
}

// IncFocalLength grows the focal length by one unit.
func (o *Orbit) IncFocalLength() { o.focalLength++ }

// DecFocalLength shrinks the focal length by one unit. The focal length must
// stay strictly above 1.0, so decrements at or below that are silent no-ops.
func (o *Orbit) DecFocalLength() {
	if o.focalLength-1 > 1.0 {
		o.focalLength--
	}
}

// SetCenter sets the look-at center to an absolute position.
func (o *Orbit) SetCenter(center math3d.Vec3) { o.center = center }

// SetScreenSize changes the pixel dimensions of derived screens, for hosts
// whose output surface can resize.
func (o *Orbit) SetScreenSize(width, height int) {
	o.width = width
	o.height = height
}

// MoveRight pans the center along the current rolled U basis.
func (o *Orbit) MoveRight(distance float64) {
	pose := o.Pose()
	o.center = o.center.Add(pose.Screen.U.Scale(distance))
}

// MoveUp pans the center along the current rolled V basis.
func (o *Orbit) MoveUp(distance float64) {
	pose := o.Pose()
	o.center = o.center.Add(pose.Screen.V.Scale(distance))
}

// MoveForward dollies the center along the current view normal.
func (o *Orbit) MoveForward(distance float64) {
	pose := o.Pose()
	o.center = o.center.Add(pose.Screen.U.Cross(pose.Screen.V).Scale(distance))
}

// Reset restores angle zero, the given radius and focal length, and a center
// at the origin.
func (o *Orbit) Reset(defaultRadius, defaultFocalLength float64) {
	o.polar = 0
	o.azimuth = 0
	o.roll = 0
	o.radius = defaultRadius
	o.focalLength = defaultFocalLength
	o.center = math3d.Zero3()
}

// Polar returns the polar tilt in degrees.
func (o *Orbit) Polar() int { return o.polar }

// Azimuth returns the azimuth in degrees.
func (o *Orbit) Azimuth() int { return o.azimuth }

// Roll returns the roll in degrees.
func (o *Orbit) Roll() int { return o.roll }

// Radius returns the orbit radius.
func (o *Orbit) Radius() float64 { return o.radius }

// FocalLength returns the focal length.
func (o *Orbit) FocalLength() float64 { return o.focalLength }

// Center returns the look-at center.
func (o *Orbit) Center() math3d.Vec3 { return o.center }
