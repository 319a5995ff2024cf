package path

import (
	"math"

	"github.com/pathview/pathview/pkg/math3d"
)

// Lorenz integrates the Lorenz system (σ=10, ρ=28, β=8/3) with a forward
// Euler step and returns the scaled trajectory. The classic butterfly needs a
// few thousand steps at dt around 0.01.
func Lorenz(steps int, dt float64, grad Gradient) []Point {
	const (
		sigma = 10.0
		rho   = 28.0
		beta  = 8.0 / 3.0
		scale = 10.0
	)

	points := make([]Point, 0, steps)
	x, y, z := 0.1, 0.0, 0.0

	for i := 0; i < steps; i++ {
		points = append(points, Point{
			Position: math3d.V3(x*scale, y*scale, z*scale),
			Color:    grad.At(i),
		})

		dx := sigma * (y - x)
		dy := x*(rho-z) - y
		dz := x*y - beta*z
		x += dx * dt
		y += dy * dt
		z += dz * dt
	}

	return points
}

// TorusKnot traces a (p,q) torus knot with major radius R and tube radius r:
//
//	x(t) = (R + r·cos(p·t))·cos(q·t)
//	y(t) = (R + r·cos(p·t))·sin(q·t)
//	z(t) = r·sin(p·t)
//
// (3,2) is the trefoil.
func TorusKnot(p, q int, R, r float64, steps int, grad Gradient) []Point {
	points := make([]Point, 0, steps)
	tMax := 2 * math.Pi * float64(max(p, q))

	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps) * tMax
		pt := float64(p) * t
		qt := float64(q) * t

		points = append(points, Point{
			Position: math3d.V3(
				(R+r*math.Cos(pt))*math.Cos(qt),
				(R+r*math.Cos(pt))*math.Sin(qt),
				r*math.Sin(pt),
			),
			Color: grad.At(i),
		})
	}

	return points
}

// Lissajous traces a 3D Lissajous curve with integer frequency ratios a, b, c
// and amplitude amp on every axis. The y phase is shifted by π/2 so the curve
// opens up instead of collapsing onto a diagonal.
func Lissajous(a, b, c int, amp float64, steps int, grad Gradient) []Point {
	points := make([]Point, 0, steps)
	period := lcm(lcm(a, b), c)
	tMax := 2 * math.Pi * float64(period)

	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps) * tMax

		points = append(points, Point{
			Position: math3d.V3(
				amp*math.Sin(float64(a)*t),
				amp*math.Sin(float64(b)*t+math.Pi/2),
				amp*math.Sin(float64(c)*t),
			),
			Color: grad.At(i),
		})
	}

	return points
}

// SpiralSphere winds the given number of turns around a sphere from the south
// pole to the north pole.
func SpiralSphere(steps int, radius float64, turns int, grad Gradient) []Point {
	points := make([]Point, 0, steps)

	y := -radius
	yStep := 2 * radius / float64(steps)
	angle := 0.0
	angleStep := float64(turns) * 2 * math.Pi / float64(steps)

	for i := 0; i < steps; i++ {
		ring := math.Sqrt(math.Max(0, radius*radius-y*y))
		points = append(points, Point{
			Position: math3d.V3(math.Cos(angle)*ring, y, math.Sin(angle)*ring),
			Color:    grad.At(i),
		})
		y += yStep
		angle += angleStep
	}

	return points
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
