package path

import "github.com/pathview/pathview/pkg/math3d"

// walkDirs are the unit step directions the prime walk cycles through.
var walkDirs = [6]math3d.Vec3{
	{X: 1}, {Y: 1}, {Z: 1},
	{X: -1}, {Y: -1}, {Z: -1},
}

// PrimeWalk traces an axis-aligned walk of the given number of unit steps,
// turning to the next direction (cycling +X, +Y, +Z, -X, -Y, -Z) every time
// the step index hits a prime. Points are colored along the gradient.
func PrimeWalk(steps int, grad Gradient) []Point {
	points := make([]Point, 0, steps)

	primes := sieve(steps)
	nextPrime := 0

	pos := math3d.Zero3()
	dirIdx := 0

	for n := 0; n < steps; n++ {
		if nextPrime < len(primes) && n == primes[nextPrime] {
			dirIdx = (dirIdx + 1) % len(walkDirs)
			nextPrime++
		}

		points = append(points, Point{Position: pos, Color: grad.At(n)})
		pos = pos.Add(walkDirs[dirIdx])
	}

	return points
}

// sieve returns all primes up to and including limit
// (sieve of Eratosthenes).
func sieve(limit int) []int {
	if limit < 2 {
		return nil
	}

	isComposite := make([]bool, limit+1)
	var primes []int
	for p := 2; p <= limit; p++ {
		if isComposite[p] {
			continue
		}
		primes = append(primes, p)
		for m := p * p; m <= limit; m += p {
			isComposite[m] = true
		}
	}
	return primes
}
