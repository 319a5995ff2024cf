package path

import (
	"fmt"
	"image/color"
)

// Source selects a trajectory producer by name so frontends can share one
// flag surface.
type Source struct {
	Kind  string // prime, cube, lorenz, knot, lissajous, sphere, file, gltf
	Steps int
	File  string // data file or glTF document, for the file kinds
	Start color.RGBA
	End   color.RGBA
}

// Points builds the trajectory for the source.
func (s Source) Points() ([]Point, error) {
	grad := NewGradient(s.Start, s.End, s.Steps)

	switch s.Kind {
	case "prime":
		return PrimeWalk(s.Steps, grad), nil
	case "cube":
		return CubeGrid(), nil
	case "lorenz":
		return Lorenz(s.Steps, 0.01, grad), nil
	case "knot":
		return TorusKnot(3, 2, 100, 50, s.Steps, grad), nil
	case "lissajous":
		return Lissajous(3, 4, 5, 100, s.Steps, grad), nil
	case "sphere":
		return SpiralSphere(s.Steps, 200, 30, grad), nil
	case "file":
		if s.File == "" {
			return nil, fmt.Errorf("source %q needs a file", s.Kind)
		}
		return ParseFile(s.File, s.Start, s.End)
	case "gltf":
		if s.File == "" {
			return nil, fmt.Errorf("source %q needs a file", s.Kind)
		}
		return LoadGLTF(s.File, s.Start, s.End)
	default:
		return nil, fmt.Errorf("unknown source %q", s.Kind)
	}
}
