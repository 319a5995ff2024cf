package path

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pathview/pathview/pkg/math3d"
)

// Parse reads a trajectory from r, one "x,y,z" line per point, blank lines
// skipped. Points are colored start→end along the file. Malformed input is
// rejected up front with an error; no partially-parsed trajectory ever
// reaches the renderer.
func Parse(r io.Reader, start, end color.RGBA) ([]Point, error) {
	var positions []math3d.Vec3

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("line %d: want 3 comma-separated coordinates, got %d", lineNo, len(parts))
		}

		var coords [3]float64
		for i, part := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parse coordinate %q: %w", lineNo, part, err)
			}
			coords[i] = v
		}

		positions = append(positions, math3d.V3(coords[0], coords[1], coords[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read trajectory: %w", err)
	}

	grad := NewGradient(start, end, len(positions))
	points := make([]Point, len(positions))
	for i, pos := range positions {
		points[i] = Point{Position: pos, Color: grad.At(i)}
	}

	return points, nil
}

// ParseFile reads a trajectory data file with Parse.
func ParseFile(name string, start, end color.RGBA) ([]Point, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open trajectory: %w", err)
	}
	defer f.Close()
	return Parse(f, start, end)
}
