package render

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pathview/pathview/pkg/math3d"
	"github.com/pathview/pathview/pkg/path"
)

// testPose looks down the +z axis from (0,0,10) with focal length 5 onto an
// 800x800 screen at z=15; world origin projects to pixel (400,400).
func testPose() Pose {
	return NewOrbit(10, 5, 800, 800).Pose()
}

func pt(x, y, z float64, c Color) path.Point {
	return path.Point{Position: math3d.V3(x, y, z), Color: c}
}

func TestRenderTwoPointLine(t *testing.T) {
	r := NewRenderer(800, 800)
	fb := r.Render([]path.Point{
		pt(0, 0, 0, ColorRed),
		pt(5, 0, 0, ColorBlue),
	}, testPose())

	// Both endpoints sit on the horizontal center row; the segment carries
	// the second point's color.
	pose := testPose()
	_, y1, ok1 := pose.Screen.Project(pose.Camera, math3d.V3(0, 0, 0))
	x2, y2, ok2 := pose.Screen.Project(pose.Camera, math3d.V3(5, 0, 0))
	if !ok1 || !ok2 {
		t.Fatal("endpoints did not project")
	}
	if y1 != 400 || y2 != 400 {
		t.Fatalf("endpoints off the center row: y1=%d y2=%d", y1, y2)
	}

	for x := x2; x <= 400; x++ {
		if fb.GetPixel(x, 400) != ColorBlue {
			t.Errorf("pixel (%d,400) = %v, want blue", x, fb.GetPixel(x, 400))
		}
	}
	if fb.GetPixel(200, 200) != ColorBlack {
		t.Error("background pixel not black")
	}
}

func TestRenderDepthIndependentOfOrder(t *testing.T) {
	// Two segments crossing pixel (400,400): the near pair (z=5) must win
	// over the far pair (z=0) regardless of sequence order.
	far1 := pt(0, 0, 0, ColorRed)
	far2 := pt(5, 0, 0, ColorRed)
	near1 := pt(0, 0, 5, ColorGreen)
	near2 := pt(5, 0, 5, ColorGreen)

	orders := [][]path.Point{
		{far1, far2, near1, near2},
		{near1, near2, far1, far2},
	}

	for i, points := range orders {
		t.Run(fmt.Sprintf("order %d", i), func(t *testing.T) {
			r := NewRenderer(800, 800)
			fb := r.Render(points, testPose())
			if got := fb.GetPixel(400, 400); got != ColorGreen {
				t.Errorf("shared pixel = %v, want the nearer green", got)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	points := path.PrimeWalk(500, path.NewGradient(ColorRed, ColorBlue, 500))
	pose := NewOrbit(300, 40, 200, 200).Pose()
	r := NewRenderer(200, 200)

	first := r.Render(points, pose)
	snapshot := make([]Color, len(first.Pixels))
	copy(snapshot, first.Pixels)

	second := r.Render(points, pose)
	if len(second.Pixels) != len(snapshot) {
		t.Fatal("buffer size changed between renders")
	}
	for i := range snapshot {
		if second.Pixels[i] != snapshot[i] {
			t.Fatalf("pixel %d differs between identical renders", i)
		}
	}
}

func TestRenderBuffersReused(t *testing.T) {
	r := NewRenderer(100, 100)
	first := r.Render(nil, testPose())
	second := r.Render(nil, testPose())
	if &first.Pixels[0] != &second.Pixels[0] {
		t.Error("render reallocated its buffers")
	}
}

func TestRenderBoundaryReconnection(t *testing.T) {
	// The second point leaves the view rectangle toward +x. Its edge crosses
	// the left-edge boundary plane at (800,0,0), which projects to pixel
	// (0,400), so a connecting line is drawn across the left half of the
	// center row in the outgoing point's color.
	r := NewRenderer(800, 800)
	fb := r.Render([]path.Point{
		pt(0, 0, 0, ColorRed),
		pt(900, 0, 0, ColorBlue),
	}, testPose())

	for _, x := range []int{0, 100, 399} {
		if fb.GetPixel(x, 400) != ColorBlue {
			t.Errorf("pixel (%d,400) = %v, want reconnection line", x, fb.GetPixel(x, 400))
		}
	}
	if fb.GetPixel(600, 400) != ColorBlack {
		t.Error("pixels beyond the previous point should stay black")
	}
}

func TestRenderSyntheticPointNotPromoted(t *testing.T) {
	// After a failed projection, the next projectable point must not connect
	// to the synthetic boundary point: the failed point reset the chain.
	r := NewRenderer(800, 800)
	fb := r.Render([]path.Point{
		pt(0, 0, 0, ColorRed),
		pt(900, 0, 0, ColorBlue),
		pt(5, 0, 5, ColorGreen),
	}, testPose())

	// The third point lands at (395,400); no segment may reach it.
	for _, x := range []int{396, 397} {
		if got := fb.GetPixel(x, 400); got == ColorGreen {
			t.Errorf("pixel (%d,400) drawn green; synthetic point was promoted", x)
		}
	}
}

func TestRenderUnprojectablePointsYieldBlackRaster(t *testing.T) {
	r := NewRenderer(100, 100)
	// Points behind the camera relative to the screen: nothing projects,
	// nothing reconnects, raster stays black.
	fb := r.Render([]path.Point{
		pt(0, 0, 100, ColorRed),
		pt(5, 0, 100, ColorRed),
	}, NewOrbit(10, 5, 100, 100).Pose())

	want := bytes.Repeat([]byte{0, 0, 0, 255}, 100*100)
	got := fb.ToImage().Pix
	if !bytes.Equal(got, want) {
		t.Error("raster not all black")
	}
}

func BenchmarkRender(b *testing.B) {
	points := path.PrimeWalk(2000, path.NewGradient(ColorRed, ColorBlue, 2000))
	pose := NewOrbit(300, 40, 800, 800).Pose()
	r := NewRenderer(800, 800)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(points, pose)
	}
}
