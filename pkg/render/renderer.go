package render

import (
	"image/color"

	"github.com/pathview/pathview/pkg/math3d"
	"github.com/pathview/pathview/pkg/path"
)

// Renderer draws an ordered point sequence into a reusable framebuffer.
// It exclusively owns the buffers; each Render call resets them in place and
// hands the populated framebuffer back to the caller.
type Renderer struct {
	fb *Framebuffer
}

// NewRenderer creates a renderer with a framebuffer of the given size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{fb: NewFramebuffer(width, height)}
}

// Framebuffer exposes the renderer's buffer, valid until the next Render.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// projected is the last successfully projected point of the walk.
type projected struct {
	distSq float64
	x, y   int
}

// Render walks the point sequence under the given pose and returns the
// finished raster. Consecutive projectable points are joined by depth-tested
// segments carrying the newer point's color and squared camera distance.
//
// When a point fails the visibility gate, the 3D edge from the previous point
// is clipped against the boundary planes and, if the first hit projects, a
// connecting segment is drawn to it. The synthetic clip point never becomes
// the previous point; the unprojectable point's 3D position does, so the next
// point can still reconnect through it.
//
// Every input yields a valid raster; unreached pixels stay black with +Inf
// depth.
func (r *Renderer) Render(points []path.Point, pose Pose) *Framebuffer {
	r.fb.Clear(color.RGBA{0, 0, 0, 255})
	r.fb.ClearDepth()

	var prev *projected
	var prev3D math3d.Vec3
	havePrev3D := false

	for _, pt := range points {
		x, y, ok := pose.Screen.Project(pose.Camera, pt.Position)
		if ok {
			distSq := pose.Camera.DistanceSq(pt.Position)
			if prev != nil {
				r.fb.DrawLineDepth(prev.x, prev.y, x, y, pt.Color, distSq)
			}
			prev = &projected{distSq: distSq, x: x, y: y}
			prev3D = pt.Position
			havePrev3D = true
			continue
		}

		if havePrev3D {
			if q, hit := pose.ClipEdge(prev3D, pt.Position); hit {
				if cx, cy, cok := pose.Screen.Project(pose.Camera, q); cok {
					distSq := pose.Camera.DistanceSq(q)
					if prev != nil {
						r.fb.DrawLineDepth(prev.x, prev.y, cx, cy, pt.Color, distSq)
					}
				}
			}
		}

		prev = nil
		prev3D = pt.Position
		havePrev3D = true
	}

	return r.fb
}
