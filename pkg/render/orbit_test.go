package render

import (
	"math"
	"testing"

	"github.com/pathview/pathview/pkg/math3d"
)

func TestOrbitAngleWraparound(t *testing.T) {
	t.Run("decrement from zero wraps to 359", func(t *testing.T) {
		o := NewOrbit(300, 40, 800, 800)
		o.DecAzimuth()
		o.DecPolar()
		o.DecRoll()
		if o.Azimuth() != 359 || o.Polar() != 359 || o.Roll() != 359 {
			t.Errorf("got az=%d pol=%d roll=%d, want 359 each", o.Azimuth(), o.Polar(), o.Roll())
		}
	})

	t.Run("increment from 359 wraps to zero", func(t *testing.T) {
		o := NewOrbit(300, 40, 800, 800)
		for i := 0; i < 359; i++ {
			o.IncAzimuth()
			o.IncPolar()
			o.IncRoll()
		}
		if o.Azimuth() != 359 {
			t.Fatalf("azimuth = %d after 359 increments", o.Azimuth())
		}
		o.IncAzimuth()
		o.IncPolar()
		o.IncRoll()
		if o.Azimuth() != 0 || o.Polar() != 0 || o.Roll() != 0 {
			t.Errorf("got az=%d pol=%d roll=%d, want 0 each", o.Azimuth(), o.Polar(), o.Roll())
		}
	})
}

func TestOrbitRadiusFloor(t *testing.T) {
	o := NewOrbit(2, 40, 800, 800)

	o.DecRadius()
	if o.Radius() != 1.0 {
		t.Fatalf("radius = %v, want 1.0", o.Radius())
	}
	o.DecRadius()
	if o.Radius() != 1.0 {
		t.Errorf("radius = %v after decrement at floor, want 1.0", o.Radius())
	}

	o.IncRadius()
	if o.Radius() != 2.0 {
		t.Errorf("radius = %v after increment, want 2.0", o.Radius())
	}
}

func TestOrbitFocalLengthFloor(t *testing.T) {
	t.Run("at 1.0 stays unchanged", func(t *testing.T) {
		o := NewOrbit(300, 1.0, 800, 800)
		o.DecFocalLength()
		if o.FocalLength() != 1.0 {
			t.Errorf("focal = %v, want 1.0", o.FocalLength())
		}
	})

	t.Run("never lands at or below 1.0", func(t *testing.T) {
		o := NewOrbit(300, 3.0, 800, 800)
		for i := 0; i < 10; i++ {
			o.DecFocalLength()
			if o.FocalLength() <= 1.0 {
				t.Fatalf("focal = %v, must stay strictly above 1.0", o.FocalLength())
			}
		}
		if o.FocalLength() != 2.0 {
			t.Errorf("focal = %v, want 2.0 after bottoming out", o.FocalLength())
		}
	})
}

func TestOrbitPoseDefault(t *testing.T) {
	o := NewOrbit(10, 5, 800, 800)
	pose := o.Pose()

	if !vecNear(pose.Camera, math3d.V3(0, 0, 10)) {
		t.Errorf("camera = %v, want (0,0,10)", pose.Camera)
	}
	if !vecNear(pose.Screen.Center, math3d.V3(0, 0, 15)) {
		t.Errorf("screen center = %v, want (0,0,15)", pose.Screen.Center)
	}
	if !vecNear(pose.Screen.U, math3d.V3(1, 0, 0)) {
		t.Errorf("U = %v, want (1,0,0)", pose.Screen.U)
	}
	if !vecNear(pose.Screen.V, math3d.V3(0, 1, 0)) {
		t.Errorf("V = %v, want (0,1,0)", pose.Screen.V)
	}
}

func TestOrbitPoseAzimuth90(t *testing.T) {
	o := NewOrbit(10, 5, 800, 800)
	for i := 0; i < 90; i++ {
		o.IncAzimuth()
	}
	pose := o.Pose()

	want := math3d.V3(10, 0, 0)
	if pose.Camera.Distance(want) > 1e-9 {
		t.Errorf("camera = %v, want %v", pose.Camera, want)
	}
	// Basis stays unit length under rotation.
	if math.Abs(pose.Screen.U.Len()-1) > 1e-9 || math.Abs(pose.Screen.V.Len()-1) > 1e-9 {
		t.Errorf("basis not unit: |U|=%v |V|=%v", pose.Screen.U.Len(), pose.Screen.V.Len())
	}
}

func TestOrbitRollRotatesBasis(t *testing.T) {
	o := NewOrbit(10, 5, 800, 800)
	for i := 0; i < 90; i++ {
		o.IncRoll()
	}
	pose := o.Pose()

	// With a 90 degree roll, U picks up -vBase and V picks up uBase.
	if !vecNear(pose.Screen.U, math3d.V3(0, -1, 0)) {
		t.Errorf("rolled U = %v, want (0,-1,0)", pose.Screen.U)
	}
	if !vecNear(pose.Screen.V, math3d.V3(1, 0, 0)) {
		t.Errorf("rolled V = %v, want (1,0,0)", pose.Screen.V)
	}
}

func TestOrbitCenterMoves(t *testing.T) {
	o := NewOrbit(10, 5, 800, 800)

	o.MoveRight(1)
	if !vecNear(o.Center(), math3d.V3(1, 0, 0)) {
		t.Errorf("center after MoveRight = %v, want (1,0,0)", o.Center())
	}
	o.MoveUp(1)
	if !vecNear(o.Center(), math3d.V3(1, 1, 0)) {
		t.Errorf("center after MoveUp = %v, want (1,1,0)", o.Center())
	}
	o.MoveForward(1)
	if !vecNear(o.Center(), math3d.V3(1, 1, 1)) {
		t.Errorf("center after MoveForward = %v, want (1,1,1)", o.Center())
	}

	o.SetCenter(math3d.V3(-3, 4, 5))
	if !vecNear(o.Center(), math3d.V3(-3, 4, 5)) {
		t.Errorf("center after SetCenter = %v", o.Center())
	}
}

func TestOrbitReset(t *testing.T) {
	o := NewOrbit(300, 40, 800, 800)
	o.IncAzimuth()
	o.IncPolar()
	o.IncRoll()
	o.IncRadius()
	o.IncFocalLength()
	o.SetCenter(math3d.V3(7, 8, 9))

	o.Reset(300, 40)

	if o.Azimuth() != 0 || o.Polar() != 0 || o.Roll() != 0 {
		t.Errorf("angles not reset: az=%d pol=%d roll=%d", o.Azimuth(), o.Polar(), o.Roll())
	}
	if o.Radius() != 300 || o.FocalLength() != 40 {
		t.Errorf("radius/focal not reset: %v/%v", o.Radius(), o.FocalLength())
	}
	if !vecNear(o.Center(), math3d.Zero3()) {
		t.Errorf("center not reset: %v", o.Center())
	}
}

func TestPoseClipEdgeFirstMatch(t *testing.T) {
	pose := NewOrbit(10, 5, 800, 800).Pose()

	// A segment leaving the view rectangle toward +x crosses the left-edge
	// plane inside [0,1]; top and bottom are parallel to it and the
	// right-edge crossing falls outside the segment. The fixed
	// top/right/bottom/left order therefore reports the left plane's point.
	q, hit := pose.ClipEdge(math3d.V3(0, 0, 0), math3d.V3(900, 0, 0))
	if !hit {
		t.Fatal("expected a boundary intersection")
	}
	if !vecNear(q, math3d.V3(800, 0, 0)) {
		t.Errorf("clip point = %v, want (800,0,0)", q)
	}
}
