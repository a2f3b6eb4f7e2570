package meander

import (
	"math"
	"testing"
)

func TestRigSingleStepFraction(t *testing.T) {
	r := NewRig()
	r.Point(1, -1)
	r.Update()
	if math.Abs(r.X-r.Smoothing) > 1e-12 {
		t.Errorf("X = %f, want %f after one step", r.X, r.Smoothing)
	}
	if math.Abs(r.Y+r.Smoothing) > 1e-12 {
		t.Errorf("Y = %f, want %f after one step", r.Y, -r.Smoothing)
	}
}

func TestRigApproachesWithoutOvershoot(t *testing.T) {
	r := NewRig()
	r.Point(1, 0)
	prev := 0.0
	for i := 0; i < 400; i++ {
		r.Update()
		if r.X < prev {
			t.Fatalf("offset moved backward at step %d: %f < %f", i, r.X, prev)
		}
		if r.X > 1 {
			t.Fatalf("offset overshot target at step %d: %f", i, r.X)
		}
		prev = r.X
	}
	if math.Abs(r.X-1) > 1e-6 {
		t.Errorf("X = %f, want converged to 1", r.X)
	}
}

func TestRigRetargetsMidFlight(t *testing.T) {
	r := NewRig()
	r.Point(1, 0)
	for i := 0; i < 10; i++ {
		r.Update()
	}
	r.Point(-1, 0)
	for i := 0; i < 400; i++ {
		r.Update()
	}
	if math.Abs(r.X+1) > 1e-6 {
		t.Errorf("X = %f, want converged to -1", r.X)
	}
}

func TestRigSmoothingOneSnaps(t *testing.T) {
	r := &Rig{Smoothing: 1}
	r.Point(0.4, 0.7)
	r.Update()
	if r.X != 0.4 || r.Y != 0.7 {
		t.Errorf("got (%f, %f), want immediate snap to target", r.X, r.Y)
	}
}
