package locomotion

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestOrientationHelperFollowsGroundNormal(t *testing.T) {
	caster := &fakeCaster{}
	caster.setSlope(30)
	h := NewOrientationHelper(caster, DefaultSettings().GroundMask)

	h.Refresh(rl.Vector3{Y: 1}, 90)

	if !vecApproxEqual(h.Up(), *caster.slopeNormal, 1e-5) {
		t.Errorf("Up should follow the hit normal, got %v", h.Up())
	}
	forward, right := h.Basis()
	if d := rl.Vector3DotProduct(forward, h.Up()); !approxEqual(d, 0, 1e-5) {
		t.Errorf("Forward should lie in the ground plane, dot %f", d)
	}
	if d := rl.Vector3DotProduct(right, h.Up()); !approxEqual(d, 0, 1e-5) {
		t.Errorf("Right should lie in the ground plane, dot %f", d)
	}
	// Facing +X down a slope whose normal leans toward +X.
	if forward.X <= 0 || forward.Y >= 0 {
		t.Errorf("Expected forward tilted down the slope, got %v", forward)
	}
	ray := caster.rays[0]
	if ray.distance != 5 || ray.mask != DefaultSettings().GroundMask {
		t.Errorf("Unexpected orientation ray %+v", ray)
	}
}

func TestOrientationHelperKeepsNormalOnMiss(t *testing.T) {
	caster := &fakeCaster{}
	caster.setSlope(20)
	h := NewOrientationHelper(caster, DefaultSettings().GroundMask)
	h.Refresh(rl.Vector3{}, 0)
	kept := h.Up()

	caster.clearSlope()
	h.Refresh(rl.Vector3{}, 0)

	if h.Up() != kept {
		t.Errorf("Up should be kept when the ray misses, got %v", h.Up())
	}
}

func TestOrientationHelperOnFlatMatchesYaw(t *testing.T) {
	caster := &fakeCaster{}
	caster.setSlope(0)
	h := NewOrientationHelper(caster, DefaultSettings().GroundMask)

	for _, yaw := range []float32{0, 45, 135, 300} {
		h.Refresh(rl.Vector3{}, yaw)
		forward, right := h.Basis()
		wantF, wantR := YawBasis(yaw)
		if !vecApproxEqual(forward, wantF, 1e-5) || !vecApproxEqual(right, wantR, 1e-5) {
			t.Errorf("Yaw %f: basis %v %v, expected %v %v", yaw, forward, right, wantF, wantR)
		}
	}
}

func TestYawFrame(t *testing.T) {
	var f YawFrame
	f.Refresh(rl.Vector3{}, 90)
	forward, _ := f.Basis()
	if !vecApproxEqual(forward, rl.Vector3{X: 1}, 1e-5) {
		t.Errorf("Expected +X, got %v", forward)
	}
}
