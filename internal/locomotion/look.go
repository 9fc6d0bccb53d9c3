package locomotion

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	minPitch float32 = -90
	maxPitch float32 = 90
)

// CameraLook is the accumulated camera orientation in degrees.
// Positive pitch looks down. Yaw is unbounded.
type CameraLook struct {
	Pitch float32
	Yaw   float32
}

// Direction is the unit view direction for the look angles.
func (l CameraLook) Direction() rl.Vector3 {
	p := l.Pitch * rl.Deg2rad
	y := l.Yaw * rl.Deg2rad
	cp := math32.Cos(p)
	return rl.Vector3{
		X: math32.Sin(y) * cp,
		Y: -math32.Sin(p),
		Z: -math32.Cos(y) * cp,
	}
}

// Camera builds an absolute camera from the look angles. The result depends
// only on eye, fovy and the accumulated angles, so it never drifts.
func (l CameraLook) Camera(eye rl.Vector3, fovy float32) rl.Camera3D {
	dir := l.Direction()
	_, right := YawBasis(l.Yaw)
	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, dir),
		Up:         rl.Vector3CrossProduct(right, dir),
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
}

// LookController integrates mouse deltas into a CameraLook once per frame.
type LookController struct {
	look CameraLook
}

// Update accumulates one frame of mouse input. dy is positive when the mouse moves up.
func (c *LookController) Update(dx, dy, sensitivityX, sensitivityY, dt float32) CameraLook {
	c.look.Pitch = rl.Clamp(c.look.Pitch-dy*sensitivityY*dt, minPitch, maxPitch)
	c.look.Yaw += dx * sensitivityX * dt
	return c.look
}

func (c *LookController) Look() CameraLook {
	return c.look
}

// Reset places the accumulator at l, clamping pitch.
func (c *LookController) Reset(l CameraLook) {
	l.Pitch = rl.Clamp(l.Pitch, minPitch, maxPitch)
	c.look = l
}
