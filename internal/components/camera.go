package components

import (
	"fpsctl/internal/engine"
	"fpsctl/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV float32

	rig *FirstPersonController
}

func NewCamera() *Camera {
	return &Camera{FOV: 70}
}

// Follow binds the camera to a controller's look state.
func (c *Camera) Follow(f *FirstPersonController) {
	c.rig = f
}

// GetRaylibCamera builds the view from absolute angles: the controller's look
// when following, else the transform's X (pitch) and Y (yaw) rotation.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}
	if c.rig != nil && c.rig.Controller() != nil {
		eye := c.rig.EyePosition()
		g.Transform.Position = eye
		return c.rig.Controller().Look().Camera(eye, c.FOV)
	}
	look := locomotion.CameraLook{Pitch: g.Transform.Rotation.X, Yaw: g.Transform.Rotation.Y}
	return look.Camera(g.Transform.Position, c.FOV)
}
