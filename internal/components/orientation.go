package components

import (
	"fpsctl/internal/engine"
	"fpsctl/internal/locomotion"
	"fpsctl/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Orientation is the surface-aligned frame a FirstPersonController walks in.
// It lives on its own GameObject and follows the controlled body.
type Orientation struct {
	engine.BaseComponent
	Helper *locomotion.OrientationHelper
}

func NewOrientation(world *physics.World, mask engine.LayerMask) *Orientation {
	return &Orientation{Helper: locomotion.NewOrientationHelper(world, mask)}
}

func (o *Orientation) Refresh(origin rl.Vector3, bodyYaw float32) {
	if g := o.GetGameObject(); g != nil {
		g.Transform.Position = origin
		g.Transform.Rotation = rl.Vector3{Y: -bodyYaw}
	}
	o.Helper.Refresh(origin, bodyYaw)
}

func (o *Orientation) Basis() (forward, right rl.Vector3) {
	return o.Helper.Basis()
}

func (o *Orientation) SetGroundMask(mask engine.LayerMask) {
	o.Helper.SetGroundMask(mask)
}

func (o *Orientation) DrawGizmos(d locomotion.DebugDrawer) {
	o.Helper.DrawGizmos(d)
}
