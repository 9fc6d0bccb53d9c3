package components

import (
	"errors"
	"fmt"

	"fpsctl/internal/engine"
	"fpsctl/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrNoRigidbody   = errors.New("components: first person controller needs a Rigidbody")
	ErrNoCamera      = errors.New("components: camera reference does not resolve to a Camera")
	ErrNoOrientation = errors.New("components: orientation reference does not resolve to an orientation frame")
)

// FirstPersonController drives a Rigidbody with a locomotion.Controller.
// Camera and Orientation are references to other objects in the scene and
// are resolved on activation.
type FirstPersonController struct {
	engine.BaseComponent
	Settings    locomotion.Settings
	EyeHeight   float32 // above the body centre
	Camera      engine.GameObjectRef
	Orientation engine.GameObjectRef
	Input       locomotion.InputSource
	Caster      engine.ShapeCaster

	ctl *locomotion.Controller
}

func NewFirstPersonController(caster engine.ShapeCaster, input locomotion.InputSource, settings locomotion.Settings) *FirstPersonController {
	return &FirstPersonController{
		Settings:  settings,
		EyeHeight: 0.6,
		Input:     input,
		Caster:    caster,
	}
}

// Activate resolves every collaborator and builds the controller.
func (f *FirstPersonController) Activate() error {
	g := f.GetGameObject()
	rb := engine.GetComponent[*Rigidbody](g)
	if rb == nil {
		return ErrNoRigidbody
	}
	cam := engine.GetComponent[*Camera](f.Camera.Get(g.Scene))
	if cam == nil {
		return fmt.Errorf("%w (uid %d)", ErrNoCamera, f.Camera.UID)
	}
	orient := engine.FindComponent[locomotion.OrientationFrame](f.Orientation.Get(g.Scene))
	if orient == nil {
		return fmt.Errorf("%w (uid %d)", ErrNoOrientation, f.Orientation.UID)
	}

	rb.Body.UseGravity = false // the controller applies its own gravity
	ctl, err := locomotion.New(locomotion.Options{
		Body:        rb.Body,
		Caster:      f.Caster,
		Orientation: orient,
		Settings:    f.Settings,
	})
	if err != nil {
		return fmt.Errorf("components: activate %s: %w", g.Name, err)
	}
	f.ctl = ctl
	cam.Follow(f)
	return nil
}

func (f *FirstPersonController) Update(deltaTime float32) {
	if f.ctl == nil || f.Input == nil {
		return
	}
	f.ctl.FrameUpdate(f.Input.Poll(), deltaTime)
}

func (f *FirstPersonController) FixedUpdate(now float64, step float32) {
	if f.ctl == nil {
		return
	}
	f.ctl.FixedUpdate(now, step)
}

// Controller is nil until a successful activation.
func (f *FirstPersonController) Controller() *locomotion.Controller {
	return f.ctl
}

func (f *FirstPersonController) EyePosition() rl.Vector3 {
	if f.ctl == nil {
		return f.GetGameObject().Transform.Position
	}
	p := f.ctl.Body().Position()
	p.Y += f.EyeHeight
	return p
}
