package physics

import (
	"fpsctl/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Body is a capsule rigid body. It never rotates except for yaw, which is
// set directly by its owner. Forces added between steps are applied by the
// next World.Step.
type Body struct {
	Owner      *engine.GameObject
	UseGravity bool

	mass     float32
	position rl.Vector3
	velocity rl.Vector3
	yaw      float32
	capsule  engine.Capsule

	force     rl.Vector3 // Force, mass dependent, per second
	accel     rl.Vector3 // Acceleration, per second
	impulse   rl.Vector3 // Impulse, mass dependent, instant
	velChange rl.Vector3 // VelocityChange, instant

	contacts []Contact
}

// Contact is one collider touched during the last step.
type Contact struct {
	Collider *Collider
	Normal   rl.Vector3
	Depth    float32
}

func NewBody(position rl.Vector3, capsule engine.Capsule, mass float32) *Body {
	if mass <= 0 {
		mass = 1
	}
	if capsule.Scale == (rl.Vector3{}) {
		capsule.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	}
	return &Body{
		mass:       mass,
		UseGravity: true,
		position:   position,
		capsule:    capsule,
	}
}

func (b *Body) Position() rl.Vector3 {
	return b.position
}

// SetPosition teleports the body. Use for spawning only.
func (b *Body) SetPosition(p rl.Vector3) {
	b.position = p
}

func (b *Body) Velocity() rl.Vector3 {
	return b.velocity
}

func (b *Body) SetVelocity(v rl.Vector3) {
	b.velocity = v
}

func (b *Body) AddForce(v rl.Vector3, mode engine.ForceMode) {
	switch mode {
	case engine.Force:
		b.force = rl.Vector3Add(b.force, v)
	case engine.Acceleration:
		b.accel = rl.Vector3Add(b.accel, v)
	case engine.Impulse:
		b.impulse = rl.Vector3Add(b.impulse, v)
	case engine.VelocityChange:
		b.velChange = rl.Vector3Add(b.velChange, v)
	}
}

func (b *Body) Mass() float32 {
	return b.mass
}

func (b *Body) Yaw() float32 {
	return b.yaw
}

func (b *Body) SetYaw(deg float32) {
	b.yaw = deg
}

// Up is always world up; the capsule stays upright.
func (b *Body) Up() rl.Vector3 {
	return rl.Vector3{X: 0, Y: 1, Z: 0}
}

func (b *Body) Capsule() engine.Capsule {
	return b.capsule
}

// Contacts returns the colliders touched during the last step.
func (b *Body) Contacts() []Contact {
	return b.contacts
}

// segment returns the capsule's inner segment endpoints and world radius.
func (b *Body) segment() (bottom, top rl.Vector3, radius float32) {
	c := b.capsule
	radius = c.Radius * c.Scale.X
	half := c.HalfHeight()*c.Scale.Y - radius
	if half < 0 {
		half = 0
	}
	up := rl.Vector3Scale(b.Up(), half)
	return rl.Vector3Subtract(b.position, up), rl.Vector3Add(b.position, up), radius
}

// integrate applies and clears the accumulated forces, then moves the body.
func (b *Body) integrate(gravity rl.Vector3, dt float32) {
	dv := rl.Vector3Scale(b.force, dt/b.mass)
	dv = rl.Vector3Add(dv, rl.Vector3Scale(b.accel, dt))
	if b.UseGravity {
		dv = rl.Vector3Add(dv, rl.Vector3Scale(gravity, dt))
	}
	dv = rl.Vector3Add(dv, rl.Vector3Scale(b.impulse, 1/b.mass))
	dv = rl.Vector3Add(dv, b.velChange)
	b.velocity = rl.Vector3Add(b.velocity, dv)

	b.force = rl.Vector3{}
	b.accel = rl.Vector3{}
	b.impulse = rl.Vector3{}
	b.velChange = rl.Vector3{}

	b.position = rl.Vector3Add(b.position, rl.Vector3Scale(b.velocity, dt))
}
