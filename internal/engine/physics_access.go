package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Physics-facing types are defined here so locomotion, components and the
// physics backend can share them without circular imports.

// LayerMask selects collider layers by bit.
type LayerMask uint32

const AllLayers LayerMask = 0xFFFFFFFF

// Has reports whether layer bit l is selected.
func (m LayerMask) Has(l uint8) bool {
	return l < 32 && m&(1<<l) != 0
}

// LayerBit returns the mask selecting only layer l.
func LayerBit(l uint8) LayerMask {
	if l >= 32 {
		return 0
	}
	return 1 << l
}

// RaycastResult describes the first surface hit by a ray or sweep.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// ForceMode selects how AddForce changes velocity.
type ForceMode int

const (
	// Force is continuous and mass dependent: v += F/m*dt.
	Force ForceMode = iota
	// Acceleration is continuous and mass independent: v += a*dt.
	Acceleration
	// Impulse is instant and mass dependent: v += J/m.
	Impulse
	// VelocityChange is instant and mass independent: v += dv.
	VelocityChange
)

func (m ForceMode) String() string {
	switch m {
	case Force:
		return "force"
	case Acceleration:
		return "acceleration"
	case Impulse:
		return "impulse"
	case VelocityChange:
		return "velocity-change"
	}
	return "unknown"
}

// Capsule is a vertical capsule in body space. Height includes both caps.
type Capsule struct {
	Radius float32
	Height float32
	Scale  rl.Vector3
}

// HalfHeight returns the unscaled half height.
func (c Capsule) HalfHeight() float32 {
	return c.Height / 2
}

// PhysicsBody is the rigid body a character controller drives.
// Forces are accumulated and applied at the next physics step.
type PhysicsBody interface {
	Position() rl.Vector3
	Velocity() rl.Vector3
	SetVelocity(v rl.Vector3)
	AddForce(v rl.Vector3, mode ForceMode)
	Mass() float32
	// Yaw is the body's heading in degrees.
	Yaw() float32
	SetYaw(deg float32)
	Up() rl.Vector3
	Capsule() Capsule
}

// ShapeCaster answers scene queries. A miss returns ok=false, never an error.
type ShapeCaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastResult, bool)
	SphereCast(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask LayerMask) (RaycastResult, bool)
}
