package locomotion

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// NoSlope is the slope angle reported when the slope ray hits nothing.
const NoSlope float32 = -1

// ContactSample is one step's ground probe. It is never cached across steps.
type ContactSample struct {
	Grounded     bool
	SlopeAngle   float32 // degrees in [0,180], NoSlope on miss
	GroundNormal rl.Vector3
}

// ContactState is derived from a ContactSample each step for logging and tests.
type ContactState int

const (
	Airborne ContactState = iota
	GroundedSteep
	GroundedFlat
)

func (c ContactState) String() string {
	switch c {
	case Airborne:
		return "airborne"
	case GroundedSteep:
		return "grounded-steep"
	case GroundedFlat:
		return "grounded-flat"
	}
	return "unknown"
}

// Classify derives the contact state from a sample and the walkable slope limit.
func Classify(sample ContactSample, maxSlope float32) ContactState {
	switch {
	case !sample.Grounded:
		return Airborne
	case OnFlatGround(sample.SlopeAngle, maxSlope):
		return GroundedFlat
	default:
		return GroundedSteep
	}
}

// State is owned by the fixed step.
type State struct {
	Grounded           bool
	SlopeAngle         float32
	JumpsRemaining     int
	LastFlatGroundTime float64
	LastJumpTime       float64
	PendingJump        bool
}

func newState(maxJumps int) State {
	return State{
		SlopeAngle:         NoSlope,
		JumpsRemaining:     maxJumps,
		LastFlatGroundTime: math.Inf(-1),
		LastJumpTime:       math.Inf(-1),
	}
}

// MovementIntent is the input snapshot consumed by one fixed step.
type MovementIntent struct {
	Forward     float32
	Sideways    float32
	Sprint      bool
	JumpPressed bool
}

func (m MovementIntent) HasMovement() bool {
	return m.Forward != 0 || m.Sideways != 0
}

// InputSample is what an InputSource yields once per frame.
type InputSample struct {
	Intent      MovementIntent
	MouseDeltaX float32
	MouseDeltaY float32 // positive = mouse moved up
}

// InputSource is polled once per frame by the frame task.
type InputSource interface {
	Poll() InputSample
}

// OrientationFrame supplies the ground-locomotion basis. Refresh is called once
// per fixed step before Basis is read.
type OrientationFrame interface {
	Refresh(origin rl.Vector3, bodyYaw float32)
	Basis() (forward, right rl.Vector3)
}

// DebugDrawer receives diagnostic draws. They have no effect on the simulation.
type DebugDrawer interface {
	DrawLine(from, to rl.Vector3, color rl.Color)
	DrawWireSphere(center rl.Vector3, radius float32, color rl.Color)
}
