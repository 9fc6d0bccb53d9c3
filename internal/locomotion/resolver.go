package locomotion

import (
	"fpsctl/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StepResult reports what one resolver pass did.
type StepResult struct {
	Contact        ContactState
	Jumped         bool
	JumpRejected   bool // pressed but refused by cooldown or empty charges
	ExtraGravity   bool
	Direction      rl.Vector3 // locomotion direction after air scaling
	WalkForce      bool
	Clamped        bool
	FrictionSnap   bool
	FrictionForce  bool
	VelocityBefore rl.Vector3
}

// ForceResolver is the per-step force pipeline. It keeps no state of its own;
// everything persistent lives in State.
type ForceResolver struct {
	Settings Settings
}

// Resolve runs one fixed step of length step against body. sample must have
// been probed this step, intent is the snapshot taken for this step and now is
// the fixed-step time.
func (r *ForceResolver) Resolve(st *State, sample ContactSample, intent MovementIntent, body engine.PhysicsBody, frame OrientationFrame, now float64, step float32) StepResult {
	s := &r.Settings
	res := StepResult{VelocityBefore: body.Velocity()}

	// Sense.
	st.Grounded = sample.Grounded
	st.SlopeAngle = sample.SlopeAngle
	st.PendingJump = intent.JumpPressed
	onFlat := OnFlatGround(st.SlopeAngle, s.MaxSlopeAngle)
	groundedFlat := st.Grounded && onFlat
	res.Contact = Classify(sample, s.MaxSlopeAngle)

	// Slope timer.
	if st.Grounded && st.SlopeAngle != NoSlope && onFlat {
		st.LastFlatGroundTime = now
	}

	// Jump charges refill on flat ground only.
	if groundedFlat {
		st.JumpsRemaining = s.MaxJumps
	}

	// Gravity, plus extra gravity inside the window after leaving flat ground.
	body.AddForce(rl.Vector3Scale(s.Gravity, s.GravityMultiplier), engine.Acceleration)
	if !st.PendingJump && !groundedFlat && now < st.LastFlatGroundTime+float64(s.ExtraGravityTimeAfterSlope) {
		body.AddForce(rl.Vector3Scale(s.Gravity, s.ExtraGravity), engine.Acceleration)
		res.ExtraGravity = true
	}

	// Jump.
	if st.PendingJump {
		st.PendingJump = false
		switch {
		case st.LastJumpTime >= now:
			res.JumpRejected = true
		case groundedFlat || st.JumpsRemaining > 0:
			r.jump(st, body)
			st.LastJumpTime = now
			res.Jumped = true
		default:
			res.JumpRejected = true
		}
	}

	// Locomotion force.
	v := body.Velocity()
	bodyForward, bodyRight := YawBasis(body.Yaw())
	dir := moveDirection(bodyForward, bodyRight, intent.Forward, intent.Sideways)
	if groundedFlat {
		forward, right := frame.Basis()
		dir = moveDirection(forward, right, intent.Forward, intent.Sideways)
	}
	if !st.Grounded {
		dir = rl.Vector3Scale(dir, s.AirMultiplier)
	}
	res.Direction = dir
	if onFlat {
		body.AddForce(rl.Vector3Scale(dir, s.WalkForce), engine.Force)
		res.WalkForce = true
	}

	// Speed clamp. Steep contact is never clamped.
	if limit := s.SpeedCap(intent.Sprint); rl.Vector3Length(v) > limit {
		switch {
		case groundedFlat:
			body.SetVelocity(clampMagnitude(v, limit))
			res.Clamped = true
		case !st.Grounded:
			h := clampMagnitude(horizontal(v), limit)
			h.Y = v.Y
			body.SetVelocity(h)
			res.Clamped = true
		}
	}

	// Friction with no input on flat ground.
	if !intent.HasMovement() && groundedFlat {
		v = body.Velocity()
		speed := rl.Vector3Length(v)
		// Friction never pushes past rest: a step that would reverse the
		// velocity stops the body instead.
		if speed < s.MinVelocity || s.Friction*step/body.Mass() >= speed {
			body.SetVelocity(rl.Vector3{})
			res.FrictionSnap = true
		} else {
			body.AddForce(rl.Vector3Scale(rl.Vector3Normalize(v), -s.Friction), engine.Force)
			res.FrictionForce = true
		}
	}
	return res
}

// jump zeroes vertical velocity, then adds jumpForce upwards as an instant velocity change.
func (r *ForceResolver) jump(st *State, body engine.PhysicsBody) {
	v := body.Velocity()
	v.Y = 0
	body.SetVelocity(v)
	body.AddForce(rl.Vector3Scale(worldUp, r.Settings.JumpForce), engine.VelocityChange)
	if st.JumpsRemaining > 0 {
		st.JumpsRemaining--
	}
}
