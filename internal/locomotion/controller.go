package locomotion

import (
	"fmt"
	"log/slog"

	"fpsctl/internal/engine"
	"fpsctl/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const debugLineLength float32 = 25

type Options struct {
	Body        engine.PhysicsBody
	Caster      engine.ShapeCaster
	Orientation OrientationFrame
	Settings    Settings
	Logger      *slog.Logger // defaults to logger.L()
}

type JumpEvent struct {
	Time           float64
	JumpsRemaining int
	Contact        ContactState
}

type LandEvent struct {
	Time        float64
	ImpactSpeed float32 // downward speed before the landing step
}

type StateChange struct {
	Time     float64
	From, To ContactState
}

// Controller runs the two cadences of a first-person character: FrameUpdate
// once per rendered frame and FixedUpdate once per physics step. It must be
// driven from a single goroutine; only the intent hand-off is synchronised.
type Controller struct {
	Jumped       engine.EventWithArg[JumpEvent]
	Landed       engine.EventWithArg[LandEvent]
	StateChanged engine.EventWithArg[StateChange]

	body     engine.PhysicsBody
	frame    OrientationFrame
	sensor   GroundSensor
	resolver ForceResolver
	look     LookController
	intent   IntentBuffer
	state    State
	contact  ContactState
	last     StepResult
	gizmo    gizmoRecord
	log      *slog.Logger
}

type gizmoRecord struct {
	line     bool
	from, to rl.Vector3
}

// New validates the collaborators and settings. A controller that fails here
// must not be stepped.
func New(opts Options) (*Controller, error) {
	if opts.Body == nil {
		return nil, ErrNoBody
	}
	if opts.Caster == nil {
		return nil, ErrNoCaster
	}
	if opts.Orientation == nil {
		return nil, ErrNoOrientation
	}
	if err := opts.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("locomotion: new controller: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = logger.L()
	}
	c := &Controller{
		body:     opts.Body,
		frame:    opts.Orientation,
		sensor:   GroundSensor{Caster: opts.Caster, SlopeRayLength: opts.Settings.SlopeRayLength},
		resolver: ForceResolver{Settings: opts.Settings},
		state:    newState(opts.Settings.MaxJumps),
		contact:  Airborne,
		log:      log.With("component", "locomotion"),
	}
	c.look.Reset(CameraLook{Yaw: opts.Body.Yaw()})
	return c, nil
}

// FrameUpdate publishes this frame's intent and integrates mouse look.
func (c *Controller) FrameUpdate(in InputSample, dt float32) CameraLook {
	c.intent.Publish(in.Intent)
	s := &c.resolver.Settings
	return c.look.Update(in.MouseDeltaX, in.MouseDeltaY, s.MouseSensitivityX, s.MouseSensitivityY, dt)
}

// FixedUpdate runs one physics step of length step at fixed-step time now.
func (c *Controller) FixedUpdate(now float64, step float32) StepResult {
	s := &c.resolver.Settings

	c.body.SetYaw(BodyFacingYaw(c.look.Look().Yaw))
	c.frame.Refresh(c.body.Position(), c.body.Yaw())

	sample := c.sensor.Probe(c.body, s.GroundMask, s.GroundCheckDistance)
	intent := c.intent.Take()
	wasGrounded := c.state.Grounded

	res := c.resolver.Resolve(&c.state, sample, intent, c.body, c.frame, now, step)
	c.last = res
	c.record(res, now, wasGrounded)
	return res
}

func (c *Controller) record(res StepResult, now float64, wasGrounded bool) {
	if res.Contact != c.contact {
		c.log.Debug("contact changed", "from", c.contact, "to", res.Contact, "slope", c.state.SlopeAngle)
		c.StateChanged.Invoke(StateChange{Time: now, From: c.contact, To: res.Contact})
		c.contact = res.Contact
	}
	if !wasGrounded && c.state.Grounded {
		impact := -res.VelocityBefore.Y
		c.log.Debug("landed", "impact", impact)
		c.Landed.Invoke(LandEvent{Time: now, ImpactSpeed: impact})
	}
	if res.Jumped {
		c.log.Debug("jumped", "jumps_left", c.state.JumpsRemaining, "contact", res.Contact)
		c.Jumped.Invoke(JumpEvent{Time: now, JumpsRemaining: c.state.JumpsRemaining, Contact: res.Contact})
	} else if res.JumpRejected {
		c.log.Debug("jump rejected", "jumps_left", c.state.JumpsRemaining, "last_jump", c.state.LastJumpTime)
	}

	c.gizmo.line = false
	if c.resolver.Settings.Debug && res.Contact == GroundedFlat {
		cp := c.body.Capsule()
		feet := FeetPosition(c.body.Position(), c.body.Up(), cp.Radius, cp.HalfHeight(), cp.Scale)
		c.gizmo = gizmoRecord{line: true, from: feet, to: rl.Vector3Add(feet, rl.Vector3Scale(res.Direction, debugLineLength))}
	}
}

// DrawGizmos draws the ground check sphere and the last locomotion direction.
// It does nothing unless Settings.Debug is set.
func (c *Controller) DrawGizmos(d DebugDrawer) {
	if !c.resolver.Settings.Debug || d == nil {
		return
	}
	center, radius := GroundCheckSphere(c.body, c.resolver.Settings.GroundCheckDistance)
	d.DrawWireSphere(center, radius, rl.Yellow)
	if c.gizmo.line {
		d.DrawLine(c.gizmo.from, c.gizmo.to, rl.Green)
	}
	if g, ok := c.frame.(interface{ DrawGizmos(DebugDrawer) }); ok {
		g.DrawGizmos(d)
	}
}

// ApplySettings swaps the tuning in place, e.g. on config reload.
func (c *Controller) ApplySettings(s Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("locomotion: apply settings: %w", err)
	}
	c.resolver.Settings = s
	c.sensor.SlopeRayLength = s.SlopeRayLength
	if m, ok := c.frame.(interface{ SetGroundMask(engine.LayerMask) }); ok {
		m.SetGroundMask(s.GroundMask)
	}
	if c.state.JumpsRemaining > s.MaxJumps {
		c.state.JumpsRemaining = s.MaxJumps
	}
	return nil
}

func (c *Controller) Settings() Settings {
	return c.resolver.Settings
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Contact() ContactState {
	return c.contact
}

func (c *Controller) LastStep() StepResult {
	return c.last
}

func (c *Controller) Look() CameraLook {
	return c.look.Look()
}

// SetLook places the camera, e.g. at spawn.
func (c *Controller) SetLook(l CameraLook) {
	c.look.Reset(l)
}

func (c *Controller) Body() engine.PhysicsBody {
	return c.body
}
