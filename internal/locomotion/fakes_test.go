package locomotion

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"fpsctl/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type appliedForce struct {
	v    rl.Vector3
	mode engine.ForceMode
}

// fakeBody records forces and applies them only when integrate is called,
// like a physics step would.
type fakeBody struct {
	pos     rl.Vector3
	vel     rl.Vector3
	yaw     float32
	mass    float32
	capsule engine.Capsule
	forces  []appliedForce
}

func newFakeBody() *fakeBody {
	return &fakeBody{
		pos:     rl.Vector3{X: 0, Y: 1, Z: 0},
		mass:    1,
		capsule: engine.Capsule{Radius: 0.5, Height: 2, Scale: rl.Vector3{X: 1, Y: 1, Z: 1}},
	}
}

func (b *fakeBody) Position() rl.Vector3     { return b.pos }
func (b *fakeBody) Velocity() rl.Vector3     { return b.vel }
func (b *fakeBody) SetVelocity(v rl.Vector3) { b.vel = v }
func (b *fakeBody) Mass() float32            { return b.mass }
func (b *fakeBody) Yaw() float32             { return b.yaw }
func (b *fakeBody) SetYaw(deg float32)       { b.yaw = deg }
func (b *fakeBody) Up() rl.Vector3           { return rl.Vector3{X: 0, Y: 1, Z: 0} }
func (b *fakeBody) Capsule() engine.Capsule  { return b.capsule }

func (b *fakeBody) AddForce(v rl.Vector3, mode engine.ForceMode) {
	b.forces = append(b.forces, appliedForce{v: v, mode: mode})
}

func (b *fakeBody) sum(mode engine.ForceMode) rl.Vector3 {
	var total rl.Vector3
	for _, f := range b.forces {
		if f.mode == mode {
			total = rl.Vector3Add(total, f.v)
		}
	}
	return total
}

func (b *fakeBody) integrate(dt float32) {
	for _, f := range b.forces {
		switch f.mode {
		case engine.Force:
			b.vel = rl.Vector3Add(b.vel, rl.Vector3Scale(f.v, dt/b.mass))
		case engine.Acceleration:
			b.vel = rl.Vector3Add(b.vel, rl.Vector3Scale(f.v, dt))
		case engine.Impulse:
			b.vel = rl.Vector3Add(b.vel, rl.Vector3Scale(f.v, 1/b.mass))
		case engine.VelocityChange:
			b.vel = rl.Vector3Add(b.vel, f.v)
		}
	}
	b.forces = b.forces[:0]
	b.pos = rl.Vector3Add(b.pos, rl.Vector3Scale(b.vel, dt))
}

type castCall struct {
	origin    rl.Vector3
	radius    float32
	direction rl.Vector3
	distance  float32
	mask      engine.LayerMask
}

// fakeCaster answers the sphere sweep with grounded and every ray with
// slopeNormal. A nil slopeNormal means the ray misses.
type fakeCaster struct {
	grounded    bool
	slopeNormal *rl.Vector3
	sweeps      []castCall
	rays        []castCall
}

func (c *fakeCaster) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	c.rays = append(c.rays, castCall{origin: origin, direction: direction, distance: maxDistance, mask: mask})
	if c.slopeNormal == nil {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{Normal: *c.slopeNormal, Distance: maxDistance / 2}, true
}

func (c *fakeCaster) SphereCast(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	c.sweeps = append(c.sweeps, castCall{origin: origin, radius: radius, direction: direction, distance: maxDistance, mask: mask})
	if !c.grounded {
		return engine.RaycastResult{}, false
	}
	return engine.RaycastResult{Normal: rl.Vector3{Y: 1}}, true
}

// setSlope makes the slope ray hit a surface tilted by deg degrees.
func (c *fakeCaster) setSlope(deg float64) {
	rad := deg * math.Pi / 180
	n := rl.Vector3{X: float32(math.Sin(rad)), Y: float32(math.Cos(rad)), Z: 0}
	c.slopeNormal = &n
}

func (c *fakeCaster) clearSlope() {
	c.slopeNormal = nil
}

type fixedFrame struct {
	forward, right rl.Vector3
	refreshes      int
}

func (f *fixedFrame) Refresh(rl.Vector3, float32) { f.refreshes++ }
func (f *fixedFrame) Basis() (rl.Vector3, rl.Vector3) {
	return f.forward, f.right
}

type recordingDrawer struct {
	lines   int
	spheres int
}

func (d *recordingDrawer) DrawLine(from, to rl.Vector3, color rl.Color) { d.lines++ }
func (d *recordingDrawer) DrawWireSphere(center rl.Vector3, radius float32, color rl.Color) {
	d.spheres++
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func approxEqual(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) < epsilon
}

func vecApproxEqual(a, b rl.Vector3, epsilon float32) bool {
	return approxEqual(a.X, b.X, epsilon) && approxEqual(a.Y, b.Y, epsilon) && approxEqual(a.Z, b.Z, epsilon)
}

func horizontalSpeed(v rl.Vector3) float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Z)))
}

// rig bundles a resolver with fakes for direct pipeline tests.
type rig struct {
	resolver ForceResolver
	sensor   GroundSensor
	body     *fakeBody
	caster   *fakeCaster
	frame    *fixedFrame
	state    State
}

func newRig(t *testing.T) *rig {
	t.Helper()
	s := DefaultSettings()
	caster := &fakeCaster{}
	fwd, right := YawBasis(0)
	return &rig{
		resolver: ForceResolver{Settings: s},
		sensor:   GroundSensor{Caster: caster, SlopeRayLength: s.SlopeRayLength},
		body:     newFakeBody(),
		caster:   caster,
		frame:    &fixedFrame{forward: fwd, right: right},
		state:    newState(s.MaxJumps),
	}
}

func (r *rig) step(intent MovementIntent, now float64) StepResult {
	s := r.resolver.Settings
	sample := r.sensor.Probe(r.body, s.GroundMask, s.GroundCheckDistance)
	return r.resolver.Resolve(&r.state, sample, intent, r.body, r.frame, now, dt)
}

func (r *rig) flatGround() {
	r.caster.grounded = true
	r.caster.setSlope(0)
}

func (r *rig) airborne() {
	r.caster.grounded = false
	r.caster.clearSlope()
}

func isNegInf(f float64) bool {
	return math.IsInf(f, -1)
}
