package locomotion

import (
	"fpsctl/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// groundCheckSphereOffset lifts the grounded sweep origin above the feet so a
// body resting exactly on a surface still starts outside it.
const groundCheckSphereOffset float32 = 0.05

var worldDown = rl.Vector3{X: 0, Y: -1, Z: 0}

// GroundSensor classifies ground contact with one sphere sweep and one ray.
type GroundSensor struct {
	Caster         engine.ShapeCaster
	SlopeRayLength float32
}

// Probe samples the ground under body using the given mask and check distance.
func (g *GroundSensor) Probe(body engine.PhysicsBody, mask engine.LayerMask, checkDistance float32) ContactSample {
	c := body.Capsule()
	return g.ProbeGround(body.Position(), body.Up(), c.Radius, c.HalfHeight(), c.Scale, mask, checkDistance)
}

// ProbeGround runs the grounded sweep and the slope ray. The two are
// independent and may disagree.
func (g *GroundSensor) ProbeGround(position, up rl.Vector3, radius, halfHeight float32, scale rl.Vector3, mask engine.LayerMask, checkDistance float32) ContactSample {
	sample := ContactSample{SlopeAngle: NoSlope}

	feet := FeetPosition(position, up, radius, halfHeight, scale)
	origin := rl.Vector3Add(feet, rl.Vector3Scale(up, groundCheckSphereOffset))
	down := rl.Vector3Negate(up)
	if _, ok := g.Caster.SphereCast(origin, radius*scale.X, down, checkDistance+groundCheckSphereOffset, mask); ok {
		sample.Grounded = true
	}

	// The slope ray is not filtered by the ground mask.
	rayLength := g.SlopeRayLength + halfHeight*scale.Y
	if hit, ok := g.Caster.Raycast(position, worldDown, rayLength, engine.AllLayers); ok {
		sample.SlopeAngle = SlopeAngle(hit.Normal)
		sample.GroundNormal = hit.Normal
	}
	return sample
}

// GroundCheckSphere returns the centre and radius of the grounded sweep at full
// extent, for gizmos.
func GroundCheckSphere(body engine.PhysicsBody, checkDistance float32) (rl.Vector3, float32) {
	c := body.Capsule()
	up := body.Up()
	feet := FeetPosition(body.Position(), up, c.Radius, c.HalfHeight(), c.Scale)
	return rl.Vector3Subtract(feet, rl.Vector3Scale(up, checkDistance)), c.Radius * c.Scale.X
}

// SlopeAngle is the angle in degrees between world up and normal.
func SlopeAngle(normal rl.Vector3) float32 {
	l := rl.Vector3Length(normal)
	if l == 0 {
		return NoSlope
	}
	cos := rl.Clamp(rl.Vector3DotProduct(worldUp, normal)/l, -1, 1)
	return math32.Acos(cos) * rl.Rad2deg
}

// OnFlatGround reports whether angle is a walkable slope. NoSlope is never flat.
func OnFlatGround(angle, maxSlope float32) bool {
	return angle != NoSlope && angle >= 0 && angle <= maxSlope
}
