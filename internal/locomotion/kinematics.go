package locomotion

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// BodyFacingYaw returns the body heading for a camera yaw: pitch and roll are
// dropped and the yaw is wrapped to [0, 360).
func BodyFacingYaw(cameraYaw float32) float32 {
	y := math32.Mod(cameraYaw, 360)
	if y < 0 {
		y += 360
	}
	return y
}

// YawBasis returns the horizontal forward and right unit vectors for a yaw in
// degrees. Yaw 0 faces -Z, positive yaw turns toward +X.
func YawBasis(yawDeg float32) (forward, right rl.Vector3) {
	rad := yawDeg * rl.Deg2rad
	s, c := math32.Sin(rad), math32.Cos(rad)
	forward = rl.Vector3{X: s, Y: 0, Z: -c}
	right = rl.Vector3{X: c, Y: 0, Z: s}
	return forward, right
}

// FeetPosition is the centre of the capsule's bottom cap sphere.
func FeetPosition(position, up rl.Vector3, radius, halfHeight float32, scale rl.Vector3) rl.Vector3 {
	offset := halfHeight*scale.Y - radius*scale.X
	return rl.Vector3Subtract(position, rl.Vector3Scale(up, offset))
}

// moveDirection combines axis input with a basis and normalises the result.
// Zero input gives the zero vector.
func moveDirection(forward, right rl.Vector3, axisForward, axisSideways float32) rl.Vector3 {
	dir := rl.Vector3Add(rl.Vector3Scale(forward, axisForward), rl.Vector3Scale(right, axisSideways))
	if rl.Vector3Length(dir) == 0 {
		return rl.Vector3{}
	}
	return rl.Vector3Normalize(dir)
}

func horizontal(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: 0, Z: v.Z}
}

func clampMagnitude(v rl.Vector3, max float32) rl.Vector3 {
	l := rl.Vector3Length(v)
	if l <= max || l == 0 {
		return v
	}
	return rl.Vector3Scale(v, max/l)
}
