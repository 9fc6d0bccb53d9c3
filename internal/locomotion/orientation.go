package locomotion

import (
	"fpsctl/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultOrientationRay float32 = 5

// OrientationHelper is a surface-aligned frame: its up follows the normal of
// the ground below its origin and its heading follows the body yaw. The last
// hit normal is kept while the ray misses.
type OrientationHelper struct {
	Caster    engine.ShapeCaster
	Mask      engine.LayerMask
	RayLength float32

	origin  rl.Vector3
	up      rl.Vector3
	forward rl.Vector3
	right   rl.Vector3
}

func NewOrientationHelper(caster engine.ShapeCaster, mask engine.LayerMask) *OrientationHelper {
	h := &OrientationHelper{
		Caster:    caster,
		Mask:      mask,
		RayLength: defaultOrientationRay,
		up:        worldUp,
	}
	h.forward, h.right = YawBasis(0)
	return h
}

// SetGroundMask changes the layers the ground ray hits.
func (h *OrientationHelper) SetGroundMask(mask engine.LayerMask) {
	h.Mask = mask
}

func (h *OrientationHelper) Refresh(origin rl.Vector3, bodyYaw float32) {
	h.origin = origin
	if h.up == (rl.Vector3{}) {
		h.up = worldUp
	}
	if h.Caster != nil {
		if hit, ok := h.Caster.Raycast(origin, worldDown, h.RayLength, h.Mask); ok && rl.Vector3Length(hit.Normal) > 0 {
			h.up = rl.Vector3Normalize(hit.Normal)
		}
	}
	h.forward, h.right = alignedBasis(h.up, bodyYaw)
}

func (h *OrientationHelper) Basis() (forward, right rl.Vector3) {
	return h.forward, h.right
}

func (h *OrientationHelper) Up() rl.Vector3 {
	return h.up
}

// DrawGizmos draws the frame's forward axis.
func (h *OrientationHelper) DrawGizmos(d DebugDrawer) {
	d.DrawLine(h.origin, rl.Vector3Add(h.origin, rl.Vector3Scale(h.forward, defaultOrientationRay)), rl.Red)
}

// alignedBasis projects the yaw heading onto the plane with normal up. When the
// heading is parallel to up the plain yaw basis is used.
func alignedBasis(up rl.Vector3, yaw float32) (forward, right rl.Vector3) {
	yawForward, yawRight := YawBasis(yaw)
	projected := rl.Vector3Subtract(yawForward, rl.Vector3Scale(up, rl.Vector3DotProduct(yawForward, up)))
	if rl.Vector3Length(projected) < 1e-4 {
		return yawForward, yawRight
	}
	forward = rl.Vector3Normalize(projected)
	right = rl.Vector3Normalize(rl.Vector3CrossProduct(forward, up))
	return forward, right
}

// YawFrame is an OrientationFrame that ignores the ground and uses the body yaw only.
type YawFrame struct {
	forward, right rl.Vector3
}

func (f *YawFrame) Refresh(_ rl.Vector3, bodyYaw float32) {
	f.forward, f.right = YawBasis(bodyYaw)
}

func (f *YawFrame) Basis() (forward, right rl.Vector3) {
	return f.forward, f.right
}
