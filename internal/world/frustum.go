package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	clipNear float32 = 0.05
	clipFar  float32 = 1000
)

// Frustum holds the six clip planes of a camera: left, right, bottom, top, near, far.
type Frustum struct {
	planes [6]Plane
}

// Plane is n.p + d = 0 with n pointing into the frustum.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the planes from the camera's view-projection matrix
// (Gribb/Hartmann).
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, clipNear, clipFar)
	} else {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, clipNear, clipFar)
	}
	vp := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}
	var f Frustum
	for i := 0; i < 3; i++ {
		f.planes[i*2] = planeFrom(rows[3], rows[i], 1)
		f.planes[i*2+1] = planeFrom(rows[3], rows[i], -1)
	}
	return f
}

func planeFrom(w, r [4]float32, sign float32) Plane {
	return normalizePlane(Plane{
		normal:   rl.Vector3{X: w[0] + sign*r[0], Y: w[1] + sign*r[1], Z: w[2] + sign*r[2]},
		distance: w[3] + sign*r[3],
	})
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether any part of the sphere may be visible.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
