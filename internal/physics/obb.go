package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB is an oriented bounding box.
type OBB struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)
}

// NewOBB creates an OBB from center, full size and euler rotation in degrees,
// applied X then Y then Z.
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rx := float64(rotation.X) * math.Pi / 180
	ry := float64(rotation.Y) * math.Pi / 180
	rz := float64(rotation.Z) * math.Pi / 180

	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}

	return OBB{
		Center:   center,
		HalfSize: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes:     axes,
	}
}

// toLocal expresses a world point in box coordinates.
func (o OBB) toLocal(p rl.Vector3) rl.Vector3 {
	d := rl.Vector3Subtract(p, o.Center)
	return rl.Vector3{
		X: rl.Vector3DotProduct(d, o.Axes[0]),
		Y: rl.Vector3DotProduct(d, o.Axes[1]),
		Z: rl.Vector3DotProduct(d, o.Axes[2]),
	}
}

// toLocalDir expresses a world direction in box coordinates.
func (o OBB) toLocalDir(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: rl.Vector3DotProduct(v, o.Axes[0]),
		Y: rl.Vector3DotProduct(v, o.Axes[1]),
		Z: rl.Vector3DotProduct(v, o.Axes[2]),
	}
}

// toWorldDir maps a box-space direction back to world space.
func (o OBB) toWorldDir(v rl.Vector3) rl.Vector3 {
	out := rl.Vector3Scale(o.Axes[0], v.X)
	out = rl.Vector3Add(out, rl.Vector3Scale(o.Axes[1], v.Y))
	return rl.Vector3Add(out, rl.Vector3Scale(o.Axes[2], v.Z))
}

// IntersectsSphere tests if an OBB intersects with a sphere
func (o OBB) IntersectsSphere(center rl.Vector3, radius float32) bool {
	c := ClosestPointOnOBB(o, center)
	d := rl.Vector3Subtract(center, c)
	return rl.Vector3DotProduct(d, d) <= radius*radius
}

// Contains reports whether p is inside or on the box.
func (o OBB) Contains(p rl.Vector3) bool {
	l := o.toLocal(p)
	return absf(l.X) <= o.HalfSize.X && absf(l.Y) <= o.HalfSize.Y && absf(l.Z) <= o.HalfSize.Z
}

// ClosestPointOnOBB returns the point of the box nearest to point. A point
// inside the box is returned unchanged.
func ClosestPointOnOBB(o OBB, point rl.Vector3) rl.Vector3 {
	l := o.toLocal(point)
	l.X = clampf(l.X, -o.HalfSize.X, o.HalfSize.X)
	l.Y = clampf(l.Y, -o.HalfSize.Y, o.HalfSize.Y)
	l.Z = clampf(l.Z, -o.HalfSize.Z, o.HalfSize.Z)
	return rl.Vector3Add(o.Center, o.toWorldDir(l))
}

// exitFace returns the outward face normal nearest to a point inside the box
// and the distance to that face.
func (o OBB) exitFace(p rl.Vector3) (rl.Vector3, float32) {
	l := o.toLocal(p)
	local := [3]float32{l.X, l.Y, l.Z}
	half := [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z}

	best := 0
	bestDepth := float32(math.MaxFloat32)
	for i := 0; i < 3; i++ {
		depth := half[i] - absf(local[i])
		if depth < bestDepth {
			best, bestDepth = i, depth
		}
	}
	n := o.Axes[best]
	if local[best] < 0 {
		n = rl.Vector3Negate(n)
	}
	return n, bestDepth
}

// Bounds is the world AABB enclosing the box.
func (o OBB) Bounds() AABB {
	var ext rl.Vector3
	for i, h := range [3]float32{o.HalfSize.X, o.HalfSize.Y, o.HalfSize.Z} {
		a := o.Axes[i]
		ext.X += absf(a.X) * h
		ext.Y += absf(a.Y) * h
		ext.Z += absf(a.Z) * h
	}
	return AABB{Min: rl.Vector3Subtract(o.Center, ext), Max: rl.Vector3Add(o.Center, ext)}
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func clampf(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
