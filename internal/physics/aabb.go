package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is used to cull colliders before the exact OBB queries.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Expand grows the box by r on every side.
func (a AABB) Expand(r float32) AABB {
	d := rl.Vector3{X: r, Y: r, Z: r}
	return AABB{Min: rl.Vector3Subtract(a.Min, d), Max: rl.Vector3Add(a.Max, d)}
}

// sweepBounds encloses a segment from origin along dir for dist, grown by r.
func sweepBounds(origin, dir rl.Vector3, dist, r float32) AABB {
	end := rl.Vector3Add(origin, rl.Vector3Scale(dir, dist))
	box := AABB{
		Min: rl.Vector3{X: minf(origin.X, end.X), Y: minf(origin.Y, end.Y), Z: minf(origin.Z, end.Z)},
		Max: rl.Vector3{X: maxf(origin.X, end.X), Y: maxf(origin.Y, end.Y), Z: maxf(origin.Z, end.Z)},
	}
	return box.Expand(r)
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
