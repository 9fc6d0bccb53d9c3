package physics

import (
	"fpsctl/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	sweepIterations = 48
	sweepEpsilon    = 1e-4
)

// Raycast returns the closest collider hit within maxDistance on the selected
// layers. Colliders containing the origin are not reported.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance < 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)
	bounds := sweepBounds(origin, direction, maxDistance, 0)

	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false
	for _, c := range w.colliders {
		if !mask.Has(c.Layer) || !c.bounds.Intersects(bounds) {
			continue
		}
		if h, ok := raycastOBB(origin, direction, c.Box, maxDistance); ok && h.Distance <= closest.Distance {
			closest = h
			closest.GameObject = c.Owner
			hit = true
		}
	}
	return closest, hit
}

// raycastOBB is a slab test in box space.
func raycastOBB(origin, direction rl.Vector3, box OBB, maxDistance float32) (engine.RaycastResult, bool) {
	o := box.toLocal(origin)
	d := box.toLocalDir(direction)
	ol := [3]float32{o.X, o.Y, o.Z}
	dl := [3]float32{d.X, d.Y, d.Z}
	half := [3]float32{box.HalfSize.X, box.HalfSize.Y, box.HalfSize.Z}

	tmin := float32(-1e30)
	tmax := float32(1e30)
	enterAxis := -1
	enterSign := float32(0)

	for i := 0; i < 3; i++ {
		if absf(dl[i]) < 1e-8 {
			if ol[i] < -half[i] || ol[i] > half[i] {
				return engine.RaycastResult{}, false
			}
			continue
		}
		t1 := (-half[i] - ol[i]) / dl[i]
		t2 := (half[i] - ol[i]) / dl[i]
		sign := float32(-1) // entering through the negative face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			enterAxis = i
			enterSign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return engine.RaycastResult{}, false
		}
	}

	if tmin < 0 || tmin > maxDistance || enterAxis < 0 {
		return engine.RaycastResult{}, false
	}

	normal := rl.Vector3Scale(box.Axes[enterAxis], enterSign)
	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin))
	return engine.RaycastResult{Point: point, Normal: normal, Distance: tmin}, true
}

// SphereCast sweeps a sphere and returns the closest collider hit on the
// selected layers. A sphere that already overlaps a collider at the origin
// hits it at distance 0.
func (w *World) SphereCast(origin rl.Vector3, radius float32, direction rl.Vector3, maxDistance float32, mask engine.LayerMask) (engine.RaycastResult, bool) {
	if rl.Vector3Length(direction) == 0 || maxDistance < 0 {
		return engine.RaycastResult{}, false
	}
	direction = rl.Vector3Normalize(direction)
	bounds := sweepBounds(origin, direction, maxDistance, radius)

	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false
	for _, c := range w.colliders {
		if !mask.Has(c.Layer) || !c.bounds.Intersects(bounds) {
			continue
		}
		if h, ok := sphereCastOBB(origin, radius, direction, c.Box, closest.Distance); ok && (!hit || h.Distance < closest.Distance) {
			closest = h
			closest.GameObject = c.Owner
			hit = true
		}
	}
	return closest, hit
}

// sphereCastOBB advances the sphere by its distance to the box until it
// touches or passes maxDistance. Each advance is safe because the distance
// to a convex shape never shrinks faster than the sphere moves.
func sphereCastOBB(origin rl.Vector3, radius float32, direction rl.Vector3, box OBB, maxDistance float32) (engine.RaycastResult, bool) {
	var t float32
	for i := 0; i < sweepIterations; i++ {
		p := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
		c := ClosestPointOnOBB(box, p)
		diff := rl.Vector3Subtract(p, c)
		dist := rl.Vector3Length(diff)

		if dist-radius <= sweepEpsilon {
			var normal rl.Vector3
			if dist > sweepEpsilon {
				normal = rl.Vector3Scale(diff, 1/dist)
			} else {
				normal, _ = box.exitFace(p)
			}
			return engine.RaycastResult{Point: c, Normal: normal, Distance: t}, true
		}

		t += dist - radius
		if t > maxDistance {
			return engine.RaycastResult{}, false
		}
	}
	return engine.RaycastResult{}, false
}
