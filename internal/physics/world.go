package physics

import (
	"log/slog"

	"fpsctl/internal/engine"
	"fpsctl/internal/logger"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is a static box on one layer.
type Collider struct {
	Owner *engine.GameObject
	Box   OBB
	Layer uint8

	bounds AABB
}

// World is a minimal rigid-body world: static boxes and capsule bodies.
// Bodies do not collide with each other.
type World struct {
	Gravity    rl.Vector3
	Iterations int // push-out passes per body per step

	colliders []*Collider
	bodies    []*Body
	log       *slog.Logger
}

func NewWorld(gravity rl.Vector3) *World {
	return &World{
		Gravity:    gravity,
		Iterations: 3,
		colliders:  make([]*Collider, 0),
		bodies:     make([]*Body, 0),
		log:        logger.L().With("component", "physics"),
	}
}

// AddBox registers a static box collider. rotation is euler degrees.
func (w *World) AddBox(owner *engine.GameObject, center, size, rotation rl.Vector3, layer uint8) *Collider {
	box := NewOBB(center, size, rotation)
	c := &Collider{Owner: owner, Box: box, Layer: layer, bounds: box.Bounds()}
	w.colliders = append(w.colliders, c)
	return c
}

func (w *World) RemoveCollider(c *Collider) {
	for i, other := range w.colliders {
		if other == c {
			w.colliders = append(w.colliders[:i], w.colliders[i+1:]...)
			return
		}
	}
}

func (w *World) Colliders() []*Collider {
	return w.colliders
}

func (w *World) AddBody(b *Body) {
	w.bodies = append(w.bodies, b)
}

func (w *World) RemoveBody(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			return
		}
	}
}

func (w *World) Bodies() []*Body {
	return w.bodies
}

// Step integrates every body by dt and pushes it out of static colliders.
func (w *World) Step(dt float32) {
	for _, b := range w.bodies {
		b.integrate(w.Gravity, dt)
		b.contacts = b.contacts[:0]
		for i := 0; i < w.Iterations; i++ {
			if !w.resolveBody(b) {
				break
			}
		}
	}
}

// resolveBody pushes b out of every overlapping collider once. It reports
// whether anything moved.
func (w *World) resolveBody(b *Body) bool {
	moved := false
	bottom, top, radius := b.segment()
	bounds := sweepBounds(bottom, rl.Vector3{Y: 1}, top.Y-bottom.Y, radius)

	for _, c := range w.colliders {
		if !c.bounds.Intersects(bounds) {
			continue
		}
		normal, depth, ok := capsuleVsOBB(bottom, top, radius, c.Box)
		if !ok {
			continue
		}
		b.position = rl.Vector3Add(b.position, rl.Vector3Scale(normal, depth))
		if vn := rl.Vector3DotProduct(b.velocity, normal); vn < 0 {
			b.velocity = rl.Vector3Subtract(b.velocity, rl.Vector3Scale(normal, vn))
		}
		b.contacts = append(b.contacts, Contact{Collider: c, Normal: normal, Depth: depth})
		if depth > radius {
			w.log.Debug("Deep penetration", "depth", depth, "layer", c.Layer)
		}
		bottom, top, radius = b.segment()
		moved = true
	}
	return moved
}

// capsuleVsOBB samples spheres along the capsule segment and returns the
// push-out of the deepest one.
func capsuleVsOBB(bottom, top rl.Vector3, radius float32, box OBB) (rl.Vector3, float32, bool) {
	length := rl.Vector3Distance(bottom, top)
	samples := 1
	if radius > 0 {
		samples = int(math32.Ceil(length/(radius*0.5))) + 1
	}
	if samples < 2 {
		samples = 2
	}

	var bestNormal rl.Vector3
	var bestDepth float32
	found := false
	for i := 0; i < samples; i++ {
		t := float32(i) / float32(samples-1)
		p := rl.Vector3Lerp(bottom, top, t)
		c := ClosestPointOnOBB(box, p)
		diff := rl.Vector3Subtract(p, c)
		dist := rl.Vector3Length(diff)

		var normal rl.Vector3
		var depth float32
		switch {
		case dist >= radius:
			continue
		case dist > 1e-6:
			normal = rl.Vector3Scale(diff, 1/dist)
			depth = radius - dist
		default:
			// Sample centre inside the box.
			var faceDist float32
			normal, faceDist = box.exitFace(p)
			depth = faceDist + radius
		}
		if depth > bestDepth {
			bestNormal, bestDepth, found = normal, depth, true
		}
	}
	return bestNormal, bestDepth, found
}
