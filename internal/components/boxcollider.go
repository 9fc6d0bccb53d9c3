package components

import (
	"fpsctl/internal/engine"
	"fpsctl/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider registers a static box in the physics world when started.
// Size is scaled by the object's transform.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
	Layer  uint8

	world    *physics.World
	collider *physics.Collider
}

func NewBoxCollider(world *physics.World, size rl.Vector3, layer uint8) *BoxCollider {
	return &BoxCollider{
		Size:  size,
		Layer: layer,
		world: world,
	}
}

func (b *BoxCollider) Start() {
	g := b.GetGameObject()
	if g == nil || b.world == nil || b.collider != nil {
		return
	}
	b.collider = b.world.AddBox(g, b.GetCenter(), b.GetWorldSize(), g.Transform.Rotation, b.Layer)
}

func (b *BoxCollider) GetCenter() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Offset
	}
	return rl.Vector3Add(g.Transform.Position, b.Offset)
}

func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	g := b.GetGameObject()
	if g == nil {
		return b.Size
	}
	s := g.Transform.Scale
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

// Collider is nil until Start.
func (b *BoxCollider) Collider() *physics.Collider {
	return b.collider
}

// Remove unregisters the collider.
func (b *BoxCollider) Remove() {
	if b.collider != nil {
		b.world.RemoveCollider(b.collider)
		b.collider = nil
	}
}
