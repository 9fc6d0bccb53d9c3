package components

import (
	"fpsctl/internal/engine"
	"fpsctl/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rigidbody owns a capsule body in the physics world and mirrors its pose
// onto the GameObject transform every frame.
type Rigidbody struct {
	engine.BaseComponent
	Body *physics.Body

	world *physics.World
	added bool
}

func NewRigidbody(world *physics.World, capsule engine.Capsule, mass float32) *Rigidbody {
	return &Rigidbody{
		Body:  physics.NewBody(rl.Vector3{}, capsule, mass),
		world: world,
	}
}

// Start places the body at the object's position and adds it to the world.
func (r *Rigidbody) Start() {
	g := r.GetGameObject()
	if g == nil || r.added {
		return
	}
	r.Body.Owner = g
	r.Body.SetPosition(g.Transform.Position)
	if r.world != nil {
		r.world.AddBody(r.Body)
	}
	r.added = true
}

func (r *Rigidbody) Update(deltaTime float32) {
	g := r.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Position = r.Body.Position()
	// Transform rotation is counter-clockwise seen from above, body yaw clockwise.
	g.Transform.Rotation = rl.Vector3{Y: -r.Body.Yaw()}
}
