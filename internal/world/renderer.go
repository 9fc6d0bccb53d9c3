package world

import (
	"fpsctl/internal/components"
	"fpsctl/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws the level's boxes with frustum culling. Counters are reset
// every Draw and shown on the debug overlay.
type Renderer struct {
	Background rl.Color
	Grid       bool

	Drawn  int
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{Background: rl.RayWhite, Grid: true}
}

// Visible returns the renderers whose bounding sphere touches the frustum.
func (r *Renderer) Visible(frustum Frustum, gameObjects []*engine.GameObject) []*components.BoxRenderer {
	r.Drawn, r.Culled = 0, 0
	var out []*components.BoxRenderer
	for _, g := range gameObjects {
		if !g.Active {
			continue
		}
		br := engine.GetComponent[*components.BoxRenderer](g)
		if br == nil {
			continue
		}
		if !frustum.ContainsSphere(g.Transform.Position, br.BoundingRadius()) {
			r.Culled++
			continue
		}
		r.Drawn++
		out = append(out, br)
	}
	return out
}

// Draw must be called between BeginMode3D and EndMode3D.
func (r *Renderer) Draw(camera rl.Camera3D, aspect float32, gameObjects []*engine.GameObject) {
	if r.Grid {
		rl.DrawGrid(40, 1)
	}
	for _, br := range r.Visible(ExtractFrustum(camera, aspect), gameObjects) {
		br.Draw()
	}
}

func (r *Renderer) Unload(gameObjects []*engine.GameObject) {
	for _, g := range gameObjects {
		if br := engine.GetComponent[*components.BoxRenderer](g); br != nil {
			br.Unload()
		}
	}
}
