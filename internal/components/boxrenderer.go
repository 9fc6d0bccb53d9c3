package components

import (
	"fpsctl/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxRenderer draws a coloured cube. The mesh is generated on first draw so
// levels can be built without a GL context.
type BoxRenderer struct {
	engine.BaseComponent
	Size  rl.Vector3
	Color rl.Color
	Wires bool

	model  rl.Model
	loaded bool
}

func NewBoxRenderer(size rl.Vector3, color rl.Color) *BoxRenderer {
	return &BoxRenderer{Size: size, Color: color}
}

// Matrix is scale, then rotation (X, Y, Z), then translation.
func (b *BoxRenderer) Matrix() rl.Matrix {
	g := b.GetGameObject()
	if g == nil {
		return rl.MatrixIdentity()
	}
	scale := g.Transform.Scale
	rot := g.Transform.Rotation
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(
		rl.MatrixRotateX(rot.X*rl.Deg2rad),
		rl.MatrixRotateY(rot.Y*rl.Deg2rad)),
		rl.MatrixRotateZ(rot.Z*rl.Deg2rad))
	pos := g.Transform.Position
	return rl.MatrixMultiply(rl.MatrixMultiply(rl.MatrixScale(scale.X, scale.Y, scale.Z), rotMatrix), rl.MatrixTranslate(pos.X, pos.Y, pos.Z))
}

// BoundingRadius encloses the scaled box, for frustum culling.
func (b *BoxRenderer) BoundingRadius() float32 {
	s := b.Size
	if g := b.GetGameObject(); g != nil {
		sc := g.Transform.Scale
		s = rl.Vector3{X: s.X * sc.X, Y: s.Y * sc.Y, Z: s.Z * sc.Z}
	}
	return rl.Vector3Length(s) / 2
}

func (b *BoxRenderer) Draw() {
	g := b.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	if !b.loaded {
		b.model = rl.LoadModelFromMesh(rl.GenMeshCube(b.Size.X, b.Size.Y, b.Size.Z))
		b.model.Materials.Maps.Color = b.Color
		b.loaded = true
	}
	b.model.Transform = b.Matrix()
	rl.DrawModel(b.model, rl.Vector3Zero(), 1.0, rl.White)
	if b.Wires {
		rl.DrawModelWires(b.model, rl.Vector3Zero(), 1.0, rl.DarkGray)
	}
}

func (b *BoxRenderer) Unload() {
	if b.loaded {
		rl.UnloadModel(b.model)
		b.loaded = false
	}
}
