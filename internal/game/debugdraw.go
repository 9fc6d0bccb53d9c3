package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// gizmoDrawer draws controller gizmos with raylib. Use inside BeginMode3D.
type gizmoDrawer struct{}

func (gizmoDrawer) DrawLine(from, to rl.Vector3, color rl.Color) {
	rl.DrawLine3D(from, to, color)
}

func (gizmoDrawer) DrawWireSphere(center rl.Vector3, radius float32, color rl.Color) {
	rl.DrawSphereWires(center, radius, 8, 12, color)
}
