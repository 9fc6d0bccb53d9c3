package world

import (
	"fmt"
	"log/slog"

	"fpsctl/internal/components"
	"fpsctl/internal/engine"
	"fpsctl/internal/locomotion"
	"fpsctl/internal/logger"
	"fpsctl/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerTag marks the code-managed player rig objects.
const PlayerTag = "player"

type World struct {
	Scene    *engine.Scene
	Physics  *physics.World
	Renderer *Renderer
	Level    *LevelFile

	Player *engine.GameObject
	Rig    *components.FirstPersonController

	now float64
	log *slog.Logger
}

func New(gravity rl.Vector3) *World {
	return &World{
		Scene:    engine.NewScene("Main"),
		Physics:  physics.NewWorld(gravity),
		Renderer: NewRenderer(),
		log:      logger.L().With("component", "world"),
	}
}

// SpawnPlayer builds the player rig at the level spawn: a capsule body with
// the controller, its orientation helper and the camera.
func (w *World) SpawnPlayer(settings locomotion.Settings, input locomotion.InputSource) error {
	spawn := SpawnDef{}
	if w.Level != nil {
		spawn = w.Level.Spawn
	}
	spawn.applyDefaults()

	orient := engine.NewGameObject("Orientation")
	orient.Tags = []string{PlayerTag}
	orient.AddComponent(components.NewOrientation(w.Physics, settings.GroundMask))

	cam := engine.NewGameObject("Camera")
	cam.Tags = []string{PlayerTag}
	cam.AddComponent(components.NewCamera())

	player := engine.NewGameObject("Player")
	player.Tags = []string{PlayerTag}
	player.Transform.Position = vec(spawn.Position)
	rb := components.NewRigidbody(w.Physics, engine.Capsule{Radius: spawn.Radius, Height: spawn.Height}, spawn.Mass)
	rb.Body.SetYaw(spawn.Yaw)
	player.AddComponent(rb)
	fpc := components.NewFirstPersonController(w.Physics, input, settings)
	fpc.EyeHeight = spawn.EyeHeight
	fpc.Orientation.Set(orient)
	fpc.Camera.Set(cam)
	player.AddComponent(fpc)

	w.Scene.AddGameObject(orient)
	w.Scene.AddGameObject(cam)
	w.Scene.AddGameObject(player)

	orient.Start()
	cam.Start()
	player.Start()
	if err := player.ActivationError(); err != nil {
		return fmt.Errorf("world: spawn player: %w", err)
	}
	w.Player = player
	w.Rig = fpc
	w.log.Info("Player spawned", "position", player.Transform.Position, "yaw", spawn.Yaw)
	return nil
}

// Start starts every object not started yet.
func (w *World) Start() {
	w.Scene.Start()
}

func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
}

// FixedStep runs one fixed step: components first, then the physics step
// that integrates the forces they added.
func (w *World) FixedStep(step float32) {
	w.Scene.FixedUpdate(w.now, step)
	w.Physics.Step(step)
	w.now += float64(step)
}

// Now is the fixed-step clock in seconds.
func (w *World) Now() float64 {
	return w.now
}

// Camera returns the player's view, or a default overview without a player.
func (w *World) Camera() rl.Camera3D {
	if w.Rig != nil {
		if cam := engine.GetComponent[*components.Camera](w.Rig.Camera.Get(w.Scene)); cam != nil {
			return cam.GetRaylibCamera()
		}
	}
	return rl.Camera3D{
		Position:   rl.Vector3{X: 10, Y: 10, Z: 10},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}

func (w *World) Unload() {
	w.Renderer.Unload(w.Scene.GameObjects)
}
