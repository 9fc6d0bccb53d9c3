package game

import (
	"fmt"
	"log/slog"
	"time"

	"fpsctl/internal/audio"
	"fpsctl/internal/config"
	"fpsctl/internal/locomotion"
	"fpsctl/internal/logger"
	"fpsctl/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	World     *world.World
	DebugMode bool

	cfg        *config.Config
	configPath string
	levelPath  string

	input   *Input
	stepper *Stepper
	panel   TuningPanel
	cues    *audio.Cues
	watcher *config.Watcher
	log     *slog.Logger

	// Debug timing (ms)
	updateMs  float64
	physicsMs float64
	drawMs    float64
}

// New prepares the game. configPath may be empty when running on defaults;
// it is then not watched.
func New(cfg *config.Config, configPath, levelPath string) *Game {
	w := world.New(cfg.Controller.Gravity)
	w.Physics.Iterations = cfg.Physics.Iterations
	return &Game{
		World:      w,
		DebugMode:  cfg.Controller.Debug,
		cfg:        cfg,
		configPath: configPath,
		levelPath:  levelPath,
		input:      NewInput(),
		stepper:    NewStepper(cfg.Physics.FixedStep, cfg.Physics.MaxSubsteps),
		log:        logger.L().With("component", "game"),
	}
}

func (g *Game) Run() error {
	flags := uint32(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	if g.cfg.Window.VSync {
		flags |= rl.FlagVsyncHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(g.cfg.Window.Width, g.cfg.Window.Height, g.cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(g.cfg.Window.TargetFPS)
	rl.SetExitKey(rl.KeyEscape)
	initGuiStyle()

	if err := g.World.LoadLevel(g.levelPath); err != nil {
		return err
	}
	defer g.World.Unload()
	if err := g.World.SpawnPlayer(g.cfg.Controller, g.input); err != nil {
		return err
	}
	g.World.Start()
	g.panel.Sync(g.cfg.Controller)

	g.startAudio()
	defer g.cues.Close()
	g.startWatcher()
	if g.watcher != nil {
		defer g.watcher.Close()
	}

	rl.DisableCursor()
	g.log.Info("Running", "level", g.levelPath, "fixed_step", g.cfg.Physics.FixedStep)
	for !rl.WindowShouldClose() {
		g.pollConfig()
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) startAudio() {
	if !g.cfg.Audio.Enabled {
		return
	}
	cues, err := audio.NewCues(g.cfg.Audio.SampleRate, g.cfg.Audio.Volume)
	if err != nil {
		g.log.Warn("Audio disabled", "error", err)
		return
	}
	g.cues = cues
	ctl := g.World.Rig.Controller()
	ctl.Jumped.AddListener(func(locomotion.JumpEvent) { g.cues.Jump() })
	ctl.Landed.AddListener(func(e locomotion.LandEvent) { g.cues.Land(e.ImpactSpeed) })
}

func (g *Game) startWatcher() {
	if g.configPath == "" {
		return
	}
	w, err := config.NewWatcher(g.configPath)
	if err != nil {
		g.log.Warn("Config hot reload unavailable", "path", g.configPath, "error", err)
		return
	}
	g.watcher = w
}

// pollConfig drains the watcher without blocking the frame.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	select {
	case path := <-g.watcher.Events:
		g.reloadConfig(path)
	case err := <-g.watcher.Errors:
		g.log.Warn("Config watch error", "error", err)
	default:
	}
}

func (g *Game) reloadConfig(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		g.log.Error("Config reload rejected", "path", path, "error", err)
		return
	}
	if err := g.applySettings(cfg.Controller); err != nil {
		g.log.Error("Config reload rejected", "path", path, "error", err)
		return
	}
	g.cfg.Controller = cfg.Controller
	g.cfg.Audio.Volume = cfg.Audio.Volume
	g.cues.SetVolume(cfg.Audio.Volume)
	logger.SetLevel(cfg.Logging.Level)
	g.panel.Sync(cfg.Controller)
	g.log.Info("Config reloaded", "path", path)
}

func (g *Game) applySettings(s locomotion.Settings) error {
	if err := g.World.Rig.Controller().ApplySettings(s); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	g.DebugMode = s.Debug
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	dt := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyF1) {
		s := g.World.Rig.Controller().Settings()
		s.Debug = !s.Debug
		if err := g.applySettings(s); err == nil {
			g.panel.Sync(s)
		}
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.panel.Open = !g.panel.Open
		g.input.Enabled = !g.panel.Open
		if g.panel.Open {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}

	g.World.Update(dt)

	physicsStart := time.Now()
	for n := g.stepper.Advance(dt); n > 0; n-- {
		g.World.FixedStep(g.stepper.Step)
	}
	g.physicsMs = float64(time.Since(physicsStart).Microseconds()) / 1000.0
	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	camera := g.World.Camera()
	camera.Fovy = g.cfg.Window.FOV
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.World.Renderer.Draw(camera, aspect, g.World.Scene.GameObjects)
	g.World.Rig.Controller().DrawGizmos(gizmoDrawer{})
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD move, Shift sprint, Space jump, Mouse look", 10, 10, 20, theme.Text)
	rl.DrawText("F1 gizmos, F2 tuning, Esc quit", 10, 35, 20, theme.Text)
	rl.DrawFPS(10, 60)

	if changed, reset := g.panel.Draw(); reset {
		if err := g.applySettings(g.cfg.Controller); err == nil {
			g.panel.Sync(g.cfg.Controller)
		}
	} else if changed {
		if err := g.applySettings(g.panel.Settings()); err != nil {
			g.log.Warn("Tuning rejected", "error", err)
			g.panel.Sync(g.World.Rig.Controller().Settings())
		}
	}

	if g.DebugMode {
		screenW := int32(rl.GetScreenWidth())
		drawHUD(hudLines(g.World.Rig.Controller(), g.World.Now()), screenW-320, 10)
		r := g.World.Renderer
		rl.DrawText(fmt.Sprintf("Boxes:   %d drawn, %d culled", r.Drawn, r.Culled), screenW-320, 130, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), screenW-320, 150, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Physics: %.2f ms", g.physicsMs), screenW-320, 170, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), screenW-320, 190, 16, rl.Green)
		if d := g.stepper.Dropped(); d > 0 {
			rl.DrawText(fmt.Sprintf("Dropped: %.2f s", d), screenW-320, 210, 16, rl.Orange)
		}
	}
}
