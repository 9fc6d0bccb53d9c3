// Command locosim replays a scripted input sequence against a level without a
// window and logs the controller state.
package main

import (
	"flag"
	"fmt"
	"os"

	"fpsctl/internal/config"
	"fpsctl/internal/locomotion"
	"fpsctl/internal/logger"
	"fpsctl/internal/world"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults when empty)")
	levelPath := flag.String("level", "assets/levels/demo.yaml", "YAML level file")
	scriptPath := flag.String("script", "assets/scripts/walk_jump.yaml", "YAML input script")
	ticks := flag.Int("ticks", 0, "steps to run (0 = script length)")
	every := flag.Int("every", 10, "log state every N steps")
	flag.Parse()

	if err := run(*configPath, *levelPath, *scriptPath, *ticks, *every); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, levelPath, scriptPath string, ticks, every int) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	logger.Init(cfg.Logging)
	log := logger.L().With("component", "locosim")

	script, err := LoadScript(scriptPath)
	if err != nil {
		return err
	}
	if ticks <= 0 {
		ticks = script.Ticks()
	}
	if every <= 0 {
		every = 1
	}

	w := world.New(cfg.Controller.Gravity)
	w.Physics.Iterations = cfg.Physics.Iterations
	if err := w.LoadLevel(levelPath); err != nil {
		return err
	}
	if err := w.SpawnPlayer(cfg.Controller, NewPlayer(script)); err != nil {
		return err
	}
	w.Start()

	ctl := w.Rig.Controller()
	jumps, landings := 0, 0
	ctl.Jumped.AddListener(func(e locomotion.JumpEvent) {
		jumps++
		log.Info("jump", "t", e.Time, "jumps_left", e.JumpsRemaining, "contact", e.Contact)
	})
	ctl.Landed.AddListener(func(e locomotion.LandEvent) {
		landings++
		log.Info("land", "t", e.Time, "impact", e.ImpactSpeed)
	})

	step := cfg.Physics.FixedStep
	for i := 0; i < ticks; i++ {
		w.Update(step)
		w.FixedStep(step)
		if i%every == 0 || i == ticks-1 {
			st := ctl.State()
			log.Info("tick",
				"n", i,
				"t", w.Now(),
				"contact", ctl.Contact(),
				"pos", ctl.Body().Position(),
				"vel", ctl.Body().Velocity(),
				"slope", st.SlopeAngle,
				"jumps", st.JumpsRemaining,
			)
		}
	}
	log.Info("done", "ticks", ticks, "jumps", jumps, "landings", landings, "final", ctl.Body().Position())
	return nil
}
