package game

import (
	"fmt"

	"fpsctl/internal/locomotion"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

type tuningField struct {
	label    string
	min, max float32
	get      func(*locomotion.Settings) *float32
}

var tuningFields = []tuningField{
	{"Jump force", 0, 20, func(s *locomotion.Settings) *float32 { return &s.JumpForce }},
	{"Walk force", 0, 200, func(s *locomotion.Settings) *float32 { return &s.WalkForce }},
	{"Walk speed", 0.5, 15, func(s *locomotion.Settings) *float32 { return &s.WalkSpeed }},
	{"Run speed", 0.5, 25, func(s *locomotion.Settings) *float32 { return &s.RunSpeed }},
	{"Air control", 0, 1, func(s *locomotion.Settings) *float32 { return &s.AirMultiplier }},
	{"Friction", 0, 60, func(s *locomotion.Settings) *float32 { return &s.Friction }},
	{"Min velocity", 0, 3, func(s *locomotion.Settings) *float32 { return &s.MinVelocity }},
	{"Max slope", 0, 89, func(s *locomotion.Settings) *float32 { return &s.MaxSlopeAngle }},
	{"Gravity mult", 0, 3, func(s *locomotion.Settings) *float32 { return &s.GravityMultiplier }},
	{"Extra gravity", 0, 6, func(s *locomotion.Settings) *float32 { return &s.ExtraGravity }},
	{"Extra window", 0, 1, func(s *locomotion.Settings) *float32 { return &s.ExtraGravityTimeAfterSlope }},
	{"Mouse X", 1, 100, func(s *locomotion.Settings) *float32 { return &s.MouseSensitivityX }},
	{"Mouse Y", 1, 100, func(s *locomotion.Settings) *float32 { return &s.MouseSensitivityY }},
}

const (
	panelX      = 10
	panelY      = 110
	panelWidth  = 330
	rowHeight   = 24
	labelWidth  = 110
	sliderWidth = 150
)

// TuningPanel edits a copy of the controller settings with raygui sliders.
// Changes are only pushed when Draw reports them.
type TuningPanel struct {
	Open     bool
	settings locomotion.Settings
}

// Sync copies s into the panel, e.g. after a config reload.
func (p *TuningPanel) Sync(s locomotion.Settings) {
	p.settings = s
}

func (p *TuningPanel) Settings() locomotion.Settings {
	return p.settings
}

// Draw renders the panel and reports whether any value changed. It also
// reports reset requests through the returned flag.
func (p *TuningPanel) Draw() (changed, reset bool) {
	if !p.Open {
		return false, false
	}
	height := float32(len(tuningFields)+3) * rowHeight
	gui.Panel(rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: height}, "Controller tuning")

	y := float32(panelY + rowHeight + 6)
	for _, f := range tuningFields {
		v := f.get(&p.settings)
		rl.DrawText(f.label, panelX+8, int32(y)+4, labelTextSize, theme.Label)
		bounds := rl.Rectangle{X: panelX + labelWidth, Y: y, Width: sliderWidth, Height: rowHeight - 6}
		next := gui.Slider(bounds, "", fmt.Sprintf("%.2f", *v), *v, f.min, f.max)
		if next != *v {
			*v = next
			changed = true
		}
		y += rowHeight
	}

	debug := gui.CheckBox(rl.Rectangle{X: panelX + 8, Y: y + 2, Width: 16, Height: 16}, "Gizmos", p.settings.Debug)
	if debug != p.settings.Debug {
		p.settings.Debug = debug
		changed = true
	}
	reset = gui.Button(rl.Rectangle{X: panelX + labelWidth, Y: y, Width: sliderWidth, Height: rowHeight - 4}, "Reset to config")
	return changed, reset
}
