package game

import (
	"fpsctl/internal/locomotion"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyState abstracts raylib's polling so the mapping can be tested.
type KeyState interface {
	Down(key int32) bool
	Pressed(key int32) bool
	MouseDelta() rl.Vector2
}

type raylibKeys struct{}

func (raylibKeys) Down(key int32) bool    { return rl.IsKeyDown(key) }
func (raylibKeys) Pressed(key int32) bool { return rl.IsKeyPressed(key) }
func (raylibKeys) MouseDelta() rl.Vector2 { return rl.GetMouseDelta() }

// Input maps WASD, shift, space and the mouse to controller input.
// While disabled it reports no input so the cursor can drive the tuning panel.
type Input struct {
	Enabled bool
	keys    KeyState
}

func NewInput() *Input {
	return &Input{Enabled: true, keys: raylibKeys{}}
}

func (in *Input) Poll() locomotion.InputSample {
	if !in.Enabled {
		return locomotion.InputSample{}
	}
	k := in.keys
	mouse := k.MouseDelta()
	return locomotion.InputSample{
		Intent: locomotion.MovementIntent{
			Forward:     axis(k.Down(rl.KeyW), k.Down(rl.KeyS)),
			Sideways:    axis(k.Down(rl.KeyD), k.Down(rl.KeyA)),
			Sprint:      k.Down(rl.KeyLeftShift),
			JumpPressed: k.Pressed(rl.KeySpace),
		},
		MouseDeltaX: mouse.X,
		// Screen Y grows downwards.
		MouseDeltaY: -mouse.Y,
	}
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
