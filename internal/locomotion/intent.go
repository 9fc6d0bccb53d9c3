package locomotion

import (
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// IntentBuffer hands the latest MovementIntent from the frame task to the
// fixed step. Axes and sprint are last-write-wins; a jump press latches until
// the next Take so a press and release between two steps still counts once.
type IntentBuffer struct {
	mu     sync.Mutex
	intent MovementIntent
	jump   bool
}

func (b *IntentBuffer) Publish(in MovementIntent) {
	in.Forward = rl.Clamp(in.Forward, -1, 1)
	in.Sideways = rl.Clamp(in.Sideways, -1, 1)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.intent = in
	if in.JumpPressed {
		b.jump = true
	}
}

// Take returns the current snapshot and clears the jump latch.
func (b *IntentBuffer) Take() MovementIntent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.intent
	out.JumpPressed = b.jump
	b.jump = false
	b.intent.JumpPressed = false
	return out
}

// Peek returns the snapshot without consuming the jump latch.
func (b *IntentBuffer) Peek() MovementIntent {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := b.intent
	out.JumpPressed = b.jump
	return out
}
