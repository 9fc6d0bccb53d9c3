package locomotion

import (
	"sync"
	"testing"
)

func TestIntentBufferClampsAxes(t *testing.T) {
	var b IntentBuffer
	b.Publish(MovementIntent{Forward: 3, Sideways: -2})

	got := b.Take()
	if got.Forward != 1 || got.Sideways != -1 {
		t.Errorf("Expected axes clamped to [-1,1], got %+v", got)
	}
}

func TestIntentBufferLastWriteWins(t *testing.T) {
	var b IntentBuffer
	b.Publish(MovementIntent{Forward: 1, Sprint: true})
	b.Publish(MovementIntent{Sideways: 0.5})

	got := b.Take()
	if got.Forward != 0 || got.Sideways != 0.5 || got.Sprint {
		t.Errorf("Expected last write only, got %+v", got)
	}
}

func TestIntentBufferJumpLatch(t *testing.T) {
	var b IntentBuffer
	b.Publish(MovementIntent{JumpPressed: true})
	b.Publish(MovementIntent{JumpPressed: false})

	if !b.Peek().JumpPressed {
		t.Error("Peek should see the latched press")
	}
	if !b.Take().JumpPressed {
		t.Error("Press and release between steps should collapse to pressed")
	}
	if b.Take().JumpPressed {
		t.Error("A press must not carry over to the next step")
	}
}

func TestIntentBufferConcurrentPublish(t *testing.T) {
	var b IntentBuffer
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Publish(MovementIntent{Forward: 1, Sideways: 1, JumpPressed: j == 50})
				b.Take()
			}
		}()
	}
	wg.Wait()

	got := b.Take()
	if got.Forward != 1 || got.Sideways != 1 {
		t.Errorf("Torn snapshot: %+v", got)
	}
}
