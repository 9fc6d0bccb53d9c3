package game

// Stepper turns variable frame times into a whole number of fixed steps.
// Time beyond MaxSubsteps steps is dropped so a long stall cannot spiral.
type Stepper struct {
	Step        float32
	MaxSubsteps int

	acc     float32
	dropped float32
}

func NewStepper(step float32, maxSubsteps int) *Stepper {
	return &Stepper{Step: step, MaxSubsteps: maxSubsteps}
}

// Advance adds frameTime and returns how many fixed steps to run now.
func (s *Stepper) Advance(frameTime float32) int {
	if frameTime > 0 {
		s.acc += frameTime
	}
	n := 0
	for s.acc >= s.Step && n < s.MaxSubsteps {
		s.acc -= s.Step
		n++
	}
	if s.acc >= s.Step {
		s.dropped += s.acc
		s.acc = 0
	}
	return n
}

// Alpha is the leftover fraction of a step, for interpolation.
func (s *Stepper) Alpha() float32 {
	return s.acc / s.Step
}

// Dropped is the total simulation time discarded so far.
func (s *Stepper) Dropped() float32 {
	return s.dropped
}
