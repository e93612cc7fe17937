package core

import "time"

// FixedStep helps run automaton updates at a steady steps-per-second rate
// independent of the display frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	sps         int
}

// NewFixedStep constructs a FixedStep controller targeting the given
// steps-per-second rate.
func NewFixedStep(sps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetSPS(sps)
	fs.accumulator = fs.step
	return fs
}

// SetSPS changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetSPS(sps int) {
	if sps <= 0 {
		sps = 60
	}
	f.sps = sps
	f.step = time.Second / time.Duration(sps)
}

// SPS reports the current target step rate.
func (f *FixedStep) SPS() int { return f.sps }

// ShouldStep reports whether the automaton should advance by one step.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
