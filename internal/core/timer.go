package core

import "time"

const (
	// maxRate bounds the simulation rate in generations per second.
	maxRate = 960
	// maxPending bounds catch-up bursts after a stall so a long hitch
	// cannot trigger a runaway spiral of extra steps.
	maxPending = 32
)

// FixedStep paces simulation updates at a steady generations-per-second rate,
// independent of the display tick rate. Calling Pending once per display tick
// yields zero or more due steps, so rates above the tick rate work too.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	rate        int
	now         func() time.Time
}

// NewFixedStep constructs a controller targeting the given rate. The first
// Pending call reports one step immediately.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the target rate, clamped to [1, 960]. It is safe to call
// from the main loop.
func (f *FixedStep) SetRate(rate int) {
	if rate < 1 {
		rate = 1
	}
	if rate > maxRate {
		rate = maxRate
	}
	f.rate = rate
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the current target rate.
func (f *FixedStep) Rate() int { return f.rate }

// Halve cuts the rate in half, bottoming out at 1.
func (f *FixedStep) Halve() { f.SetRate(f.rate / 2) }

// Double doubles the rate up to the cap.
func (f *FixedStep) Double() { f.SetRate(f.rate * 2) }

// Pending reports how many steps are due since the last call.
func (f *FixedStep) Pending() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := int(f.accumulator / f.step)
	if n > maxPending {
		n = maxPending
		f.accumulator = 0
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// Rewind discards accumulated time, for example while paused, so steps do
// not pile up and burst on resume.
func (f *FixedStep) Rewind() {
	f.accumulator = 0
	f.last = f.now()
}
