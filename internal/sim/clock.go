package sim

// Clock converts variable frame times into a whole number of fixed steps.
// The unconsumed remainder is carried into the next frame.
type Clock struct {
	Step     float32 // seconds per physics step
	MaxSteps int     // 0 means no cap

	acc         float32
	dropped     uint64
	lastDropped int
}

func NewClock(step float32, maxSteps int) *Clock {
	return &Clock{Step: step, MaxSteps: maxSteps}
}

// Advance adds delta seconds and returns how many steps to run this frame.
// After it returns the accumulator is always below one step, even when the
// cap discarded catch-up steps.
func (c *Clock) Advance(delta float32) int {
	c.lastDropped = 0
	if delta < 0 {
		delta = 0
	}
	c.acc += delta

	steps := 0
	for c.acc >= c.Step {
		c.acc -= c.Step
		steps++
	}

	if c.MaxSteps > 0 && steps > c.MaxSteps {
		c.lastDropped = steps - c.MaxSteps
		c.dropped += uint64(c.lastDropped)
		steps = c.MaxSteps
	}
	return steps
}

func (c *Clock) Accumulator() float32 {
	return c.acc
}

// Dropped returns how many steps the cap discarded in the last Advance.
func (c *Clock) Dropped() int {
	return c.lastDropped
}

// TotalDropped returns every step discarded since the clock was created.
func (c *Clock) TotalDropped() uint64 {
	return c.dropped
}
