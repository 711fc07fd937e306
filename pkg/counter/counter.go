// Package counter animates a number counting up to a target in fixed ticks.
package counter

import (
	"math"
	"strconv"
	"time"
)

const (
	DefaultDuration = 2 * time.Second
	DefaultTick     = 16 * time.Millisecond

	// PlusThreshold is the smallest final value shown with a trailing "+"
	PlusThreshold = 1000
)

// Counter counts from zero to Target in steps of Target/(Duration/Tick)
type Counter struct {
	Target    int
	increment float64
	current   float64
	done      bool
}

// New creates a counter. Non-positive durations fall back to the defaults.
func New(target int, duration, tick time.Duration) *Counter {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if tick <= 0 {
		tick = DefaultTick
	}

	steps := float64(duration) / float64(tick)
	if steps < 1 {
		steps = 1
	}

	return &Counter{
		Target:    target,
		increment: float64(target) / steps,
	}
}

// Step advances one tick and reports whether the target was reached
func (c *Counter) Step() bool {
	if c.done {
		return true
	}
	c.current += c.increment
	if c.current >= float64(c.Target) || c.increment <= 0 {
		c.current = float64(c.Target)
		c.done = true
	}
	return c.done
}

// Done reports whether the counter reached its target
func (c *Counter) Done() bool {
	return c.done
}

// Display returns the text to show for the current tick
func (c *Counter) Display() string {
	if c.done {
		return Final(c.Target)
	}
	return strconv.Itoa(int(math.Floor(c.current)))
}

// Final formats the settled value, "1000+" style for large targets
func Final(target int) string {
	s := strconv.Itoa(target)
	if target >= PlusThreshold {
		s += "+"
	}
	return s
}
