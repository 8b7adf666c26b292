package engine

import (
	"bugstorm/parameter"
	"bugstorm/vmath"
)

// GameClock accumulates game time in seconds. It only advances while
// the simulation steps, so pausing the state machine freezes it for
// free; every cooldown and expiry in the world is an absolute reading
// of this clock.
type GameClock struct {
	elapsed float64
	maxStep float64
}

// NewGameClock returns a clock at zero with the standard step clamp.
func NewGameClock() *GameClock {
	return &GameClock{maxStep: parameter.MaxTickDelta.Seconds()}
}

// Sanitize maps an arbitrary frame delta into [0, maxStep]. Non-finite
// and negative inputs become zero, oversized ones are clamped so a
// backgrounded host cannot teleport entities in one step.
func (c *GameClock) Sanitize(dt float64) float64 {
	if !vmath.Finite(dt) || dt < 0 {
		return 0
	}
	if dt > c.maxStep {
		return c.maxStep
	}
	return dt
}

// Advance sanitizes dt, adds it to game time, and returns the delta
// actually applied.
func (c *GameClock) Advance(dt float64) float64 {
	dt = c.Sanitize(dt)
	c.elapsed += dt
	return dt
}

// Now returns elapsed game time in seconds since the last Reset.
func (c *GameClock) Now() float64 {
	return c.elapsed
}

// Reset rewinds the clock to zero for a new run.
func (c *GameClock) Reset() {
	c.elapsed = 0
}
