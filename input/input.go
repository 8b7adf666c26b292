// Package input aggregates movement intent into per-tick snapshots.
// The tracker replaces the ambient pressed-key state of typical UI
// layers with an explicit value handed to the step function.
package input

import (
	"sync"

	"bugstorm/vmath"
)

// Snapshot is the per-tick input intent consumed by the simulation.
// Forward and Turn are normalized to [-1, 1] before use; Fire and Jump
// are level signals, the simulation detects its own edges.
type Snapshot struct {
	Forward float64 `json:"forward"`
	Turn    float64 `json:"turn"`
	Fire    bool    `json:"fire"`
	Jump    bool    `json:"jump"`
}

// Sanitized returns the snapshot with axes clamped to [-1, 1] and
// non-finite values zeroed.
func (s Snapshot) Sanitized() Snapshot {
	if !vmath.Finite(s.Forward) {
		s.Forward = 0
	}
	if !vmath.Finite(s.Turn) {
		s.Turn = 0
	}
	s.Forward = vmath.Clamp(s.Forward, -1, 1)
	s.Turn = vmath.Clamp(s.Turn, -1, 1)
	return s
}

// Action is one of the trackable intents.
type Action uint8

const (
	ActionForward Action = iota
	ActionBack
	ActionTurnLeft
	ActionTurnRight
	ActionFire
	ActionJump

	actionCount
)

// Tracker collects press/release edges (or timed taps, for input
// sources without release events such as terminals) and produces
// snapshots. Safe for use from an input goroutine concurrent with the
// tick loop.
type Tracker struct {
	mu    sync.Mutex
	held  [actionCount]bool
	until [actionCount]float64 // tap expiry, monotonic seconds
}

// Set records a press (down=true) or release of an action.
func (t *Tracker) Set(a Action, down bool) {
	if a >= actionCount {
		return
	}
	t.mu.Lock()
	t.held[a] = down
	t.mu.Unlock()
}

// Tap marks an action active until now+ttl. Key-repeat from the
// terminal keeps refreshing the expiry while the key is held.
func (t *Tracker) Tap(a Action, now, ttl float64) {
	if a >= actionCount {
		return
	}
	t.mu.Lock()
	t.until[a] = now + ttl
	t.mu.Unlock()
}

// Snapshot reduces the current tracker state at the given monotonic
// time into a sanitized per-tick snapshot.
func (t *Tracker) Snapshot(now float64) Snapshot {
	t.mu.Lock()
	active := [actionCount]bool{}
	for a := Action(0); a < actionCount; a++ {
		active[a] = t.held[a] || now < t.until[a]
	}
	t.mu.Unlock()

	var s Snapshot
	if active[ActionForward] {
		s.Forward++
	}
	if active[ActionBack] {
		s.Forward--
	}
	if active[ActionTurnRight] {
		s.Turn++
	}
	if active[ActionTurnLeft] {
		s.Turn--
	}
	s.Fire = active[ActionFire]
	s.Jump = active[ActionJump]
	return s.Sanitized()
}

// Reset clears all held and tapped state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.held = [actionCount]bool{}
	t.until = [actionCount]float64{}
	t.mu.Unlock()
}
