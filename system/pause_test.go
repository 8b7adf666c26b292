package system

import (
	"reflect"
	"testing"

	"bugstorm/engine"
	"bugstorm/input"
)

// Pausing and resuming must be exact: no entity position, velocity, or
// timer may drift across the pause, no matter how many frames the host
// delivers while paused.
func TestPauseResumeLeavesWorldUntouched(t *testing.T) {
	g, w := newFlatGame()
	insertBug(w, 3, -4)
	insertBug(w, -10, 8)

	// Run the world into a non-trivial state
	for i := 0; i < 30; i++ {
		g.Step(0.016, input.Snapshot{Forward: 1, Turn: 0.4, Fire: i%5 == 0})
	}

	before := g.Snapshot()

	g.TogglePause()
	for i := 0; i < 50; i++ {
		g.Step(0.033, input.Snapshot{Forward: 1, Fire: true})
	}
	g.TogglePause()

	after := g.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("pause/resume must be lossless:\nbefore %+v\nafter  %+v", before, after)
	}
	if g.State() != engine.StatePlaying {
		t.Fatalf("expected playing after resume, got %v", g.State())
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g, w := newFlatGame()
	g.Step(0.05, input.Snapshot{})
	was := w.Clock.Now()

	g.TogglePause()
	g.Step(0.05, input.Snapshot{})
	g.Step(0.05, input.Snapshot{})
	if w.Clock.Now() != was {
		t.Fatalf("paused steps must not advance game time: %v -> %v", was, w.Clock.Now())
	}

	// Cooldowns measured against the frozen clock survive the pause:
	// resuming does not grant a free shot window
	g.TogglePause()
	g.Step(0.05, input.Snapshot{})
	if w.Clock.Now() != was+0.05 {
		t.Fatalf("resume must continue from the frozen time, got %v", w.Clock.Now())
	}
}
