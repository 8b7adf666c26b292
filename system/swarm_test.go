package system

import (
	"math"
	"testing"

	"bugstorm/component"
	"bugstorm/engine"
	"bugstorm/parameter"
	"bugstorm/vmath"
)

func TestBugSpawnIntervalAndRing(t *testing.T) {
	w := engine.NewWorld(engine.Features{}, 1)
	ss := NewSpawnSystem(w)

	// Before the interval elapses nothing spawns
	w.Clock.Advance(parameter.BugSpawnInterval.Seconds() / 2)
	ss.Update(0.05)
	if w.Bugs.Len() != 0 {
		t.Fatalf("nothing should spawn before the interval, got %d", w.Bugs.Len())
	}

	w.Clock.Advance(parameter.BugSpawnInterval.Seconds() / 2)
	ss.Update(0.05)
	if w.Bugs.Len() != 1 {
		t.Fatalf("expected 1 bug at the interval, got %d", w.Bugs.Len())
	}

	hs := w.Bugs.Handles()
	b, _ := w.Bugs.Get(hs[0])
	d := b.Pos.Dist(w.Player.Pos)
	if d < parameter.BugSpawnMinDist || d > parameter.BugSpawnMaxDist {
		t.Fatalf("spawn must land on the ring [%v, %v], got %v",
			parameter.BugSpawnMinDist, parameter.BugSpawnMaxDist, d)
	}
	if b.Scale < parameter.BugMinScale || b.Scale > parameter.BugMaxScale {
		t.Fatalf("scale out of range: %v", b.Scale)
	}
}

func TestSpawnKeepsDistanceFromWallPinnedPlayer(t *testing.T) {
	w := engine.NewWorld(engine.Features{}, 1)
	w.Player.Pos = vmath.Vec2{
		X: parameter.ArenaHalfExtent - 0.5,
		Z: parameter.ArenaHalfExtent - 0.5,
	}
	ss := NewSpawnSystem(w)

	// In the corner most of the spawn ring lies outside the arena; the
	// clamp must never collapse a spawn onto the wall next to the player
	for i := 0; i < 2000; i++ {
		w.Clock.Advance(parameter.BugSpawnInterval.Seconds())
		ss.Update(0.05)
		w.Bugs.Each(func(h engine.Handle, b *component.Bug) {
			if d := b.Pos.Dist(w.Player.Pos); d < parameter.BugSpawnMinDist {
				t.Fatalf("interval %d: bug spawned %v units from the player", i, d)
			}
			w.Bugs.Remove(h)
		})
	}
}

func TestDifficultyScalesSpawnRate(t *testing.T) {
	w := engine.NewWorld(engine.Features{}, 1)
	w.Difficulty = 2
	ss := NewSpawnSystem(w)

	// At double difficulty the interval halves
	w.Clock.Advance(parameter.BugSpawnInterval.Seconds() / 2)
	ss.Update(0.05)
	if w.Bugs.Len() != 1 {
		t.Fatalf("doubled difficulty must halve the interval, got %d bugs", w.Bugs.Len())
	}
}

func TestSwarmSteeringBands(t *testing.T) {
	w := engine.NewWorld(engine.Features{}, 1)
	near := insertBug(w, 0, -2) // inside the pursuit band
	far := insertBug(w, 0, -30) // wander band
	sw := NewSwarmSystem(w)

	sw.Update(0.05)

	nb, _ := w.Bugs.Get(near)
	if nb.Pos.Dist(w.Player.Pos) >= 2 {
		t.Fatalf("near bug must close on the player, dist %v", nb.Pos.Dist(w.Player.Pos))
	}
	wantNear := parameter.BugBaseSpeed * parameter.BugPursuitFactor
	if v := nb.Vel.Len(); math.Abs(v-wantNear) > 1e-9 {
		t.Fatalf("near band speed must be %v, got %v", wantNear, v)
	}

	fb, _ := w.Bugs.Get(far)
	if v := fb.Vel.Len(); math.Abs(v-parameter.BugWanderSpeed) > 1e-9 {
		t.Fatalf("far band speed must be %v, got %v", parameter.BugWanderSpeed, v)
	}
}

func TestSwarmWanderIsDeterministic(t *testing.T) {
	run := func() vmath.Vec2 {
		w := engine.NewWorld(engine.Features{}, 1)
		h := insertBug(w, 0, -30)
		sw := NewSwarmSystem(w)
		for i := 0; i < 100; i++ {
			sw.Update(w.Clock.Advance(0.05))
		}
		b, _ := w.Bugs.Get(h)
		return b.Pos
	}

	a, b := run(), run()
	if a != b {
		t.Fatalf("same seed and time must wander identically: %+v vs %+v", a, b)
	}
}

func TestSwarmStaysInArena(t *testing.T) {
	w := engine.NewWorld(engine.Features{}, 1)
	h := insertBug(w, parameter.ArenaHalfExtent-0.1, parameter.ArenaHalfExtent-0.1)
	w.Player.Pos = vmath.Vec2{X: -30, Z: -30}
	sw := NewSwarmSystem(w)

	for i := 0; i < 500; i++ {
		sw.Update(w.Clock.Advance(0.05))
		b, _ := w.Bugs.Get(h)
		if math.Abs(b.Pos.X) > parameter.ArenaHalfExtent || math.Abs(b.Pos.Z) > parameter.ArenaHalfExtent {
			t.Fatalf("tick %d: bug escaped the arena at %+v", i, b.Pos)
		}
	}
}

func TestCoincidentBugStaysFinite(t *testing.T) {
	w := engine.NewWorld(engine.Features{}, 1)
	h := insertBug(w, 0, 0) // exactly on the player
	NewSwarmSystem(w).Update(0.05)

	b, _ := w.Bugs.Get(h)
	if !vmath.Finite(b.Pos.X) || !vmath.Finite(b.Pos.Z) ||
		!vmath.Finite(b.Vel.X) || !vmath.Finite(b.Vel.Z) {
		t.Fatalf("coincident bug must stay finite: %+v", b)
	}
	if b.Vel.Len() == 0 {
		t.Fatal("coincident bug must still move via its seeded heading")
	}
}

func TestPickupSpawnerRespectsCap(t *testing.T) {
	w := engine.NewWorld(engine.Features{SpecialWeapons: true}, 1)
	for i := 0; i < parameter.PickupMaxActive; i++ {
		w.Pickups.Insert(component.Pickup{Kind: component.PickupHealth})
	}
	ss := NewSpawnSystem(w)

	w.Clock.Advance(parameter.PickupSpawnInterval.Seconds() + 1)
	ss.Update(0.05)
	if w.Pickups.Len() != parameter.PickupMaxActive {
		t.Fatalf("spawner must respect the active cap, got %d", w.Pickups.Len())
	}
}

func TestWeaponPickupsNeedFeatureFlag(t *testing.T) {
	w := engine.NewWorld(engine.Features{}, 1) // special weapons off
	ss := NewSpawnSystem(w)

	// Roll many spawns; none may be a weapon crate
	for i := 0; i < 40; i++ {
		w.Clock.Advance(parameter.PickupSpawnInterval.Seconds() + 0.1)
		ss.Update(0.05)
		w.Pickups.Each(func(h engine.Handle, p *component.Pickup) {
			if p.Kind == component.PickupWeapon {
				t.Fatal("weapon crates must not spawn with the feature off")
			}
			w.Pickups.Remove(h)
		})
	}
}
