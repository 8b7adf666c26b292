package system

import (
	"math"

	"bugstorm/component"
	"bugstorm/engine"
	"bugstorm/parameter"
	"bugstorm/vmath"
)

// SpawnSystem runs the interval spawners for bugs and pickups. Spawns
// happen before the player moves, so a freshly spawned bug never
// reacts to a position the player no longer occupies.
type SpawnSystem struct {
	w *engine.World
}

func NewSpawnSystem(w *engine.World) *SpawnSystem {
	return &SpawnSystem{w: w}
}

func (s *SpawnSystem) Name() string  { return "spawn" }
func (s *SpawnSystem) Priority() int { return parameter.PrioritySpawn }

func (s *SpawnSystem) Update(dt float64) {
	s.spawnBugs()
	s.spawnPickups()
}

func (s *SpawnSystem) spawnBugs() {
	w := s.w
	now := w.Clock.Now()

	difficulty := w.Difficulty
	if difficulty < 1 {
		difficulty = 1
	}
	interval := parameter.BugSpawnInterval.Seconds() / difficulty
	if now-w.LastBugSpawn < interval {
		return
	}
	w.LastBugSpawn = now

	// Ring around the player, never on top of them and far enough to
	// be off-screen. The bounds clamp can collapse an off-arena ring
	// point onto the wall right next to a wall-hugging player, so
	// re-roll the angle until the clamped position keeps its distance.
	var pos vmath.Vec2
	placed := false
	for tries := 0; tries < 16; tries++ {
		pos = vmath.ClampVec(w.Player.Pos.Add(
			vmath.FromAngle(w.Rng.Angle()).
				Scale(w.Rng.Range(parameter.BugSpawnMinDist, parameter.BugSpawnMaxDist))),
			parameter.ArenaHalfExtent)
		if pos.Dist(w.Player.Pos) >= parameter.BugSpawnMinDist {
			placed = true
			break
		}
	}
	if !placed {
		return // wait for the next interval rather than spawn close
	}

	w.Bugs.Insert(component.Bug{
		Pos:   pos,
		Type:  component.BugType(w.Rng.Next() % component.BugTypeCount),
		Scale: w.Rng.Range(parameter.BugMinScale, parameter.BugMaxScale),
		Seed:  w.Rng.Next(),
		// Fresh bugs are melee-ready; only an actual hit starts the cooldown
		LastAttack: math.Inf(-1),
	})
}

func (s *SpawnSystem) spawnPickups() {
	w := s.w
	now := w.Clock.Now()

	if now-w.LastPickupSpawn < parameter.PickupSpawnInterval.Seconds() {
		return
	}
	if w.Pickups.Len() >= parameter.PickupMaxActive {
		return
	}
	w.LastPickupSpawn = now

	limit := parameter.ArenaHalfExtent - 2
	var pos vmath.Vec2
	for tries := 0; tries < 8; tries++ {
		pos = vmath.Vec2{X: w.Rng.Range(-limit, limit), Z: w.Rng.Range(-limit, limit)}
		if pos.Dist(w.Player.Pos) >= parameter.PickupMinPlayerDist {
			break
		}
	}

	pk := component.Pickup{Pos: pos, Kind: s.rollKind()}
	if pk.Kind == component.PickupWeapon {
		if w.Rng.Next()%2 == 0 {
			pk.Weapon = component.WeaponScatter
		} else {
			pk.Weapon = component.WeaponRocket
		}
	}
	w.Pickups.Insert(pk)
}

func (s *SpawnSystem) rollKind() component.PickupKind {
	r := s.w.Rng.Float64()
	switch {
	case r < 0.30:
		return component.PickupHealth
	case r < 0.55:
		return component.PickupDoubleDamage
	case r < 0.80:
		return component.PickupTurbo
	default:
		if !s.w.Features.SpecialWeapons {
			return component.PickupHealth
		}
		return component.PickupWeapon
	}
}
