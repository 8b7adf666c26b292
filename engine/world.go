package engine

import (
	"math"

	"bugstorm/component"
	"bugstorm/input"
	"bugstorm/parameter"
	"bugstorm/vmath"
)

// Features selects which rules of the configurable core are active.
// The game variants differ only in these flags; the union of rules
// lives in one engine.
type Features struct {
	Obstacles      bool
	Jump           bool
	SpecialWeapons bool
}

// AllFeatures enables the full rule set.
func AllFeatures() Features {
	return Features{Obstacles: true, Jump: true, SpecialWeapons: true}
}

// World is the complete mutable simulation state plus the immutable
// obstacle field. Systems share it; nothing outside the tick mutates
// it. All timers are absolute readings of Clock.
type World struct {
	Clock    *GameClock
	Features Features
	Rng      *vmath.FastRand

	Player    *component.Player
	Obstacles *component.ObstacleField

	Bugs        *Arena[component.Bug]
	Projectiles *Arena[component.Projectile]
	Pickups     *Arena[component.Pickup]
	Explosions  *Arena[component.Explosion]

	// Input is the sanitized snapshot for the tick in flight
	Input input.Snapshot

	// Difficulty divides the bug spawn interval
	Difficulty float64

	// Per-run trackers, reset on every restart
	LastFire        [3]float64 // indexed by component.WeaponType
	LastBugSpawn    float64
	LastPickupSpawn float64
	JumpHeld        bool

	// ExplosionProtected suppresses melee damage for the tick in
	// which a blast caught the player; cleared at the start of every
	// combat resolution
	ExplosionProtected bool
}

// NewWorld builds a world with an obstacle field generated once from
// the seed. The field survives run resets; everything else is per-run.
func NewWorld(features Features, seed uint64) *World {
	rng := vmath.NewFastRand(seed)
	w := &World{
		Clock:       NewGameClock(),
		Features:    features,
		Rng:         rng,
		Obstacles:   &component.ObstacleField{},
		Bugs:        NewArena[component.Bug](64),
		Projectiles: NewArena[component.Projectile](128),
		Pickups:     NewArena[component.Pickup](16),
		Explosions:  NewArena[component.Explosion](16),
		Difficulty:  1,
	}
	if features.Obstacles {
		w.Obstacles = component.GenerateObstacleField(rng, parameter.ObstacleCount)
	}
	w.Reset()
	return w
}

// Reset restores the per-run state for a fresh session: empty entity
// arenas, a default player, rewound clock, cleared timers.
func (w *World) Reset() {
	w.Player = component.NewPlayer()
	w.Bugs.Clear()
	w.Projectiles.Clear()
	w.Pickups.Clear()
	w.Explosions.Clear()
	w.Clock.Reset()
	w.Input = input.Snapshot{}
	for i := range w.LastFire {
		w.LastFire[i] = math.Inf(-1) // every weapon ready at t=0
	}
	w.LastBugSpawn = 0
	w.LastPickupSpawn = 0
	w.JumpHeld = false
	w.ExplosionProtected = false
}

// AwardKill credits one bug kill: base score, doubled while the
// double-damage buff is live (the buff affects score only; bugs die to
// a single hit regardless).
func (w *World) AwardKill() {
	bonus := float64(parameter.BaseKillScore)
	if w.Player.DoubleDamageActive(w.Clock.Now()) {
		bonus *= 2
	}
	w.Player.Score += bonus
	w.Player.Kills++
}
