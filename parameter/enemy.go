package parameter

import "time"

// Swarm spawning
const (
	// BugSpawnInterval is divided by the difficulty multiplier, so
	// higher difficulty spawns faster
	BugSpawnInterval = 2 * time.Second

	// Spawn ring around the player; far enough to be off-screen
	BugSpawnMinDist = 22.0
	BugSpawnMaxDist = 32.0

	BugMinScale = 0.8
	BugMaxScale = 1.4
)

// Steering bands, by distance to the player
const (
	BugNearThreshold = 6.0
	BugMidThreshold  = 18.0

	BugBaseSpeed      = 4.5 // units/s
	BugPursuitFactor  = 1.5 // speed multiplier inside the near band
	BugWanderSpeed    = 2.5
	BugWanderInterval = 1200 * time.Millisecond // heading re-roll period
)

// Melee
const (
	BugMeleeRadius    = 1.2
	BugMeleeDamage    = 10
	BugAttackCooldown = 800 * time.Millisecond
	BugKnockback      = 2.5 // displacement along the contact normal
)
