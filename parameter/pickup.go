package parameter

import "time"

// Pickup spawning and collection
const (
	PickupSpawnInterval = 6 * time.Second
	PickupMaxActive     = 6

	// Spawn anywhere in the arena but clear of the player
	PickupMinPlayerDist = 5.0

	PickupCollectRadius = 1.5
)

// Pickup effects
const (
	HealthPickupAmount = 25

	// Buff and weapon grants set an absolute expiry; a new pickup of
	// the same category overwrites the old expiry, never stacks
	DoubleDamageDuration = 10 * time.Second
	TurboDuration        = 10 * time.Second
	WeaponGrantDuration  = 15 * time.Second
)
