package parameter

import "time"

// Weapon tuning. Variants differ only in these numbers; on-hit
// behavior (single target vs area) is a per-type flag in component.
const (
	MuzzleOffset = 0.8 // forward offset from player center, rotated with the player

	// ProjectileCullRange is the per-axis distance from the current
	// player position beyond which a projectile is removed. Keeps the
	// live set bounded near the player regardless of arena size.
	ProjectileCullRange = 45.0
)

// Blaster: the default single-target weapon
const (
	BlasterCooldown  = 250 * time.Millisecond
	BlasterSpeed     = 30.0
	BlasterHitRadius = 0.8
)

// Scatter: fan of pellets with angular spread
const (
	ScatterCooldown    = 600 * time.Millisecond
	ScatterSpeed       = 26.0
	ScatterHitRadius   = 0.7
	ScatterPelletCount = 5
	ScatterSpreadStep  = 0.14 // radians between adjacent pellets
)

// Rocket: area-of-effect on impact
const (
	RocketCooldown    = 900 * time.Millisecond
	RocketSpeed       = 18.0
	RocketHitRadius   = 1.0
	RocketBlastRadius = 4.0

	ExplosionTTL = 600 * time.Millisecond
)
