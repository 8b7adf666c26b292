package component

import "bugstorm/vmath"

// Explosion is a short-lived area marker left by an area weapon
// impact. At this layer it exists for rendering and for the one-tick
// melee suppression bookkeeping; it deals no damage after its spawn
// tick and is pruned after a fixed TTL.
type Explosion struct {
	Pos       vmath.Vec2
	CreatedAt float64 // game time, seconds
	Radius    float64
}
