package parameter

// System priorities; lower runs first. The order is a correctness
// requirement: combat must see the player's finalized position for the
// tick, and passive score accrues only after the game-over check.
const (
	PriorityWeapon     = 10 // fire requests -> projectiles
	PrioritySpawn      = 20 // bug and pickup spawners
	PriorityPlayer     = 30 // player movement finalized here
	PrioritySwarm      = 40 // bug steering
	PriorityProjectile = 50 // advance + cull
	PriorityCombat     = 60 // projectile/bug, pickup/player, bug/player
	PriorityExplosion  = 70 // TTL pruning after combat consumed the blast
	PriorityScore      = 80 // passive accrual
)
