package component

import "bugstorm/vmath"

// Projectile lives from fire until hit or distance cull, always
// removed in the same tick its removal condition becomes true.
type Projectile struct {
	Pos       vmath.Vec2
	Prev      vmath.Vec2 // position before this tick's advance, for swept hits
	Vel       vmath.Vec2 // units/s
	Type      WeaponType
	SpawnedAt float64 // game time, seconds
}
