package component

import "bugstorm/vmath"

// PickupKind selects what collecting a pickup does.
type PickupKind uint8

const (
	PickupHealth PickupKind = iota
	PickupDoubleDamage
	PickupTurbo
	PickupWeapon
)

func (k PickupKind) String() string {
	switch k {
	case PickupHealth:
		return "health"
	case PickupDoubleDamage:
		return "double-damage"
	case PickupTurbo:
		return "turbo"
	case PickupWeapon:
		return "weapon"
	}
	return "unknown"
}

// Pickup sits on the ground until collected; pickups never expire.
type Pickup struct {
	Pos    vmath.Vec2
	Kind   PickupKind
	Weapon WeaponType // only meaningful for PickupWeapon
}
