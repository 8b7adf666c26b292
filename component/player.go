package component

import (
	"bugstorm/parameter"
	"bugstorm/vmath"
)

// Player is the single controllable entity. Created at session start,
// reset on every restart, never destroyed mid-session.
type Player struct {
	Pos         vmath.Vec2
	Rot         float64 // radians, 0 faces -Z
	Height      float64 // y, for jumping and obstacle climbing
	VerticalVel float64
	Airborne    bool

	Health int // clamped to [0, PlayerMaxHealth]

	// At most one special weapon at a time; a new grant overwrites
	HasSpecial    bool
	Special       WeaponType
	SpecialExpiry float64 // absolute game time, seconds

	DoubleDamageUntil float64
	TurboUntil        float64

	Score float64 // fractional accumulator, floored at report time
	Kills int
}

// NewPlayer returns a player at the arena origin with full health.
func NewPlayer() *Player {
	return &Player{Health: parameter.PlayerMaxHealth}
}

// ApplyDamage lowers health, clamped at zero.
func (p *Player) ApplyDamage(n int) {
	p.Health -= n
	if p.Health < 0 {
		p.Health = 0
	}
}

// Heal raises health, capped at the maximum.
func (p *Player) Heal(n int) {
	p.Health += n
	if p.Health > parameter.PlayerMaxHealth {
		p.Health = parameter.PlayerMaxHealth
	}
}

// CurrentWeapon resolves the active weapon at the given game time,
// falling back to the blaster once a grant expires.
func (p *Player) CurrentWeapon(now float64) WeaponType {
	if p.HasSpecial && now < p.SpecialExpiry {
		return p.Special
	}
	return WeaponBlaster
}

// DoubleDamageActive reports whether the score-doubling buff is live.
func (p *Player) DoubleDamageActive(now float64) bool {
	return now < p.DoubleDamageUntil
}

// TurboActive reports whether the speed buff is live.
func (p *Player) TurboActive(now float64) bool {
	return now < p.TurboUntil
}
