package system

import (
	"bugstorm/component"
	"bugstorm/engine"
	"bugstorm/parameter"
	"bugstorm/vmath"
)

// WeaponSystem turns the fire flag into projectiles, gated by the
// per-weapon cooldown. Runs first in the tick so shots leave from the
// previous frame's muzzle position, as in the original feel.
type WeaponSystem struct {
	w *engine.World
}

func NewWeaponSystem(w *engine.World) *WeaponSystem {
	return &WeaponSystem{w: w}
}

func (s *WeaponSystem) Name() string  { return "weapon" }
func (s *WeaponSystem) Priority() int { return parameter.PriorityWeapon }

func (s *WeaponSystem) Update(dt float64) {
	w := s.w
	if !w.Input.Fire {
		return
	}
	now := w.Clock.Now()
	p := w.Player

	wt := p.CurrentWeapon(now)
	spec := wt.Spec()
	if now-w.LastFire[wt] < spec.CooldownSec {
		return
	}
	w.LastFire[wt] = now

	// Muzzle tracks the player's facing
	muzzle := p.Pos.Add(vmath.FromAngle(p.Rot).Scale(parameter.MuzzleOffset))

	// Pellets fan out symmetrically around the facing angle
	half := float64(spec.Pellets-1) / 2
	for i := 0; i < spec.Pellets; i++ {
		angle := p.Rot + (float64(i)-half)*spec.SpreadStep
		w.Projectiles.Insert(component.Projectile{
			Pos:       muzzle,
			Prev:      muzzle,
			Vel:       vmath.FromAngle(angle).Scale(spec.Speed),
			Type:      wt,
			SpawnedAt: now,
		})
	}
}
