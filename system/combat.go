package system

import (
	"bugstorm/component"
	"bugstorm/engine"
	"bugstorm/parameter"
	"bugstorm/vmath"
)

// CombatResolver applies all interactions for the tick in a fixed
// sub-order: projectile-vs-bug (including area blasts), then
// pickup-vs-player, then bug-vs-player melee. Every removal takes
// effect within this same tick.
type CombatResolver struct {
	w *engine.World
}

func NewCombatResolver(w *engine.World) *CombatResolver {
	return &CombatResolver{w: w}
}

func (s *CombatResolver) Name() string  { return "combat" }
func (s *CombatResolver) Priority() int { return parameter.PriorityCombat }

func (s *CombatResolver) Update(dt float64) {
	s.w.ExplosionProtected = false
	s.resolveProjectiles()
	s.resolvePickups()
	s.resolveMelee()
}

func (s *CombatResolver) resolveProjectiles() {
	w := s.w
	for _, ph := range w.Projectiles.Handles() {
		proj, ok := w.Projectiles.Get(ph)
		if !ok {
			continue
		}
		spec := proj.Type.Spec()

		// Swept test over the path covered this tick, so fast rounds
		// cannot tunnel through a bug between two positions
		hit := engine.NilHandle
		var hitPos vmath.Vec2
		w.Bugs.Each(func(bh engine.Handle, b *component.Bug) {
			if hit == engine.NilHandle &&
				vmath.DistPointSegment(b.Pos, proj.Prev, proj.Pos) < spec.HitRadius {
				hit = bh
				hitPos = b.Pos
			}
		})
		if hit == engine.NilHandle {
			continue
		}

		if spec.Area {
			// Detonate where the sweep met the target, not where the
			// round would have ended the tick
			s.explode(vmath.ClosestPointSegment(hitPos, proj.Prev, proj.Pos), spec.BlastRadius)
		} else {
			w.Bugs.Remove(hit)
			w.AwardKill()
		}
		w.Projectiles.Remove(ph)
	}
}

// explode removes every bug inside the blast in the same tick and
// leaves an explosion marker. If the blast also caught the player,
// melee is suppressed for this tick only; without that, a bug dying
// point-blank would still land its queued melee hit purely because
// combat resolves after movement.
func (s *CombatResolver) explode(at vmath.Vec2, radius float64) {
	w := s.w
	w.Explosions.Insert(component.Explosion{
		Pos:       at,
		CreatedAt: w.Clock.Now(),
		Radius:    radius,
	})
	w.Bugs.Each(func(bh engine.Handle, b *component.Bug) {
		if at.Dist(b.Pos) < radius {
			w.Bugs.Remove(bh)
			w.AwardKill()
		}
	})
	if at.Dist(w.Player.Pos) < radius {
		w.ExplosionProtected = true
	}
}

func (s *CombatResolver) resolvePickups() {
	w := s.w
	now := w.Clock.Now()
	p := w.Player

	w.Pickups.Each(func(h engine.Handle, pk *component.Pickup) {
		if pk.Pos.Dist(p.Pos) >= parameter.PickupCollectRadius {
			return
		}
		switch pk.Kind {
		case component.PickupHealth:
			p.Heal(parameter.HealthPickupAmount)
		case component.PickupDoubleDamage:
			// Absolute expiry; a repeat pickup overwrites, never stacks
			p.DoubleDamageUntil = now + parameter.DoubleDamageDuration.Seconds()
		case component.PickupTurbo:
			p.TurboUntil = now + parameter.TurboDuration.Seconds()
		case component.PickupWeapon:
			p.HasSpecial = true
			p.Special = pk.Weapon
			p.SpecialExpiry = now + parameter.WeaponGrantDuration.Seconds()
		}
		w.Pickups.Remove(h)
	})
}

func (s *CombatResolver) resolveMelee() {
	w := s.w
	now := w.Clock.Now()
	p := w.Player
	cooldown := parameter.BugAttackCooldown.Seconds()

	w.Bugs.Each(func(_ engine.Handle, b *component.Bug) {
		if b.Pos.Dist(p.Pos) >= parameter.BugMeleeRadius {
			return
		}
		if now-b.LastAttack < cooldown {
			return
		}
		if w.ExplosionProtected {
			return
		}
		p.ApplyDamage(parameter.BugMeleeDamage)
		b.LastAttack = now

		// Knock the bug back along the contact normal. A wall would
		// swallow the displacement and leave the bug in melee range, so
		// any axis the knockback would push out of bounds is flipped
		// inward; the full displacement always lands
		normal := b.Pos.Sub(p.Pos).Normalized(vmath.SeededHeading(b.Seed, 0))
		limit := parameter.ArenaHalfExtent
		if c := b.Pos.X + normal.X*parameter.BugKnockback; c > limit || c < -limit {
			normal.X = -normal.X
		}
		if c := b.Pos.Z + normal.Z*parameter.BugKnockback; c > limit || c < -limit {
			normal.Z = -normal.Z
		}
		b.Pos = b.Pos.Add(normal.Scale(parameter.BugKnockback))
	})
}
