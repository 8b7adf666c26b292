package system

import (
	"math"

	"bugstorm/component"
	"bugstorm/engine"
	"bugstorm/parameter"
)

// ProjectileSystem advances projectiles and culls the ones that left
// the window around the player. Velocity is units/second, multiplied
// by the clamped delta, so bullet speed does not depend on frame rate.
type ProjectileSystem struct {
	w *engine.World
}

func NewProjectileSystem(w *engine.World) *ProjectileSystem {
	return &ProjectileSystem{w: w}
}

func (s *ProjectileSystem) Name() string  { return "projectile" }
func (s *ProjectileSystem) Priority() int { return parameter.PriorityProjectile }

func (s *ProjectileSystem) Update(dt float64) {
	w := s.w
	playerPos := w.Player.Pos

	w.Projectiles.Each(func(h engine.Handle, p *component.Projectile) {
		p.Prev = p.Pos
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))

		// Per-axis cull against the *current* player position keeps
		// the live set bounded regardless of arena size
		if math.Abs(p.Pos.X-playerPos.X) > parameter.ProjectileCullRange ||
			math.Abs(p.Pos.Z-playerPos.Z) > parameter.ProjectileCullRange {
			w.Projectiles.Remove(h)
		}
	})
}
