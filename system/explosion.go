package system

import (
	"bugstorm/component"
	"bugstorm/engine"
	"bugstorm/parameter"
)

// ExplosionSystem prunes expired blast markers. It runs after combat,
// so a blast spawned this tick is visible to renderers for at least
// one snapshot before its TTL starts counting down.
type ExplosionSystem struct {
	w *engine.World
}

func NewExplosionSystem(w *engine.World) *ExplosionSystem {
	return &ExplosionSystem{w: w}
}

func (s *ExplosionSystem) Name() string  { return "explosion" }
func (s *ExplosionSystem) Priority() int { return parameter.PriorityExplosion }

func (s *ExplosionSystem) Update(dt float64) {
	w := s.w
	now := w.Clock.Now()
	ttl := parameter.ExplosionTTL.Seconds()

	w.Explosions.Each(func(h engine.Handle, e *component.Explosion) {
		if now-e.CreatedAt >= ttl {
			w.Explosions.Remove(h)
		}
	})
}
