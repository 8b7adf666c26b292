package system

import (
	"math"

	"bugstorm/component"
	"bugstorm/engine"
	"bugstorm/parameter"
	"bugstorm/vmath"
)

// SwarmSystem steers every bug toward or around the player. It runs
// after the player controller so pursuit aims at the position melee
// will later be resolved against.
type SwarmSystem struct {
	w *engine.World
}

func NewSwarmSystem(w *engine.World) *SwarmSystem {
	return &SwarmSystem{w: w}
}

func (s *SwarmSystem) Name() string  { return "swarm" }
func (s *SwarmSystem) Priority() int { return parameter.PrioritySwarm }

func (s *SwarmSystem) Update(dt float64) {
	w := s.w
	now := w.Clock.Now()
	playerPos := w.Player.Pos

	w.Bugs.Each(func(_ engine.Handle, b *component.Bug) {
		toPlayer := playerPos.Sub(b.Pos)
		dist := toPlayer.Len()

		// A coincident bug has no pursuit direction; its seeded
		// heading keeps the result finite and reproducible
		fallback := vmath.SeededHeading(b.Seed, 0)
		pursuit := toPlayer.Normalized(fallback)
		wander := vmath.FromAngle(wanderHeading(b.Seed, now))

		var dir vmath.Vec2
		speed := parameter.BugBaseSpeed * b.Scale
		switch {
		case dist < parameter.BugNearThreshold:
			dir = pursuit
			speed *= parameter.BugPursuitFactor
		case dist < parameter.BugMidThreshold:
			dir = pursuit.Scale(0.5).Add(wander.Scale(0.5)).Normalized(fallback)
		default:
			dir = wander
			speed = parameter.BugWanderSpeed
		}

		b.Vel = dir.Scale(speed)
		b.Pos = vmath.ClampVec(b.Pos.Add(b.Vel.Scale(dt)), parameter.ArenaHalfExtent)
	})
}

// wanderHeading re-rolls deterministically every wander interval; the
// same bug at the same time always wanders the same way.
func wanderHeading(seed uint64, now float64) float64 {
	bucket := int64(math.Floor(now / parameter.BugWanderInterval.Seconds()))
	return vmath.SeededHeading(seed, bucket)
}
