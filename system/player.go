// Package system implements the tick stages. Each system reads and
// writes the shared world; their priorities encode the fixed intra-
// tick order the rules depend on.
package system

import (
	"bugstorm/engine"
	"bugstorm/parameter"
	"bugstorm/vmath"
)

// PlayerController integrates input intent into player position,
// rotation and height. Runs after the spawners and before the swarm,
// so combat later in the tick sees the finalized position.
type PlayerController struct {
	w *engine.World
}

func NewPlayerController(w *engine.World) *PlayerController {
	return &PlayerController{w: w}
}

func (s *PlayerController) Name() string  { return "player" }
func (s *PlayerController) Priority() int { return parameter.PriorityPlayer }

func (s *PlayerController) Update(dt float64) {
	w := s.w
	p := w.Player
	now := w.Clock.Now()
	in := w.Input

	p.Rot += parameter.PlayerTurnRate * in.Turn * dt

	speed := parameter.PlayerMoveSpeed
	if p.TurboActive(now) {
		speed *= parameter.TurboMultiplier
	}
	proposal := p.Pos.Add(vmath.FromAngle(p.Rot).Scale(speed * in.Forward * dt))

	// Soft bounce: place an out-of-bounds proposal a margin inside the
	// wall instead of pinning it to the wall exactly.
	limit := parameter.ArenaHalfExtent
	inner := limit - parameter.ArenaBounceMargin
	if proposal.X > limit {
		proposal.X = inner
	} else if proposal.X < -limit {
		proposal.X = -inner
	}
	if proposal.Z > limit {
		proposal.Z = inner
	} else if proposal.Z < -limit {
		proposal.Z = -inner
	}

	ground := 0.0
	if w.Features.Obstacles {
		proposal, ground = s.resolveObstacles(p.Pos, proposal, p.Height)
	}
	p.Pos = proposal

	s.updateJump(ground, dt)
}

// resolveObstacles tries the full proposal, then the X-only and Z-only
// deltas, so a blocked move slides along the wall instead of stopping.
func (s *PlayerController) resolveObstacles(from, proposal vmath.Vec2, height float64) (vmath.Vec2, float64) {
	field := s.w.Obstacles
	q := field.Query(proposal, height, parameter.PlayerRadius)
	if !q.Blocked {
		return proposal, q.GroundHeight
	}
	xOnly := vmath.Vec2{X: proposal.X, Z: from.Z}
	if q = field.Query(xOnly, height, parameter.PlayerRadius); !q.Blocked {
		return xOnly, q.GroundHeight
	}
	zOnly := vmath.Vec2{X: from.X, Z: proposal.Z}
	if q = field.Query(zOnly, height, parameter.PlayerRadius); !q.Blocked {
		return zOnly, q.GroundHeight
	}
	q = field.Query(from, height, parameter.PlayerRadius)
	return from, q.GroundHeight
}

func (s *PlayerController) updateJump(ground, dt float64) {
	w := s.w
	p := w.Player

	jumpEdge := w.Input.Jump && !w.JumpHeld
	w.JumpHeld = w.Input.Jump

	if w.Features.Jump && jumpEdge && !p.Airborne && p.Height <= ground+parameter.HeightEpsilon {
		p.VerticalVel = parameter.JumpImpulse
		p.Airborne = true
	}

	if p.Airborne {
		p.VerticalVel += parameter.Gravity * dt
		p.Height += p.VerticalVel * dt
		if p.Height <= ground && p.VerticalVel <= 0 {
			p.Height = ground
			p.VerticalVel = 0
			p.Airborne = false
		}
		return
	}
	// Grounded: track the terrain, stepping onto and off obstacles
	p.Height = ground
}
