package system

import (
	"bugstorm/engine"
	"bugstorm/parameter"
)

// ScoreSystem accrues the passive survival bonus. Kill bonuses are
// applied discretely by the combat resolver; this system only runs
// when the tick did not end the run, so a dying tick earns nothing.
// The accumulator stays fractional and is floored at report time to
// avoid truncation bias from the passive term.
type ScoreSystem struct {
	w *engine.World
}

func NewScoreSystem(w *engine.World) *ScoreSystem {
	return &ScoreSystem{w: w}
}

func (s *ScoreSystem) Name() string  { return "score" }
func (s *ScoreSystem) Priority() int { return parameter.PriorityScore }

func (s *ScoreSystem) Update(dt float64) {
	s.w.Player.Score += parameter.PassiveScoreRate * dt
}
