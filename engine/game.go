package engine

import (
	"math"
	"sort"
	"strings"

	"bugstorm/input"
	"bugstorm/parameter"
	"bugstorm/service"
)

// System is one stage of the tick. Lower priority runs first; the
// ordering is part of the rules, not a scheduling hint.
type System interface {
	Name() string
	Priority() int
	Update(dt float64)
}

// Game owns the state machine and drives the ordered systems over one
// world. It is single-threaded by construction: the host calls Step
// once per frame, and every external call it triggers is asynchronous
// and write-only from the simulation's point of view.
type Game struct {
	World *World

	systems []System

	state     GameState
	submitted bool

	// Pre-fetched top-N the finished run is qualified against. The
	// external service remains authoritative; this only decides
	// whether to ask for a name.
	top []service.Entry

	// SubmitFunc receives the packaged session report. It must not
	// block; service.AsyncSubmitter satisfies that.
	SubmitFunc func(service.Report)

	// Plays is incremented once per session start, fire-and-forget.
	Plays service.PlayCounter
}

// NewGame wraps a world in an idle state machine. Systems are attached
// separately (system.Attach) to keep the engine free of rule imports.
func NewGame(w *World) *Game {
	return &Game{World: w, state: StateIdle}
}

// AddSystem registers a tick stage, kept sorted by priority.
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
	sort.SliceStable(g.systems, func(i, j int) bool {
		return g.systems[i].Priority() < g.systems[j].Priority()
	})
}

// State returns the current lifecycle state.
func (g *Game) State() GameState {
	return g.state
}

// Start begins a fresh run from idle or gameover: full world reset,
// then one play-counter increment.
func (g *Game) Start() {
	if g.state != StateIdle && g.state != StateGameOver {
		return
	}
	g.World.Reset()
	g.submitted = false
	g.state = StatePlaying
	if g.Plays != nil {
		g.Plays.Increment()
	}
}

// TogglePause flips between playing and paused. Pause is true
// suspension: Step returns immediately, so the clock and every entity
// stay frozen.
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	}
}

// Quit abandons a paused run, going straight to gameover. The run is
// marked submitted, so the qualification check never happens for it.
func (g *Game) Quit() {
	if g.state != StatePaused {
		return
	}
	g.submitted = true
	g.state = StateGameOver
}

// SetLeaderboard installs the pre-fetched ranked entries used by the
// qualification check.
func (g *Game) SetLeaderboard(entries []service.Entry) {
	g.top = entries
}

// Step advances the simulation by one frame. Outside playing it is a
// no-op, which is what makes pause idempotent.
func (g *Game) Step(dt float64, in input.Snapshot) {
	if g.state != StatePlaying {
		return
	}
	applied := g.World.Clock.Advance(dt)
	g.World.Input = in.Sanitized()

	for _, s := range g.systems {
		// The gameover check sits between combat and passive score
		// accrual; a dying tick never earns survival score.
		if s.Priority() >= parameter.PriorityScore && g.checkGameOver() {
			return
		}
		s.Update(applied)
	}
	g.checkGameOver()
}

// checkGameOver performs the edge-triggered health transition. It only
// fires while playing, so re-entering gameover cannot re-run it.
func (g *Game) checkGameOver() bool {
	if g.state != StatePlaying || g.World.Player.Health > 0 {
		return false
	}
	g.enterGameOver()
	return true
}

func (g *Game) enterGameOver() {
	if !g.submitted && g.qualifies() {
		g.state = StateEnteringName
		return
	}
	g.state = StateGameOver
}

// qualifies reports whether the run's floored score beats the lowest
// pre-fetched entry, or the board has free slots.
func (g *Game) qualifies() bool {
	if len(g.top) < parameter.LeaderboardTopN {
		return true
	}
	lowest := g.top[0].Score
	for _, e := range g.top[1:] {
		if e.Score < lowest {
			lowest = e.Score
		}
	}
	return g.FinalScore() > lowest
}

// SubmitName finishes name entry: package the run, hand it to the
// boundary, and settle in gameover. Submission failure is the
// boundary's concern; the transition always completes.
func (g *Game) SubmitName(name string) {
	if g.state != StateEnteringName {
		return
	}
	g.submitted = true
	g.state = StateGameOver
	if g.SubmitFunc != nil {
		g.SubmitFunc(g.Report(name))
	}
}

// SkipSubmit declines name entry. The run is marked submitted so the
// qualification check never re-triggers; nothing is reported.
func (g *Game) SkipSubmit() {
	if g.state != StateEnteringName {
		return
	}
	g.submitted = true
	g.state = StateGameOver
}

// FinalScore is the floored presentation/report score.
func (g *Game) FinalScore() int {
	s := g.World.Player.Score
	if !finiteNonNegative(s) {
		return 0
	}
	return int(math.Floor(s))
}

// Report packages the finished run with basic numeric sanity. Deeper
// plausibility checks belong to the external service.
func (g *Game) Report(name string) service.Report {
	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > parameter.NameMaxLength {
		name = string(runes[:parameter.NameMaxLength])
	}
	dur := g.World.Clock.Now()
	if !finiteNonNegative(dur) {
		dur = 0
	}
	kills := g.World.Player.Kills
	if kills < 0 {
		kills = 0
	}
	return service.Report{
		Name:            name,
		Score:           g.FinalScore(),
		KillCount:       kills,
		DurationSeconds: dur,
	}
}

func finiteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
