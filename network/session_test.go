package network

import (
	"encoding/json"
	"testing"

	"bugstorm/engine"
	"bugstorm/input"
	"bugstorm/parameter"
	"bugstorm/service"
)

// The qualification list only ever arrives on the internal board
// channel; no client message type can install one, no matter what it
// claims to be or carry.
func TestClientCannotInjectLeaderboard(t *testing.T) {
	w := engine.NewWorld(engine.Features{}, 1)
	g := engine.NewGame(w)
	s := &session{game: g}
	g.Start()

	entries := make([]service.Entry, parameter.LeaderboardTopN)
	for i := range entries {
		entries[i] = service.Entry{Name: "x", Score: 1000}
	}
	payload, _ := json.Marshal(entries)
	for _, typ := range []string{"_leaderboard", "leaderboard", "board", "bogus"} {
		s.apply(clientMessage{Type: typ, Name: string(payload)})
	}

	// With no installed list every run qualifies; a smuggled full board
	// of higher scores would have sent this one straight to gameover
	w.Player.Score = 1
	w.Player.Health = 0
	g.Step(0.016, input.Snapshot{})
	if g.State() != engine.StateEnteringName {
		t.Fatalf("forged message installed a qualification list, got %v", g.State())
	}
}
