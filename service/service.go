// Package service defines the external boundaries of the simulation:
// leaderboard submission/fetching and the play counter. The core
// treats all of them as opaque, asynchronous, and authoritative; their
// results never feed back into simulation state.
package service

import "context"

// Report is a finished run packaged for the leaderboard boundary.
type Report struct {
	Name            string  `json:"name"`
	Score           int     `json:"score"`
	KillCount       int     `json:"killCount"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// Entry is one ranked leaderboard row.
type Entry struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// SubmitResult is the external service's verdict. The service may
// reject a submission the core considered qualifying; deeper
// plausibility checks are its responsibility, not ours.
type SubmitResult struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// Leaderboard is the external ranking service.
type Leaderboard interface {
	SubmitSession(ctx context.Context, r Report) (SubmitResult, error)
	FetchTop(ctx context.Context, n int) ([]Entry, error)
}

// PlayCounter receives one fire-and-forget increment per session
// start. The core never reads its result.
type PlayCounter interface {
	Increment()
}
