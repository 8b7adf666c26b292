package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// AsyncSubmitter dispatches leaderboard submissions without ever
// blocking the tick loop. A failed or slow call is logged and
// surfaced through OnResult for UI purposes only; it is never retried
// and never touches simulation state.
type AsyncSubmitter struct {
	Leaderboard Leaderboard
	Timeout     time.Duration
	Log         *zap.SugaredLogger

	// OnResult, when set, is called from the submission goroutine.
	OnResult func(SubmitResult)
}

// Submit hands the report to the leaderboard on a fresh goroutine and
// returns immediately.
func (s *AsyncSubmitter) Submit(r Report) {
	if s.Leaderboard == nil {
		return
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := s.Leaderboard.SubmitSession(ctx, r)
		if err != nil {
			if s.Log != nil {
				s.Log.Warnw("leaderboard submission failed", "name", r.Name, "score", r.Score, "err", err)
			}
			res = SubmitResult{Success: false, Reason: err.Error()}
		} else if s.Log != nil {
			s.Log.Infow("leaderboard submission", "name", r.Name, "score", r.Score, "success", res.Success)
		}
		if s.OnResult != nil {
			s.OnResult(res)
		}
	}()
}

// AsyncIncrement adapts any PlayCounter so the increment runs off the
// tick goroutine.
type AsyncIncrement struct {
	Counter PlayCounter
}

func (a AsyncIncrement) Increment() {
	if a.Counter == nil {
		return
	}
	go a.Counter.Increment()
}
