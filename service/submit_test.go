package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubBoard struct {
	got chan Report
	res SubmitResult
	err error
}

func (s *stubBoard) SubmitSession(_ context.Context, r Report) (SubmitResult, error) {
	s.got <- r
	return s.res, s.err
}

func (s *stubBoard) FetchTop(context.Context, int) ([]Entry, error) { return nil, nil }

func TestAsyncSubmitDelivers(t *testing.T) {
	board := &stubBoard{got: make(chan Report, 1), res: SubmitResult{Success: true}}
	results := make(chan SubmitResult, 1)
	sub := &AsyncSubmitter{
		Leaderboard: board,
		OnResult:    func(r SubmitResult) { results <- r },
	}

	sub.Submit(Report{Name: "ivy", Score: 42, KillCount: 3, DurationSeconds: 12.5})

	select {
	case r := <-board.got:
		if r.Name != "ivy" || r.Score != 42 {
			t.Fatalf("report mangled in transit: %+v", r)
		}
	case <-time.After(time.Second):
		t.Fatal("submission never reached the board")
	}
	select {
	case res := <-results:
		if !res.Success {
			t.Fatalf("expected success, got %+v", res)
		}
	case <-time.After(time.Second):
		t.Fatal("result never surfaced")
	}
}

func TestAsyncSubmitSurfacesFailure(t *testing.T) {
	board := &stubBoard{got: make(chan Report, 1), err: errors.New("service down")}
	results := make(chan SubmitResult, 1)
	sub := &AsyncSubmitter{
		Leaderboard: board,
		OnResult:    func(r SubmitResult) { results <- r },
	}

	sub.Submit(Report{Name: "ivy"})

	select {
	case res := <-results:
		if res.Success || res.Reason != "service down" {
			t.Fatalf("failure must surface with its reason, got %+v", res)
		}
	case <-time.After(time.Second):
		t.Fatal("failure result never surfaced")
	}
}

func TestAsyncSubmitWithoutBoardIsNoOp(t *testing.T) {
	sub := &AsyncSubmitter{
		OnResult: func(SubmitResult) { t.Fatal("no board, no result") },
	}
	sub.Submit(Report{Name: "ivy"})
	time.Sleep(20 * time.Millisecond)
}

type countingCounter struct{ ch chan struct{} }

func (c countingCounter) Increment() { c.ch <- struct{}{} }

func TestAsyncIncrementDispatches(t *testing.T) {
	c := countingCounter{ch: make(chan struct{}, 1)}
	AsyncIncrement{Counter: c}.Increment()
	select {
	case <-c.ch:
	case <-time.After(time.Second):
		t.Fatal("increment never dispatched")
	}

	// Nil counter: fire and forget stays a no-op
	AsyncIncrement{}.Increment()
}
