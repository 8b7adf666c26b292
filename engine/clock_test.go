package engine

import (
	"math"
	"testing"
)

func TestClockSanitize(t *testing.T) {
	c := NewGameClock()

	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"nan", math.NaN(), 0},
		{"negative", -1, 0},
		{"posInf", math.Inf(1), 0},
		{"oversized", 0.5, 0.05},
		{"normal", 0.016, 0.016},
		{"zero", 0, 0},
	}
	for _, tc := range cases {
		if got := c.Sanitize(tc.in); got != tc.want {
			t.Errorf("%s: Sanitize(%v) = %v, want %v", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestClockAdvanceClampsOversizedStep(t *testing.T) {
	c := NewGameClock()

	// A 500ms host stall must advance game time by at most the max step
	applied := c.Advance(0.5)
	if applied != 0.05 {
		t.Fatalf("expected applied delta 0.05, got %v", applied)
	}
	if c.Now() != 0.05 {
		t.Fatalf("expected game time 0.05, got %v", c.Now())
	}
}

func TestClockResetRewinds(t *testing.T) {
	c := NewGameClock()
	c.Advance(0.02)
	c.Advance(0.02)
	c.Reset()
	if c.Now() != 0 {
		t.Fatalf("expected zero after reset, got %v", c.Now())
	}
}
