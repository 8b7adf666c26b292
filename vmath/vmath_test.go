package vmath

import (
	"math"
	"testing"
)

func TestFromAngleFacesNegZ(t *testing.T) {
	v := FromAngle(0)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Z+1) > 1e-12 {
		t.Fatalf("angle 0 must face -Z, got %+v", v)
	}
	r := FromAngle(math.Pi / 2)
	if math.Abs(r.X-1) > 1e-12 || math.Abs(r.Z) > 1e-12 {
		t.Fatalf("pi/2 must face +X, got %+v", r)
	}
}

func TestAngleRoundTrips(t *testing.T) {
	for _, a := range []float64{0, 0.7, -2.1, math.Pi - 0.01} {
		got := FromAngle(a).Angle()
		if math.Abs(got-a) > 1e-9 {
			t.Fatalf("angle %v round-tripped to %v", a, got)
		}
	}
}

func TestNormalizedFallback(t *testing.T) {
	zero := Vec2{}
	n := zero.Normalized(math.Pi / 2)
	if n.Dist(FromAngle(math.Pi/2)) > 1e-12 {
		t.Fatalf("zero vector must normalize to the fallback heading, got %+v", n)
	}

	v := Vec2{X: 3, Z: 4}.Normalized(0)
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Fatalf("expected unit length, got %v", v.Len())
	}
}

func TestClosestPointSegment(t *testing.T) {
	a, b := Vec2{}, Vec2{X: 0, Z: -10}

	got := ClosestPointSegment(Vec2{X: 3, Z: -4}, a, b)
	if got.Dist(Vec2{X: 0, Z: -4}) > 1e-9 {
		t.Fatalf("expected the foot of the perpendicular, got %+v", got)
	}
	// Beyond the ends the result clamps to the endpoints
	if got := ClosestPointSegment(Vec2{X: 0, Z: 5}, a, b); got != a {
		t.Fatalf("expected the start endpoint, got %+v", got)
	}
	if got := ClosestPointSegment(Vec2{X: 2, Z: -20}, a, b); got != b {
		t.Fatalf("expected the end endpoint, got %+v", got)
	}
}

func TestDistPointSegment(t *testing.T) {
	a, b := Vec2{X: 0, Z: 0}, Vec2{X: 10, Z: 0}

	cases := []struct {
		p    Vec2
		want float64
	}{
		{Vec2{X: 5, Z: 3}, 3},  // beside the middle
		{Vec2{X: -4, Z: 0}, 4}, // before the start
		{Vec2{X: 13, Z: 4}, 5}, // past the end
		{Vec2{X: 7, Z: 0}, 0},  // on the segment
	}
	for _, c := range cases {
		if got := DistPointSegment(c.p, a, b); math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("DistPointSegment(%+v) = %v, want %v", c.p, got, c.want)
		}
	}

	// Degenerate segment collapses to point distance
	if got := DistPointSegment(Vec2{X: 3, Z: 4}, Vec2{}, Vec2{}); math.Abs(got-5) > 1e-9 {
		t.Fatalf("degenerate segment: got %v, want 5", got)
	}
}

func TestClampVec(t *testing.T) {
	v := ClampVec(Vec2{X: 100, Z: -100}, 40)
	if v.X != 40 || v.Z != -40 {
		t.Fatalf("expected (40,-40), got %+v", v)
	}
	inside := Vec2{X: 1, Z: -2}
	if ClampVec(inside, 40) != inside {
		t.Fatal("inside vector must pass through unchanged")
	}
}

func TestFastRandDeterminism(t *testing.T) {
	a, b := NewFastRand(99), NewFastRand(99)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("step %d: same seed must yield the same stream", i)
		}
	}
}

func TestFastRandRange(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(2, 5)
		if v < 2 || v >= 5 {
			t.Fatalf("Range(2,5) produced %v", v)
		}
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 produced %v", f)
		}
	}
}

func TestSeededHeading(t *testing.T) {
	if SeededHeading(42, 3) != SeededHeading(42, 3) {
		t.Fatal("same seed and bucket must agree")
	}
	if SeededHeading(42, 3) == SeededHeading(42, 4) {
		t.Fatal("distinct buckets must re-roll the heading")
	}
	h := SeededHeading(1, 0)
	if h < 0 || h >= 2*math.Pi {
		t.Fatalf("heading out of range: %v", h)
	}
}
