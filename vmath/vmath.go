// Package vmath provides the float vector helpers and deterministic
// random sources used by the simulation. Everything here is pure and
// allocation-free.
package vmath

import "math"

// Vec2 is a point or direction on the arena plane (x, z).
type Vec2 struct {
	X, Z float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Z * s}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Z)
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Z-o.Z)
}

// Normalized returns v scaled to unit length. A zero (or near-zero)
// vector has no direction; the caller supplies a fallback heading so
// the result is always finite and deterministic.
func (v Vec2) Normalized(fallbackAngle float64) Vec2 {
	l := v.Len()
	if l < 1e-9 {
		return FromAngle(fallbackAngle)
	}
	return Vec2{v.X / l, v.Z / l}
}

// FromAngle returns the unit vector for a heading in radians.
// Angle 0 points along -Z, matching the player's forward convention.
func FromAngle(a float64) Vec2 {
	return Vec2{math.Sin(a), -math.Cos(a)}
}

// Angle returns the heading of v in radians, inverse of FromAngle.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.X, -v.Z)
}

// ClosestPointSegment returns the point on the segment ab nearest to p.
func ClosestPointSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Z*ab.Z
	if lenSq < 1e-12 {
		return a
	}
	t := Clamp(((p.X-a.X)*ab.X+(p.Z-a.Z)*ab.Z)/lenSq, 0, 1)
	return a.Add(ab.Scale(t))
}

// DistPointSegment returns the distance from p to the segment ab.
// Used for swept projectile hits so fast rounds cannot tunnel through
// a target between two ticks.
func DistPointSegment(p, a, b Vec2) float64 {
	return p.Dist(ClosestPointSegment(p, a, b))
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampVec limits both components of v to [-extent, extent].
func ClampVec(v Vec2, extent float64) Vec2 {
	return Vec2{Clamp(v.X, -extent, extent), Clamp(v.Z, -extent, extent)}
}

// Finite reports whether x is neither NaN nor infinite.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
