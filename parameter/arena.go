// Package parameter holds all gameplay tuning constants, grouped one
// file per concern. Values are units/second; the simulation multiplies
// by the clamped frame delta.
package parameter

import "time"

// Arena geometry
const (
	// ArenaHalfExtent is half the side length of the square play area
	ArenaHalfExtent = 40.0

	// ArenaBounceMargin is how far inside the wall an out-of-bounds
	// proposal is placed, so the player rebounds instead of sticking
	ArenaBounceMargin = 0.5
)

// Tick timing
const (
	// MaxTickDelta bounds a single step so a backgrounded host cannot
	// produce a teleporting displacement when it resumes
	MaxTickDelta = 50 * time.Millisecond
)

// Obstacle field
const (
	ObstacleCount = 24

	// ObstacleStandFraction is the inner fraction of an obstacle's
	// radius within which an entity above the climb height stands on top
	ObstacleStandFraction = 0.7

	ObstacleMinRadius = 1.0
	ObstacleMaxRadius = 2.5
	ObstacleMinHeight = 0.8
	ObstacleMaxHeight = 2.2

	// ObstacleClearRadius keeps generated obstacles away from the
	// player spawn at the origin
	ObstacleClearRadius = 6.0

	HeightEpsilon = 1e-3
)
