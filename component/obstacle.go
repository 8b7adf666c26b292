package component

import (
	"bugstorm/parameter"
	"bugstorm/vmath"
)

// ObstacleType is a presentation tag; collision only cares about
// radius and climb height.
type ObstacleType uint8

const (
	ObstacleRock ObstacleType = iota
	ObstacleCrate
	ObstacleStump
)

// Obstacle is immutable collision geometry generated before the
// simulation starts.
type Obstacle struct {
	Pos    vmath.Vec2
	Radius float64
	Height float64 // climbable height: stand on top at or above this
	Type   ObstacleType
}

// ObstacleField answers movement queries against the static geometry.
// The zero value is a flat, empty arena.
type ObstacleField struct {
	Obstacles []Obstacle
}

// GroundQuery is the total result of a field query: whether the
// candidate position is blocked, and the ground level there.
type GroundQuery struct {
	Blocked      bool
	GroundHeight float64
}

// Query evaluates a candidate position for an entity of the given
// radius at the given height. It is total: any input, including far
// out-of-bounds coordinates, yields a defined result.
//
// An obstacle blocks when the entity is below its climb height and
// horizontally overlapping. At or above the climb height the entity
// may stand on the obstacle's inner top, which then contributes the
// climb height as ground level.
func (f *ObstacleField) Query(pos vmath.Vec2, height, entityRadius float64) GroundQuery {
	q := GroundQuery{}
	for i := range f.Obstacles {
		o := &f.Obstacles[i]
		d := pos.Dist(o.Pos)
		if height < o.Height-parameter.HeightEpsilon {
			if d < o.Radius+entityRadius {
				q.Blocked = true
			}
			continue
		}
		if d < o.Radius*parameter.ObstacleStandFraction && o.Height > q.GroundHeight {
			q.GroundHeight = o.Height
		}
	}
	return q
}

// GenerateObstacleField scatters obstacles across the arena, keeping a
// clear circle around the player spawn. Deterministic for a given rng
// state.
func GenerateObstacleField(rng *vmath.FastRand, count int) *ObstacleField {
	f := &ObstacleField{Obstacles: make([]Obstacle, 0, count)}
	limit := parameter.ArenaHalfExtent - parameter.ObstacleMaxRadius
	for len(f.Obstacles) < count {
		pos := vmath.Vec2{
			X: rng.Range(-limit, limit),
			Z: rng.Range(-limit, limit),
		}
		if pos.Len() < parameter.ObstacleClearRadius {
			continue
		}
		f.Obstacles = append(f.Obstacles, Obstacle{
			Pos:    pos,
			Radius: rng.Range(parameter.ObstacleMinRadius, parameter.ObstacleMaxRadius),
			Height: rng.Range(parameter.ObstacleMinHeight, parameter.ObstacleMaxHeight),
			Type:   ObstacleType(rng.Next() % 3),
		})
	}
	return f
}
