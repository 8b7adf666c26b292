package component

import "bugstorm/vmath"

// BugType is a cosmetic damage/score-weight tag at this layer; all
// types share the same steering and die to a single hit.
type BugType uint8

const (
	BugBeetle BugType = iota
	BugCentipede
	BugSpider
	BugScorpion
	BugWasp

	BugTypeCount = 5
)

func (t BugType) String() string {
	switch t {
	case BugBeetle:
		return "beetle"
	case BugCentipede:
		return "centipede"
	case BugSpider:
		return "spider"
	case BugScorpion:
		return "scorpion"
	case BugWasp:
		return "wasp"
	}
	return "unknown"
}

// Bug is a hostile swarm entity. Bugs never time out; they live until
// killed.
type Bug struct {
	Pos   vmath.Vec2
	Vel   vmath.Vec2 // derived each tick by steering, kept for rendering
	Type  BugType
	Scale float64

	// Seed drives the deterministic wander heading; assigned at spawn
	Seed uint64

	LastAttack float64 // game time of the last melee hit, seconds
}
