// Package component defines the simulation's entity records. These are
// plain data; all behavior lives in the system package.
package component

import "bugstorm/parameter"

// WeaponType tags a projectile source. The blaster is always
// available; the others arrive via weapon pickups.
type WeaponType uint8

const (
	WeaponBlaster WeaponType = iota
	WeaponScatter
	WeaponRocket
)

func (t WeaponType) String() string {
	switch t {
	case WeaponBlaster:
		return "blaster"
	case WeaponScatter:
		return "scatter"
	case WeaponRocket:
		return "rocket"
	}
	return "unknown"
}

// WeaponSpec holds the per-type firing parameters. Variants differ
// only in these numbers.
type WeaponSpec struct {
	CooldownSec float64 // minimum time between trigger pulls
	Speed       float64 // units/s
	HitRadius   float64
	Pellets     int     // pellets per trigger pull
	SpreadStep  float64 // radians between adjacent pellets
	Area        bool    // area-of-effect on hit instead of single target
	BlastRadius float64 // only meaningful when Area
}

// Spec returns the firing parameters for the weapon type.
func (t WeaponType) Spec() WeaponSpec {
	switch t {
	case WeaponScatter:
		return WeaponSpec{
			CooldownSec: parameter.ScatterCooldown.Seconds(),
			Speed:       parameter.ScatterSpeed,
			HitRadius:   parameter.ScatterHitRadius,
			Pellets:     parameter.ScatterPelletCount,
			SpreadStep:  parameter.ScatterSpreadStep,
		}
	case WeaponRocket:
		return WeaponSpec{
			CooldownSec: parameter.RocketCooldown.Seconds(),
			Speed:       parameter.RocketSpeed,
			HitRadius:   parameter.RocketHitRadius,
			Pellets:     1,
			Area:        true,
			BlastRadius: parameter.RocketBlastRadius,
		}
	default:
		return WeaponSpec{
			CooldownSec: parameter.BlasterCooldown.Seconds(),
			Speed:       parameter.BlasterSpeed,
			HitRadius:   parameter.BlasterHitRadius,
			Pellets:     1,
		}
	}
}
