package engine

import "bugstorm/component"

// The view types are deep copies: a renderer may keep them across
// ticks, serialize them, or read them from another goroutine after
// hand-off. Handles let it correlate entities between frames without
// ever touching live simulation state.

type PlayerView struct {
	X            float64 `json:"x"`
	Z            float64 `json:"z"`
	Rot          float64 `json:"rot"`
	Height       float64 `json:"height"`
	Airborne     bool    `json:"airborne"`
	Health       int     `json:"health"`
	Weapon       string  `json:"weapon"`
	DoubleDamage bool    `json:"doubleDamage"`
	Turbo        bool    `json:"turbo"`
	Score        int     `json:"score"`
	Kills        int     `json:"kills"`
}

type BugView struct {
	ID    Handle  `json:"id"`
	X     float64 `json:"x"`
	Z     float64 `json:"z"`
	VelX  float64 `json:"velX"`
	VelZ  float64 `json:"velZ"`
	Type  string  `json:"type"`
	Scale float64 `json:"scale"`
}

type ProjectileView struct {
	ID   Handle  `json:"id"`
	X    float64 `json:"x"`
	Z    float64 `json:"z"`
	Type string  `json:"type"`
}

type PickupView struct {
	ID     Handle  `json:"id"`
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Kind   string  `json:"kind"`
	Weapon string  `json:"weapon,omitempty"`
}

type ExplosionView struct {
	ID     Handle  `json:"id"`
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
	Age    float64 `json:"age"`
}

type ObstacleView struct {
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
	Height float64 `json:"height"`
}

// EntitySnapshot is the read-only world view handed to rendering
// layers. Weapon pickups are split out because renderers draw them
// differently from buff pickups.
type EntitySnapshot struct {
	State         string           `json:"state"`
	Time          float64          `json:"time"`
	Player        PlayerView       `json:"player"`
	Bugs          []BugView        `json:"bugs"`
	Projectiles   []ProjectileView `json:"projectiles"`
	Pickups       []PickupView     `json:"pickups"`
	WeaponPickups []PickupView     `json:"weaponPickups"`
	Explosions    []ExplosionView  `json:"explosions"`
	Obstacles     []ObstacleView   `json:"obstacles"`
}

// Snapshot copies the current world into an EntitySnapshot.
func (g *Game) Snapshot() EntitySnapshot {
	w := g.World
	now := w.Clock.Now()
	p := w.Player

	snap := EntitySnapshot{
		State: g.state.String(),
		Time:  now,
		Player: PlayerView{
			X:            p.Pos.X,
			Z:            p.Pos.Z,
			Rot:          p.Rot,
			Height:       p.Height,
			Airborne:     p.Airborne,
			Health:       p.Health,
			Weapon:       p.CurrentWeapon(now).String(),
			DoubleDamage: p.DoubleDamageActive(now),
			Turbo:        p.TurboActive(now),
			Score:        g.FinalScore(),
			Kills:        p.Kills,
		},
	}

	w.Bugs.Each(func(h Handle, b *component.Bug) {
		snap.Bugs = append(snap.Bugs, BugView{
			ID: h, X: b.Pos.X, Z: b.Pos.Z,
			VelX: b.Vel.X, VelZ: b.Vel.Z,
			Type: b.Type.String(), Scale: b.Scale,
		})
	})
	w.Projectiles.Each(func(h Handle, pr *component.Projectile) {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID: h, X: pr.Pos.X, Z: pr.Pos.Z, Type: pr.Type.String(),
		})
	})
	w.Pickups.Each(func(h Handle, pk *component.Pickup) {
		v := PickupView{ID: h, X: pk.Pos.X, Z: pk.Pos.Z, Kind: pk.Kind.String()}
		if pk.Kind == component.PickupWeapon {
			v.Weapon = pk.Weapon.String()
			snap.WeaponPickups = append(snap.WeaponPickups, v)
			return
		}
		snap.Pickups = append(snap.Pickups, v)
	})
	w.Explosions.Each(func(h Handle, e *component.Explosion) {
		snap.Explosions = append(snap.Explosions, ExplosionView{
			ID: h, X: e.Pos.X, Z: e.Pos.Z, Radius: e.Radius, Age: now - e.CreatedAt,
		})
	})
	for _, o := range w.Obstacles.Obstacles {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			X: o.Pos.X, Z: o.Pos.Z, Radius: o.Radius, Height: o.Height,
		})
	}
	return snap
}
