package system

import "bugstorm/engine"

// Attach registers the full rule set on a game in tick order.
func Attach(g *engine.Game) {
	w := g.World
	g.AddSystem(NewWeaponSystem(w))
	g.AddSystem(NewSpawnSystem(w))
	g.AddSystem(NewPlayerController(w))
	g.AddSystem(NewSwarmSystem(w))
	g.AddSystem(NewProjectileSystem(w))
	g.AddSystem(NewCombatResolver(w))
	g.AddSystem(NewExplosionSystem(w))
	g.AddSystem(NewScoreSystem(w))
}
