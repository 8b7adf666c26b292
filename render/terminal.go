// Package render draws an EntitySnapshot onto a tcell screen as a
// top-down view. It reads only snapshots; the simulation never learns
// it exists.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"bugstorm/engine"
	"bugstorm/parameter"
)

var (
	styleDefault   = tcell.StyleDefault
	stylePlayer    = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleBug       = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleShot      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePickup    = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleWeapon    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleExplosion = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleObstacle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWall      = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// View maps arena coordinates to a terminal cell grid centered on the
// arena origin.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// cell projects an arena position. Terminal cells are ~2x taller than
// wide, so X gets twice the scale to keep the arena visually square.
func (v *View) cell(x, z float64) (int, int) {
	w, h := v.screen.Size()
	scale := float64(h-3) / (2 * parameter.ArenaHalfExtent)
	cx := w/2 + int(math.Round(x*scale*2))
	cy := (h-2)/2 + int(math.Round(z*scale))
	return cx, cy
}

func (v *View) put(x, z float64, r rune, style tcell.Style) {
	cx, cy := v.cell(x, z)
	w, h := v.screen.Size()
	if cx < 0 || cy < 0 || cx >= w || cy >= h-2 {
		return
	}
	v.screen.SetContent(cx, cy, r, nil, style)
}

// Draw renders one snapshot plus the HUD and any state overlay.
func (v *View) Draw(snap engine.EntitySnapshot, nameBuffer string) {
	v.screen.Clear()
	v.drawWalls()

	for _, o := range snap.Obstacles {
		v.put(o.X, o.Z, '#', styleObstacle)
	}
	for _, p := range snap.Pickups {
		v.put(p.X, p.Z, pickupRune(p.Kind), stylePickup)
	}
	for _, p := range snap.WeaponPickups {
		v.put(p.X, p.Z, 'W', styleWeapon)
	}
	for _, e := range snap.Explosions {
		v.put(e.X, e.Z, '◎', styleExplosion)
	}
	for _, pr := range snap.Projectiles {
		v.put(pr.X, pr.Z, '·', styleShot)
	}
	for _, b := range snap.Bugs {
		v.put(b.X, b.Z, bugRune(b.Type), styleBug)
	}
	v.put(snap.Player.X, snap.Player.Z, facingRune(snap.Player.Rot), stylePlayer)

	v.drawHUD(snap)
	v.drawOverlay(snap, nameBuffer)
	v.screen.Show()
}

func (v *View) drawWalls() {
	half := parameter.ArenaHalfExtent
	step := half / 40
	for t := -half; t <= half; t += step {
		v.put(t, -half, '─', styleWall)
		v.put(t, half, '─', styleWall)
		v.put(-half, t, '│', styleWall)
		v.put(half, t, '│', styleWall)
	}
}

func (v *View) drawHUD(snap engine.EntitySnapshot) {
	_, h := v.screen.Size()
	hud := fmt.Sprintf(" HP %3d  SCORE %6d  KILLS %3d  WEAPON %-8s",
		snap.Player.Health, snap.Player.Score, snap.Player.Kills, snap.Player.Weapon)
	if snap.Player.DoubleDamage {
		hud += " [2X]"
	}
	if snap.Player.Turbo {
		hud += " [TURBO]"
	}
	v.text(0, h-1, hud, styleDefault)
}

func (v *View) drawOverlay(snap engine.EntitySnapshot, nameBuffer string) {
	w, h := v.screen.Size()
	center := func(y int, msg string, style tcell.Style) {
		v.text((w-len(msg))/2, y, msg, style)
	}
	switch snap.State {
	case "idle":
		center(h/2, "BUGSTORM - press ENTER to start", stylePlayer)
	case "paused":
		center(h/2, "PAUSED - p resume, q quit", styleDefault)
	case "gameover":
		center(h/2-1, fmt.Sprintf("GAME OVER - score %d", snap.Player.Score), styleBug)
		center(h/2+1, "ENTER to play again", styleDefault)
	case "entering_name":
		center(h/2-1, "HIGH SCORE! type name, ENTER submit, ESC skip", stylePlayer)
		center(h/2+1, "> "+nameBuffer+"_", styleDefault)
	}
}

func (v *View) text(x, y int, msg string, style tcell.Style) {
	for i, r := range msg {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func pickupRune(kind string) rune {
	switch kind {
	case "health":
		return '+'
	case "double-damage":
		return '2'
	case "turbo":
		return '»'
	}
	return '?'
}

func bugRune(t string) rune {
	switch t {
	case "beetle":
		return 'b'
	case "centipede":
		return 'c'
	case "spider":
		return 's'
	case "scorpion":
		return 'x'
	case "wasp":
		return 'w'
	}
	return '?'
}

// facingRune picks an arrow for the player's heading quadrant.
func facingRune(rot float64) rune {
	// Normalize to [0, 2π); 0 faces -Z (up on screen)
	a := math.Mod(rot, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	switch {
	case a < math.Pi/4 || a >= 7*math.Pi/4:
		return '▲'
	case a < 3*math.Pi/4:
		return '▶'
	case a < 5*math.Pi/4:
		return '▼'
	default:
		return '◀'
	}
}
