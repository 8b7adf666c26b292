// Command bugstorm is the playable terminal build: the simulation
// core driven by a fixed ticker, rendered top-down with tcell, with
// procedural audio cues. The websocket build lives in cmd/server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"bugstorm/audio"
	"bugstorm/engine"
	"bugstorm/input"
	"bugstorm/parameter"
	"bugstorm/render"
	"bugstorm/service"
	"bugstorm/system"
)

const (
	frameInterval = 33 * time.Millisecond
	// Terminals deliver key-repeat, not key-up; a tap keeps an action
	// alive long enough for repeat to refresh it
	tapTTL = 0.15
)

func main() {
	var (
		seed        uint64
		difficulty  float64
		logPath     string
		mute        bool
		boardURL    string
		playsURL    string
		flatArena   bool
		noJump      bool
		basicWeapon bool
	)
	flag.Uint64Var(&seed, "seed", uint64(time.Now().UnixNano()), "world seed")
	flag.Float64Var(&difficulty, "difficulty", 1, "spawn rate multiplier")
	flag.StringVar(&logPath, "log", "bugstorm.log", "log file path")
	flag.BoolVar(&mute, "mute", false, "disable audio")
	flag.StringVar(&boardURL, "leaderboard", "", "leaderboard base URL (empty = offline)")
	flag.StringVar(&playsURL, "plays", "", "play counter URL (empty = disabled)")
	flag.BoolVar(&flatArena, "flat", false, "disable obstacles")
	flag.BoolVar(&noJump, "nojump", false, "disable jumping")
	flag.BoolVar(&basicWeapon, "basic", false, "disable special weapon pickups")
	flag.Parse()

	log := service.NewFileLogger(logPath)
	defer log.Sync()

	features := engine.Features{
		Obstacles:      !flatArena,
		Jump:           !noJump,
		SpecialWeapons: !basicWeapon,
	}
	world := engine.NewWorld(features, seed)
	world.Difficulty = difficulty
	game := engine.NewGame(world)
	system.Attach(game)

	wireBoundaries(game, boardURL, playsURL, log)

	cues := &audio.Cues{}
	if !mute {
		if err := cues.Init(); err != nil {
			log.Warnw("audio unavailable", "err", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "screen init:", err)
		os.Exit(1)
	}
	defer screen.Fini()

	log.Infow("bugstorm starting", "seed", seed, "difficulty", difficulty,
		"obstacles", features.Obstacles, "jump", features.Jump)

	runLoop(screen, game, cues)
	log.Info("bugstorm exiting")
}

// wireBoundaries connects the optional external services. The
// qualification list is fetched once up front; a failure leaves it
// empty, which treats every run as qualifying.
func wireBoundaries(game *engine.Game, boardURL, playsURL string, log *zap.SugaredLogger) {
	if boardURL != "" {
		board := service.NewHTTPLeaderboard(boardURL)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		entries, err := board.FetchTop(ctx, parameter.LeaderboardTopN)
		cancel()
		if err != nil {
			log.Warnw("leaderboard prefetch failed", "err", err)
		} else {
			game.SetLeaderboard(entries)
		}
		game.SubmitFunc = (&service.AsyncSubmitter{Leaderboard: board}).Submit
	}
	if playsURL != "" {
		game.Plays = service.AsyncIncrement{Counter: &service.HTTPPlayCounter{URL: playsURL}}
	}
}

func runLoop(screen tcell.Screen, game *engine.Game, cues *audio.Cues) {
	tracker := &input.Tracker{}
	view := render.NewView(screen)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	start := time.Now()
	last := start
	nameBuffer := ""
	prev := game.Snapshot()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			key, isKey := ev.(*tcell.EventKey)
			if !isKey {
				continue
			}
			if quit := handleKey(key, game, tracker, &nameBuffer, time.Since(start).Seconds()); quit {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			game.Step(dt, tracker.Snapshot(time.Since(start).Seconds()))
			snap := game.Snapshot()
			playCues(cues, prev, snap)
			prev = snap
			view.Draw(snap, nameBuffer)
		}
	}
}

// handleKey routes one key event by game state. Returns true to exit
// the program.
func handleKey(key *tcell.EventKey, game *engine.Game, tracker *input.Tracker, nameBuffer *string, now float64) bool {
	switch game.State() {
	case engine.StateEnteringName:
		switch key.Key() {
		case tcell.KeyEnter:
			game.SubmitName(*nameBuffer)
			*nameBuffer = ""
		case tcell.KeyEscape:
			game.SkipSubmit()
			*nameBuffer = ""
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if r := []rune(*nameBuffer); len(r) > 0 {
				*nameBuffer = string(r[:len(r)-1])
			}
		case tcell.KeyRune:
			if len([]rune(*nameBuffer)) < parameter.NameMaxLength {
				*nameBuffer += string(key.Rune())
			}
		}
		return false

	case engine.StateIdle, engine.StateGameOver:
		switch key.Key() {
		case tcell.KeyEnter:
			game.Start()
		case tcell.KeyEscape:
			return true
		case tcell.KeyRune:
			if key.Rune() == 'q' {
				return true
			}
		}
		return false

	case engine.StatePaused:
		if key.Key() == tcell.KeyRune {
			switch key.Rune() {
			case 'p':
				game.TogglePause()
			case 'q':
				game.Quit()
			}
		}
		return false
	}

	// Playing
	switch key.Key() {
	case tcell.KeyUp:
		tracker.Tap(input.ActionForward, now, tapTTL)
	case tcell.KeyDown:
		tracker.Tap(input.ActionBack, now, tapTTL)
	case tcell.KeyLeft:
		tracker.Tap(input.ActionTurnLeft, now, tapTTL)
	case tcell.KeyRight:
		tracker.Tap(input.ActionTurnRight, now, tapTTL)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'w':
			tracker.Tap(input.ActionForward, now, tapTTL)
		case 's':
			tracker.Tap(input.ActionBack, now, tapTTL)
		case 'a':
			tracker.Tap(input.ActionTurnLeft, now, tapTTL)
		case 'd':
			tracker.Tap(input.ActionTurnRight, now, tapTTL)
		case ' ':
			tracker.Tap(input.ActionFire, now, tapTTL)
		case 'j':
			tracker.Tap(input.ActionJump, now, tapTTL)
		case 'p':
			game.TogglePause()
			tracker.Reset()
		}
	}
	return false
}

// playCues compares consecutive snapshots and sounds the differences.
// The simulation stays unaware of audio.
func playCues(cues *audio.Cues, prev, cur engine.EntitySnapshot) {
	if cur.Player.Kills > prev.Player.Kills {
		cues.Kill()
	}
	if len(cur.Projectiles) > len(prev.Projectiles) {
		cues.Fire()
	}
	if len(cur.Explosions) > len(prev.Explosions) {
		cues.Explosion()
	}
	if cur.Player.Health > prev.Player.Health ||
		cur.Player.DoubleDamage && !prev.Player.DoubleDamage ||
		cur.Player.Turbo && !prev.Player.Turbo {
		cues.Pickup()
	}
	if prev.State == "playing" && (cur.State == "gameover" || cur.State == "entering_name") {
		cues.GameOver()
	}
}
