package network

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"bugstorm/engine"
	"bugstorm/input"
	"bugstorm/parameter"
	"bugstorm/service"
	"bugstorm/system"
)

// clientMessage is everything a client may send. Type selects the
// meaning; unknown types are ignored.
type clientMessage struct {
	Type    string  `json:"type"` // input | start | pause | quit | submit | skip
	Forward float64 `json:"forward,omitempty"`
	Turn    float64 `json:"turn,omitempty"`
	Fire    bool    `json:"fire,omitempty"`
	Jump    bool    `json:"jump,omitempty"`
	Name    string  `json:"name,omitempty"`
}

// boardUpdate carries prefetched leaderboard entries to the tick
// goroutine. Internal only; nothing a client sends can produce one.
type boardUpdate struct {
	entries []service.Entry
}

// stateMessage wraps a snapshot for the wire.
type stateMessage struct {
	Type string `json:"type"`
	engine.EntitySnapshot
}

// resultMessage surfaces an asynchronous submission verdict to the UI.
type resultMessage struct {
	Type string `json:"type"`
	service.SubmitResult
}

// session owns one game and one connection. The game is touched only
// by the tick goroutine; the read pump communicates through the
// command channel and the shared input slot.
type session struct {
	ws   *websocket.Conn
	cfg  Config
	log  *zap.SugaredLogger
	game *engine.Game

	send     chan []byte
	commands chan clientMessage
	board    chan boardUpdate
	closed   chan struct{}

	mu     sync.Mutex
	intent input.Snapshot
}

func newSession(ws *websocket.Conn, cfg Config, seed uint64, log *zap.SugaredLogger) *session {
	world := engine.NewWorld(cfg.Features, seed)
	world.Difficulty = cfg.Difficulty
	game := engine.NewGame(world)
	system.Attach(game)

	sess := &session{
		ws:       ws,
		cfg:      cfg,
		log:      log,
		game:     game,
		send:     make(chan []byte, 64),
		commands: make(chan clientMessage, 16),
		board:    make(chan boardUpdate, 1),
		closed:   make(chan struct{}),
	}

	if cfg.Plays != nil {
		game.Plays = service.AsyncIncrement{Counter: cfg.Plays}
	}
	if cfg.Leaderboard != nil {
		submitter := &service.AsyncSubmitter{
			Leaderboard: cfg.Leaderboard,
			Log:         log,
			OnResult:    sess.pushResult,
		}
		game.SubmitFunc = submitter.Submit
		go sess.prefetchTop()
	}
	return sess
}

// prefetchTop loads the qualification list off the tick loop and hands
// it over on the internal board channel, so the game only ever sees it
// between ticks. A failed fetch leaves the list empty, which qualifies
// every run; the external service stays authoritative either way.
func (s *session) prefetchTop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	entries, err := s.cfg.Leaderboard.FetchTop(ctx, parameter.LeaderboardTopN)
	if err != nil {
		s.log.Warnw("leaderboard prefetch failed", "err", err)
		return
	}
	select {
	case s.board <- boardUpdate{entries: entries}:
	case <-s.closed:
	}
}

func (s *session) run() {
	go s.writePump()
	go s.readPump()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-s.closed:
			return
		case cmd := <-s.commands:
			s.apply(cmd)
		case up := <-s.board:
			s.game.SetLeaderboard(up.entries)
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			s.mu.Lock()
			intent := s.intent
			s.mu.Unlock()

			s.game.Step(dt, intent)
			s.pushSnapshot()
		}
	}
}

func (s *session) apply(cmd clientMessage) {
	switch cmd.Type {
	case "start":
		s.game.Start()
	case "pause":
		s.game.TogglePause()
	case "quit":
		s.game.Quit()
	case "submit":
		s.game.SubmitName(cmd.Name)
	case "skip":
		s.game.SkipSubmit()
	}
}

func (s *session) pushSnapshot() {
	b, err := json.Marshal(stateMessage{Type: "state", EntitySnapshot: s.game.Snapshot()})
	if err != nil {
		return
	}
	select {
	case s.send <- b:
	default:
		// Slow client: drop the frame rather than stall the tick
	}
}

func (s *session) pushResult(res service.SubmitResult) {
	b, err := json.Marshal(resultMessage{Type: "submitResult", SubmitResult: res})
	if err != nil {
		return
	}
	select {
	case s.send <- b:
	default:
	}
}

func (s *session) writePump() {
	defer s.ws.Close()
	for {
		select {
		case <-s.closed:
			return
		case msg := <-s.send:
			s.ws.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := s.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}
}

func (s *session) readPump() {
	defer s.ws.Close()
	defer close(s.closed)
	s.ws.SetReadLimit(4096)

	for {
		_, payload, err := s.ws.ReadMessage()
		if err != nil {
			s.log.Infow("session closed", "err", err)
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			continue
		}
		if msg.Type == "input" {
			s.mu.Lock()
			s.intent = input.Snapshot{
				Forward: msg.Forward,
				Turn:    msg.Turn,
				Fire:    msg.Fire,
				Jump:    msg.Jump,
			}.Sanitized()
			s.mu.Unlock()
			continue
		}
		select {
		case s.commands <- msg:
		default:
			// Command burst: drop rather than block the reader
		}
	}
}
