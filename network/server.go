// Package network exposes the simulation over websocket: one
// authoritative single-player session per connection, snapshots out,
// input intents in. The browser renderer owns presentation; nothing
// it sends can touch the world except through the input snapshot and
// the lifecycle commands.
package network

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"bugstorm/engine"
	"bugstorm/service"
)

// Config holds the per-server knobs.
type Config struct {
	TickInterval time.Duration
	Features     engine.Features
	Difficulty   float64

	// Optional boundaries; nil disables them
	Leaderboard service.Leaderboard
	Plays       service.PlayCounter
}

// DefaultConfig runs the full rule set at 20 TPS.
func DefaultConfig() Config {
	return Config{
		TickInterval: 50 * time.Millisecond,
		Features:     engine.AllFeatures(),
		Difficulty:   1,
	}
}

// Server upgrades websocket requests into game sessions.
type Server struct {
	cfg Config
	log *zap.SugaredLogger

	upgrader websocket.Upgrader
	seeds    *seedSource
}

func NewServer(cfg Config, log *zap.SugaredLogger) *Server {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = 50 * time.Millisecond
	}
	return &Server{
		cfg: cfg,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Browser clients are served from arbitrary dev origins
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		seeds: newSeedSource(),
	}
}

// HandleWS is the /ws endpoint: upgrade, then run one session until
// the connection dies.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	sess := newSession(ws, s.cfg, s.seeds.next(), s.log)
	s.log.Infow("session opened", "remote", r.RemoteAddr)
	go sess.run()
}

// seedSource hands out distinct world seeds across sessions.
type seedSource struct {
	ch chan uint64
}

func newSeedSource() *seedSource {
	ss := &seedSource{ch: make(chan uint64, 1)}
	ss.ch <- uint64(time.Now().UnixNano())
	return ss
}

func (ss *seedSource) next() uint64 {
	v := <-ss.ch
	ss.ch <- v*6364136223846793005 + 1442695040888963407
	return v
}
