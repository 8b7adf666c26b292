// Command server is the headless build: it serves the simulation over
// websocket to a browser renderer, one authoritative session per
// connection.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bugstorm/network"
	"bugstorm/service"
)

func main() {
	var (
		addr       string
		logPath    string
		boardURL   string
		playsURL   string
		difficulty float64
	)
	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&logPath, "log", "bugstorm-server.log", "log file path")
	flag.StringVar(&boardURL, "leaderboard", "", "leaderboard base URL (empty = offline)")
	flag.StringVar(&playsURL, "plays", "", "play counter URL (empty = disabled)")
	flag.Float64Var(&difficulty, "difficulty", 1, "spawn rate multiplier")
	flag.Parse()

	log := service.NewFileLogger(logPath)
	defer log.Sync()

	cfg := network.DefaultConfig()
	cfg.Difficulty = difficulty
	if boardURL != "" {
		cfg.Leaderboard = service.NewHTTPLeaderboard(boardURL)
	}
	if playsURL != "" {
		cfg.Plays = &service.HTTPPlayCounter{URL: playsURL, Log: log}
	}
	server := network.NewServer(cfg, log)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", server.HandleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		log.Infow("bugstorm server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("listen failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
