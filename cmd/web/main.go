package main

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/meteordodge/internal/config"
	"github.com/tomz197/meteordodge/internal/score"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

var pageTemplate = template.Must(template.New("index").Parse(htmlPage))

// leaderboardSource is where the page reads scores from.
type leaderboardSource interface {
	Leaderboard() score.Leaderboard
}

type pageData struct {
	SSHHost     string
	Leaderboard score.Leaderboard
}

// newHandler serves the landing page and the leaderboard as JSON.
func newHandler(board leaderboardSource, sshHost string, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := pageData{SSHHost: sshHost, Leaderboard: board.Leaderboard()}
		if err := pageTemplate.Execute(w, data); err != nil {
			logger.Error("render page", "err", err)
		}
	})

	mux.HandleFunc("GET /leaderboard.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		lb := board.Leaderboard()
		if lb == nil {
			lb = score.Leaderboard{}
		}
		if err := json.NewEncoder(w).Encode(lb); err != nil {
			logger.Error("encode leaderboard", "err", err)
		}
	})

	return mux
}

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	store := score.NewFileStore(config.DataPath(), logger)

	addr := net.JoinHostPort(host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newHandler(store, sshHost, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting web server", "addr", "http://"+addr, "data", store.Path())
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
