package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/meteordodge/internal/config"
	"github.com/tomz197/meteordodge/internal/draw"
	"github.com/tomz197/meteordodge/internal/loop"
	"github.com/tomz197/meteordodge/internal/score"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"

	// Players get the shutdown notice, then this long to drop off.
	drainTimeout = 15 * time.Second
)

func main() {
	logger := config.NewLogger(os.Stderr, "ssh")

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath, "data", config.DataPath())

	// One file for every player; each SSH user gets their own profile in it.
	store := score.NewFileStore(config.DataPath(), logger)

	// Cancelled on SIGTERM; every running game shows the shutdown notice.
	gameCtx, stopGames := context.WithCancel(context.Background())
	defer stopGames()

	var games sync.WaitGroup
	gh := &gameHandler{
		ctx:    gameCtx,
		store:  store,
		logger: logger,
		games:  &games,
	}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gh.middleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down, notifying connected players")
	stopGames()

	drained := make(chan struct{})
	go func() {
		games.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		logger.Info("all players disconnected")
	case <-time.After(drainTimeout):
		logger.Warn("players still connected, closing anyway")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameHandler runs one independent game per SSH session.
type gameHandler struct {
	ctx    context.Context
	store  *score.FileStore
	logger *log.Logger
	games  *sync.WaitGroup
}

// middleware handles SSH sessions and runs the game client.
func (h *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		// Refuse new players once shutdown has begun.
		if h.ctx.Err() != nil {
			fmt.Fprintln(sess, "Server is restarting, please try again in a minute.")
			return
		}
		h.games.Add(1)
		defer h.games.Done()

		logger := h.logger.With("user", sess.User())
		logger.Info("new game session", "terminal", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		// A dropped connection closes the input, which ends the game.
		err := loop.Run(h.ctx, bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc: sizeTracker.getSize,
			Store:        h.store.Profile(sess.User()),
			Logger:       logger,
			Inactivity:   true,
			Username:     sess.User(),
		})
		if err != nil {
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended")
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
