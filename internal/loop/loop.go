// Package loop drives one terminal play-through: it polls input, ticks the
// session at a fixed rate and renders every frame with ANSI output.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/meteordodge/internal/draw"
	"github.com/tomz197/meteordodge/internal/input"
	"github.com/tomz197/meteordodge/internal/loop/config"
	"github.com/tomz197/meteordodge/internal/loop/form"
	"github.com/tomz197/meteordodge/internal/loop/session"
	"github.com/tomz197/meteordodge/internal/object"
	"github.com/tomz197/meteordodge/internal/random"
	"github.com/tomz197/meteordodge/internal/score"
)

// shutdownDisplaySeconds is how long the shutdown notice stays up before the
// client exits on its own.
const shutdownDisplaySeconds = 10.0

// Crash burst shown on the game over screen.
const (
	burstCount    = 24
	burstSpeed    = 240.0 // Pixels per second
	burstLifetime = 1.2   // Seconds
)

// Options configures a Client. Zero values get defaults.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Store        session.Store
	Events       session.Events
	Logger       *log.Logger
	Seed         int64 // 0 seeds from the clock
	Inactivity   bool  // Warn and disconnect idle players
	Username     string
}

// Client renders one session to a terminal.
type Client struct {
	session      *session.Session
	form         form.NameForm
	state        clientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	username     string
	inactivity   bool
	lastInput    time.Time
	particles    object.Particles
	rng          random.Source
	board        score.Leaderboard // Refreshed on screen changes
}

// clientState is the per-frame driver state around the session.
type clientState struct {
	input         input.Input
	running       bool
	prevPhase     session.Phase
	isInactive    bool
	wasInactive   bool
	shuttingDown  bool
	wasShutdown   bool
	shutdownTimer float64
	frames        int // Frames drawn, drives decoration when not playing
}

// NewClient creates a client reading keys from r and drawing to w.
func NewClient(r *bufio.Reader, w io.Writer, opts Options) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	rng := random.New(opts.Seed)

	sess := session.New(session.Options{
		Rand:   rng,
		Store:  opts.Store,
		Events: opts.Events,
		Logger: logger,
	})

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.PlayfieldWidth, config.PlayfieldHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &Client{
		session:      sess,
		state:        clientState{running: true, prevPhase: sess.Phase},
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger.WithPrefix("client"),
		username:     opts.Username,
		inactivity:   opts.Inactivity,
		lastInput:    time.Now(),
		rng:          rng,
		board:        sess.Leaderboard(),
	}
}

// Run starts the client loop. It blocks until the player quits, the input
// closes, or ctx is cancelled and the shutdown notice has been shown.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	return NewClient(r, w, opts).Run(ctx)
}

// Run starts the client loop.
func (c *Client) Run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	for c.state.running {
		frameStart := time.Now()

		c.processInput()
		c.checkShutdown(ctx)
		c.updateScreen()
		c.update()

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	c.particles = c.particles.Release()
	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads this frame's keys and tracks inactivity.
func (c *Client) processInput() {
	c.state.input = input.ReadInput(c.inputStream)
	c.processInputFlags()
}

// processInputFlags applies inactivity and quit handling to this frame's keys.
func (c *Client) processInputFlags() {
	in := c.state.input

	if in.Typed() {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if c.inactivity {
		idle := time.Since(c.lastInput).Seconds()
		if idle > config.InactivityDisconnectUser {
			c.logger.Info("disconnecting idle player", "user", c.username)
			c.state.running = false
		} else if idle > config.InactivityWarnUser {
			c.state.isInactive = true
		}
	}

	// Letters are text on the name form; only Escape and Ctrl+C leave it.
	if c.session.Phase == session.PhaseAwaitingIdentity {
		if in.Has(input.KeyInterrupt) {
			c.state.running = false
		}
		return
	}
	if in.Quit {
		c.state.running = false
	}
}

// checkShutdown switches to the shutdown notice once ctx is cancelled, then
// exits after it has been displayed.
func (c *Client) checkShutdown(ctx context.Context) {
	if !c.state.shuttingDown {
		select {
		case <-ctx.Done():
			c.state.shuttingDown = true
			c.state.shutdownTimer = shutdownDisplaySeconds
		default:
			return
		}
	}
	c.state.shutdownTimer -= config.TargetFrameTime.Seconds()
	if c.state.shutdownTimer <= 0 {
		c.state.running = false
	}
}

// updateScreen handles terminal resize, clamping to the max render size.
// An actual change clears the terminal so nothing stale stays outside the
// new render area.
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := draw.ClampTermSize(termWidth, termHeight, config.MaxTermWidth, config.MaxTermHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.canvas.Resize(renderWidth, renderHeight)
		c.canvas.ForceRedraw()
	}
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// update advances the screen the session is on.
func (c *Client) update() {
	c.state.frames++
	if c.state.shuttingDown {
		return
	}
	in := c.state.input

	switch c.session.Phase {
	case session.PhaseNotStarted, session.PhaseEnded:
		if in.Space || in.Enter {
			c.startGame()
		}
	case session.PhaseAwaitingIdentity:
		c.updateNameEntry()
	case session.PhasePlaying:
		c.session.Tick(session.Controls{Up: in.Up, Down: in.Down})
		if c.session.Phase == session.PhaseEnded {
			c.crash()
		}
	}

	c.particles = c.particles.Update(config.TargetFrameTime.Seconds())
}

// startGame starts a session or opens the name form when no player is known.
func (c *Client) startGame() {
	input.ResetKeyInput(c.inputStream)
	c.particles = c.particles.Release()
	if c.session.RequestStart() == session.PhaseAwaitingIdentity {
		c.form.Reset()
	}
}

// updateNameEntry feeds keys to the name form.
func (c *Client) updateNameEntry() {
	switch c.form.Handle(c.state.input.Keys) {
	case form.ActionSubmit:
		if err := c.session.SubmitIdentity(c.form.FirstName(), c.form.LastInitial()); err != nil {
			c.form.Reject(err)
			return
		}
		input.ResetKeyInput(c.inputStream)
	case form.ActionCancel:
		c.session.CancelIdentity()
		input.ResetKeyInput(c.inputStream)
	}
}

// crash bursts debris out of the player's body.
func (c *Client) crash() {
	p := c.session.Player
	c.particles = append(c.particles, object.Explosion(c.rng, p.X, p.Y, burstCount, burstSpeed, burstLifetime)...)
}
