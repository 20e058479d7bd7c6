// Package desktop drives a session for a windowed front-end. It owns the
// screen flow and text layout; package window turns the result into pixels.
package desktop

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/meteordodge/internal/input"
	"github.com/tomz197/meteordodge/internal/loop/config"
	"github.com/tomz197/meteordodge/internal/loop/form"
	"github.com/tomz197/meteordodge/internal/loop/session"
	"github.com/tomz197/meteordodge/internal/object"
	"github.com/tomz197/meteordodge/internal/random"
	"github.com/tomz197/meteordodge/internal/score"
)

// Crash burst, sized for a full-resolution window.
const (
	burstCount    = 40
	burstSpeed    = 260.0 // Pixels per second
	burstLifetime = 1.0   // Seconds
)

// Frame is one update's worth of input.
type Frame struct {
	Up, Down bool
	Start    bool        // Space or Enter, just pressed
	Quit     bool        // Q, just pressed
	Keys     []input.Key // Discrete presses for the name form
}

// Options configures a Driver. Zero values get defaults.
type Options struct {
	Store  session.Store
	Events session.Events
	Logger *log.Logger
	Seed   int64 // 0 seeds from the clock
}

// Driver advances one session per update, the way the terminal client does,
// but leaves drawing to the caller.
type Driver struct {
	session   *session.Session
	form      form.NameForm
	particles object.Particles
	rng       random.Source
	logger    *log.Logger
	board     score.Leaderboard
	prevPhase session.Phase
	frames    int
}

// NewDriver creates a driver on the title screen.
func NewDriver(opts Options) *Driver {
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
	return &Driver{
		session:   sess,
		rng:       rng,
		logger:    logger.WithPrefix("desktop"),
		board:     sess.Leaderboard(),
		prevPhase: sess.Phase,
	}
}

// Step applies one frame of input. It reports false once the player quits.
func (d *Driver) Step(f Frame) bool {
	d.frames++

	switch d.session.Phase {
	case session.PhaseNotStarted, session.PhaseEnded:
		if f.Quit {
			return false
		}
		if f.Start {
			d.particles = d.particles.Release()
			if d.session.RequestStart() == session.PhaseAwaitingIdentity {
				d.form.Reset()
			}
		}
	case session.PhaseAwaitingIdentity:
		d.updateNameEntry(f.Keys)
	case session.PhasePlaying:
		if f.Quit {
			return false
		}
		d.session.Tick(session.Controls{Up: f.Up, Down: f.Down})
		if d.session.Phase == session.PhaseEnded {
			p := d.session.Player
			d.particles = append(d.particles, object.Explosion(d.rng, p.X, p.Y, burstCount, burstSpeed, burstLifetime)...)
		}
	}

	d.particles = d.particles.Update(config.TargetFrameTime.Seconds())

	if phase := d.session.Phase; phase != d.prevPhase {
		d.prevPhase = phase
		d.board = d.session.Leaderboard()
		d.logger.Debug("screen changed", "phase", phase)
	}
	return true
}

func (d *Driver) updateNameEntry(keys []input.Key) {
	switch d.form.Handle(keys) {
	case form.ActionSubmit:
		if err := d.session.SubmitIdentity(d.form.FirstName(), d.form.LastInitial()); err != nil {
			d.form.Reject(err)
		}
	case form.ActionCancel:
		d.session.CancelIdentity()
	}
}

// Close releases pooled particles.
func (d *Driver) Close() {
	d.particles = d.particles.Release()
}

// View is everything a renderer needs for one frame.
type View struct {
	Snapshot  session.Snapshot
	Form      *form.NameForm
	Board     score.Leaderboard
	Particles object.Particles
	Frames    int // Updates so far, drives decoration off the session clock
}

// View returns the state to draw. Particles and Form are shared with the
// driver and must not be kept past the next Step.
func (d *Driver) View() View {
	return View{
		Snapshot:  d.session.Snapshot(),
		Form:      &d.form,
		Board:     d.board,
		Particles: d.particles,
		Frames:    d.frames,
	}
}
