// Package session owns the authoritative state of one play-through and
// advances it one fixed step per tick.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/meteordodge/internal/loop/config"
	"github.com/tomz197/meteordodge/internal/object"
	"github.com/tomz197/meteordodge/internal/random"
	"github.com/tomz197/meteordodge/internal/score"
)

// Phase is the session's place in its lifecycle.
type Phase int

const (
	PhaseNotStarted       Phase = iota // Title screen, nothing played yet
	PhaseAwaitingIdentity              // Start requested, waiting for a name
	PhasePlaying                       // Ticks advance the game
	PhaseEnded                         // Player was hit; waiting for a new start
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseAwaitingIdentity:
		return "awaiting-identity"
	case PhasePlaying:
		return "playing"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Controls is the input sampled once at the top of each tick.
type Controls struct {
	Up   bool
	Down bool
}

// Store persists the identity and leaderboard.
type Store interface {
	LoadIdentity() (score.Identity, bool)
	SaveIdentity(id score.Identity) error
	LoadLeaderboard() score.Leaderboard
	RecordResult(id score.Identity, wave int) error
}

// Events receives fire-and-forget notifications, typically for audio.
type Events interface {
	OnSessionStart()
	OnSessionEnd()
	OnPlayerHit()
}

// NopEvents ignores all notifications.
type NopEvents struct{}

func (NopEvents) OnSessionStart() {}
func (NopEvents) OnSessionEnd()   {}
func (NopEvents) OnPlayerHit()    {}

// Options configures a Session. Zero values get defaults.
type Options struct {
	Rand   random.Source
	Store  Store
	Events Events
	Logger *log.Logger
	Screen object.Screen
}

// Session holds all mutable game state. It is not safe for concurrent use;
// a single driver goroutine owns it.
type Session struct {
	Phase           Phase
	Score           int
	Wave            int
	GameSpeed       float64
	Frame           int
	SpawnedThisWave int
	Meteors         []*object.Meteor
	Player          *object.Player

	screen    object.Screen
	scheduler object.WaveScheduler
	rng       random.Source
	store     Store
	events    Events
	logger    *log.Logger
	identity  *score.Identity
}

// New creates a session in PhaseNotStarted.
func New(opts Options) *Session {
	if opts.Rand == nil {
		opts.Rand = random.New(0)
	}
	if opts.Store == nil {
		opts.Store = score.NewMemoryStore()
	}
	if opts.Events == nil {
		opts.Events = NopEvents{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Screen.Width == 0 || opts.Screen.Height == 0 {
		opts.Screen = object.NewScreen(config.PlayfieldWidth, config.PlayfieldHeight)
	}

	s := &Session{
		Phase:     PhaseNotStarted,
		Wave:      1,
		GameSpeed: config.BaseGameSpeed,
		Player:    object.NewPlayer(opts.Screen),
		screen:    opts.Screen,
		scheduler: object.NewWaveScheduler(),
		rng:       opts.Rand,
		store:     opts.Store,
		events:    opts.Events,
		logger:    opts.Logger.WithPrefix("session"),
	}
	if id, ok := s.store.LoadIdentity(); ok {
		s.identity = &id
	}
	return s
}

// Screen returns the playfield dimensions.
func (s *Session) Screen() object.Screen {
	return s.screen
}

// Identity returns the current player identity, if known.
func (s *Session) Identity() (score.Identity, bool) {
	if s.identity == nil {
		return score.Identity{}, false
	}
	return *s.identity, true
}

// Leaderboard returns the stored leaderboard.
func (s *Session) Leaderboard() score.Leaderboard {
	return s.store.LoadLeaderboard()
}

// RequestStart starts a session if the player is known, otherwise moves to
// PhaseAwaitingIdentity. It does nothing while playing.
func (s *Session) RequestStart() Phase {
	if s.Phase == PhasePlaying {
		return s.Phase
	}
	if s.identity == nil {
		if id, ok := s.store.LoadIdentity(); ok {
			s.identity = &id
		}
	}
	if s.identity == nil {
		s.Phase = PhaseAwaitingIdentity
		return s.Phase
	}
	s.Start()
	return s.Phase
}

// SubmitIdentity validates and saves the player's name, then starts the
// session. Invalid input leaves the session waiting and returns an error
// wrapping score.ErrInvalidIdentity.
func (s *Session) SubmitIdentity(firstName, lastInitial string) error {
	id, err := score.NewIdentity(firstName, lastInitial)
	if err != nil {
		return err
	}
	if err := s.store.SaveIdentity(id); err != nil {
		s.logger.Warn("identity not saved", "err", err)
	}
	s.identity = &id
	s.Start()
	return nil
}

// CancelIdentity abandons name entry and returns to the title screen.
func (s *Session) CancelIdentity() {
	if s.Phase == PhaseAwaitingIdentity {
		s.Phase = PhaseNotStarted
	}
}

// Start resets every session field and begins playing.
func (s *Session) Start() {
	s.Score = 0
	s.Wave = 1
	s.GameSpeed = config.BaseGameSpeed
	s.Frame = 0
	s.SpawnedThisWave = 0
	s.Meteors = s.Meteors[:0]
	s.Player = object.NewPlayer(s.screen)
	s.Phase = PhasePlaying

	s.logger.Debug("session started")
	s.events.OnSessionStart()
}

// Tick advances the game by one step. It is a no-op unless playing.
func (s *Session) Tick(in Controls) {
	if s.Phase != PhasePlaying {
		return
	}

	s.Player.Move(in.Up, in.Down, s.screen)

	// Spawn is checked before advance so the two never fire on the same tick.
	if s.scheduler.ShouldSpawn(s.Frame, s.Wave, s.SpawnedThisWave) {
		s.Meteors = append(s.Meteors, object.NewMeteor(s.rng, s.GameSpeed, s.screen))
		s.SpawnedThisWave++
	}
	if s.scheduler.ShouldAdvance(s.SpawnedThisWave, len(s.Meteors)) {
		s.Wave, s.SpawnedThisWave, s.GameSpeed = s.scheduler.Advance(s.Wave, s.GameSpeed)
		s.logger.Debug("wave advanced", "wave", s.Wave, "speed", s.GameSpeed)
	}

	s.advanceMeteors()

	box := s.Player.HitBox()
	for _, m := range s.Meteors {
		if m.Hits(box) {
			s.events.OnPlayerHit()
			s.end()
			return
		}
	}

	s.Frame++
}

// advanceMeteors moves every meteor and drops the ones that got past,
// awarding the dodge score for each.
func (s *Session) advanceMeteors() {
	kept := s.Meteors[:0] // reuse backing array
	for _, m := range s.Meteors {
		m.Advance()
		if m.Gone() {
			s.Score += config.ScoreMeteorDodged
			continue
		}
		kept = append(kept, m)
	}
	clear(s.Meteors[len(kept):])
	s.Meteors = kept
}

// end finishes the session and reports the result.
func (s *Session) end() {
	s.Phase = PhaseEnded
	s.logger.Info("session ended", "score", s.Score, "wave", s.Wave)
	s.events.OnSessionEnd()

	if s.identity == nil {
		return
	}
	if err := s.store.RecordResult(*s.identity, s.Wave); err != nil {
		s.logger.Warn("result not recorded", "err", err)
	}
}
