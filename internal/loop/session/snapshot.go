package session

import (
	"github.com/tomz197/meteordodge/internal/object"
	"github.com/tomz197/meteordodge/internal/physics"
	"github.com/tomz197/meteordodge/internal/score"
)

// PlayerView is a read-only copy of the player for renderers.
type PlayerView struct {
	X, Y          float64
	Width, Height float64
	HitBox        physics.Box
}

// MeteorView is a read-only copy of a meteor for renderers.
type MeteorView struct {
	X, Y     float64
	Size     float64
	Vertices []physics.Point // World space, closed polygon
}

// Snapshot is an immutable view of the session after a tick.
type Snapshot struct {
	Phase       Phase
	Score       int
	Wave        int
	Frame       int
	Screen      object.Screen
	Player      PlayerView
	Meteors     []MeteorView
	Identity    score.Identity
	HasIdentity bool
}

// Snapshot copies the state renderers need. The result shares nothing with
// the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:  s.Phase,
		Score:  s.Score,
		Wave:   s.Wave,
		Frame:  s.Frame,
		Screen: s.screen,
		Player: PlayerView{
			X:      s.Player.X,
			Y:      s.Player.Y,
			Width:  s.Player.Width,
			Height: s.Player.Height,
			HitBox: s.Player.HitBox(),
		},
		Meteors: make([]MeteorView, 0, len(s.Meteors)),
	}
	for _, m := range s.Meteors {
		snap.Meteors = append(snap.Meteors, MeteorView{
			X:        m.X,
			Y:        m.Y,
			Size:     m.Size,
			Vertices: m.WorldVertices(nil),
		})
	}
	if s.identity != nil {
		snap.Identity = *s.identity
		snap.HasIdentity = true
	}
	return snap
}
