package object

import (
	"github.com/tomz197/meteordodge/internal/loop/config"
	"github.com/tomz197/meteordodge/internal/physics"
)

// Player is the pterodactyl. It only moves vertically.
type Player struct {
	X, Y   float64 // Position (center of sprite)
	Width  float64 // Sprite width
	Height float64 // Sprite height
	Speed  float64 // Vertical pixels per tick
}

// NewPlayer creates the player at its spawn point on the left side,
// vertically centered.
func NewPlayer(screen Screen) *Player {
	return &Player{
		X:      config.PlayerX,
		Y:      float64(screen.Height) / 2,
		Width:  config.PlayerWidth,
		Height: config.PlayerHeight,
		Speed:  config.PlayerSpeed,
	}
}

// Move applies one tick of vertical input and keeps the sprite on screen.
func (p *Player) Move(up, down bool, screen Screen) {
	if up {
		p.Y -= p.Speed
	}
	if down {
		p.Y += p.Speed
	}
	p.Y = physics.Clamp(p.Y, p.Height/2, float64(screen.Height)-p.Height/2)
}

// HitBox returns the collision box: the body only, a fifth of the sprite
// in each dimension.
func (p *Player) HitBox() physics.Box {
	return physics.CenteredBox(p.X, p.Y, p.Width*config.PlayerHitBoxPct, p.Height*config.PlayerHitBoxPct)
}
