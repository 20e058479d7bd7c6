// Package config centralizes all tunable game parameters.
package config

import "time"

// Playfield - the fixed logical area in which the player and meteors live.
// Renderers scale it to whatever surface they draw on.
const (
	PlayfieldWidth  = 800
	PlayfieldHeight = 600
)

// Player
const (
	PlayerX         = 100.0
	PlayerWidth     = 180.0
	PlayerHeight    = 120.0
	PlayerSpeed     = 5.0 // Pixels per tick
	PlayerHitBoxPct = 0.2 // Collision box share of the sprite (body only, not wings)
)

// Meteors
const (
	MeteorVertices     = 8
	MeteorMinSize      = 20.0
	MeteorSizeRange    = 30.0 // Size is MeteorMinSize + [0, MeteorSizeRange)
	MeteorMinRadiusPct = 0.7  // Each vertex radius is [0.7, 1.0) of size
	MeteorSpeedJitter  = 2.0  // Added to the base speed, uniform [0, 2)
)

// Waves
const (
	MeteorsPerWave     = 25
	SpawnIntervalBase  = 60 // Ticks between spawns before the wave discount
	SpawnIntervalStep  = 2  // Ticks shaved off per wave
	SpawnIntervalFloor = 10
	BaseGameSpeed      = 2.0
	GameSpeedStep      = 0.5
)

// Scoring
const (
	ScoreMeteorDodged = 10
	LeaderboardSize   = 10
	MaxFirstNameLen   = 16 // Maximum length accepted on the name entry screen
)

// Client rendering
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
	BlinkFrequency  = 1.6 // Prompt toggles per second
)

// Terminal render area is clamped to this size and centered.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Inactivity (SSH sessions only)
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Clouds (decoration)
const (
	CloudCount   = 5
	CloudDrift   = 0.3 // Pixels per frame
	CloudSpacing = 200.0
	CloudTopRow  = 50.0
	CloudRowStep = 100.0
)
