// Package audio plays the background music and hit sound through the
// system speaker. Every operation degrades to a no-op when no audio device
// is available.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	hitDuration = 400 * time.Millisecond
	musicVolume = 0.5
)

// SoundManager owns the speaker mixer. It implements the session event
// hooks: music loops while a session plays and a hit sounds on collision.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	logger      *log.Logger
	initialized bool
}

// NewSoundManager creates a sound manager. Call Initialize before use.
func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger.WithPrefix("audio"),
	}
}

// Initialize opens the speaker. A failure leaves the manager silent.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		sm.logger.Warn("speaker unavailable, audio disabled", "err", err)
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Close stops all sounds.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	sm.music = nil
	sm.initialized = false
}

// OnSessionStart restarts the music loop from the top.
func (sm *SoundManager) OnSessionStart() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()

	if sm.music != nil {
		sm.music.Paused = true
		sm.music.Streamer = nil // mixer drops drained streamers
	}
	sm.music = &beep.Ctrl{Streamer: withVolume(NewMusicGenerator(sampleRate), musicVolume)}
	sm.mixer.Add(sm.music)
}

// OnSessionEnd stops the music.
func (sm *SoundManager) OnSessionEnd() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	sm.music.Streamer = nil
	speaker.Unlock()
	sm.music = nil
}

// OnPlayerHit plays the hit sound once.
func (sm *SoundManager) OnPlayerHit() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(HitSound())
	speaker.Unlock()
}

// Playing reports whether the music loop is active.
func (sm *SoundManager) Playing() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.music != nil && !sm.music.Paused
}

// HitSound returns a finite hit sound streamer.
func HitSound() beep.Streamer {
	return beep.Take(sampleRate.N(hitDuration), NewHitGenerator(sampleRate))
}

// withVolume scales s by a linear gain; 0 or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
