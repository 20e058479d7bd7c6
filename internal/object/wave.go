package object

import "github.com/tomz197/meteordodge/internal/loop/config"

// WaveScheduler decides when meteors spawn and when a wave is over.
// It holds no state; the session feeds it the counters each tick.
type WaveScheduler struct {
	PerWave       int     // Meteors spawned per wave
	IntervalBase  int     // Spawn interval before the per-wave discount
	IntervalStep  int     // Ticks removed from the interval per wave
	IntervalFloor int     // Shortest allowed interval
	SpeedStep     float64 // Base speed added on each wave transition
}

// NewWaveScheduler creates a scheduler with the standard pacing.
func NewWaveScheduler() WaveScheduler {
	return WaveScheduler{
		PerWave:       config.MeteorsPerWave,
		IntervalBase:  config.SpawnIntervalBase,
		IntervalStep:  config.SpawnIntervalStep,
		IntervalFloor: config.SpawnIntervalFloor,
		SpeedStep:     config.GameSpeedStep,
	}
}

// SpawnInterval returns the number of ticks between spawns in the given wave.
func (w WaveScheduler) SpawnInterval(wave int) int {
	return max(w.IntervalFloor, w.IntervalBase-wave*w.IntervalStep)
}

// ShouldSpawn reports whether a meteor spawns on this frame.
func (w WaveScheduler) ShouldSpawn(frame, wave, spawned int) bool {
	if spawned >= w.PerWave {
		return false
	}
	return frame%w.SpawnInterval(wave) == 0
}

// ShouldAdvance reports whether the wave is finished: its quota has spawned
// and every meteor has left the screen.
func (w WaveScheduler) ShouldAdvance(spawned, active int) bool {
	return spawned >= w.PerWave && active == 0
}

// Advance returns the counters for the next wave.
func (w WaveScheduler) Advance(wave int, speed float64) (nextWave, spawned int, nextSpeed float64) {
	return wave + 1, 0, speed + w.SpeedStep
}
