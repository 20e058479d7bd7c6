package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Bass line of the music loop, one note per beat (Hz). A minor arpeggio.
var musicNotes = []float64{110, 130.81, 164.81, 130.81, 98, 123.47, 146.83, 123.47}

// MusicGenerator streams an endless driving bass line with a kick on every
// beat. It never ends on its own; pause it through a beep.Ctrl.
type MusicGenerator struct {
	sr   beep.SampleRate
	pos  int
	beat int // Samples per beat
}

// NewMusicGenerator creates a music generator at 140 BPM.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:   sr,
		beat: sr.N(time.Minute / 140),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	kickLen := g.sr.N(80 * time.Millisecond)
	for i := range samples {
		beatPos := g.pos % g.beat
		note := musicNotes[(g.pos/g.beat)%len(musicNotes)]
		t := float64(g.pos) / float64(g.sr)

		kick := 0.0
		if beatPos < kickLen {
			env := 1 - float64(beatPos)/float64(kickLen)
			kick = 0.35 * env * math.Sin(2*math.Pi*55*(1+2*env)*t)
		}

		// Saw-ish bass: fundamental plus two harmonics, gated per beat.
		gate := math.Exp(-3 * float64(beatPos) / float64(g.beat))
		bass := 0.12 * gate * (math.Sin(2*math.Pi*note*t) +
			0.5*math.Sin(2*math.Pi*note*2*t) +
			0.25*math.Sin(2*math.Pi*note*3*t))

		sample := kick + bass
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}

// HitGenerator streams a noisy thud: a falling tone under decaying noise.
// Wrap it in beep.Take to bound its length.
type HitGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
}

// NewHitGenerator creates a hit sound generator. The noise is seeded so the
// sound is identical every time.
func NewHitGenerator(sr beep.SampleRate) *HitGenerator {
	return &HitGenerator{sr: sr, seed: 0x2545f491}
}

func (g *HitGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		env := math.Exp(-t * 10)

		// xorshift32
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		tone := math.Sin(2 * math.Pi * (180 - 120*math.Min(t*4, 1)) * t)

		sample := env * (0.3*noise + 0.4*tone)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *HitGenerator) Err() error {
	return nil
}
