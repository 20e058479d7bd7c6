package audio

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
)

func TestSoundManagerWithoutSpeaker(t *testing.T) {
	sm := NewSoundManager(log.New(io.Discard))

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound operations panicked without initialization: %v", r)
		}
	}()

	sm.OnSessionStart()
	if sm.Playing() {
		t.Error("music should not play without a speaker")
	}
	sm.OnPlayerHit()
	sm.OnSessionEnd()
	sm.Close()
}

func TestSoundManagerLifecycle(t *testing.T) {
	sm := NewSoundManager(log.New(io.Discard))
	if err := sm.Initialize(); err != nil {
		t.Logf("speaker unavailable (expected in CI): %v", err)
		return
	}
	defer sm.Close()

	if err := sm.Initialize(); err != nil {
		t.Fatalf("second Initialize should be a no-op, got %v", err)
	}

	sm.OnSessionStart()
	if !sm.Playing() {
		t.Fatal("music should play after session start")
	}
	sm.OnPlayerHit()
	sm.OnSessionEnd()
	if sm.Playing() {
		t.Fatal("music should stop after session end")
	}
}

func checkRange(t *testing.T, name string, samples [][2]float64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		for ch := 0; ch < 2; ch++ {
			if samples[i][ch] < -1 || samples[i][ch] > 1 {
				t.Fatalf("%s sample %d[%d] = %f out of range", name, i, ch, samples[i][ch])
			}
		}
	}
}

func TestMusicGeneratorIsEndless(t *testing.T) {
	g := NewMusicGenerator(sampleRate)
	buf := make([][2]float64, 4096)
	for i := 0; i < 50; i++ {
		n, ok := g.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("Stream = %d,%v, want %d,true", n, ok, len(buf))
		}
		checkRange(t, "music", buf, n)
	}
	if g.Err() != nil {
		t.Fatalf("Err = %v", g.Err())
	}
}

func TestHitSoundIsBounded(t *testing.T) {
	s := HitSound()
	want := sampleRate.N(hitDuration)

	buf := make([][2]float64, 1024)
	total := 0
	for {
		n, ok := s.Stream(buf)
		checkRange(t, "hit", buf, n)
		total += n
		if !ok {
			break
		}
		if total > want {
			t.Fatalf("hit sound ran past %d samples", want)
		}
	}
	if total != want {
		t.Fatalf("hit sound length = %d, want %d", total, want)
	}
}

func TestHitGeneratorIsDeterministic(t *testing.T) {
	a := make([][2]float64, 256)
	b := make([][2]float64, 256)
	NewHitGenerator(sampleRate).Stream(a)
	NewHitGenerator(sampleRate).Stream(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestWithVolumeSilent(t *testing.T) {
	s := withVolume(NewMusicGenerator(sampleRate), 0)
	buf := make([][2]float64, 512)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i] != [2]float64{} {
			t.Fatalf("sample %d = %v, want silence", i, buf[i])
		}
	}
	var _ beep.Streamer = s
}
