package main

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestCrackleGeneratorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewCrackleGenerator(rate, 50*time.Millisecond, 1)

	samples := make([][2]float64, 512)
	n, ok := g.Stream(samples)
	if !ok || n != 512 {
		t.Fatalf("Stream = (%d, %v), want (512, true)", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("sample %d channels differ", i)
		}
	}
	if g.Err() != nil {
		t.Errorf("Err = %v, want nil", g.Err())
	}
}

func TestCrackleGeneratorEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	g := NewCrackleGenerator(rate, 100*time.Millisecond, 2) // 100 samples

	samples := make([][2]float64, 64)
	total := 0
	for i := 0; i < 10; i++ {
		n, ok := g.Stream(samples)
		total += n
		if !ok {
			break
		}
	}
	if total != 100 {
		t.Errorf("streamed %d samples, want 100", total)
	}
	if n, ok := g.Stream(samples); n != 0 || ok {
		t.Errorf("Stream after end = (%d, %v), want (0, false)", n, ok)
	}
}

func TestSoundManagerSilentUntilInitialized(t *testing.T) {
	sm := NewSoundManager()
	// Must not touch the speaker or panic.
	sm.PlayBurst(0.5)
	sm.Close()
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, want 0", sm.mixer.Len())
	}
}
