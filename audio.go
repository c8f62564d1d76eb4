package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(48000)
	burstDuration = 600 * time.Millisecond
)

// SoundManager plays a crackle for every burst. A manager that failed to
// initialize stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	seed        uint64
}

// NewSoundManager creates an uninitialized sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		seed:  uint64(time.Now().UnixNano()),
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// PlayBurst queues one crackle. pan ranges from -1 (left) to 1 (right).
func (sm *SoundManager) PlayBurst(pan float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.seed++
	s := &effects.Pan{
		Streamer: NewCrackleGenerator(sampleRate, burstDuration, sm.seed),
		Pan:      math.Max(-1, math.Min(1, pan)),
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close silences the mixer and releases the audio device.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// CrackleGenerator produces a firework pop: a low thump under decaying
// noise that thins out into sparse crackles.
type CrackleGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	rng     *rand.Rand
}

// NewCrackleGenerator creates a crackle lasting d.
func NewCrackleGenerator(sr beep.SampleRate, d time.Duration, seed uint64) *CrackleGenerator {
	return &CrackleGenerator{
		sr:      sr,
		samples: sr.N(d),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (g *CrackleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)

		thump := 0.35 * math.Exp(-t*18) * math.Sin(2*math.Pi*70*t)

		// Noise density drops over time so the tail is sparse pops.
		noise := 0.0
		if g.rng.Float64() < math.Exp(-t*4) {
			noise = g.rng.Float64()*2 - 1
		}
		sample := thump + 0.3*math.Exp(-t*6)*noise

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrackleGenerator) Err() error {
	return nil
}
