package main

import "image/color"

// Window and frame pacing
const (
	ScreenWidth  = 800
	ScreenHeight = 450
	TargetTPS    = 60
	WindowTitle  = "Ebitengine | Fireworks"
)

// Simulation constants
const (
	ParticleCount  = 2000
	ParticleSize   = 3.0
	Gravity        = 0.1
	SpawnDelay     = 10 // ticks between bursts while the button is held
	ColorVariation = 40
	ColorSetSize   = 5

	MinLifespan = 100
	MaxLifespan = 200
	MinSpeed    = 1
	MaxSpeed    = 7
	AngleJitter = 20 // degrees
	VelJitter   = 2
)

// Render constants
const (
	GlowShaderPath = "glow.kage"
	GlowRadius     = 10.0

	StarCount   = 120
	SkyMinAlpha = 0.05
	SkyMaxAlpha = 0.6

	// ShowSky starts with the star backdrop visible; S toggles it at runtime.
	// Off gives a bare background under the glow pass.
	ShowSky = true
	// SoundEnabled opens the audio device for burst sounds.
	SoundEnabled = true
)

// Background is the clear colour of both the offscreen target and the screen.
var Background = color.RGBA{0x18, 0x18, 0x18, 0xff}

// Config controls burst shape and physics. DefaultConfig matches the
// constants above; tests build smaller ones.
type Config struct {
	// ParticleCount is the number of particles emitted per burst.
	ParticleCount int
	// SpawnDelay is the cooldown in ticks after a burst.
	SpawnDelay int
	// Gravity is added to every particle's vertical velocity each tick.
	Gravity float64
	// ColorSetSize is N in a 2N colour set.
	ColorSetSize int
	// ColorVariation is the per-channel jitter around the base colour.
	ColorVariation int
	// Lifespan is the inclusive range of particle lifespans in ticks.
	Lifespan IntRange
	// Speed is the inclusive range of launch speeds.
	Speed IntRange
	// AngleJitter is added to the launch angle, in degrees, either side.
	AngleJitter int
	// VelJitter is added to each velocity component, either side.
	VelJitter int
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min, Max int
}

// DefaultConfig returns the stock fireworks configuration.
func DefaultConfig() Config {
	return Config{
		ParticleCount:  ParticleCount,
		SpawnDelay:     SpawnDelay,
		Gravity:        Gravity,
		ColorSetSize:   ColorSetSize,
		ColorVariation: ColorVariation,
		Lifespan:       IntRange{MinLifespan, MaxLifespan},
		Speed:          IntRange{MinSpeed, MaxSpeed},
		AngleJitter:    AngleJitter,
		VelJitter:      VelJitter,
	}
}
