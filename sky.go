package main

import (
	"image/color"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Noise parameters
const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3

	starSpread  = 0.37  // noise-space distance between neighbouring stars
	twinkleRate = 0.015 // noise-space distance per tick
)

// Sky is a static star field whose brightness drifts with Perlin noise.
type Sky struct {
	stars []Vec2
	noise *perlin.Perlin
}

// NewSky scatters count stars over a width x height area.
func NewSky(count int, width, height float64, seed int64) *Sky {
	rng := rand.New(rand.NewPCG(uint64(seed), 0x5eed))
	stars := make([]Vec2, count)
	for i := range stars {
		stars[i] = Vec2{rng.Float64() * width, rng.Float64() * height}
	}
	return &Sky{
		stars: stars,
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed),
	}
}

// Len returns the number of stars.
func (s *Sky) Len() int {
	return len(s.stars)
}

// Brightness returns star i's alpha at the given tick, in
// [SkyMinAlpha, SkyMaxAlpha].
func (s *Sky) Brightness(i, tick int) float64 {
	n := s.noise.Noise2D(float64(i)*starSpread, float64(tick)*twinkleRate)
	// Noise2D is roughly in [-1, 1]
	t := (n + 1) / 2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return SkyMinAlpha + t*(SkyMaxAlpha-SkyMinAlpha)
}

// Draw paints every star as a single pixel onto dst.
func (s *Sky) Draw(dst *ebiten.Image, tick int) {
	for i, st := range s.stars {
		a := uint8(s.Brightness(i, tick) * 255)
		vector.DrawFilledRect(dst, float32(st.X), float32(st.Y), 1, 1, color.NRGBA{0xe8, 0xe8, 0xff, a}, false)
	}
}
