package main

import (
	"image/color"
	"math/rand/v2"
)

// randRange returns a uniform random integer in [min, max].
func randRange(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.IntN(max-min+1)
}

// randomColor returns an opaque colour with uniform random channels.
func randomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(randRange(rng, 0, 255)),
		G: uint8(randRange(rng, 0, 255)),
		B: uint8(randRange(rng, 0, 255)),
		A: 255,
	}
}

// Complement inverts each colour channel, keeping alpha.
func Complement(c color.RGBA) color.RGBA {
	return color.RGBA{255 - c.R, 255 - c.G, 255 - c.B, c.A}
}

// jitterChannel offsets v by up to ±variation and clamps to [0,255].
func jitterChannel(rng *rand.Rand, v uint8, variation int) uint8 {
	n := randRange(rng, int(v)-variation, int(v)+variation)
	if n < 0 {
		n = 0
	} else if n > 255 {
		n = 255
	}
	return uint8(n)
}

// GenerateColorSet builds the palette for one burst: count variations of a
// random base colour followed by their complements.
func GenerateColorSet(rng *rand.Rand, count, variation int) []color.RGBA {
	if count <= 0 {
		return nil
	}
	base := randomColor(rng)

	colors := make([]color.RGBA, 2*count)
	for i := 0; i < count; i++ {
		colors[i] = color.RGBA{
			R: jitterChannel(rng, base.R, variation),
			G: jitterChannel(rng, base.G, variation),
			B: jitterChannel(rng, base.B, variation),
			A: base.A,
		}
	}
	for i := 0; i < count; i++ {
		colors[count+i] = Complement(colors[i])
	}
	return colors
}
