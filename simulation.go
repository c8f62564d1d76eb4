package main

import (
	"image/color"
	"iter"
	"math"
	"math/rand/v2"
)

// InputState is the pointer state sampled once per tick.
type InputState struct {
	Held bool // primary button down
	Pos  Vec2
}

// Sprite is the per-particle draw data handed to the renderer.
type Sprite struct {
	Pos   Vec2
	Color color.NRGBA
}

// Simulation owns the particle store and advances it one tick at a time.
type Simulation struct {
	cfg       Config
	particles *ParticleStore
	spawner   *Spawner
	rng       *rand.Rand
	TickCount int
}

// NewSimulation creates an empty simulation drawing randomness from rng.
func NewSimulation(cfg Config, rng *rand.Rand) *Simulation {
	return &Simulation{
		cfg:       cfg,
		particles: NewParticleStore(cfg.ParticleCount),
		spawner:   NewSpawner(cfg.SpawnDelay),
		rng:       rng,
	}
}

// Particles returns the live particle store.
func (s *Simulation) Particles() *ParticleStore {
	return s.particles
}

// Spawner returns the burst cooldown gate.
func (s *Simulation) Spawner() *Spawner {
	return s.spawner
}

// Tick runs one frame: spawn if the input qualifies, then step physics.
// It reports whether a burst was emitted.
func (s *Simulation) Tick(in InputState) bool {
	burst := s.spawner.Tick(in.Held)
	if burst {
		s.SpawnBurst(in.Pos)
	}
	s.Step()
	s.TickCount++
	return burst
}

// SpawnBurst emits one burst of particles at pos, tinted from a fresh
// colour set.
func (s *Simulation) SpawnBurst(pos Vec2) {
	colors := GenerateColorSet(s.rng, s.cfg.ColorSetSize, s.cfg.ColorVariation)
	if len(colors) == 0 {
		colors = []color.RGBA{{255, 255, 255, 255}}
	}

	s.particles.Reserve(s.cfg.ParticleCount)
	for i := 0; i < s.cfg.ParticleCount; i++ {
		deg := randRange(s.rng, 0, 360) + randRange(s.rng, -s.cfg.AngleJitter, s.cfg.AngleJitter)
		angle := float64(deg) * math.Pi / 180
		speed := float64(randRange(s.rng, s.cfg.Speed.Min, s.cfg.Speed.Max))
		vel := Vec2{
			X: math.Cos(angle)*speed + float64(randRange(s.rng, -s.cfg.VelJitter, s.cfg.VelJitter)),
			Y: math.Sin(angle)*speed + float64(randRange(s.rng, -s.cfg.VelJitter, s.cfg.VelJitter)),
		}
		life := randRange(s.rng, s.cfg.Lifespan.Min, s.cfg.Lifespan.Max)
		s.particles.Append(Particle{
			Pos:         pos,
			Vel:         vel,
			Color:       colors[s.rng.IntN(len(colors))],
			Lifespan:    life,
			MaxLifespan: life,
		})
	}
}

// Step applies gravity, moves every particle and ages it by one tick.
// Expired particles are swap-removed and the slot is revisited, so each
// particle is advanced exactly once. Returns the number removed.
func (s *Simulation) Step() int {
	removed := 0
	for i := 0; i < s.particles.Len(); {
		p := &s.particles.particles[i]
		p.Vel.Y += s.cfg.Gravity
		p.Pos = p.Pos.Add(p.Vel)
		p.Lifespan--

		if p.Lifespan <= 0 {
			s.particles.removeAt(i)
			removed++
			continue
		}
		i++
	}
	return removed
}

// DrawData yields position and faded colour for each live particle.
func (s *Simulation) DrawData() iter.Seq[Sprite] {
	return func(yield func(Sprite) bool) {
		for p := range s.particles.All() {
			sp := Sprite{
				Pos:   p.Pos,
				Color: color.NRGBA{p.Color.R, p.Color.G, p.Color.B, Fade(p)},
			}
			if !yield(sp) {
				return
			}
		}
	}
}

// Fade computes the particle's alpha as 1 - elapsed*255, truncated toward
// zero and stored into 8 bits. A brand new particle is 1. While
// 1 - elapsed*255 lies in (-1, 0] the result truncates to 0; for lifespans
// of 128 and up that is the first tick after spawn. Once it drops below -1
// the value wraps to near 255 and falls towards 0 as the particle ages.
func Fade(p Particle) uint8 {
	if p.MaxLifespan <= 0 {
		return 0
	}
	elapsed := float32(p.MaxLifespan-p.Lifespan) / float32(p.MaxLifespan)
	alpha := int(1 - elapsed*255)
	return uint8(alpha)
}
