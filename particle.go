package main

import (
	"image/color"
	"iter"
)

// Vec2 is a 2D vector in screen units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Particle is a single firework spark.
type Particle struct {
	Pos         Vec2
	Vel         Vec2
	Color       color.RGBA
	Lifespan    int // remaining ticks
	MaxLifespan int // lifespan at birth, for the fade ratio
}

// ParticleStore is an unordered, growable set of particles. Removal swaps
// the last particle into the freed slot.
type ParticleStore struct {
	particles []Particle
}

// NewParticleStore creates a store with room for capacity particles.
func NewParticleStore(capacity int) *ParticleStore {
	return &ParticleStore{particles: make([]Particle, 0, capacity)}
}

// Len returns the number of live particles.
func (s *ParticleStore) Len() int {
	return len(s.particles)
}

// At returns a copy of the particle at index i.
func (s *ParticleStore) At(i int) Particle {
	return s.particles[i]
}

// Reserve grows capacity so that n more particles can be appended
// without reallocating.
func (s *ParticleStore) Reserve(n int) {
	if cap(s.particles)-len(s.particles) >= n {
		return
	}
	grown := make([]Particle, len(s.particles), 2*cap(s.particles)+n)
	copy(grown, s.particles)
	s.particles = grown
}

// Append adds a particle.
func (s *ParticleStore) Append(p Particle) {
	s.particles = append(s.particles, p)
}

// All yields every live particle by value.
func (s *ParticleStore) All() iter.Seq[Particle] {
	return func(yield func(Particle) bool) {
		for _, p := range s.particles {
			if !yield(p) {
				return
			}
		}
	}
}

// Reset drops all particles, keeping capacity.
func (s *ParticleStore) Reset() {
	s.particles = s.particles[:0]
}

// removeAt overwrites slot i with the last particle and shrinks by one.
func (s *ParticleStore) removeAt(i int) {
	last := len(s.particles) - 1
	s.particles[i] = s.particles[last]
	s.particles[last] = Particle{}
	s.particles = s.particles[:last]
}
