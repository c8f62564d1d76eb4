package main

// Spawner gates bursts behind a cooldown so a held button fires once per
// window instead of every tick.
type Spawner struct {
	delay    int
	cooldown int
}

// NewSpawner creates a spawner that waits delay ticks between bursts.
func NewSpawner(delay int) *Spawner {
	return &Spawner{delay: delay}
}

// Cooldown returns the ticks left before another burst may fire.
func (s *Spawner) Cooldown() int {
	return s.cooldown
}

// Tick advances the cooldown and reports whether a burst fires this tick.
// A tick that drains the cooldown never fires; the next one may.
func (s *Spawner) Tick(held bool) bool {
	if s.cooldown > 0 {
		s.cooldown--
		return false
	}
	if !held {
		return false
	}
	s.cooldown = s.delay
	return true
}
