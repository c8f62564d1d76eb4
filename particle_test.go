package main

import "testing"

func TestStoreAppendAndAt(t *testing.T) {
	s := NewParticleStore(4)
	for i := 1; i <= 3; i++ {
		s.Append(Particle{Lifespan: i, MaxLifespan: i})
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if got := s.At(1).Lifespan; got != 2 {
		t.Errorf("At(1).Lifespan = %d, want 2", got)
	}
}

func TestStoreRemoveAtSwapsLast(t *testing.T) {
	s := NewParticleStore(0)
	for i := 0; i < 4; i++ {
		s.Append(Particle{Lifespan: i + 1})
	}

	s.removeAt(1)

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	want := []int{1, 4, 3}
	for i, w := range want {
		if got := s.At(i).Lifespan; got != w {
			t.Errorf("At(%d).Lifespan = %d, want %d", i, got, w)
		}
	}

	// Removing the last slot just shrinks.
	s.removeAt(2)
	if s.Len() != 2 || s.At(1).Lifespan != 4 {
		t.Errorf("after removing last: len=%d At(1)=%d", s.Len(), s.At(1).Lifespan)
	}
}

func TestStoreReserveKeepsContents(t *testing.T) {
	s := NewParticleStore(1)
	s.Append(Particle{Lifespan: 7})
	s.Reserve(2000)

	if cap(s.particles)-s.Len() < 2000 {
		t.Errorf("spare capacity = %d, want >= 2000", cap(s.particles)-s.Len())
	}
	if s.Len() != 1 || s.At(0).Lifespan != 7 {
		t.Errorf("contents lost after Reserve")
	}

	before := cap(s.particles)
	s.Reserve(10)
	if cap(s.particles) != before {
		t.Errorf("Reserve with spare room reallocated: cap %d -> %d", before, cap(s.particles))
	}
}

func TestStoreAllYieldsEveryParticle(t *testing.T) {
	s := NewParticleStore(0)
	for i := 0; i < 5; i++ {
		s.Append(Particle{Lifespan: 10})
	}
	n := 0
	for p := range s.All() {
		if p.Lifespan != 10 {
			t.Errorf("Lifespan = %d, want 10", p.Lifespan)
		}
		n++
	}
	if n != 5 {
		t.Errorf("yielded %d, want 5", n)
	}

	// Early break stops iteration.
	n = 0
	for range s.All() {
		n++
		break
	}
	if n != 1 {
		t.Errorf("yielded %d after break, want 1", n)
	}
}

func TestStoreReset(t *testing.T) {
	s := NewParticleStore(0)
	s.Append(Particle{})
	s.Reset()
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}
