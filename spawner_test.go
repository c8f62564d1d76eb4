package main

import "testing"

func TestSpawnerFiresWhenReady(t *testing.T) {
	s := NewSpawner(10)
	if !s.Tick(true) {
		t.Fatal("expected burst on first held tick")
	}
	if s.Cooldown() != 10 {
		t.Errorf("cooldown = %d, want 10", s.Cooldown())
	}
}

func TestSpawnerIdleWithoutInput(t *testing.T) {
	s := NewSpawner(10)
	for i := 0; i < 5; i++ {
		if s.Tick(false) {
			t.Fatalf("tick %d: burst without input", i)
		}
	}
	if s.Cooldown() != 0 {
		t.Errorf("cooldown = %d, want 0", s.Cooldown())
	}
}

func TestSpawnerHeldFiresOncePerWindow(t *testing.T) {
	s := NewSpawner(10)
	var fired []int
	for tick := 0; tick < 34; tick++ {
		if s.Tick(true) {
			fired = append(fired, tick)
		}
	}
	// Draining the cooldown takes 10 ticks; the burst fires on the next.
	want := []int{0, 11, 22, 33}
	if len(fired) != len(want) {
		t.Fatalf("fired at %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired at %v, want %v", fired, want)
			break
		}
	}
}

func TestSpawnerCooldownDrainsWhileReleased(t *testing.T) {
	s := NewSpawner(3)
	s.Tick(true)
	for i := 0; i < 3; i++ {
		s.Tick(false)
	}
	if !s.Tick(true) {
		t.Error("expected burst once cooldown drained")
	}
}
