package main

import "testing"

func TestGameSkyToggle(t *testing.T) {
	sky := NewSky(4, ScreenWidth, ScreenHeight, 1)
	g := NewGame(newTestSimulation(DefaultConfig()), nil, sky, nil, nil)
	g.showSky = true

	if g.backdrop() != sky {
		t.Fatal("expected sky visible")
	}
	g.ToggleSky()
	if g.backdrop() != nil {
		t.Error("expected no backdrop after toggle")
	}
	g.ToggleSky()
	if g.backdrop() != sky {
		t.Error("expected sky back after second toggle")
	}
}

func TestGameWithoutSky(t *testing.T) {
	g := NewGame(newTestSimulation(DefaultConfig()), nil, nil, nil, nil)
	if g.backdrop() != nil {
		t.Error("expected nil backdrop when no sky was given")
	}
}

func TestGameLayoutFixed(t *testing.T) {
	g := NewGame(newTestSimulation(DefaultConfig()), nil, nil, nil, nil)
	w, h := g.Layout(1920, 1080)
	if w != ScreenWidth || h != ScreenHeight {
		t.Errorf("Layout = %dx%d, want %dx%d", w, h, ScreenWidth, ScreenHeight)
	}
}
