package main

import (
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("fireworks: ")

	// The shader is the only hard requirement; fail before any game state exists.
	glow, err := LoadGlowShader(GlowShaderPath)
	if err != nil {
		log.Fatalf("shader failed to load: %v", err)
	}

	seed := time.Now().UnixNano()
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed>>1)))
	sim := NewSimulation(DefaultConfig(), rng)

	sound := NewSoundManager()
	if SoundEnabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
	}

	game := NewGame(
		sim,
		NewRenderer(glow, ScreenWidth, ScreenHeight, GlowRadius),
		NewSky(StarCount, ScreenWidth, ScreenHeight, seed),
		NewHUD(),
		sound,
	)

	// Set up Ebitengine game
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(TargetTPS)

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
