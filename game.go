package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game wires the simulation to Ebitengine's update and draw callbacks.
type Game struct {
	sim      *Simulation
	renderer *Renderer
	sky      *Sky
	showSky  bool
	hud      *HUD
	sound    *SoundManager
	width    int
	height   int
}

// NewGame creates a game around an already loaded renderer.
func NewGame(sim *Simulation, renderer *Renderer, sky *Sky, hud *HUD, sound *SoundManager) *Game {
	return &Game{
		sim:      sim,
		renderer: renderer,
		sky:      sky,
		showSky:  ShowSky,
		hud:      hud,
		sound:    sound,
		width:    ScreenWidth,
		height:   ScreenHeight,
	}
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.shutdown()
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ToggleSky()
	}

	in := g.handleInput()
	if g.sim.Tick(in) && g.sound != nil {
		g.sound.PlayBurst(in.Pos.X/float64(g.width)*2 - 1)
	}
	g.hud.Update(1 / float32(ebiten.TPS()))
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.DrawParticles(g.sim.DrawData(), g.backdrop(), g.sim.TickCount)
	g.renderer.Present(screen)
	g.hud.Draw(screen, g.sim.Particles().Len())
}

// Layout returns the logical screen size; the window scales it when resized.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// ToggleSky shows or hides the star backdrop.
func (g *Game) ToggleSky() {
	g.showSky = !g.showSky
}

// backdrop returns the sky to draw this frame, or nil when it is hidden.
func (g *Game) backdrop() *Sky {
	if !g.showSky {
		return nil
	}
	return g.sky
}

// handleInput samples the pointer for this tick.
func (g *Game) handleInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Held: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pos:  Vec2{float64(mx), float64(my)},
	}
}

// shutdown releases GPU and audio resources before the loop exits.
func (g *Game) shutdown() {
	g.renderer.Dispose()
	if g.sound != nil {
		g.sound.Close()
	}
}
