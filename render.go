package main

import (
	"fmt"
	"iter"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LoadGlowShader reads and compiles the Kage glow shader at path.
func LoadGlowShader(path string) (*ebiten.Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read shader %s: %w", path, err)
	}
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile shader %s: %w", path, err)
	}
	return s, nil
}

// Renderer draws particles into an offscreen target and presents it
// through the glow shader.
type Renderer struct {
	width, height int
	target        *ebiten.Image
	glow          *ebiten.Shader
	shaderOp      ebiten.DrawRectShaderOptions
}

// NewRenderer creates a width x height offscreen target. The shader's
// Resolution and Radius uniforms are fixed here.
func NewRenderer(glow *ebiten.Shader, width, height int, radius float32) *Renderer {
	r := &Renderer{
		width:  width,
		height: height,
		target: ebiten.NewImage(width, height),
		glow:   glow,
	}
	r.shaderOp.Uniforms = map[string]any{
		"Resolution": []float32{float32(width), float32(height)},
		"Radius":     radius,
	}
	r.shaderOp.Images[0] = r.target
	return r
}

// DrawParticles clears the offscreen target, paints the sky and then every
// sprite as a filled disk.
func (r *Renderer) DrawParticles(sprites iter.Seq[Sprite], sky *Sky, tick int) {
	r.target.Fill(Background)
	if sky != nil {
		sky.Draw(r.target, tick)
	}
	for sp := range sprites {
		vector.DrawFilledCircle(r.target, float32(sp.Pos.X), float32(sp.Pos.Y), ParticleSize, sp.Color, true)
	}
}

// Present composites the offscreen target onto screen through the glow pass.
func (r *Renderer) Present(screen *ebiten.Image) {
	screen.Fill(Background)
	screen.DrawRectShader(r.width, r.height, r.glow, &r.shaderOp)
}

// Dispose releases the offscreen target and the shader.
func (r *Renderer) Dispose() {
	if r.target != nil {
		r.target.Deallocate()
		r.target = nil
	}
	if r.glow != nil {
		r.glow.Deallocate()
		r.glow = nil
	}
}
