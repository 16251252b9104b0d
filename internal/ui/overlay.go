//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"mad-snake/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type gameOverProvider interface {
	GameOver() bool
	Score() int
}

// Overlay dims the board and prints a banner once the game has ended.
type Overlay struct {
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{pixel: ebiten.NewImage(1, 1)}
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the banner over the board area when sim reports game over.
func (o *Overlay) Draw(screen *ebiten.Image, sim core.Sim, scale int) {
	provider, ok := sim.(gameOverProvider)
	if !ok || !provider.GameOver() {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	w, h := size.W*scale, size.H*scale
	if w <= 0 || h <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0, G: 0, B: 0, A: 160})
	screen.DrawImage(o.pixel, op)

	face := basicfont.Face7x13
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score %d", provider.Score()),
		"R to play again",
	}
	y := h/2 - len(lines)*lineSpacing/2
	for _, line := range lines {
		bounds := text.BoundString(face, line)
		text.Draw(screen, line, face, (w-bounds.Dx())/2, y+bounds.Dy(), color.White)
		y += lineSpacing
	}
}

const lineSpacing = 18
