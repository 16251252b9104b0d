//go:build ebiten

package app

import (
	"time"

	"mad-snake/internal/render"
	"mad-snake/internal/sims/snake"
	"mad-snake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = map[ebiten.Key]snake.Direction{
	ebiten.KeyArrowUp:    snake.Up,
	ebiten.KeyArrowDown:  snake.Down,
	ebiten.KeyArrowLeft:  snake.Left,
	ebiten.KeyArrowRight: snake.Right,
	ebiten.KeyW:          snake.Up,
	ebiten.KeyS:          snake.Down,
	ebiten.KeyA:          snake.Left,
	ebiten.KeyD:          snake.Right,
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	hudWidth int
}

// New constructs a Game for the provided session.
func New(session *Session, cfg Config) *Game {
	size := session.Sim().Size()
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(session, cfg.HUDWidth),
		overlay:  ui.NewOverlay(),
		scale:    cfg.Scale,
		hudWidth: cfg.HUDWidth,
	}
}

// Update handles input and advances the simulation on the move clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if g.session.Sim().GameOver() &&
		(inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		if err := g.session.Restart(); err != nil {
			return err
		}
	}
	for key, dir := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.session.Turn(dir)
		}
	}

	g.hud.Update(g.boardWidth())
	g.session.Tick(time.Now())
	return nil
}

// Draw renders the board, the game-over banner and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	sim := g.session.Sim()
	g.painter.Blit(screen, sim.Cells(), sim.Palette(), g.scale)
	g.overlay.Draw(screen, sim, g.scale)
	g.hud.Draw(screen, g.boardWidth())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Sim().Size()
	return g.boardWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) boardWidth() int { return g.session.Sim().Size().W * g.scale }
