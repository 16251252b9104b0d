//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"mad-snake/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("[snake] %v", err)
	}

	session, err := app.NewSession(*cfg, log.Default())
	if err != nil {
		log.Fatalf("[snake] %v", err)
	}

	game := app.New(session, *cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-snake")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
