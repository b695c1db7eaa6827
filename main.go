package main

import (
	"flag"
	"log"

	"github.com/leonelquinteros/gotext"

	"spacewarp/pkg/engine/input"
	"spacewarp/pkg/game/renderer"
	ebitenfe "spacewarp/pkg/game/renderer/ebiten"
	"spacewarp/pkg/game/renderer/tui"
	"spacewarp/pkg/game/state"
)

func initGotext() {
	gotext.Configure("mo/", "en_GB.utf8", "default")
}

func main() {
	backend := flag.String("renderer", "ebiten", "renderer backend: ebiten or tui")
	scale := flag.Int("scale", 4, "window scale factor (ebiten backend)")
	difficulty := flag.Int("difficulty", 0, "preselect difficulty 1-4 (for testing)")
	flag.Parse()

	initGotext()

	rec := input.NewRecorder()
	game := state.NewGame(rec)

	if *difficulty >= 1 && *difficulty <= 4 {
		game.Menu.Difficulty = *difficulty
	}

	switch *backend {
	case "tui":
		renderer.SetRenderer(tui.New(rec))
	case "ebiten":
		renderer.SetRenderer(ebitenfe.New(rec, *scale))
	default:
		log.Fatalf("Unknown renderer backend %q", *backend)
	}

	if err := renderer.Current.Init(); err != nil {
		log.Fatalf("Cannot initialize renderer: %v", err)
	}
	if err := renderer.Current.Run(game); err != nil {
		log.Fatalf("Game aborted: %v", err)
	}
}
