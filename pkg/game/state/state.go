// Package state holds the top-level game aggregate: the menu / playing /
// end mode machine and the objects of the current play session.
package state

import (
	"log"
	"os/exec"

	"spacewarp/pkg/engine/input"
	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/level"
	"spacewarp/pkg/game/leveldata"
	"spacewarp/pkg/game/menu"
	"spacewarp/pkg/game/session"
)

// Mode is the outer game state.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// Game is the whole game: the menu model, and while a level is live, the
// grid and session.
type Game struct {
	Mode Mode
	Menu *menu.Model

	Grid    *tiles.TileMap
	Level   *level.Level
	Session *session.Session

	in input.Source
}

// NewGame creates a game at the menu with the given input capability.
func NewGame(in input.Source) *Game {
	return &Game{
		Menu: menu.New(),
		in:   in,
	}
}

// Start loads and validates the level for the menu's difficulty and
// begins playing. A malformed level aborts the start and is reported to
// the caller; no partial level is ever played.
func (g *Game) Start() error {
	grid, err := leveldata.Parse(leveldata.ForDifficulty(g.Menu.Difficulty))
	if err != nil {
		return err
	}
	lvl, err := level.Load(grid)
	if err != nil {
		return err
	}

	g.Grid = grid
	g.Level = lvl
	g.Session = session.New(grid, g.in, lvl)
	g.Mode = ModePlaying
	return nil
}

// Tick advances the game by one frame according to the current mode.
func (g *Game) Tick() error {
	switch g.Mode {
	case ModeEnd:
		if g.in.Held(input.ActionConfirm) {
			g.Mode = ModeMenu
		}

	case ModeMenu:
		switch g.Menu.Update(g.in) {
		case menu.CommandStart:
			return g.Start()
		case menu.CommandHelp:
			openHelp()
		}

	case ModePlaying:
		if g.in.Pressed(input.ActionQuit) {
			g.Mode = ModeMenu
			return nil
		}

		g.Session.Tick()

		if g.Session.Won {
			g.Mode = ModeEnd
		}
	}
	return nil
}

// openHelp opens the project README in the default browser.
func openHelp() {
	if err := exec.Command("xdg-open", menu.HelpURL).Start(); err != nil {
		log.Printf("Cannot open help page: %v", err)
	}
}
