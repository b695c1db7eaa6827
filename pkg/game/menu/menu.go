// Package menu provides the title-screen menu model: a default menu and a
// difficulty submenu. Rendering is left to the frontends; the model only
// tracks selection and produces commands.
package menu

import (
	"github.com/leonelquinteros/gotext"

	"spacewarp/pkg/engine/input"
)

// HelpURL is opened by the Help entry.
const HelpURL = "https://github.com/LMacrini/SpaceWarp-Remake/blob/main/README.md"

// Command is what an activated menu entry asks the game to do.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandHelp
)

var defaultItems = []string{"Start", "Difficulty", "Help"}
var difficultyItems = []string{"Easy", "Normal", "Hard", "Lunatic", "Back"}

// Model is the menu state machine.
type Model struct {
	// Selected is the highlighted entry of the current menu.
	Selected int

	// Difficulty is the chosen level, 1..4.
	Difficulty int

	inDifficulty bool
}

// New creates a menu on the default screen with the easiest difficulty.
func New() *Model {
	return &Model{Difficulty: 1}
}

// InDifficulty reports whether the difficulty submenu is active.
func (m *Model) InDifficulty() bool {
	return m.inDifficulty
}

// Items returns the translated labels of the current menu.
func (m *Model) Items() []string {
	keys := defaultItems
	if m.inDifficulty {
		keys = difficultyItems
	}
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = gotext.Get(k)
	}
	return labels
}

// DifficultyName returns the translated label of a difficulty (1..4).
func DifficultyName(d int) string {
	if d < 1 || d > 4 {
		d = 1
	}
	return gotext.Get(difficultyItems[d-1])
}

// Update moves the selection on edge-triggered up/down and activates the
// highlighted entry on confirm. Selection wraps in both directions.
func (m *Model) Update(in input.Source) Command {
	n := len(defaultItems)
	if m.inDifficulty {
		n = len(difficultyItems)
	}

	if in.Pressed(input.ActionDown) {
		m.Selected++
	} else if in.Pressed(input.ActionJump) {
		m.Selected--
	}
	m.Selected = ((m.Selected % n) + n) % n

	if in.Pressed(input.ActionConfirm) {
		return m.activate()
	}
	return CommandNone
}

func (m *Model) activate() Command {
	if m.inDifficulty {
		switch m.Selected {
		case 0, 1, 2, 3:
			m.Difficulty = m.Selected + 1
		case 4:
			m.inDifficulty = false
			m.Selected = 0
		}
		return CommandNone
	}

	switch m.Selected {
	case 0:
		return CommandStart
	case 1:
		m.inDifficulty = true
		m.Selected = 0
	case 2:
		return CommandHelp
	}
	return CommandNone
}
