// Package tui provides a terminal frontend as a fallback when no display
// is available. It draws the current room as colored cells and emulates
// held keys from the terminal's auto-repeat.
package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"golang.org/x/term"

	"spacewarp/pkg/engine/input"
	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/level"
	"spacewarp/pkg/game/menu"
	"spacewarp/pkg/game/renderer"
	"spacewarp/pkg/game/session"
	"spacewarp/pkg/game/state"
)

// keyHoldTicks is how many simulation ticks a received key counts as
// held. Terminals only deliver repeats, not key-up events, so holds are
// reconstructed from the repeat stream; 3 ticks at 30 TPS bridges the
// usual repeat interval.
const keyHoldTicks = 3

// playerHalf centers the player marker on its dominant tile.
const playerHalf = level.PixelsPerTile / 2

// Cell styles, one per visual class plus the player.
var (
	styleWall   = color.Style{color.FgGray, color.OpBold}
	styleFire   = color.Style{color.FgRed, color.OpBold}
	styleShip   = color.Style{color.FgWhite, color.OpBold}
	stylePlayer = color.Style{color.FgYellow, color.OpBold}
	styleText   = color.Style{color.FgDefault}
	styleActive = color.Style{color.FgYellow, color.OpBold}
	styleChosen = color.Style{color.FgGreen}

	columnStyles = [3]color.Style{
		{color.FgRed},
		{color.FgGreen},
		{color.FgBlue},
	}
)

// Frontend is the terminal renderer and game-loop driver.
type Frontend struct {
	game *state.Game
	rec  *input.Recorder

	events    chan string
	heldUntil map[input.Action]int
	tick      int

	oldState *term.State
}

// New creates a frontend feeding input into the given recorder.
func New(rec *input.Recorder) *Frontend {
	return &Frontend{
		rec:       rec,
		events:    make(chan string, 64),
		heldUntil: make(map[input.Action]int),
	}
}

// Init switches the terminal to raw mode and starts the key reader.
func (f *Frontend) Init() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("stdin is not a terminal")
	}
	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	f.oldState = old

	go f.readKeys()
	return nil
}

// readKeys translates terminal bytes into raw binding codes.
func (f *Frontend) readKeys() {
	buf := make([]byte, 1)
	for {
		if _, err := os.Stdin.Read(buf); err != nil {
			return
		}
		b := buf[0]

		var code string
		switch {
		case b == 3: // Ctrl+C
			code = "interrupt"
		case b == 0x1b:
			code = f.readArrow()
		case b == '\r' || b == '\n':
			code = "enter"
		case b >= 'A' && b <= 'Z':
			code = string(b + 32)
		case b == ' ':
			code = "space"
		default:
			code = string(b)
		}

		if code != "" {
			select {
			case f.events <- code:
			default:
				// Channel full, drop input
			}
		}
	}
}

// readArrow consumes a CSI/SS3 escape sequence and returns the arrow code.
func (f *Frontend) readArrow() string {
	buf := make([]byte, 1)
	if _, err := os.Stdin.Read(buf); err != nil || (buf[0] != '[' && buf[0] != 'O') {
		return "escape"
	}
	if _, err := os.Stdin.Read(buf); err != nil {
		return ""
	}
	switch buf[0] {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// Run drives the fixed-tick loop until Ctrl+C or a load error.
func (f *Frontend) Run(g *state.Game) error {
	f.game = g
	defer f.restore()

	ticker := time.NewTicker(time.Second / session.TicksPerSecond)
	defer ticker.Stop()

	for range ticker.C {
		if quit := f.collectInput(); quit {
			return nil
		}
		if err := g.Tick(); err != nil {
			return err
		}
		f.draw()
	}
	return nil
}

func (f *Frontend) restore() {
	if f.oldState != nil {
		term.Restore(int(os.Stdin.Fd()), f.oldState)
	}
	fmt.Print("\x1b[2J\x1b[H")
}

// collectInput drains buffered key events into the recorder, renewing
// the emulated hold window for each action seen.
func (f *Frontend) collectInput() (quit bool) {
	f.tick++
	f.rec.Begin()

	for {
		select {
		case code := <-f.events:
			if code == "interrupt" {
				return true
			}
			act := input.MapCode(code)
			if act == input.ActionNone {
				continue
			}
			if f.heldUntil[act] < f.tick {
				f.rec.Press(act)
			}
			f.heldUntil[act] = f.tick + keyHoldTicks
		default:
			for act, until := range f.heldUntil {
				f.rec.SetHeld(act, until >= f.tick)
			}
			return false
		}
	}
}

func (f *Frontend) draw() {
	var b strings.Builder
	b.WriteString("\x1b[H\x1b[2J")

	switch f.game.Mode {
	case state.ModeMenu:
		f.drawMenu(&b)
	case state.ModePlaying:
		f.drawRoom(&b)
	case state.ModeEnd:
		f.drawEnd(&b)
	}

	fmt.Print(b.String())
}

func (f *Frontend) drawMenu(b *strings.Builder) {
	b.WriteString("\r\n  " + styleShip.Sprint("SpaceWarp") + "\r\n\r\n")
	m := f.game.Menu
	for i, label := range m.Items() {
		style := styleText
		marker := "  "
		if m.InDifficulty() && i+1 == m.Difficulty {
			style = styleChosen
		}
		if i == m.Selected {
			style = styleActive
			marker = "> "
		}
		b.WriteString("  " + marker + style.Sprint(label) + "\r\n")
	}
}

// cell renders one tile as a two-character colored block.
func cell(c tiles.Code) string {
	class, variant := renderer.Classify(c)
	switch class {
	case renderer.ClassWall:
		return styleWall.Sprint("██")
	case renderer.ClassFire:
		return styleFire.Sprint("▲▲")
	case renderer.ClassKey:
		return columnStyles[variant].Sprint("⚷ ")
	case renderer.ClassButton:
		return columnStyles[variant].Sprint("◦◦")
	case renderer.ClassDoor:
		return columnStyles[variant].Sprint("▒▒")
	case renderer.ClassShip:
		return styleShip.Sprint("▞▚")
	default:
		return "  "
	}
}

func (f *Frontend) drawRoom(b *strings.Builder) {
	s := f.game.Session
	left := s.Camera * level.RoomSize

	playerX := (s.Player.X + playerHalf - s.Camera*session.RoomPixels) / level.PixelsPerTile
	playerY := (s.Player.Y + playerHalf) / level.PixelsPerTile

	for y := 0; y < level.RoomSize; y++ {
		b.WriteString("\r\n ")
		for x := 0; x < level.RoomSize; x++ {
			if x == playerX && y == playerY {
				b.WriteString(stylePlayer.Sprint("@ "))
				continue
			}
			b.WriteString(cell(f.game.Grid.At(left+x, y)))
		}
	}
	b.WriteString("\r\n")
}

func (f *Frontend) drawEnd(b *strings.Builder) {
	s := f.game.Session
	seconds := session.RoundHalfUp(s.WinSeconds)
	b.WriteString("\r\n  " + styleActive.Sprint(gotext.Get("You win!")) + "\r\n\r\n")
	fmt.Fprintf(b, "  "+gotext.Get("Time: %ds")+"\r\n", seconds)
	fmt.Fprintf(b, "  %s %s\r\n\r\n", gotext.Get("Difficulty:"), menu.DifficultyName(f.game.Menu.Difficulty))
	b.WriteString("  " + styleText.Sprint(gotext.Get("Press Enter to return to the menu")) + "\r\n")
}
