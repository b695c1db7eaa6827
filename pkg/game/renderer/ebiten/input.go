package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spacewarp/pkg/engine/input"
)

// keyCodes maps Ebiten keys to the raw codes the binding layer
// understands.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeySpace:      "space",
	ebiten.KeyW:          "w",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyA:          "a",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyD:          "d",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyS:          "s",
	ebiten.KeyR:          "r",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyQ:          "q",
	ebiten.KeyEscape:     "escape",
}

var allActions = []input.Action{
	input.ActionJump,
	input.ActionLeft,
	input.ActionRight,
	input.ActionDown,
	input.ActionReset,
	input.ActionConfirm,
	input.ActionQuit,
}

// pollInput snapshots the keyboard into the recorder for this tick.
// Several keys may bind to one action; held state is the OR of them.
func (f *Frontend) pollInput() {
	f.rec.Begin()

	held := make(map[input.Action]bool)
	for key, code := range keyCodes {
		act := input.MapCode(code)
		if act == input.ActionNone {
			continue
		}
		if inpututil.IsKeyJustPressed(key) {
			f.rec.Press(act)
		}
		if ebiten.IsKeyPressed(key) {
			held[act] = true
		}
	}

	for _, a := range allActions {
		f.rec.SetHeld(a, held[a])
	}
}
