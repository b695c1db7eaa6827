// Package ebiten provides the Ebiten-based 2D graphical frontend.
// Ebiten is a 2D game library for Go: https://ebiten.org/
package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"spacewarp/pkg/engine/input"
	"spacewarp/pkg/game/level"
	"spacewarp/pkg/game/session"
	"spacewarp/pkg/game/state"
	"spacewarp/pkg/game/tileset"
)

// Screen is the logical screen size in pixels: one 16x16-tile room.
const Screen = level.RoomSize * level.PixelsPerTile

// Frontend is the Ebiten renderer and game-loop driver.
type Frontend struct {
	game *state.Game
	rec  *input.Recorder

	scale int

	fontSource *text.GoTextFaceSource

	// End-screen ship lift-off animation.
	endStarted bool
	shipX      int
	shipY      int
	shipLift   int
}

// New creates a frontend feeding input into the given recorder.
func New(rec *input.Recorder, scale int) *Frontend {
	if scale < 1 {
		scale = 4
	}
	return &Frontend{rec: rec, scale: scale}
}

// Init loads the font and configures the window.
func (f *Frontend) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("cannot load font: %w", err)
	}
	f.fontSource = src

	ebiten.SetWindowSize(Screen*f.scale, Screen*f.scale)
	ebiten.SetWindowTitle("SpaceWarp")
	ebiten.SetTPS(session.TicksPerSecond)
	return nil
}

// Run runs the game loop until the window closes or a level fails to
// load.
func (f *Frontend) Run(g *state.Game) error {
	f.game = g
	return ebiten.RunGame(f)
}

// Update polls input and advances the game one tick (Ebiten interface).
// A level-validation error aborts the loop and surfaces to the operator.
func (f *Frontend) Update() error {
	f.pollInput()

	if err := f.game.Tick(); err != nil {
		return err
	}

	if f.game.Mode == state.ModeEnd {
		f.startEndAnimation()
		if f.shipY*level.PixelsPerTile+24-f.shipLift > 0 {
			f.shipLift++
		}
	} else {
		f.endStarted = false
		f.shipLift = 0
	}
	return nil
}

// startEndAnimation locates the ship in the winning room once, removes
// its tiles from the grid and begins the lift-off.
func (f *Frontend) startEndAnimation() {
	if f.endStarted {
		return
	}
	f.endStarted = true

	roomLeft := f.game.Session.Camera * level.RoomSize
	for y := 0; y < level.RoomSize; y++ {
		for x := roomLeft; x < roomLeft+level.RoomSize; x++ {
			if f.game.Grid.At(x, y) != tileset.ShipTopLeft {
				continue
			}
			f.shipX = x
			f.shipY = y
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					f.game.Grid.Set(x+dx, y+dy, tileset.Empty)
				}
			}
		}
	}
}

// Layout reports the fixed logical screen size (Ebiten interface).
func (f *Frontend) Layout(outsideWidth, outsideHeight int) (int, int) {
	return Screen, Screen
}
