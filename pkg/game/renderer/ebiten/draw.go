package ebiten

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/level"
	"spacewarp/pkg/game/menu"
	"spacewarp/pkg/game/player"
	"spacewarp/pkg/game/renderer"
	"spacewarp/pkg/game/session"
	"spacewarp/pkg/game/state"
)

// Palette. The frontend draws flat tiles in class colors, tinted per
// column for keys, doors and buttons so the pairings read at a glance.
var (
	colorBackground = color.RGBA{16, 20, 31, 255}
	colorWall       = color.RGBA{108, 112, 120, 255}
	colorFire       = color.RGBA{255, 96, 32, 255}
	colorShip       = color.RGBA{200, 208, 216, 255}
	colorPlayer     = color.RGBA{255, 220, 120, 255}
	colorEye        = color.RGBA{24, 24, 24, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
	colorSelected   = color.RGBA{255, 216, 64, 255}
	colorChosen     = color.RGBA{96, 224, 128, 255}

	columnTints = [3]color.RGBA{
		{255, 80, 80, 255},
		{80, 255, 120, 255},
		{96, 160, 255, 255},
	}
)

// Draw renders the current frame (Ebiten interface).
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	switch f.game.Mode {
	case state.ModeMenu:
		f.drawMenu(screen)
	case state.ModePlaying:
		f.drawRoom(screen)
		f.drawPlayer(screen)
	case state.ModeEnd:
		f.drawEnd(screen)
	}
}

func tint(variant int) color.RGBA {
	if variant < 0 || variant >= len(columnTints) {
		return colorWall
	}
	return columnTints[variant]
}

// drawRoom draws the camera room's tiles, then the animated doors and
// buttons from entity state. Keys come straight from the grid: the sync
// step blanks their cells once collected.
func (f *Frontend) drawRoom(screen *ebiten.Image) {
	cam := f.game.Session.Camera
	left := cam * level.RoomSize

	for y := 0; y < level.RoomSize; y++ {
		for x := left; x < left+level.RoomSize; x++ {
			class, variant := renderer.Classify(f.game.Grid.At(x, y))
			fx := float32((x - left) * level.PixelsPerTile)
			fy := float32(y * level.PixelsPerTile)

			switch class {
			case renderer.ClassWall:
				vector.DrawFilledRect(screen, fx, fy, 8, 8, colorWall, false)
			case renderer.ClassFire:
				vector.DrawFilledRect(screen, fx, fy+2, 8, 6, colorFire, false)
			case renderer.ClassKey:
				vector.DrawFilledRect(screen, fx+2, fy+2, 4, 4, tint(variant), false)
			case renderer.ClassShip:
				vector.DrawFilledRect(screen, fx, fy, 8, 8, colorShip, false)
			}
		}
	}

	f.drawDoors(screen, left)
	f.drawButtons(screen, left)
}

// drawDoors renders each door as two slabs easing together: the top slab
// hangs from the frame top, the bottom one rises from the frame bottom,
// each AnimationState pixels tall.
func (f *Frontend) drawDoors(screen *ebiten.Image, left int) {
	room := f.game.Session.Room()
	for _, d := range room.Doors {
		_, variant := renderer.Classify(d.Sprite)
		anim := float32(d.AnimationState)
		d.Locations.Each(func(p tiles.Position) {
			fx := float32((p.X - left) * level.PixelsPerTile)
			fy := float32(p.Y * level.PixelsPerTile)
			vector.DrawFilledRect(screen, fx, fy, 8, anim, tint(variant), false)
			vector.DrawFilledRect(screen, fx, fy+16-anim, 8, anim, tint(variant), false)
		})
	}
}

// drawButtons renders buttons depressed by their visual tier; a fully
// held button disappears into its socket.
func (f *Frontend) drawButtons(screen *ebiten.Image, left int) {
	room := f.game.Session.Room()
	for _, b := range room.Buttons {
		tier := b.Tier()
		if tier == 3 {
			continue
		}
		_, variant := renderer.Classify(b.Sprite)
		b.Locations.Each(func(p tiles.Position) {
			fx := float32((p.X - left) * level.PixelsPerTile)
			fy := float32(p.Y*level.PixelsPerTile + tier)
			vector.DrawFilledRect(screen, fx+1, fy+3, 6, float32(5-tier), tint(variant), false)
		})
	}
}

func (f *Frontend) drawPlayer(screen *ebiten.Image) {
	s := f.game.Session
	p := s.Player
	fx := float32(p.X - s.Camera*session.RoomPixels)
	fy := float32(p.Y)

	vector.DrawFilledRect(screen, fx, fy, player.Size, player.Size, colorPlayer, false)

	eyeX := fx + 5
	if p.Facing == player.Left {
		eyeX = fx + 1
	}
	vector.DrawFilledRect(screen, eyeX, fy+2, 2, 2, colorEye, false)

	// Walk cycle: alternate the leg gap; tucked legs while airborne.
	sx, _ := p.Pose()
	switch {
	case p.Jumping != 0:
		vector.DrawFilledRect(screen, fx+2, fy+6, 4, 2, colorBackground, false)
	case sx == 2*player.Size:
		vector.DrawFilledRect(screen, fx+3, fy+6, 2, 2, colorBackground, false)
	}
}

func (f *Frontend) face() *text.GoTextFace {
	return &text.GoTextFace{Source: f.fontSource, Size: 7}
}

func (f *Frontend) drawText(screen *ebiten.Image, s string, x, y float64, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, f.face(), op)
}

func (f *Frontend) drawMenu(screen *ebiten.Image) {
	m := f.game.Menu
	f.drawText(screen, "SpaceWarp", 34, 24, colorShip)

	items := m.Items()
	for i, label := range items {
		c := colorText
		if m.InDifficulty() && i+1 == m.Difficulty {
			c = colorChosen
		}
		if i == m.Selected {
			c = colorSelected
		}
		y := 8*(float64(i)-float64(len(items)+1)/2) + 72
		f.drawText(screen, label, 42, y, c)
	}
}

// drawEnd runs the ship lift-off, then the results screen.
func (f *Frontend) drawEnd(screen *ebiten.Image) {
	if f.shipY*level.PixelsPerTile+24-f.shipLift > 0 {
		f.drawRoom(screen)

		cam := f.game.Session.Camera
		fx := float32((f.shipX - cam*level.RoomSize) * level.PixelsPerTile)
		fy := float32(f.shipY*level.PixelsPerTile - f.shipLift)
		vector.DrawFilledRect(screen, fx, fy, 16, 16, colorShip, false)
		vector.DrawFilledRect(screen, fx+4, fy+16, 8, 8, colorFire, false)
		return
	}

	s := f.game.Session
	f.drawText(screen, gotext.Get("You win!"), 48, 48, colorText)
	seconds := session.RoundHalfUp(s.WinSeconds)
	f.drawText(screen, fmt.Sprintf(gotext.Get("Time: %ds"), seconds), 40, 56, colorText)
	f.drawText(screen, gotext.Get("Difficulty:"), 42, 72, colorText)
	f.drawText(screen, menu.DifficultyName(f.game.Menu.Difficulty), 48, 80, colorSelected)
}
