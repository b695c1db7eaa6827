package session

import (
	"testing"

	"spacewarp/pkg/engine/input"
	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/level"
	"spacewarp/pkg/game/tileset"
)

var keyCode = tiles.Code{U: 7, V: 4}

// newTestSession loads a minimal two-room level: a solid floor on row 11
// and the spawn at tile (4, 10).
func newTestSession(t *testing.T) (*tiles.TileMap, *input.Recorder, *Session) {
	t.Helper()

	g := tiles.NewTileMap(level.MaxRooms*level.RoomSize, level.RoomSize, tileset.Empty)
	g.Set(2*level.RoomSize, 0, tileset.End)
	for x := 0; x < 2*level.RoomSize; x++ {
		g.Set(x, 11, tiles.Code{U: 4, V: 0})
	}
	g.Set(4, 10, tileset.Spawn)

	lvl, err := level.Load(g)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	rec := input.NewRecorder()
	return g, rec, New(g, rec, lvl)
}

func TestSessionRestoreCheckpoint(t *testing.T) {
	_, _, s := newTestSession(t)

	s.Room().Keys[keyCode].Collect(nil)
	s.RestoreCheckpoint()
	if !s.Room().Keys[keyCode].State {
		t.Fatal("key State = false after restore, want true")
	}

	// The snapshot survives the restore; a second rollback still works.
	s.Room().Keys[keyCode].Collect(nil)
	s.RestoreCheckpoint()
	if !s.Room().Keys[keyCode].State {
		t.Error("key State = false after second restore, want true")
	}
}

func TestSessionDeathRollsBack(t *testing.T) {
	_, rec, s := newTestSession(t)
	s.Room().Keys[keyCode].Collect(nil)

	rec.SetHeld(input.ActionReset, true)
	s.Tick()

	if s.Player.Dead {
		t.Error("Dead = true after the rollback tick, want false")
	}
	if !s.Room().Keys[keyCode].State {
		t.Error("key State = false after death, want the checkpointed true")
	}
	if s.Player.X != 4*level.PixelsPerTile || s.Player.Y != 10*level.PixelsPerTile {
		t.Errorf("position = (%d, %d) after death, want the spawn (%d, %d)",
			s.Player.X, s.Player.Y, 4*level.PixelsPerTile, 10*level.PixelsPerTile)
	}
}

func TestSessionRoomCrossing(t *testing.T) {
	_, rec, s := newTestSession(t)

	// Mark the room-0 state, then step over the boundary: the crossing
	// must move the camera and checkpoint the state as crossed.
	s.Room().Keys[keyCode].Collect(nil)
	s.Player.X = 126
	s.Tick()

	if s.Camera != 1 {
		t.Fatalf("Camera = %d after crossing right, want 1", s.Camera)
	}

	// Death now rolls back to the crossing, not to the level start.
	rec.SetHeld(input.ActionReset, true)
	s.Tick()
	if s.Player.X != 130 {
		t.Errorf("X = %d after death, want the crossing spawn 130", s.Player.X)
	}
	if s.Registry().Room(0).Keys[keyCode].State {
		t.Error("key State = true after rollback, want the crossed-with false")
	}
}

func TestSessionRoomCrossingLeftBias(t *testing.T) {
	_, rec, s := newTestSession(t)
	s.Camera = 1
	s.Player.X = 120

	s.Tick()
	if s.Camera != 0 {
		t.Fatalf("Camera = %d after crossing left, want 0", s.Camera)
	}

	// Crossing leftwards biases the spawn one tile further in.
	rec.SetHeld(input.ActionReset, true)
	s.Tick()
	if s.Player.X != 116 {
		t.Errorf("X = %d after death, want the biased spawn 116", s.Player.X)
	}
}

func TestSessionWinClock(t *testing.T) {
	g, _, s := newTestSession(t)
	g.Set(4, 10, tiles.Code{U: 0, V: 4})

	s.Tick()
	if !s.Won {
		t.Fatal("Won = false on a ship tile, want true")
	}
	if want := 1.0 / TicksPerSecond; s.WinSeconds != want {
		t.Errorf("WinSeconds = %v, want %v", s.WinSeconds, want)
	}

	// The clock freezes at the winning tick.
	s.Tick()
	if want := 1.0 / TicksPerSecond; s.WinSeconds != want {
		t.Errorf("WinSeconds = %v after a further tick, want %v", s.WinSeconds, want)
	}
}

func TestSessionDoorSync(t *testing.T) {
	g, _, s := newTestSession(t)
	door := tiles.Code{U: 4, V: 4}
	s.Room().Doors[door].Add(tiles.Position{X: 8, Y: 4})

	s.Tick()
	if got := g.At(8, 4); got != door {
		t.Errorf("top door cell = %v while closed, want %v", got, door)
	}

	s.Room().Keys[keyCode].Collect(s.Room().DoorList())
	s.Tick()
	if got := g.At(8, 4); got != tileset.Empty {
		t.Errorf("top door cell = %v after unlocking, want %v", got, tileset.Empty)
	}
}

func TestSessionTicks(t *testing.T) {
	_, _, s := newTestSession(t)
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	if s.Ticks() != 5 {
		t.Errorf("Ticks() = %d, want 5", s.Ticks())
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0.4, 0},
		{0.5, 1},
		{1.5, 2},
		{2.49, 2},
		{3.5, 4},
		{10.0, 10},
	}

	for _, c := range cases {
		if got := RoundHalfUp(c.in); got != c.want {
			t.Errorf("RoundHalfUp(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
