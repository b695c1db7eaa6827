// Package session orchestrates one play-through of a loaded level: the
// per-tick update ordering across player and entities, room-crossing
// checkpoints, and the win clock.
package session

import (
	"math"

	"spacewarp/pkg/engine/input"
	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/entities"
	"spacewarp/pkg/game/level"
	"spacewarp/pkg/game/player"
)

// TicksPerSecond is the fixed simulation rate.
const TicksPerSecond = 30

// RoomPixels is the width of one room in pixel units.
const RoomPixels = level.RoomSize * level.PixelsPerTile

// Session runs a loaded level. It owns all entity state exclusively and
// mutates it in place, one logical tick per rendered frame.
type Session struct {
	Player *player.Player

	// Camera is the index of the room the view is locked to.
	Camera int

	// WinSeconds is the elapsed time at the moment of winning.
	WinSeconds float64
	Won        bool

	grid tiles.Grid
	reg  *entities.Registry

	spawnX int
	spawnY int

	checkpoint *entities.Registry
	ticks      int
}

// New starts a session for a validated level. The initial checkpoint is
// taken immediately, so the first death rolls back to the untouched level.
func New(grid tiles.Grid, in input.Source, lvl *level.Level) *Session {
	s := &Session{
		Player: player.New(grid, in, lvl.SpawnX, lvl.SpawnY),
		grid:   grid,
		reg:    lvl.Registry,
		spawnX: lvl.SpawnX,
		spawnY: lvl.SpawnY,
	}
	s.SaveCheckpoint()
	return s
}

// Room returns the entity groups of the room the camera is on.
func (s *Session) Room() *entities.Room {
	return s.reg.Room(s.Camera)
}

// Registry exposes the live entity registry, read-only by convention;
// renderers borrow it during draw.
func (s *Session) Registry() *entities.Registry {
	return s.reg
}

// SaveCheckpoint snapshots all rooms' entity state. One snapshot at a
// time: a new save overwrites the old.
func (s *Session) SaveCheckpoint() {
	s.checkpoint = s.reg.Clone()
}

// RestoreCheckpoint replaces the live entity state with an independent
// copy of the snapshot, keeping the snapshot itself intact for the next
// death.
func (s *Session) RestoreCheckpoint() {
	s.reg = s.checkpoint.Clone()
}

// Tick advances the simulation by one frame: room-crossing detection and
// checkpointing, player update, death rollback, then entity timers and
// grid sync for the current room only.
func (s *Session) Tick() {
	s.ticks++

	if room := (s.Player.X + player.Size/2) / RoomPixels; room != s.Camera {
		// Bias the spawn 8px into the new room, opposite the crossing
		// direction, then checkpoint the state at the moment of crossing.
		s.spawnX = s.Player.X + player.Size/2
		if s.Camera > room {
			s.spawnX -= level.PixelsPerTile
		}
		s.spawnY = s.Player.Y
		s.Camera = room
		s.SaveCheckpoint()
	}

	s.Player.Update(s.spawnX, s.spawnY, s.Room())

	if s.Player.Dead {
		// Death is checkpoint rollback: everything since the last
		// crossing is discarded, not undone tile by tile.
		s.RestoreCheckpoint()
		s.Player.Dead = false
	}

	room := s.Room()
	for _, d := range room.Doors {
		d.Tick()
		d.SyncGrid(s.grid)
	}
	for _, b := range room.Buttons {
		b.Tick()
	}
	for _, k := range room.Keys {
		k.SyncGrid(s.grid)
	}

	if s.Player.Win && !s.Won {
		s.Won = true
		s.WinSeconds = float64(s.ticks) / TicksPerSecond
	}
}

// Ticks returns the number of simulation ticks since the level started.
func (s *Session) Ticks() int {
	return s.ticks
}

// RoundHalfUp rounds to the nearest integer with halves rounding up,
// the rounding used for the displayed completion time.
func RoundHalfUp(n float64) int {
	return int(math.Floor(n + 0.5))
}
