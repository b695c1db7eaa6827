package entities

import (
	"spacewarp/pkg/engine/tiles"
	"spacewarp/pkg/game/tileset"
)

// Room owns the key, button and door groups of one 16x16 room, indexed by
// their sprite code.
type Room struct {
	Keys    map[tiles.Code]*Keys
	Buttons map[tiles.Code]*Buttons
	Doors   map[tiles.Code]*Doors
}

// NewRoom creates a room holding one empty group per known sprite type.
func NewRoom() *Room {
	r := &Room{
		Keys:    make(map[tiles.Code]*Keys),
		Buttons: make(map[tiles.Code]*Buttons),
		Doors:   make(map[tiles.Code]*Doors),
	}
	tileset.Keys.Each(func(c tiles.Code) {
		r.Keys[c] = NewKeys(c)
	})
	tileset.Buttons.Each(func(c tiles.Code) {
		r.Buttons[c] = NewButtons(c)
	})
	tileset.TopDoors.Each(func(c tiles.Code) {
		r.Doors[c] = NewDoors(c)
	})
	return r
}

// DoorList returns the room's door groups as a slice, the shape the key
// and button interactions take them in.
func (r *Room) DoorList() []*Doors {
	doors := make([]*Doors, 0, len(r.Doors))
	for _, d := range r.Doors {
		doors = append(doors, d)
	}
	return doors
}

// Clone returns an independent deep copy of the room.
func (r *Room) Clone() *Room {
	c := &Room{
		Keys:    make(map[tiles.Code]*Keys, len(r.Keys)),
		Buttons: make(map[tiles.Code]*Buttons, len(r.Buttons)),
		Doors:   make(map[tiles.Code]*Doors, len(r.Doors)),
	}
	for code, k := range r.Keys {
		c.Keys[code] = k.Clone()
	}
	for code, b := range r.Buttons {
		c.Buttons[code] = b.Clone()
	}
	for code, d := range r.Doors {
		c.Doors[code] = d.Clone()
	}
	return c
}

// Registry owns the per-room entity groups of a loaded level, indexed by
// room number (0..N-1, left to right).
type Registry struct {
	Rooms []*Room
}

// NewRegistry creates a registry with empty groups for every room.
func NewRegistry(roomCount int) *Registry {
	rooms := make([]*Room, roomCount)
	for i := range rooms {
		rooms[i] = NewRoom()
	}
	return &Registry{Rooms: rooms}
}

// Room returns the entity groups of the given room number.
func (reg *Registry) Room(n int) *Room {
	return reg.Rooms[n]
}

// RoomCount returns the number of rooms.
func (reg *Registry) RoomCount() int {
	return len(reg.Rooms)
}

// Clone returns an independent deep copy of every room, the checkpoint
// snapshot shape. Mutating the original after cloning must never reach
// the copy.
func (reg *Registry) Clone() *Registry {
	rooms := make([]*Room, len(reg.Rooms))
	for i, r := range reg.Rooms {
		rooms[i] = r.Clone()
	}
	return &Registry{Rooms: rooms}
}
