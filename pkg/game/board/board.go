// Package board holds the room registry on top of the engine grid and
// implements the movement rules: the adjacency builder and the targets search.
package board

import (
	"strings"

	"github.com/sirupsen/logrus"

	"cluegame/pkg/engine/world"
)

// DefaultWalkwayCode is used when the legend has no Space named "Walkway".
const DefaultWalkwayCode = 'W'

// Board is the grid together with the rooms its cells belong to.
type Board struct {
	Grid *world.Grid

	rooms       map[rune]*Room
	order       []rune
	walkwayCode rune
	adjBuilt    bool

	log logrus.FieldLogger
}

// New creates an empty board with no grid yet
func New() *Board {
	return &Board{
		rooms:       make(map[rune]*Room),
		walkwayCode: DefaultWalkwayCode,
		log:         logrus.StandardLogger(),
	}
}

// SetLogger replaces the logger used for builder warnings
func (b *Board) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		b.log = log
	}
}

// AddRoom registers a room. Returns false if the code is already taken.
func (b *Board) AddRoom(r *Room) bool {
	if _, found := b.rooms[r.Code]; found {
		return false
	}
	b.rooms[r.Code] = r
	b.order = append(b.order, r.Code)
	if r.IsSpace() && strings.EqualFold(r.Name, "Walkway") {
		b.walkwayCode = r.Code
	}
	return true
}

// Room returns the room with the given code, or nil
func (b *Board) Room(code rune) *Room {
	return b.rooms[code]
}

// RoomFor returns the room a cell belongs to, or nil
func (b *Board) RoomFor(c *world.Cell) *Room {
	if c == nil {
		return nil
	}
	return b.rooms[c.Code]
}

// RoomByName returns the room with the given display name, or nil
func (b *Board) RoomByName(name string) *Room {
	for _, code := range b.order {
		if b.rooms[code].Name == name {
			return b.rooms[code]
		}
	}
	return nil
}

// Rooms returns all registered rooms in legend order
func (b *Board) Rooms() []*Room {
	rooms := make([]*Room, 0, len(b.order))
	for _, code := range b.order {
		rooms = append(rooms, b.rooms[code])
	}
	return rooms
}

// WalkwayCode returns the room code of walkway cells
func (b *Board) WalkwayCode() rune {
	return b.walkwayCode
}

// IsWalkway returns true if the cell is a walkway cell (doorways included)
func (b *Board) IsWalkway(c *world.Cell) bool {
	return c != nil && c.Code == b.walkwayCode
}

// Rows returns the number of grid rows, 0 before a grid is attached
func (b *Board) Rows() int {
	if b.Grid == nil {
		return 0
	}
	return b.Grid.Rows()
}

// Cols returns the number of grid columns, 0 before a grid is attached
func (b *Board) Cols() int {
	if b.Grid == nil {
		return 0
	}
	return b.Grid.Cols()
}

// GetCell returns the cell at row/col, or nil
func (b *Board) GetCell(row, col int) *world.Cell {
	if b.Grid == nil {
		return nil
	}
	return b.Grid.GetCell(row, col)
}

// MovePiece moves a game piece from one cell to another. The source cell stays
// occupied when stillOccupied reports another piece standing on it.
func (b *Board) MovePiece(from, to *world.Cell, stillOccupied bool) {
	if from != nil && from != to {
		from.Occupied = stillOccupied
	}
	if to != nil {
		to.Occupied = true
	}
}

// ClearOccupancy marks every cell free
func (b *Board) ClearOccupancy() {
	if b.Grid == nil {
		return
	}
	b.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		cell.Occupied = false
	})
}

// OccupiedCount returns how many cells hold at least one piece
func (b *Board) OccupiedCount() int {
	if b.Grid == nil {
		return 0
	}
	return b.Grid.CountCells(func(c *world.Cell) bool { return c.Occupied })
}
