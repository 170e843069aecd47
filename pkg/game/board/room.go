package board

import (
	"cluegame/pkg/engine/world"
)

// Kind distinguishes real rooms from movement-only spaces.
type Kind int

const (
	KindRoom  Kind = iota // A room with a card, a center and a label
	KindSpace             // Walkway or unused space; no card, no modifiers
)

// Room is an entry of the legend: either a real room or a space.
type Room struct {
	Name string
	Code rune
	Kind Kind

	// SecretPassage is the code of the room a passage leads to, 0 when absent.
	SecretPassage rune

	centerCell *world.Cell
	labelCell  *world.Cell
}

// NewRoom creates a room of the given kind
func NewRoom(name string, code rune, kind Kind) *Room {
	return &Room{Name: name, Code: code, Kind: kind}
}

// IsSpace returns true for walkway/unused style entries
func (r *Room) IsSpace() bool {
	return r.Kind == KindSpace
}

// CenterCell returns the cell that stands for the inside of the room
func (r *Room) CenterCell() *world.Cell {
	return r.centerCell
}

// LabelCell returns the cell the room's name is anchored to
func (r *Room) LabelCell() *world.Cell {
	return r.labelCell
}

// SetCenterCell records the center cell. Returns false if one is already set.
func (r *Room) SetCenterCell(c *world.Cell) bool {
	if r.centerCell != nil {
		return false
	}
	r.centerCell = c
	return true
}

// SetLabelCell records the label cell. Returns false if one is already set.
func (r *Room) SetLabelCell(c *world.Cell) bool {
	if r.labelCell != nil {
		return false
	}
	r.labelCell = c
	return true
}

// HasSecretPassage returns true if the room declares a passage
func (r *Room) HasSecretPassage() bool {
	return r.SecretPassage != 0
}
