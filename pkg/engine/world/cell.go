// Package world provides generic 2D grid-based board primitives.
// Cells live in an arena owned by the Grid and refer to each other by
// Position, so the movement graph never forms pointer cycles.
package world

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

// String returns "(row,col)"
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell represents a single square of the board.
type Cell struct {
	// Grid position
	Row int
	Col int

	// Code is the room code of the cell (walkway, unused or a room).
	Code rune

	// Modifiers. At most one of these is set on any cell.
	DoorDirection Direction
	Label         bool
	Center        bool
	SecretPassage rune // room code of the passage target, 0 when absent

	// Occupied is true while a game piece stands on the cell.
	Occupied bool

	adj mapset.Set[Position]
}

// NewCell creates a new cell at the given position
func NewCell(row, col int, code rune) *Cell {
	return &Cell{
		Row:  row,
		Col:  col,
		Code: code,
		adj:  mapset.New[Position](),
	}
}

// Pos returns the position of the cell
func (c *Cell) Pos() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// IsDoorway returns true if the cell carries a door direction
func (c *Cell) IsDoorway() bool {
	return c.DoorDirection.IsValid()
}

// IsRoomCenter returns true if the cell stands for the inside of its room
func (c *Cell) IsRoomCenter() bool {
	return c.Center
}

// IsLabel returns true if the cell is the label anchor of its room
func (c *Cell) IsLabel() bool {
	return c.Label
}

// HasSecretPassage returns true if the cell declares a secret passage
func (c *Cell) HasSecretPassage() bool {
	return c.SecretPassage != 0
}

// HasModifier returns true if any of the room/door modifiers is set
func (c *Cell) HasModifier() bool {
	return c.IsDoorway() || c.Center || c.Label || c.HasSecretPassage()
}

// AddAdj adds a directed edge from this cell to the cell at p
func (c *Cell) AddAdj(p Position) {
	c.adj.Put(p)
}

// IsAdjacent returns true if there is an edge from this cell to p
func (c *Cell) IsAdjacent(p Position) bool {
	return c.adj.Has(p)
}

// AdjCount returns the number of outgoing edges
func (c *Cell) AdjCount() int {
	return c.adj.Size()
}

// Adjacent returns the positions this cell has edges to, in row-major order
func (c *Cell) Adjacent() []Position {
	positions := make([]Position, 0, c.adj.Size())
	c.adj.Each(func(p Position) {
		positions = append(positions, p)
	})
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Row < positions[j].Row ||
			(positions[i].Row == positions[j].Row && positions[i].Col < positions[j].Col)
	})
	return positions
}

// String returns a debug representation like "(3,4,'W')"
func (c *Cell) String() string {
	return fmt.Sprintf("(%d,%d,'%c')", c.Row, c.Col, c.Code)
}

// SortCells returns the cells of a set in row-major order
func SortCells(cells mapset.Set[*Cell]) []*Cell {
	sorted := make([]*Cell, 0, cells.Size())
	cells.Each(func(c *Cell) {
		sorted = append(sorted, c)
	})
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Row < sorted[j].Row ||
			(sorted[i].Row == sorted[j].Row && sorted[i].Col < sorted[j].Col)
	})
	return sorted
}
