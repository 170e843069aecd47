package board

import (
	"github.com/sirupsen/logrus"

	"cluegame/pkg/engine/world"
)

// BuildAdjacency computes the adjacency set of every cell in one pass.
// Edges never change afterwards; a second call does nothing.
func (b *Board) BuildAdjacency() {
	if b.adjBuilt || b.Grid == nil {
		return
	}
	b.adjBuilt = true

	b.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		switch {
		case cell.IsRoomCenter():
			b.buildCenterAdj(cell)
		case b.IsWalkway(cell):
			b.buildWalkwayAdj(cell)
		}
	})
}

// AdjacencyBuilt returns true once BuildAdjacency has run
func (b *Board) AdjacencyBuilt() bool {
	return b.adjBuilt
}

// Room centers only link through their own room's secret passage. The reverse
// edge exists only if the target room declares a passage back.
func (b *Board) buildCenterAdj(cell *world.Cell) {
	room := b.RoomFor(cell)
	if room == nil || !room.HasSecretPassage() {
		return
	}
	target := b.Room(room.SecretPassage)
	if target == nil || target.CenterCell() == nil {
		b.log.WithFields(logrus.Fields{
			"room":   room.Name,
			"target": string(room.SecretPassage),
		}).Warn("secret passage leads to a room without a center cell")
		return
	}
	cell.AddAdj(target.CenterCell().Pos())
}

func (b *Board) buildWalkwayAdj(cell *world.Cell) {
	if cell.IsDoorway() {
		b.linkDoorway(cell)
	}

	for _, n := range b.Grid.Neighbors(cell) {
		if b.IsWalkway(n) {
			cell.AddAdj(n.Pos())
		}
	}
}

// linkDoorway adds the mutual edge between a doorway and the center of the
// room it opens into.
func (b *Board) linkDoorway(door *world.Cell) {
	fields := logrus.Fields{"cell": door.Pos().String(), "door": door.DoorDirection.String()}

	facing := b.Grid.GetCellRelative(door, door.DoorDirection)
	if facing == nil {
		b.log.WithFields(fields).Warn("doorway points off the grid")
		return
	}
	room := b.RoomFor(facing)
	if room == nil || room.IsSpace() || room.CenterCell() == nil {
		b.log.WithFields(fields).Warn("doorway does not open into a room with a center cell")
		return
	}

	center := room.CenterCell()
	door.AddAdj(center.Pos())
	center.AddAdj(door.Pos())
}
