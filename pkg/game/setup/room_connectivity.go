package setup

import (
	"github.com/zyedidia/generic/mapset"

	"cluegame/pkg/engine/world"
	"cluegame/pkg/game/board"
)

// UnreachableRooms returns the rooms whose center cannot be reached from any
// of the start cells by following adjacency edges. Occupancy is ignored.
// Rooms without a center are always reported, since nothing can enter them.
// With no start cells there is nothing to check and nil is returned.
func UnreachableRooms(b *board.Board, starts []*world.Cell) []*board.Room {
	if len(starts) == 0 {
		return nil
	}

	visited := mapset.New[*world.Cell]()
	queue := make([]*world.Cell, 0, len(starts))
	for _, c := range starts {
		if c != nil {
			queue = append(queue, c)
		}
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if visited.Has(current) {
			continue
		}
		visited.Put(current)
		for _, p := range current.Adjacent() {
			if n := b.GetCell(p.Row, p.Col); n != nil && !visited.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	var unreachable []*board.Room
	for _, room := range b.Rooms() {
		if room.IsSpace() {
			continue
		}
		if center := room.CenterCell(); center == nil || !visited.Has(center) {
			unreachable = append(unreachable, room)
		}
	}
	return unreachable
}

// startCells resolves the roster's start positions. placePlayers has already
// checked that every position is on the grid.
func startCells(b *board.Board, players []PlayerSpec) []*world.Cell {
	cells := make([]*world.Cell, 0, len(players))
	for _, p := range players {
		if c := b.GetCell(p.Row, p.Col); c != nil {
			cells = append(cells, c)
		}
	}
	return cells
}
