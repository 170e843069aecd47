package board

import (
	"github.com/zyedidia/generic/mapset"

	"cluegame/pkg/engine/world"
)

// ComputeTargets returns every cell a piece standing on start can finish on
// with exactly steps moves. Room centers can always be entered and end the
// path; other occupied cells block it. The start cell is never a target.
func (b *Board) ComputeTargets(start *world.Cell, steps int) mapset.Set[*world.Cell] {
	targets := mapset.New[*world.Cell]()
	if start == nil || steps <= 0 || b.Grid == nil {
		return targets
	}

	visited := mapset.New[world.Position]()
	visited.Put(start.Pos())
	b.searchTargets(start, steps, visited, targets)
	return targets
}

// searchTargets walks every path depth-first. visited only holds the cells of
// the current path: each cell is removed again once its subtree is explored.
func (b *Board) searchTargets(current *world.Cell, remaining int, visited mapset.Set[world.Position], targets mapset.Set[*world.Cell]) {
	for _, adj := range b.Grid.AdjacentCells(current) {
		if visited.Has(adj.Pos()) {
			continue
		}
		if adj.Occupied && !adj.IsRoomCenter() {
			continue
		}

		visited.Put(adj.Pos())
		if adj.IsRoomCenter() || remaining == 1 {
			targets.Put(adj)
		} else {
			b.searchTargets(adj, remaining-1, visited, targets)
		}
		visited.Remove(adj.Pos())
	}
}
