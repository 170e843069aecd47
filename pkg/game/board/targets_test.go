package board

import (
	"testing"

	"github.com/zyedidia/generic/mapset"

	"cluegame/pkg/engine/world"
)

func positionsOf(targets mapset.Set[*world.Cell]) []world.Position {
	var positions []world.Position
	for _, c := range world.SortCells(targets) {
		positions = append(positions, c.Pos())
	}
	return positions
}

func assertTargets(t *testing.T, got mapset.Set[*world.Cell], want ...world.Position) {
	t.Helper()
	positions := positionsOf(got)
	if len(positions) != len(want) {
		t.Fatalf("targets = %v, want %v", positions, want)
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Fatalf("targets = %v, want %v", positions, want)
		}
	}
}

func TestComputeTargets_OneStepIsNeighbours(t *testing.T) {
	b := newTestBoard(t, adjacencyLayout...)
	assertTargets(t, b.ComputeTargets(b.GetCell(2, 2), 1),
		world.Position{Row: 2, Col: 1}, world.Position{Row: 2, Col: 3}, world.Position{Row: 3, Col: 2})
}

func TestComputeTargets_OneStepMatchesAdjacencyEverywhere(t *testing.T) {
	b := newTestBoard(t, adjacencyLayout...)
	b.GetCell(2, 3).Occupied = true
	b.GetCell(4, 2).Occupied = true

	b.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.AdjCount() == 0 {
			return
		}
		want := mapset.New[*world.Cell]()
		for _, adj := range b.Grid.AdjacentCells(cell) {
			if !adj.Occupied || adj.IsRoomCenter() {
				want.Put(adj)
			}
		}
		got := b.ComputeTargets(cell, 1)
		if got.Size() != want.Size() {
			t.Errorf("ComputeTargets(%v, 1) = %v, want %v", cell, positionsOf(got), positionsOf(want))
			return
		}
		want.Each(func(c *world.Cell) {
			if !got.Has(c) {
				t.Errorf("ComputeTargets(%v, 1) missing %v", cell, c)
			}
		})
	})
}

func TestComputeTargets_DoorwayReachesCenter(t *testing.T) {
	b := newTestBoard(t, adjacencyLayout...)
	assertTargets(t, b.ComputeTargets(b.GetCell(3, 2), 1),
		world.Position{Row: 2, Col: 2}, world.Position{Row: 3, Col: 1},
		world.Position{Row: 3, Col: 3}, world.Position{Row: 4, Col: 2})
}

func TestComputeTargets_NeverIncludesStart(t *testing.T) {
	b := newTestBoard(t, adjacencyLayout...)
	start := b.GetCell(2, 2)
	for steps := 1; steps <= 6; steps++ {
		if b.ComputeTargets(start, steps).Has(start) {
			t.Errorf("ComputeTargets(start, %d) contains the start cell", steps)
		}
	}
}

func TestComputeTargets_OccupiedWalkwayBlocks(t *testing.T) {
	b := newTestBoard(t, adjacencyLayout...)
	blocked := b.GetCell(2, 1)
	blocked.Occupied = true

	assertTargets(t, b.ComputeTargets(b.GetCell(2, 2), 1),
		world.Position{Row: 2, Col: 3}, world.Position{Row: 3, Col: 2})

	for steps := 1; steps <= 6; steps++ {
		if b.ComputeTargets(b.GetCell(2, 2), steps).Has(blocked) {
			t.Errorf("ComputeTargets(_, %d) includes an occupied walkway cell", steps)
		}
	}
}

func TestComputeTargets_OccupiedCenterStillEnterable(t *testing.T) {
	b := newTestBoard(t, adjacencyLayout...)
	center := b.Room('S').CenterCell()
	center.Occupied = true
	if !b.ComputeTargets(b.GetCell(3, 2), 1).Has(center) {
		t.Error("ComputeTargets from the study door does not include the occupied study center")
	}
	if !b.ComputeTargets(b.GetCell(3, 3), 4).Has(center) {
		t.Error("ComputeTargets(3,3, 4) does not include the occupied study center")
	}
}

func TestComputeTargets_EnteringRoomEndsPath(t *testing.T) {
	b := newTestBoard(t, adjacencyLayout...)
	targets := b.ComputeTargets(b.GetCell(2, 0), 3)
	kitchen := b.Room('K').CenterCell()
	study := b.Room('S').CenterCell()
	if !targets.Has(kitchen) {
		t.Error("kitchen center reachable with budget left is not a target")
	}
	if targets.Has(study) {
		t.Error("study center reached by continuing through the kitchen passage")
	}
}

func TestComputeTargets_LeavingRoomCenter(t *testing.T) {
	b := newTestBoard(t, adjacencyLayout...)
	kitchen := b.Room('K').CenterCell()
	kitchen.Occupied = true

	assertTargets(t, b.ComputeTargets(kitchen, 1),
		world.Position{Row: 2, Col: 0}, world.Position{Row: 4, Col: 2})
	assertTargets(t, b.ComputeTargets(kitchen, 2),
		world.Position{Row: 2, Col: 1}, world.Position{Row: 3, Col: 0}, world.Position{Row: 4, Col: 2})
}

func TestComputeTargets_ExactLengthPaths(t *testing.T) {
	// Straight corridor: only the cells exactly n steps away (without revisiting)
	// are targets.
	b := newTestBoard(t, "W,W,W,W,W")
	assertTargets(t, b.ComputeTargets(b.GetCell(0, 2), 2),
		world.Position{Row: 0, Col: 0}, world.Position{Row: 0, Col: 4})
	assertTargets(t, b.ComputeTargets(b.GetCell(0, 0), 4),
		world.Position{Row: 0, Col: 4})
	if n := b.ComputeTargets(b.GetCell(0, 0), 5).Size(); n != 0 {
		t.Errorf("ComputeTargets(0,0, 5) on a 5-cell corridor has %d targets, want 0", n)
	}
}

func TestComputeTargets_LoopReachesCellByDifferentPaths(t *testing.T) {
	b := newTestBoard(t,
		"W,W",
		"W,W",
	)
	// On a 2x2 loop every cell is reachable in 1, 2 or 3 steps except the start.
	assertTargets(t, b.ComputeTargets(b.GetCell(0, 0), 3),
		world.Position{Row: 0, Col: 1}, world.Position{Row: 1, Col: 0})
	assertTargets(t, b.ComputeTargets(b.GetCell(0, 0), 2),
		world.Position{Row: 1, Col: 1})
}

func TestComputeTargets_BadInput(t *testing.T) {
	b := newTestBoard(t, "W,W")
	if n := b.ComputeTargets(b.GetCell(0, 0), 0).Size(); n != 0 {
		t.Errorf("ComputeTargets(_, 0) size = %d, want 0", n)
	}
	if n := b.ComputeTargets(nil, 3).Size(); n != 0 {
		t.Errorf("ComputeTargets(nil, 3) size = %d, want 0", n)
	}
}
