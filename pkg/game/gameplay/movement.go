package gameplay

import (
	"cluegame/pkg/engine/world"
	"cluegame/pkg/game/state"
)

// computeTargets fills the target set for the current player and roll
func (g *Game) computeTargets() {
	start := g.CurrentPlayer().Position()
	g.st.Targets = g.board.ComputeTargets(start, g.st.Roll)
	g.st.Phase = state.TargetsComputed
}

// SelectTarget moves the current human player to the cell at row/col. The
// selection is rejected without any change unless the engine is waiting for a
// move and the cell is one of the current targets.
func (g *Game) SelectTarget(row, col int) bool {
	if g.st.Phase != state.AwaitingMoveSelection {
		return false
	}
	cell := g.board.GetCell(row, col)
	if cell == nil || !g.st.Targets.Has(cell) {
		return false
	}
	g.applyMove(cell)
	return true
}

// applyMove moves the current player's piece and triggers the room decision
// when the move ends on a room center.
func (g *Game) applyMove(cell *world.Cell) {
	p := g.CurrentPlayer()
	from := p.Position()
	g.board.MovePiece(from, cell, g.occupiedByOther(from, p))
	p.MoveTo(cell)
	g.st.Phase = state.MoveApplied

	if !cell.IsRoomCenter() {
		logMessage(g, "PLAYER{%s} moved to %v", p.Name(), cell.Pos())
		g.completeTurn()
		return
	}

	if room := g.board.RoomFor(cell); room != nil {
		logMessage(g, "PLAYER{%s} entered the ROOM{%s}", p.Name(), room.Name)
	}
	g.roomDecision(cell)
}
