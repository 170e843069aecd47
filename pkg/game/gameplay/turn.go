package gameplay

import (
	"github.com/sirupsen/logrus"

	"cluegame/pkg/game/state"
)

// beginTurn rolls for the player at index active and runs as far as it can:
// to the end of the turn for a computer, to the first pending decision for a
// human.
func (g *Game) beginTurn(active int) {
	roll := g.rng.Intn(DiceSides) + 1
	g.st.BeginTurn(active, roll)
	p := g.CurrentPlayer()

	g.log.WithFields(logrus.Fields{
		"turn":   g.st.Turn,
		"player": p.Name(),
		"roll":   roll,
	}).Debug("turn started")
	logMessage(g, "PLAYER{%s} rolled a %d", p.Name(), roll)

	g.computeTargets()
	if g.st.Targets.Size() == 0 {
		logMessage(g, "PLAYER{%s} cannot move", p.Name())
		g.st.Phase = state.MoveApplied
		g.completeTurn()
		return
	}

	if p.IsHuman() {
		g.st.Phase = state.AwaitingMoveSelection
		return
	}

	cell, ok := p.SelectTarget(g.Targets())
	if !ok || !g.st.Targets.Has(cell) {
		g.log.WithField("player", p.Name()).Error("computer picked no valid target")
		g.st.Phase = state.MoveApplied
		g.completeTurn()
		return
	}
	g.applyMove(cell)
}

// completeTurn ends the active player's actions. Computers get their
// accusation check here so a deduction locked in during this turn is acted on
// before anything else can happen.
func (g *Game) completeTurn() {
	g.st.Phase = state.TurnComplete
	if p := g.CurrentPlayer(); !p.IsHuman() {
		g.checkAccusation(p)
	}
}

// NextPlayer passes the turn to the next player in the roster and begins
// that player's turn. It is refused while a human decision is pending, before
// Start and once the game is over.
func (g *Game) NextPlayer() bool {
	if g.st.Turn == 0 || g.st.IsOver() || g.st.Phase != state.TurnComplete {
		return false
	}
	if !g.st.AccusationChecked {
		if _, over := g.checkAccusation(g.CurrentPlayer()); over {
			return false
		}
	}

	g.beginTurn((g.st.Active + 1) % len(g.players))
	return true
}

// Run advances through computer turns until a human decision is pending, the
// game ends, or maxTurns turns have started. maxTurns <= 0 means no limit.
func (g *Game) Run(maxTurns int) {
	if g.st.Turn == 0 {
		g.Start()
	}
	for !g.st.IsOver() && !g.AwaitingSelection() {
		if maxTurns > 0 && g.st.Turn >= maxTurns {
			return
		}
		if g.CurrentPlayer().IsHuman() && g.st.Phase == state.TurnComplete && !g.st.AccusationChecked {
			return
		}
		if !g.NextPlayer() {
			return
		}
	}
}
