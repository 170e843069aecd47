package gameplay

import (
	"github.com/sirupsen/logrus"

	"cluegame/pkg/game/deck"
	"cluegame/pkg/game/player"
	"cluegame/pkg/game/state"
)

// accusationSetter is implemented by players whose accusation comes from the
// caller.
type accusationSetter interface {
	SetAccusation(s *deck.Solution)
}

// SubmitAccusation supplies the current human player's accusation. An
// accusation may be made at any decision point of the turn; made before the
// move or the suggestion it replaces them. nil means no accusation this turn
// and is only accepted once the turn is complete. It returns the outcome and
// true only when an accusation was checked, which always ends the game.
func (g *Game) SubmitAccusation(s *deck.Solution) (state.Outcome, bool) {
	if g.st.AccusationChecked {
		return state.Outcome{}, false
	}
	switch g.st.Phase {
	case state.TurnComplete:
	case state.AwaitingMoveSelection, state.RoomDecision:
		if s == nil {
			return state.Outcome{}, false
		}
	default:
		return state.Outcome{}, false
	}
	p := g.CurrentPlayer()
	setter, ok := p.(accusationSetter)
	if !ok {
		return state.Outcome{}, false
	}
	if s != nil && !s.Complete() {
		return state.Outcome{}, false
	}

	setter.SetAccusation(s)
	outcome, over := g.checkAccusation(p)
	setter.SetAccusation(nil)
	return outcome, over
}

// checkAccusation runs the once-per-turn accusation check for p
func (g *Game) checkAccusation(p player.Player) (state.Outcome, bool) {
	g.st.AccusationChecked = true
	if !p.WillAccuse() {
		return state.Outcome{}, false
	}
	acc := p.Accusation()
	if acc == nil {
		return state.Outcome{}, false
	}

	outcome := state.Outcome{
		Player:     p.Name(),
		Accusation: *acc,
		Solution:   g.solution,
		Won:        acc.Equal(g.solution),
	}
	g.st.Outcome = &outcome
	g.st.Phase = state.GameOver

	logMessage(g, "PLAYER{%s} accuses %s", p.Name(), acc.String())
	logMessage(g, "%s", outcome.String())
	g.log.WithFields(logrus.Fields{
		"player": p.Name(),
		"won":    outcome.Won,
		"turn":   g.st.Turn,
	}).Info("game over")
	return outcome, true
}
