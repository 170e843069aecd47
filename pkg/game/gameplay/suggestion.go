package gameplay

import (
	"github.com/sirupsen/logrus"

	"cluegame/pkg/engine/world"
	"cluegame/pkg/game/deck"
	"cluegame/pkg/game/player"
	"cluegame/pkg/game/state"
)

// roomDecision asks the current player for a suggestion in the room centered
// on cell. Humans are waited for.
func (g *Game) roomDecision(cell *world.Cell) {
	p := g.CurrentPlayer()
	room, ok := g.RoomCard(cell)
	if !ok {
		g.log.WithField("cell", cell.Pos().String()).Error("room center has no room card")
		g.completeTurn()
		return
	}

	if p.IsHuman() {
		g.st.Phase = state.RoomDecision
		return
	}

	s, ok := p.Suggest(room)
	if !ok {
		g.log.WithFields(logrus.Fields{
			"player": p.Name(),
			"room":   room.Name,
		}).Error("no unseen card left to suggest")
		g.completeTurn()
		return
	}
	g.resolveSuggestion(p, s)
	g.completeTurn()
}

// SubmitSuggestion supplies the current human player's suggestion. The room
// is always the room the player stands in. It is rejected unless a room
// decision is pending and the suggestion names a person and a weapon.
func (g *Game) SubmitSuggestion(s deck.Solution) (state.SuggestionRecord, bool) {
	if g.st.Phase != state.RoomDecision {
		return state.SuggestionRecord{}, false
	}
	p := g.CurrentPlayer()
	room, ok := g.RoomCard(p.Position())
	if !ok {
		return state.SuggestionRecord{}, false
	}
	s.Room = room
	if !s.Complete() || !g.deck.Has(s.Person) || !g.deck.Has(s.Weapon) {
		return state.SuggestionRecord{}, false
	}

	g.resolveSuggestion(p, s)
	g.completeTurn()
	return *g.st.LastSuggestion, true
}

// resolveSuggestion runs a suggestion, records it and lets the suggester
// update its deductions.
func (g *Game) resolveSuggestion(suggester player.Player, s deck.Solution) {
	g.st.CurrentGuess = &s
	logMessage(g, "PLAYER{%s} suggests %s", suggester.Name(), s.String())

	card, disprover, ok := g.handleSuggestion(s, suggester)
	rec := &state.SuggestionRecord{
		Suggester:  suggester.Name(),
		Suggestion: s,
		Disproved:  ok,
	}
	if ok {
		rec.Disprover = disprover.Name()
		rec.Card = card
	}
	g.st.LastSuggestion = rec
	logMessage(g, "%s", rec.ResultText())

	suggester.OnSuggestionResult(s, card, ok)
}

// HandleSuggestion moves the named person to the named room, then asks the
// other players in roster order, starting after the suggester, to disprove.
// The first card shown is marked seen by the suggester and returned.
func (g *Game) HandleSuggestion(s deck.Solution, suggester player.Player) (deck.Card, bool) {
	card, _, ok := g.handleSuggestion(s, suggester)
	return card, ok
}

func (g *Game) handleSuggestion(s deck.Solution, suggester player.Player) (deck.Card, player.Player, bool) {
	g.summonPerson(s)

	start := g.indexOf(suggester)
	if start < 0 {
		g.log.WithField("player", suggester.Name()).Error("suggester is not in the roster")
	}
	n := len(g.players)
	for i := 1; i <= n; i++ {
		p := g.players[(start+i+n)%n]
		if p == suggester {
			continue
		}
		if card, ok := p.DisproveSuggestion(s); ok {
			if !s.Contains(card) {
				g.log.WithFields(logrus.Fields{
					"player": p.Name(),
					"card":   card.Name,
				}).Error("disproving card is not part of the suggestion")
				continue
			}
			suggester.MarkSeen(card)
			return card, p, true
		}
	}
	return deck.Card{}, nil, false
}

// summonPerson moves the suggested person's piece to the suggested room
func (g *Game) summonPerson(s deck.Solution) {
	p, ok := g.PlayerByName(s.Person.Name)
	if !ok {
		g.log.WithField("person", s.Person.Name).Error("suggested person is not in the roster")
		return
	}
	room := g.board.RoomByName(s.Room.Name)
	if room == nil || room.CenterCell() == nil {
		g.log.WithField("room", s.Room.Name).Error("suggested room has no center")
		return
	}

	center := room.CenterCell()
	from := p.Position()
	if from == center {
		return
	}
	g.board.MovePiece(from, center, g.occupiedByOther(from, p))
	p.MoveTo(center)
}
