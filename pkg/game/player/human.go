package player

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"cluegame/pkg/engine/world"
	"cluegame/pkg/game/deck"
)

// Human is a player driven from outside the engine. Every decision is
// deferred to the caller.
type Human struct {
	Base
	accusation *deck.Solution
}

// NewHuman creates a human player
func NewHuman(name, color string, rng *rand.Rand) *Human {
	return &Human{Base: newBase(name, color, rng)}
}

// IsHuman returns true
func (h *Human) IsHuman() bool {
	return true
}

// SetAccusation stores the accusation the caller wants to make this turn.
// nil cancels it.
func (h *Human) SetAccusation(s *deck.Solution) {
	if s == nil {
		h.accusation = nil
		return
	}
	acc := *s
	h.accusation = &acc
}

// WillAccuse reports whether an accusation has been supplied
func (h *Human) WillAccuse() bool {
	return h.accusation != nil
}

// Accusation returns the supplied accusation, or nil
func (h *Human) Accusation() *deck.Solution {
	return h.accusation
}

// OnSuggestionResult does nothing: the shown card is already in the seen set.
func (h *Human) OnSuggestionResult(deck.Solution, deck.Card, bool) {}

// SelectTarget always defers to the caller
func (h *Human) SelectTarget(mapset.Set[*world.Cell]) (*world.Cell, bool) {
	return nil, false
}

// Suggest always defers to the caller
func (h *Human) Suggest(deck.Card) (deck.Solution, bool) {
	return deck.Solution{}, false
}
