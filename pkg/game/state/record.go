package state

import (
	"github.com/leonelquinteros/gotext"

	"cluegame/pkg/game/deck"
)

// SuggestionRecord is the resolved outcome of one suggestion
type SuggestionRecord struct {
	Suggester  string
	Suggestion deck.Solution
	Disproved  bool
	Disprover  string    // empty unless Disproved
	Card       deck.Card // zero unless Disproved
}

// GuessText returns the suggestion for display
func (r *SuggestionRecord) GuessText() string {
	if r == nil {
		return gotext.Get("Waiting For a Guess!")
	}
	return r.Suggestion.String()
}

// ResultText returns the disprove result for display. The card itself is only
// shown to the suggester, so this names the disprover alone.
func (r *SuggestionRecord) ResultText() string {
	switch {
	case r == nil:
		return ""
	case r.Disproved:
		return gotext.Get("Disproven by: %s", r.Disprover)
	default:
		return gotext.Get("Suggestion was not disproven")
	}
}

// Outcome is the result of an accusation that ended the game
type Outcome struct {
	Player     string
	Accusation deck.Solution
	Solution   deck.Solution
	Won        bool
}

func (o Outcome) String() string {
	if o.Won {
		return gotext.Get("%s wins! It was %s.", o.Player, o.Solution.String())
	}
	return gotext.Get("%s accused %s and lost. It was %s.", o.Player, o.Accusation.String(), o.Solution.String())
}
