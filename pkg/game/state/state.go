// Package state holds the turn state of a game and its message log.
package state

import (
	"github.com/zyedidia/generic/mapset"

	"cluegame/pkg/engine/world"
	"cluegame/pkg/game/deck"
)

// MaxMessages is the length of the message log
const MaxMessages = 8

// Game is the mutable per-turn state owned by the engine
type Game struct {
	Active int // roster index of the player whose turn it is
	Turn   int // turns started so far, counting from 1
	Roll   int
	Phase  Phase

	Targets mapset.Set[*world.Cell]

	// CurrentGuess is the suggestion of the running turn, nil until one is made
	CurrentGuess   *deck.Solution
	LastSuggestion *SuggestionRecord

	// AccusationChecked is set once the active player's accusation check ran
	AccusationChecked bool

	Outcome *Outcome

	Messages []string
}

// NewGame creates turn state waiting for the first roll
func NewGame() *Game {
	return &Game{
		Phase:    AwaitingRoll,
		Targets:  mapset.New[*world.Cell](),
		Messages: make([]string, 0),
	}
}

// BeginTurn resets the per-turn fields for the player at index active
func (g *Game) BeginTurn(active, roll int) {
	g.Active = active
	g.Turn++
	g.Roll = roll
	g.Phase = AwaitingRoll
	g.Targets = mapset.New[*world.Cell]()
	g.CurrentGuess = nil
	g.AccusationChecked = false
}

// IsOver reports whether an accusation has ended the game
func (g *Game) IsOver() bool {
	return g.Phase == GameOver
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last MaxMessages
	if len(g.Messages) > MaxMessages {
		g.Messages = g.Messages[len(g.Messages)-MaxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
