// Package gameplay drives a game: dice, movement, suggestions, accusations
// and turn order. All game state is owned by a Game and changes only through
// its command methods.
package gameplay

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"cluegame/pkg/engine/world"
	"cluegame/pkg/game/board"
	"cluegame/pkg/game/deck"
	"cluegame/pkg/game/player"
	"cluegame/pkg/game/state"
)

// DiceSides is the highest roll
const DiceSides = 6

// Game is one running game
type Game struct {
	board    *board.Board
	deck     *deck.Deck
	players  []player.Player
	solution deck.Solution

	rng       *rand.Rand
	log       logrus.FieldLogger
	onMessage func(string)

	st *state.Game
}

// Board returns the board
func (g *Game) Board() *board.Board {
	return g.board
}

// Rows returns the number of grid rows
func (g *Game) Rows() int {
	return g.board.Rows()
}

// Cols returns the number of grid columns
func (g *Game) Cols() int {
	return g.board.Cols()
}

// CellAt returns the cell at row/col, or nil
func (g *Game) CellAt(row, col int) *world.Cell {
	return g.board.GetCell(row, col)
}

// RoomFor returns the room a cell belongs to
func (g *Game) RoomFor(cell *world.Cell) *board.Room {
	return g.board.RoomFor(cell)
}

// Targets returns a copy of the current reachable-target set
func (g *Game) Targets() mapset.Set[*world.Cell] {
	targets := mapset.New[*world.Cell]()
	g.st.Targets.Each(func(c *world.Cell) {
		targets.Put(c)
	})
	return targets
}

// SortedTargets returns the current targets in row-major order
func (g *Game) SortedTargets() []*world.Cell {
	return world.SortCells(g.st.Targets)
}

// CurrentPlayer returns the player whose turn it is
func (g *Game) CurrentPlayer() player.Player {
	return g.players[g.st.Active]
}

// CurrentIndex returns the roster index of the current player
func (g *Game) CurrentIndex() int {
	return g.st.Active
}

// Players returns the roster in turn order
func (g *Game) Players() []player.Player {
	return append([]player.Player(nil), g.players...)
}

// PlayerByName returns the roster entry with the given name
func (g *Game) PlayerByName(name string) (player.Player, bool) {
	for _, p := range g.players {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Roll returns the current dice roll
func (g *Game) Roll() int {
	return g.st.Roll
}

// Turn returns how many turns have started
func (g *Game) Turn() int {
	return g.st.Turn
}

// Phase returns the current state machine phase
func (g *Game) Phase() state.Phase {
	return g.st.Phase
}

// Deck returns the full deck
func (g *Game) Deck() *deck.Deck {
	return g.deck
}

// Solution returns the hidden solution
func (g *Game) Solution() deck.Solution {
	return g.solution
}

// SetSolution replaces the hidden solution
func (g *Game) SetSolution(s deck.Solution) {
	g.solution = s
}

// AwaitingSelection reports whether the engine waits for a human move or
// room decision.
func (g *Game) AwaitingSelection() bool {
	return g.st.Phase.AwaitsHuman()
}

// IsOver reports whether an accusation has ended the game
func (g *Game) IsOver() bool {
	return g.st.IsOver()
}

// Outcome returns the final result once the game is over
func (g *Game) Outcome() (state.Outcome, bool) {
	if g.st.Outcome == nil {
		return state.Outcome{}, false
	}
	return *g.st.Outcome, true
}

// CurrentGuess returns the suggestion of the running turn for display
func (g *Game) CurrentGuess() string {
	if g.st.CurrentGuess == nil {
		return g.st.LastSuggestion.GuessText()
	}
	return g.st.CurrentGuess.String()
}

// CurrentGuessResult returns the disprove result of the last suggestion for
// display.
func (g *Game) CurrentGuessResult() string {
	return g.st.LastSuggestion.ResultText()
}

// LastSuggestion returns the last resolved suggestion
func (g *Game) LastSuggestion() (state.SuggestionRecord, bool) {
	if g.st.LastSuggestion == nil {
		return state.SuggestionRecord{}, false
	}
	return *g.st.LastSuggestion, true
}

// Messages returns the recent event log, oldest first
func (g *Game) Messages() []string {
	return append([]string(nil), g.st.Messages...)
}

// CardsOf returns every card of a category in deck order
func (g *Game) CardsOf(category deck.Category) []deck.Card {
	return g.deck.CardsOf(category)
}

// RoomCard returns the card of the room whose center is cell
func (g *Game) RoomCard(cell *world.Cell) (deck.Card, bool) {
	if cell == nil || !cell.IsRoomCenter() {
		return deck.Card{}, false
	}
	room := g.board.RoomFor(cell)
	if room == nil || room.IsSpace() {
		return deck.Card{}, false
	}
	return g.deck.Find(room.Name, deck.Room)
}

func (g *Game) indexOf(p player.Player) int {
	for i, q := range g.players {
		if q == p {
			return i
		}
	}
	return -1
}

// occupiedByOther reports whether a piece other than p stands on cell
func (g *Game) occupiedByOther(cell *world.Cell, p player.Player) bool {
	for _, q := range g.players {
		if q != p && q.Position() == cell {
			return true
		}
	}
	return false
}
