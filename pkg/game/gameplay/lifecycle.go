package gameplay

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"cluegame/pkg/game/deck"
	"cluegame/pkg/game/player"
	"cluegame/pkg/game/setup"
	"cluegame/pkg/game/state"
)

// ErrNoPlayers is returned by NewGame for a roster without players.
var ErrNoPlayers = errors.New("roster has no players")

// Option configures a new game
type Option func(*options)

type options struct {
	rng          *rand.Rand
	log          logrus.FieldLogger
	allComputers bool
	onMessage    func(string)
}

// WithRand sets the random source for dice, dealing and player tie-breaks
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithLogger sets the diagnostics logger
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithAllComputers makes every roster entry a computer player
func WithAllComputers() Option {
	return func(o *options) {
		o.allComputers = true
	}
}

// WithMessageHandler registers fn to receive every message added to the
// game's message log, markup included.
func WithMessageHandler(fn func(msg string)) Option {
	return func(o *options) {
		o.onMessage = fn
	}
}

// NewGame creates the players from the roster, places their pieces and deals.
// The game waits for Start. It deals from its own copy of the deck but moves
// pieces on cfg.Board, whose occupancy is reset here, so a config can be
// replayed but only serves one running game at a time.
func NewGame(cfg *setup.Config, opts ...Option) (*Game, error) {
	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg == nil || cfg.Board == nil || cfg.Deck == nil {
		return nil, errors.New("incomplete game config")
	}
	if len(cfg.Players) == 0 {
		return nil, ErrNoPlayers
	}

	g := &Game{
		board:     cfg.Board,
		deck:      cfg.Deck.Clone(),
		rng:       o.rng,
		log:       o.log,
		onMessage: o.onMessage,
		st:        state.NewGame(),
	}

	g.board.ClearOccupancy()
	holders := make([]deck.Holder, 0, len(cfg.Players))
	for _, spec := range cfg.Players {
		var p player.Player
		if spec.IsHuman() && !o.allComputers {
			p = player.NewHuman(spec.Name, spec.Color, g.rng)
		} else {
			p = player.NewComputer(spec.Name, spec.Color, g.rng, g)
		}
		start := g.board.GetCell(spec.Row, spec.Col)
		if start == nil {
			return nil, fmt.Errorf("player %q starts outside the board at (%d,%d)", spec.Name, spec.Row, spec.Col)
		}
		p.MoveTo(start)
		start.Occupied = true

		g.players = append(g.players, p)
		holders = append(holders, p)
	}

	solution, err := g.deck.Deal(g.rng, holders)
	if err != nil {
		return nil, fmt.Errorf("dealing cards: %w", err)
	}
	g.solution = solution

	g.log.WithFields(logrus.Fields{
		"players": len(g.players),
		"cards":   g.deck.Size(),
	}).Debug("game created")
	return g, nil
}

// Start begins the first turn with the first player in the roster
func (g *Game) Start() {
	g.st.LastSuggestion = nil
	g.st.ClearMessages()
	logMessage(g, "The game begins. Find out who did it, where and with what!")
	g.beginTurn(0)
}
