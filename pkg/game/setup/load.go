// Package setup loads the two map description files (the legend and the
// layout) into a ready board, the roster and the deck.
package setup

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"cluegame/pkg/game/board"
	"cluegame/pkg/game/deck"
)

// Config is everything a game is built from.
type Config struct {
	Board   *board.Board
	Players []PlayerSpec
	Deck    *deck.Deck
}

// Option configures loading
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger sets the logger the board reports builder warnings to
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Load opens and parses the legend and layout files. Both files are closed
// before Load returns.
func Load(legendPath, layoutPath string, opts ...Option) (*Config, error) {
	legendFile, err := os.Open(legendPath)
	if err != nil {
		return nil, configErrorf(legendPath, 0, ErrUnreadable, "%v", err)
	}
	defer legendFile.Close()

	layoutFile, err := os.Open(layoutPath)
	if err != nil {
		return nil, configErrorf(layoutPath, 0, ErrUnreadable, "%v", err)
	}
	defer layoutFile.Close()

	return LoadReaders(legendPath, legendFile, layoutPath, layoutFile, opts...)
}

// LoadReaders parses a legend and a layout from readers. The names are only
// used in error messages.
func LoadReaders(legendName string, legend io.Reader, layoutName string, layout io.Reader, opts ...Option) (*Config, error) {
	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	parsed, err := ParseLegend(legendName, legend)
	if err != nil {
		return nil, err
	}
	b := parsed.Board
	b.SetLogger(o.log)

	if _, err := ParseLayout(layoutName, layout, b); err != nil {
		return nil, err
	}

	if err := placePlayers(legendName, b, parsed.Players); err != nil {
		return nil, err
	}

	b.BuildAdjacency()
	for _, room := range UnreachableRooms(b, startCells(b, parsed.Players)) {
		o.log.WithField("room", room.Name).Warn("room cannot be reached from any start position")
	}

	cfg := &Config{
		Board:   b,
		Players: parsed.Players,
		Deck:    BuildDeck(parsed),
	}
	o.log.WithFields(logrus.Fields{
		"rows":    b.Rows(),
		"cols":    b.Cols(),
		"rooms":   len(b.Rooms()),
		"players": len(cfg.Players),
		"cards":   cfg.Deck.Size(),
	}).Debug("map loaded")
	return cfg, nil
}

// BuildDeck creates one card per room (spaces excluded), per roster entry and
// per weapon, in legend order.
func BuildDeck(l *Legend) *deck.Deck {
	d := deck.New()
	for _, room := range l.Board.Rooms() {
		if !room.IsSpace() {
			d.Add(deck.NewCard(room.Name, deck.Room))
		}
	}
	for _, p := range l.Players {
		d.Add(deck.NewCard(p.Name, deck.Person))
	}
	for _, w := range l.Weapons {
		d.Add(deck.NewCard(w, deck.Weapon))
	}
	return d
}

// placePlayers checks every start position and marks it occupied.
func placePlayers(source string, b *board.Board, players []PlayerSpec) error {
	for _, p := range players {
		cell := b.GetCell(p.Row, p.Col)
		if cell == nil {
			return configErrorf(source, 0, ErrBadPlayer, "player %q starts outside the %dx%d grid at (%d,%d)", p.Name, b.Rows(), b.Cols(), p.Row, p.Col)
		}
		if cell.Occupied && !cell.IsRoomCenter() {
			return configErrorf(source, 0, ErrBadPlayer, "player %q shares start cell %v", p.Name, cell.Pos())
		}
		cell.Occupied = true
	}
	return nil
}

// Describe returns a one-line summary of a loaded config
func (c *Config) Describe() string {
	return fmt.Sprintf("%dx%d board, %d rooms, %d players, %d cards",
		c.Board.Rows(), c.Board.Cols(), len(c.Board.Rooms()), len(c.Players), c.Deck.Size())
}
