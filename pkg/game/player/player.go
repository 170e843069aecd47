// Package player holds the roster entries of a game: the shared card and
// position bookkeeping, and the human and computer decision makers.
package player

import (
	"math/rand"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"cluegame/pkg/engine/world"
	"cluegame/pkg/game/deck"
)

// Catalog gives players read access to the game's card lists.
type Catalog interface {
	// CardsOf returns every card of the category in deck order
	CardsOf(category deck.Category) []deck.Card
	// RoomCard returns the card of the room whose center is cell
	RoomCard(cell *world.Cell) (deck.Card, bool)
}

// Player is one roster entry. The engine only routes on IsHuman to decide
// whether to wait for external input.
type Player interface {
	Name() string
	Color() string
	Position() *world.Cell
	MoveTo(cell *world.Cell)

	Hand() []deck.Card
	Seen() []deck.Card
	HasSeen(c deck.Card) bool
	AddToHand(c deck.Card)
	MarkSeen(c deck.Card)

	IsHuman() bool
	WillAccuse() bool
	Accusation() *deck.Solution
	OnSuggestionResult(s deck.Solution, disproving deck.Card, disproved bool)
	DisproveSuggestion(s deck.Solution) (deck.Card, bool)
	SelectTarget(targets mapset.Set[*world.Cell]) (*world.Cell, bool)
	Suggest(room deck.Card) (deck.Solution, bool)
}

// Base carries the state every player has. The hand is always a subset of
// the seen set.
type Base struct {
	name  string
	color string
	pos   *world.Cell

	hand   []deck.Card
	inHand mapset.Set[deck.Card]
	seen   mapset.Set[deck.Card]

	rng *rand.Rand
}

func newBase(name, color string, rng *rand.Rand) Base {
	return Base{
		name:   name,
		color:  color,
		inHand: mapset.New[deck.Card](),
		seen:   mapset.New[deck.Card](),
		rng:    rng,
	}
}

// Name returns the display name, which is also the player's person card name
func (b *Base) Name() string {
	return b.name
}

// Color returns the display colour name from the legend
func (b *Base) Color() string {
	return b.color
}

// Position returns the cell the piece stands on
func (b *Base) Position() *world.Cell {
	return b.pos
}

// MoveTo records the piece's new cell. Occupancy flags are the board's job.
func (b *Base) MoveTo(cell *world.Cell) {
	b.pos = cell
}

// Hand returns the dealt cards in deal order
func (b *Base) Hand() []deck.Card {
	hand := make([]deck.Card, len(b.hand))
	copy(hand, b.hand)
	return hand
}

// Seen returns every card the player knows is not in the solution, sorted
func (b *Base) Seen() []deck.Card {
	cards := make([]deck.Card, 0, b.seen.Size())
	b.seen.Each(func(c deck.Card) {
		cards = append(cards, c)
	})
	SortCards(cards)
	return cards
}

// HasSeen reports whether c is in the seen set
func (b *Base) HasSeen(c deck.Card) bool {
	return b.seen.Has(c)
}

// AddToHand adds a dealt card. Dealt cards count as seen.
func (b *Base) AddToHand(c deck.Card) {
	if b.inHand.Has(c) {
		return
	}
	b.hand = append(b.hand, c)
	b.inHand.Put(c)
	b.seen.Put(c)
}

// MarkSeen records a card shown to this player
func (b *Base) MarkSeen(c deck.Card) {
	b.seen.Put(c)
}

// InHand reports whether c was dealt to this player
func (b *Base) InHand(c deck.Card) bool {
	return b.inHand.Has(c)
}

// DisproveSuggestion returns a hand card named in s. With several matches one
// is picked uniformly at random.
func (b *Base) DisproveSuggestion(s deck.Solution) (deck.Card, bool) {
	var matches []deck.Card
	s.Set().Each(func(c deck.Card) {
		if b.InHand(c) {
			matches = append(matches, c)
		}
	})
	// set order is random; sort so the rng alone decides
	SortCards(matches)
	switch len(matches) {
	case 0:
		return deck.Card{}, false
	case 1:
		return matches[0], true
	default:
		return matches[b.rng.Intn(len(matches))], true
	}
}

// Unseen returns the cards of a category the player has not seen, in
// catalog order.
func (b *Base) Unseen(cat Catalog, category deck.Category) []deck.Card {
	var unseen []deck.Card
	for _, c := range cat.CardsOf(category) {
		if !b.seen.Has(c) {
			unseen = append(unseen, c)
		}
	}
	return unseen
}

// SortCards orders cards by category, then by name
func SortCards(cards []deck.Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Category != cards[j].Category {
			return cards[i].Category < cards[j].Category
		}
		return cards[i].Name < cards[j].Name
	})
}
