package deck

import (
	"errors"
	"math/rand"
)

// ErrMissingCategory is returned by Deal when a category has no card.
var ErrMissingCategory = errors.New("deck has no card of a required category")

// ErrNoHolders is returned by Deal when there is nobody to deal to.
var ErrNoHolders = errors.New("no players to deal to")

// Holder receives dealt cards.
type Holder interface {
	Name() string
	AddToHand(c Card)
}

// Deck is the full, fixed collection of cards of a game. Membership never
// changes once built; only the card-to-holder assignment does.
type Deck struct {
	cards   []Card
	holders map[Card]string
}

// New creates an empty deck
func New() *Deck {
	return &Deck{holders: make(map[Card]string)}
}

// Clone returns a deck with the same cards and no holders
func (d *Deck) Clone() *Deck {
	return &Deck{
		cards:   d.Cards(),
		holders: make(map[Card]string),
	}
}

// Add appends a card. Returns false if an equal card is already present.
func (d *Deck) Add(c Card) bool {
	for _, existing := range d.cards {
		if existing == c {
			return false
		}
	}
	d.cards = append(d.cards, c)
	return true
}

// Cards returns a copy of all cards in insertion order
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Size returns the number of cards
func (d *Deck) Size() int {
	return len(d.cards)
}

// CardsOf returns the cards of one category in insertion order
func (d *Deck) CardsOf(category Category) []Card {
	var cards []Card
	for _, c := range d.cards {
		if c.Category == category {
			cards = append(cards, c)
		}
	}
	return cards
}

// Find returns the card with the given name and category
func (d *Deck) Find(name string, category Category) (Card, bool) {
	for _, c := range d.cards {
		if c.Name == name && c.Category == category {
			return c, true
		}
	}
	return Card{}, false
}

// Has returns true if the card is part of the deck
func (d *Deck) Has(c Card) bool {
	_, ok := d.Find(c.Name, c.Category)
	return ok
}

// Holder returns the name of the player holding the card. Solution cards and
// undealt cards have no holder.
func (d *Deck) Holder(c Card) (string, bool) {
	name, ok := d.holders[c]
	return name, ok
}

// Deal shuffles the deck, takes the first card of each category as the
// solution and hands out the rest one at a time in roster order.
func (d *Deck) Deal(rng *rand.Rand, holders []Holder) (Solution, error) {
	if len(holders) == 0 {
		return Solution{}, ErrNoHolders
	}

	shuffled := d.Cards()
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var solution Solution
	remaining := make([]Card, 0, len(shuffled))
	for _, c := range shuffled {
		switch {
		case c.Category == Person && solution.Person.IsZero():
			solution.Person = c
		case c.Category == Room && solution.Room.IsZero():
			solution.Room = c
		case c.Category == Weapon && solution.Weapon.IsZero():
			solution.Weapon = c
		default:
			remaining = append(remaining, c)
		}
	}
	if !solution.Complete() {
		return Solution{}, ErrMissingCategory
	}

	d.holders = make(map[Card]string)
	for i, c := range remaining {
		h := holders[i%len(holders)]
		h.AddToHand(c)
		d.holders[c] = h.Name()
	}

	return solution, nil
}
