// Package deck defines the cards of the game, the three-card solution and
// the dealing of the deck between the solution and the players.
package deck

import (
	"github.com/leonelquinteros/gotext"
)

// Category is the kind of thing a card names.
type Category int

const (
	Room Category = iota
	Person
	Weapon
)

// Categories returns all card categories in display order
func Categories() []Category {
	return []Category{Person, Room, Weapon}
}

// String returns the translated category name
func (c Category) String() string {
	switch c {
	case Room:
		return gotext.Get("Room")
	case Person:
		return gotext.Get("Person")
	case Weapon:
		return gotext.Get("Weapon")
	default:
		return gotext.Get("Unknown")
	}
}

// IsValid returns true for the three known categories
func (c Category) IsValid() bool {
	return c >= Room && c <= Weapon
}

// Card is a comparable value: two cards are equal when name and category are.
type Card struct {
	Name     string
	Category Category
}

// NewCard creates a card
func NewCard(name string, category Category) Card {
	return Card{Name: name, Category: category}
}

// IsZero returns true for the empty card
func (c Card) IsZero() bool {
	return c.Name == ""
}

// String returns the card name
func (c Card) String() string {
	return c.Name
}
