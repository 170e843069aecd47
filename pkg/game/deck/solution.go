package deck

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Solution is a (person, room, weapon) triple. It is used for the hidden
// answer as well as for suggestions and accusations.
type Solution struct {
	Person Card
	Room   Card
	Weapon Card
}

// NewSolution creates a solution
func NewSolution(person, room, weapon Card) Solution {
	return Solution{Person: person, Room: room, Weapon: weapon}
}

// Equal compares the three cards member-wise
func (s Solution) Equal(other Solution) bool {
	return s.Person == other.Person && s.Room == other.Room && s.Weapon == other.Weapon
}

// Complete returns true if every slot holds a card of the right category
func (s Solution) Complete() bool {
	return !s.Person.IsZero() && s.Person.Category == Person &&
		!s.Room.IsZero() && s.Room.Category == Room &&
		!s.Weapon.IsZero() && s.Weapon.Category == Weapon
}

// Cards returns the three cards in person, room, weapon order
func (s Solution) Cards() []Card {
	return []Card{s.Person, s.Room, s.Weapon}
}

// Set returns the cards as an unordered set, for matching against a hand
func (s Solution) Set() mapset.Set[Card] {
	set := mapset.New[Card]()
	for _, c := range s.Cards() {
		set.Put(c)
	}
	return set
}

// Contains returns true if the card is one of the three
func (s Solution) Contains(c Card) bool {
	return s.Person == c || s.Room == c || s.Weapon == c
}

// String returns "Person in the Room with the Weapon"
func (s Solution) String() string {
	return fmt.Sprintf("%s in the %s with the %s", s.Person.Name, s.Room.Name, s.Weapon.Name)
}
