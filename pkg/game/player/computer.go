package player

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"cluegame/pkg/engine/world"
	"cluegame/pkg/game/deck"
)

// Computer is an automated player. It suggests from what it has not seen and
// accuses once it has deduced the solution.
type Computer struct {
	Base
	catalog Catalog
	pending *deck.Solution
}

// NewComputer creates a computer player that looks up cards through catalog
func NewComputer(name, color string, rng *rand.Rand, catalog Catalog) *Computer {
	return &Computer{Base: newBase(name, color, rng), catalog: catalog}
}

// IsHuman returns false
func (c *Computer) IsHuman() bool {
	return false
}

// WillAccuse reports whether a deduced accusation is pending
func (c *Computer) WillAccuse() bool {
	return c.pending != nil
}

// Accusation returns the pending accusation, or nil
func (c *Computer) Accusation() *deck.Solution {
	return c.pending
}

// OnSuggestionResult updates the deductions after the player's own
// suggestion was resolved.
//
// An undisproven suggestion made entirely of unseen cards must be the
// solution. Independently, a single unseen card left in every category is the
// solution. The first accusation locked in is kept.
func (c *Computer) OnSuggestionResult(s deck.Solution, _ deck.Card, disproved bool) {
	if !disproved && !c.seenAny(s) {
		c.lock(s)
	}
	c.deduceFromUnseen()
}

func (c *Computer) seenAny(s deck.Solution) bool {
	for _, card := range s.Cards() {
		if c.seen.Has(card) {
			return true
		}
	}
	return false
}

func (c *Computer) deduceFromUnseen() {
	person := c.Unseen(c.catalog, deck.Person)
	room := c.Unseen(c.catalog, deck.Room)
	weapon := c.Unseen(c.catalog, deck.Weapon)
	if len(person) == 1 && len(room) == 1 && len(weapon) == 1 {
		c.lock(deck.NewSolution(person[0], room[0], weapon[0]))
	}
}

func (c *Computer) lock(s deck.Solution) {
	if c.pending != nil {
		return
	}
	c.pending = &s
}

// SelectTarget prefers the center of a room whose card is still unseen,
// otherwise it picks any target.
func (c *Computer) SelectTarget(targets mapset.Set[*world.Cell]) (*world.Cell, bool) {
	if targets.Size() == 0 {
		return nil, false
	}
	all := world.SortCells(targets)

	var unseenRooms []*world.Cell
	for _, cell := range all {
		if !cell.IsRoomCenter() {
			continue
		}
		if card, ok := c.catalog.RoomCard(cell); ok && !c.seen.Has(card) {
			unseenRooms = append(unseenRooms, cell)
		}
	}
	if len(unseenRooms) > 0 {
		return unseenRooms[c.rng.Intn(len(unseenRooms))], true
	}
	return all[c.rng.Intn(len(all))], true
}

// Suggest names the given room with a random unseen person and weapon. It
// returns false if either category has nothing unseen.
func (c *Computer) Suggest(room deck.Card) (deck.Solution, bool) {
	people := c.Unseen(c.catalog, deck.Person)
	weapons := c.Unseen(c.catalog, deck.Weapon)
	if len(people) == 0 || len(weapons) == 0 {
		return deck.Solution{}, false
	}
	return deck.NewSolution(
		people[c.rng.Intn(len(people))],
		room,
		weapons[c.rng.Intn(len(weapons))],
	), true
}
