package gameplay

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "cluegame/pkg/engine/input"
	"cluegame/pkg/game/deck"
	"cluegame/pkg/game/devtools"
)

// Response tells the front end what to do after an intent was processed
type Response int

const (
	ResponseNone Response = iota
	ResponseQuit
	ResponseShowCards
	ResponseShowHelp
)

// ProcessIntent applies a high-level input intent to the game. Rejected
// commands leave a DENIED{..} note in the message log.
func ProcessIntent(g *Game, intent engineinput.Intent) Response {
	switch intent.Action {
	case engineinput.ActionNone:
		logMessage(g, "DENIED{%s}", gotext.Get("Unknown command, type help"))

	case engineinput.ActionQuit:
		return ResponseQuit

	case engineinput.ActionHelp:
		return ResponseShowHelp

	case engineinput.ActionCards:
		return ResponseShowCards

	case engineinput.ActionChoose:
		targets := g.SortedTargets()
		n := intent.Args[0]
		if g.Phase().AwaitsHuman() && n >= 1 && n <= len(targets) && g.SelectTarget(targets[n-1].Row, targets[n-1].Col) {
			return ResponseNone
		}
		logMessage(g, "DENIED{%s}", gotext.Get("That is not a valid target"))

	case engineinput.ActionMove:
		if !g.SelectTarget(intent.Args[0], intent.Args[1]) {
			logMessage(g, "DENIED{%s}", gotext.Get("That is not a valid target"))
		}

	case engineinput.ActionSuggest:
		suggest(g, intent.Args[0], intent.Args[1])

	case engineinput.ActionAccuse:
		person, okP := cardAt(g, deck.Person, intent.Args[0])
		room, okR := cardAt(g, deck.Room, intent.Args[1])
		weapon, okW := cardAt(g, deck.Weapon, intent.Args[2])
		if !okP || !okR || !okW {
			logMessage(g, "DENIED{%s}", gotext.Get("No such card"))
			return ResponseNone
		}
		s := deck.NewSolution(person, room, weapon)
		if _, ok := g.SubmitAccusation(&s); !ok {
			logMessage(g, "DENIED{%s}", gotext.Get("You cannot accuse now"))
		}

	case engineinput.ActionNoAccuse:
		g.SubmitAccusation(nil)

	case engineinput.ActionEndTurn:
		if !g.NextPlayer() {
			logMessage(g, "DENIED{%s}", gotext.Get("You cannot end the turn now"))
		}

	case engineinput.ActionHand:
		if p := g.CurrentPlayer(); p.IsHuman() {
			names := make([]string, 0, len(p.Hand()))
			for _, c := range p.Hand() {
				names = append(names, "CARD{"+c.Name+"}")
			}
			logMessage(g, "%s: %s", gotext.Get("Your cards"), strings.Join(names, ", "))
		}

	case engineinput.ActionDumpMap:
		path, err := devtools.DumpMapToFile(g.board, g.players)
		if err != nil {
			logMessage(g, "DENIED{%s}", gotext.Get("Map dump failed"))
			g.log.WithError(err).Warn("map dump failed")
		} else {
			logMessage(g, "%s %s", gotext.Get("Map dumped to"), path)
		}
	}
	return ResponseNone
}

func suggest(g *Game, personIdx, weaponIdx int) {
	person, okP := cardAt(g, deck.Person, personIdx)
	weapon, okW := cardAt(g, deck.Weapon, weaponIdx)
	if !okP || !okW {
		logMessage(g, "DENIED{%s}", gotext.Get("No such card"))
		return
	}

	rec, ok := g.SubmitSuggestion(deck.Solution{Person: person, Weapon: weapon})
	if !ok {
		logMessage(g, "DENIED{%s}", gotext.Get("You cannot suggest now"))
		return
	}
	if rec.Disproved {
		logMessage(g, "PLAYER{%s} %s CARD{%s}", rec.Disprover, gotext.Get("showed you"), rec.Card.Name)
	}
}

// cardAt returns the n-th (1-based) card of a category as listed by CardsOf
func cardAt(g *Game, category deck.Category, n int) (deck.Card, bool) {
	cards := g.CardsOf(category)
	if n < 1 || n > len(cards) {
		return deck.Card{}, false
	}
	return cards[n-1], true
}
