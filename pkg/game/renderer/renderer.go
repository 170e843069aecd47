// Package renderer turns game state into text. Backends implement Renderer;
// the helpers here decide what each board cell shows.
package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"

	"cluegame/pkg/engine/world"
	"cluegame/pkg/game/gameplay"
)

// Board glyphs
const (
	GlyphWalkway = "·"
	GlyphRoom    = "▒"
	GlyphCenter  = "◉"
	GlyphPassage = "◊"
	GlyphTarget  = "+"
	GlyphVoid    = " "
)

// markupPattern matches FUNC{operand} markup
var markupPattern = regexp.MustCompile(`([A-Z_]+)\{([^{}]+)\}`)

var markupStyles = map[string]TextStyle{
	"GT":     StyleNormal,
	"ROOM":   StyleRoom,
	"CARD":   StyleCard,
	"PLAYER": StylePlayer,
	"ACTION": StyleAction,
	"DENIED": StyleDenied,
}

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// ApplyMarkup formats msg and replaces every FUNC{operand} with the operand
// passed through style. GT{..} and ROOM{..} operands are translated first.
// Unknown functions are left untouched.
func ApplyMarkup(style func(text string, s TextStyle) string, msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return markupPattern.ReplaceAllStringFunc(msg, func(match string) string {
		parts := markupPattern.FindStringSubmatch(match)
		function, operand := parts[1], parts[2]

		s, ok := markupStyles[function]
		if !ok {
			return match
		}
		if function == "GT" || function == "ROOM" {
			operand = dynamicGet(operand)
		}
		return style(operand, s)
	})
}

// StripMarkup formats msg and replaces markup by the bare operands
func StripMarkup(msg string, args ...any) string {
	return ApplyMarkup(func(text string, _ TextStyle) string { return text }, msg, args...)
}

// CellView is what one board cell shows
type CellView struct {
	Glyph string
	Style TextStyle
}

// DescribeCell decides the glyph of a board cell. Pieces win over targets,
// targets over the board itself.
func DescribeCell(g *gameplay.Game, cell *world.Cell) CellView {
	if cell == nil {
		return CellView{Glyph: GlyphVoid, Style: StyleNormal}
	}

	for i, p := range g.Players() {
		if p.Position() == cell {
			return CellView{Glyph: PlayerGlyph(i), Style: StylePlayer}
		}
	}
	if g.AwaitingSelection() && g.Targets().Has(cell) {
		return CellView{Glyph: GlyphTarget, Style: StyleTarget}
	}

	room := g.RoomFor(cell)
	switch {
	case cell.IsRoomCenter():
		return CellView{Glyph: GlyphCenter, Style: StyleRoom}
	case cell.IsLabel() && room != nil:
		return CellView{Glyph: string(room.Code), Style: StyleRoomText}
	case cell.HasSecretPassage():
		return CellView{Glyph: GlyphPassage, Style: StyleDoor}
	case cell.IsDoorway():
		return CellView{Glyph: string(cell.DoorDirection.Symbol()), Style: StyleDoor}
	case g.Board().IsWalkway(cell):
		return CellView{Glyph: GlyphWalkway, Style: StyleSubtle}
	case room != nil && !room.IsSpace():
		return CellView{Glyph: GlyphRoom, Style: StyleRoom}
	default:
		return CellView{Glyph: GlyphVoid, Style: StyleNormal}
	}
}

// PlayerGlyph returns the board marker of the roster entry at index i
func PlayerGlyph(i int) string {
	const markers = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if i < 0 || i >= len(markers) {
		return "?"
	}
	return string(markers[i])
}

// JoinCards renders card names as CARD{..} markup separated by commas
func JoinCards(names []string) string {
	if len(names) == 0 {
		return gotext.Get("(none)")
	}
	marked := make([]string, len(names))
	for i, n := range names {
		marked[i] = "CARD{" + n + "}"
	}
	return strings.Join(marked, ", ")
}
