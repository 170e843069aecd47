// Package tui is the terminal renderer.
package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"cluegame/pkg/engine/terminal"
	"cluegame/pkg/game/deck"
	"cluegame/pkg/game/gameplay"
	"cluegame/pkg/game/player"
	"cluegame/pkg/game/renderer"
	"cluegame/pkg/game/state"
)

// playerColors maps legend colour names to terminal styles
var playerColors = map[string]color.Color{
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"teal":    color.FgCyan,
	"cyan":    color.FgCyan,
	"magenta": color.FgMagenta,
	"purple":  color.FgMagenta,
	"pink":    color.FgLightMagenta,
	"white":   color.FgWhite,
	"black":   color.FgDarkGray,
	"orange":  color.FgLightRed,
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer

	colorRoom     color.Style
	colorRoomText color.Style
	colorCard     color.Style
	colorPlayer   color.Style
	colorAction   color.Style
	colorDenied   color.Style
	colorDoor     color.Style
	colorTarget   color.Style
	colorSubtle   color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a TUI renderer writing to out
func NewWithWriter(out io.Writer) *TUIRenderer {
	return &TUIRenderer{out: out}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgGray}
	t.colorRoomText = color.Style{color.FgBlue, color.OpBold}
	t.colorCard = color.Style{color.FgMagenta}
	t.colorPlayer = color.Style{color.FgGreen, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorTarget = color.Style{color.FgBlack, color.BgGreen}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	c := exec.Command("clear")
	c.Stdout = t.out
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleRoomText:
		return t.colorRoomText.Sprint(text)
	case renderer.StyleCard:
		return t.colorCard.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	case renderer.StyleTarget:
		return t.colorTarget.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ApplyMarkup(t.StyleText, msg, args...)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText(msg))
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *gameplay.Game) {
	t.printHeader(g)
	t.printMap(g)
	t.printRoster(g)
	t.printCards(g)
	t.printSuggestion(g)
	t.printTargets(g)
	t.printPossibleActions(g)
	t.printMessagesPane(g)
	fmt.Fprint(t.out, "\n> ")
}

// printString prints a formatted string
func (t *TUIRenderer) printString(msg string, a ...any) {
	fmt.Fprint(t.out, t.FormatText(msg, a...))
}

func (t *TUIRenderer) printHeader(g *gameplay.Game) {
	p := g.CurrentPlayer()
	fmt.Fprintln(t.out, t.colorAction.Sprintf("%s %d", gotext.Get("Turn"), g.Turn()))
	t.printString("PLAYER{%s} %s %d\n\n", p.Name(), gotext.Get("rolled a"), g.Roll())
}

// printMap renders the whole board with row and column numbers
func (t *TUIRenderer) printMap(g *gameplay.Game) {
	var b strings.Builder
	b.WriteString("    ")
	for col := 0; col < g.Cols(); col++ {
		b.WriteString(t.colorSubtle.Sprint(col % 10))
	}
	b.WriteString("\n")

	for row := 0; row < g.Rows(); row++ {
		b.WriteString(t.colorSubtle.Sprintf("%3d ", row))
		for col := 0; col < g.Cols(); col++ {
			view := renderer.DescribeCell(g, g.CellAt(row, col))
			if view.Style == renderer.StylePlayer {
				b.WriteString(t.pieceStyle(g, view.Glyph).Sprint(view.Glyph))
				continue
			}
			b.WriteString(t.StyleText(view.Glyph, view.Style))
		}
		b.WriteString("\n")
	}
	fmt.Fprintln(t.out, b.String())
}

// pieceStyle colours a piece glyph with its player's legend colour
func (t *TUIRenderer) pieceStyle(g *gameplay.Game, glyph string) color.Style {
	for i, p := range g.Players() {
		if renderer.PlayerGlyph(i) != glyph {
			continue
		}
		if c, ok := playerColors[strings.ToLower(p.Color())]; ok {
			return color.Style{c, color.OpBold}
		}
	}
	return t.colorPlayer
}

func (t *TUIRenderer) printRoster(g *gameplay.Game) {
	entries := make([]string, 0, len(g.Players()))
	for i, p := range g.Players() {
		glyph := renderer.PlayerGlyph(i)
		entry := t.pieceStyle(g, glyph).Sprint(glyph) + " " + p.Name()
		if i == g.CurrentIndex() {
			entry = t.colorPlayer.Sprint("[") + entry + t.colorPlayer.Sprint("]")
		}
		entries = append(entries, entry)
	}
	fmt.Fprintln(t.out, strings.Join(entries, "  "))
	fmt.Fprintln(t.out)
}

// viewer returns the human whose cards are shown: the current player if
// human, else the first human in the roster.
func viewer(g *gameplay.Game) player.Player {
	if p := g.CurrentPlayer(); p.IsHuman() {
		return p
	}
	for _, p := range g.Players() {
		if p.IsHuman() {
			return p
		}
	}
	return nil
}

func (t *TUIRenderer) printCards(g *gameplay.Game) {
	p := viewer(g)
	if p == nil {
		return
	}
	t.printString("%s: %s\n", gotext.Get("Your cards"), renderer.JoinCards(cardNames(p.Hand())))

	var shown []deck.Card
	for _, c := range p.Seen() {
		if !containsCard(p.Hand(), c) {
			shown = append(shown, c)
		}
	}
	t.printString("%s: %s\n\n", gotext.Get("Seen"), renderer.JoinCards(cardNames(shown)))
}

func (t *TUIRenderer) printSuggestion(g *gameplay.Game) {
	t.printString("%s: %s\n", gotext.Get("Guess"), g.CurrentGuess())
	if result := g.CurrentGuessResult(); result != "" {
		t.printString("%s: %s\n", gotext.Get("Result"), result)
	}
	fmt.Fprintln(t.out)
}

func (t *TUIRenderer) printTargets(g *gameplay.Game) {
	if g.Phase() != state.AwaitingMoveSelection {
		return
	}
	fmt.Fprintln(t.out, gotext.Get("Targets:"))
	for i, cell := range g.SortedTargets() {
		label := cell.Pos().String()
		if room := g.RoomFor(cell); room != nil && cell.IsRoomCenter() {
			label += " " + t.FormatText("ROOM{%s}", room.Name)
		}
		fmt.Fprintf(t.out, "  %s %s\n", t.colorAction.Sprintf("%2d", i+1), label)
	}
	fmt.Fprintln(t.out)
}

// printPossibleActions lists the commands that make sense in the current phase
func (t *TUIRenderer) printPossibleActions(g *gameplay.Game) {
	var actions []string
	switch g.Phase() {
	case state.AwaitingMoveSelection:
		actions = []string{"ACTION{<n>}: pick target n", "ACTION{move r c}: move to row r, column c", "ACTION{accuse p r w}: accuse instead of moving"}
	case state.RoomDecision:
		actions = []string{"ACTION{cards}: list card numbers", "ACTION{suggest p w}: suggest person p with weapon w", "ACTION{accuse p r w}: accuse instead"}
	case state.TurnComplete:
		actions = []string{"ACTION{accuse p r w}: accuse", "ACTION{end}: end turn"}
	case state.GameOver:
		actions = []string{"ACTION{quit}: leave"}
	}
	actions = append(actions, "ACTION{hand}: your cards", "ACTION{help}: all commands")
	for _, a := range actions {
		fmt.Fprint(t.out, "- "+t.FormatText("%s", a)+"\n")
	}
}

// printMessagesPane renders the messages log pane
func (t *TUIRenderer) printMessagesPane(g *gameplay.Game) {
	width := terminal.GetWidth()

	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(terminal.Rule(gotext.Get("Messages"), width)))

	messages := g.Messages()
	if len(messages) == 0 {
		fmt.Fprintln(t.out, t.colorSubtle.Sprint("  "+gotext.Get("(no messages)")))
	} else {
		for _, msg := range messages {
			fmt.Fprintf(t.out, "  %s\n", t.FormatText(msg))
		}
	}

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(terminal.Rule("", width)))
}

// PrintCardList prints the numbered card lists used by suggest and accuse
func (t *TUIRenderer) PrintCardList(g *gameplay.Game) {
	for _, category := range deck.Categories() {
		fmt.Fprintln(t.out, t.colorAction.Sprint(category.String()))
		for i, c := range g.CardsOf(category) {
			fmt.Fprintf(t.out, "  %2d %s\n", i+1, t.colorCard.Sprint(c.Name))
		}
	}
}

func cardNames(cards []deck.Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return names
}

func containsCard(cards []deck.Card, c deck.Card) bool {
	for _, x := range cards {
		if x == c {
			return true
		}
	}
	return false
}
