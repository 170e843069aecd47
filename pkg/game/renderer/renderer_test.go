package renderer

import (
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"cluegame/pkg/game/gameplay"
	"cluegame/pkg/game/setup"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		msg  string
		args []any
		want string
	}{
		{"PLAYER{%s} entered the ROOM{%s}", []any{"Mrs. White", "Kitchen"}, "Mrs. White entered the Kitchen"},
		{"shows CARD{Lead Pipe}", nil, "shows Lead Pipe"},
		{"UNKNOWN{x} stays", nil, "UNKNOWN{x} stays"},
		{"100% plain", nil, "100% plain"},
	}
	for _, tt := range tests {
		if got := StripMarkup(tt.msg, tt.args...); got != tt.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tt.msg, got, tt.want)
		}
	}
}

func TestApplyMarkup_Styles(t *testing.T) {
	var styles []TextStyle
	got := ApplyMarkup(func(text string, s TextStyle) string {
		styles = append(styles, s)
		return "<" + text + ">"
	}, "PLAYER{Plum} shows CARD{Rope} in ROOM{Hall}")

	if want := "<Plum> shows <Rope> in <Hall>"; got != want {
		t.Errorf("ApplyMarkup() = %q, want %q", got, want)
	}
	want := []TextStyle{StylePlayer, StyleCard, StyleRoom}
	if len(styles) != len(want) {
		t.Fatalf("styles = %v, want %v", styles, want)
	}
	for i := range want {
		if styles[i] != want[i] {
			t.Errorf("style %d = %v, want %v", i, styles[i], want[i])
		}
	}
}

func TestDescribeCell(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	legend := "Room, Kitchen, K\nRoom, Study, S\nSpace, Walkway, W\nSpace, Unused, X\nPlayer, Human, Plum, black, 2, 2\nWeapon, Rope\n"
	layout := "K*,K#,KS\nK,K,X\nW^,W>,S*\n"
	cfg, err := setup.LoadReaders("legend", strings.NewReader(legend), "layout", strings.NewReader(layout), setup.WithLogger(log))
	if err != nil {
		t.Fatalf("LoadReaders() error = %v", err)
	}
	g, err := gameplay.NewGame(cfg, gameplay.WithRand(rand.New(rand.NewSource(3))), gameplay.WithLogger(log))
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}

	tests := []struct {
		row, col int
		want     CellView
	}{
		{0, 0, CellView{GlyphCenter, StyleRoom}},
		{0, 1, CellView{"K", StyleRoomText}},
		{0, 2, CellView{GlyphPassage, StyleDoor}},
		{1, 0, CellView{GlyphRoom, StyleRoom}},
		{1, 2, CellView{GlyphVoid, StyleNormal}},
		{2, 0, CellView{"^", StyleDoor}},
		{2, 1, CellView{">", StyleDoor}},
		{2, 2, CellView{"1", StylePlayer}},
	}
	for _, tt := range tests {
		if got := DescribeCell(g, g.CellAt(tt.row, tt.col)); got != tt.want {
			t.Errorf("DescribeCell(%d, %d) = %+v, want %+v", tt.row, tt.col, got, tt.want)
		}
	}
	if got := DescribeCell(g, nil); got.Glyph != GlyphVoid {
		t.Errorf("DescribeCell(nil) = %+v, want void", got)
	}
}

func TestJoinCards(t *testing.T) {
	if got, want := JoinCards([]string{"Rope", "Hall"}), "CARD{Rope}, CARD{Hall}"; got != want {
		t.Errorf("JoinCards() = %q, want %q", got, want)
	}
	if got, want := JoinCards(nil), "(none)"; got != want {
		t.Errorf("JoinCards(nil) = %q, want %q", got, want)
	}
}
