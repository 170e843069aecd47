package tui

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/sirupsen/logrus"

	"cluegame/pkg/game/gameplay"
	"cluegame/pkg/game/setup"
)

func newRenderer(t *testing.T) (*TUIRenderer, *bytes.Buffer) {
	t.Helper()
	enabled := color.Enable
	color.Enable = false
	t.Cleanup(func() { color.Enable = enabled })

	var buf bytes.Buffer
	r := NewWithWriter(&buf)
	r.Init()
	return r, &buf
}

func newGame(t *testing.T) *gameplay.Game {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	legend := "Room, Kitchen, K\nSpace, Walkway, W\nPlayer, Human, Plum, purple, 2, 0\nPlayer, Computer, Green, green, 2, 2\nWeapon, Rope\nWeapon, Knife\n"
	layout := "K*,K,K\nK,K,K\nW^,W,W\nW,W,W\n"
	cfg, err := setup.LoadReaders("legend", strings.NewReader(legend), "layout", strings.NewReader(layout), setup.WithLogger(log))
	if err != nil {
		t.Fatalf("LoadReaders() error = %v", err)
	}
	g, err := gameplay.NewGame(cfg, gameplay.WithRand(rand.New(rand.NewSource(5))), gameplay.WithLogger(log))
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	return g
}

func TestRenderFrame_AwaitingMove(t *testing.T) {
	r, buf := newRenderer(t)
	g := newGame(t)
	g.Start()

	r.RenderFrame(g)
	out := buf.String()

	for _, want := range []string{"Turn 1", "Plum rolled a", "1 Plum", "2 Green", "Your cards:", "Targets:", "Waiting For a Guess!", "pick target n", "accuse instead of moving", "Messages"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "PLAYER{") {
		t.Errorf("frame contains raw markup:\n%s", out)
	}
}

func TestPrintCardList(t *testing.T) {
	r, buf := newRenderer(t)
	g := newGame(t)

	r.PrintCardList(g)
	out := buf.String()
	for _, want := range []string{"Person", " 1 Plum", " 2 Green", "Room", " 1 Kitchen", "Weapon", " 2 Knife"} {
		if !strings.Contains(out, want) {
			t.Errorf("card list missing %q:\n%s", want, out)
		}
	}
}

func TestShowMessage(t *testing.T) {
	r, buf := newRenderer(t)
	r.ShowMessage("PLAYER{Plum} shows CARD{Rope}")
	if got, want := buf.String(), "Plum shows Rope\n"; got != want {
		t.Errorf("ShowMessage() wrote %q, want %q", got, want)
	}
}
