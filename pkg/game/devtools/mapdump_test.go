package devtools

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"cluegame/pkg/game/board"
	"cluegame/pkg/game/player"
	"cluegame/pkg/game/setup"
)

func loadBoard(t *testing.T) *board.Board {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	legend := "Room, Kitchen, K\nRoom, Study, S\nSpace, Walkway, W\nSpace, Unused, X\n"
	layout := "K*,K#,KS,X\nW^,W,W,W\nS*,S,S,S\n"
	cfg, err := setup.LoadReaders("legend", strings.NewReader(legend), "layout", strings.NewReader(layout), setup.WithLogger(log))
	if err != nil {
		t.Fatalf("LoadReaders() error = %v", err)
	}
	return cfg.Board
}

func TestWriteMapDump(t *testing.T) {
	b := loadBoard(t)
	p := player.NewHuman("Plum", "purple", rand.New(rand.NewSource(1)))
	p.MoveTo(b.GetCell(1, 2))

	var buf bytes.Buffer
	if err := WriteMapDump(&buf, b, []player.Player{p}); err != nil {
		t.Fatalf("WriteMapDump() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"grid_rows: 3",
		"grid_cols: 4",
		"modifier_cells: 5",
		"occupied_cells: 0",
		"K Kitchen (room) center=(0,0) label=(0,1) passage=S",
		"X Unused (space)",
		"*#% \n^...\n*SSS\n",
		"*#% \n^.1.\n*SSS\n",
		"1 Plum (human) at (1,2)",
		"(0,0): (1,0) (2,0)",
		"(1,0): (0,0) (1,1)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestWriteMapDump_NoGrid(t *testing.T) {
	if err := WriteMapDump(io.Discard, board.New(), nil); err == nil {
		t.Error("WriteMapDump(no grid) error = nil, want an error")
	}
}
