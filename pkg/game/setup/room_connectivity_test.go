package setup

import (
	"testing"

	"cluegame/pkg/engine/world"
)

func roomNames(t *testing.T, cfg *Config, starts ...world.Position) []string {
	t.Helper()
	cells := make([]*world.Cell, 0, len(starts))
	for _, p := range starts {
		cells = append(cells, cfg.Board.GetCell(p.Row, p.Col))
	}
	var names []string
	for _, r := range UnreachableRooms(cfg.Board, cells) {
		names = append(names, r.Name)
	}
	return names
}

func TestUnreachableRooms(t *testing.T) {
	legend := "Room, Kitchen, K\nRoom, Study, S\nSpace, Walkway, W\nSpace, Unused, X\n"
	tests := []struct {
		name   string
		layout string
		start  world.Position
		want   []string
	}{
		{
			name:   "both rooms have doors",
			layout: "K*,X,S*\nK,X,S\nW^,W,W^\n",
			start:  world.Position{Row: 2, Col: 1},
			want:   nil,
		},
		{
			name:   "study has no door",
			layout: "K*,X,S*\nK,X,S\nW^,W,W\n",
			start:  world.Position{Row: 2, Col: 1},
			want:   []string{"Study"},
		},
		{
			name:   "passage reaches the study",
			layout: "KS,X,S*\nK*,X,S\nW^,W,W\n",
			start:  world.Position{Row: 2, Col: 1},
			want:   nil,
		},
		{
			name:   "walkway cut off by unused cells",
			layout: "K*,X,S*\nK,X,S\nW^,X,W^\n",
			start:  world.Position{Row: 2, Col: 0},
			want:   []string{"Study"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := load(t, legend, tt.layout)
			if err != nil {
				t.Fatalf("LoadReaders() error = %v", err)
			}
			got := roomNames(t, cfg, tt.start)
			if len(got) != len(tt.want) {
				t.Fatalf("UnreachableRooms() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("UnreachableRooms()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestUnreachableRooms_NoStarts(t *testing.T) {
	legend := "Room, Kitchen, K\nSpace, Walkway, W\n"
	cfg, err := load(t, legend, "K*,K\nW,W\n")
	if err != nil {
		t.Fatalf("LoadReaders() error = %v", err)
	}
	if got := UnreachableRooms(cfg.Board, nil); got != nil {
		t.Errorf("UnreachableRooms(no starts) = %v, want nil", got)
	}
}

func TestUnreachableRooms_ShippedMap(t *testing.T) {
	cfg, err := Load("../../../data/ClueSetup.txt", "../../../data/ClueLayout.csv", WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("Load(shipped map) error = %v", err)
	}
	if got := UnreachableRooms(cfg.Board, startCells(cfg.Board, cfg.Players)); len(got) != 0 {
		t.Errorf("UnreachableRooms(shipped map) = %d rooms, want 0", len(got))
	}
}
