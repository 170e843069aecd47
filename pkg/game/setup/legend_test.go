package setup

import (
	"errors"
	"strings"
	"testing"
)

const testLegend = `// test legend
Room, Kitchen, K
Room, Study, S
Space, Walkway, W
Space, Unused, X

Player, Human, Scarlet, red, 1, 0
Player, Computer, Mustard, magenta, 1, 3
Weapon, Rope
Weapon, Knife
`

func TestParseLegend_Valid(t *testing.T) {
	legend, err := ParseLegend("legend.txt", strings.NewReader(testLegend))
	if err != nil {
		t.Fatalf("ParseLegend() error = %v", err)
	}
	if n := len(legend.Board.Rooms()); n != 4 {
		t.Errorf("len(Rooms()) = %d, want 4", n)
	}
	if r := legend.Board.Room('K'); r == nil || r.Name != "Kitchen" || r.IsSpace() {
		t.Errorf("Room('K') = %+v, want the Kitchen room", r)
	}
	if r := legend.Board.Room('X'); r == nil || !r.IsSpace() {
		t.Errorf("Room('X') = %+v, want the Unused space", r)
	}
	if legend.Board.WalkwayCode() != 'W' {
		t.Errorf("WalkwayCode() = %c, want W", legend.Board.WalkwayCode())
	}
	if len(legend.Players) != 2 {
		t.Fatalf("len(Players) = %d, want 2", len(legend.Players))
	}
	want := PlayerSpec{Behavior: BehaviorHuman, Name: "Scarlet", Color: "red", Row: 1, Col: 0}
	if legend.Players[0] != want {
		t.Errorf("Players[0] = %+v, want %+v", legend.Players[0], want)
	}
	if !legend.Players[0].IsHuman() || legend.Players[1].IsHuman() {
		t.Error("IsHuman() does not follow the behaviour field")
	}
	if len(legend.Weapons) != 2 || legend.Weapons[1] != "Knife" {
		t.Errorf("Weapons = %v, want [Rope Knife]", legend.Weapons)
	}
}

func TestParseLegend_Errors(t *testing.T) {
	tests := []struct {
		name   string
		legend string
		want   error
	}{
		{"too many fields", "Room, Kitchen, K, a, b, c, d", ErrBadRecord},
		{"unknown kind", "Closet, Broom, B", ErrUnknownKind},
		{"missing code", "Room, Kitchen", ErrBadRecord},
		{"long code", "Room, Kitchen, KI", ErrBadRecord},
		{"duplicate code", "Room, Kitchen, K\nRoom, Kennel, K", ErrDuplicate},
		{"bad behaviour", "Player, Robot, Plum, black, 0, 0", ErrBadPlayer},
		{"bad row", "Player, Human, Plum, black, x, 0", ErrBadPlayer},
		{"short player", "Player, Human, Plum, black, 0", ErrBadPlayer},
		{"duplicate player", "Player, Human, Plum, black, 0, 0\nPlayer, Computer, Plum, red, 0, 1", ErrDuplicate},
		{"empty weapon", "Weapon,", ErrBadRecord},
		{"duplicate weapon", "Weapon, Rope\nWeapon, Rope", ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLegend("legend.txt", strings.NewReader(tt.legend))
			if !errors.Is(err, tt.want) {
				t.Fatalf("ParseLegend() error = %v, want %v", err, tt.want)
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error %T is not a *ConfigError", err)
			}
			if cfgErr.Source != "legend.txt" {
				t.Errorf("Source = %q, want legend.txt", cfgErr.Source)
			}
			if cfgErr.Line == 0 {
				t.Error("Line = 0, want the offending line")
			}
		})
	}
}

func TestParseLegend_CommentsIgnored(t *testing.T) {
	legend, err := ParseLegend("legend.txt", strings.NewReader("// only a comment\n// Closet, Broom, B\n"))
	if err != nil {
		t.Fatalf("ParseLegend(comments) error = %v", err)
	}
	if len(legend.Board.Rooms()) != 0 || len(legend.Players) != 0 || len(legend.Weapons) != 0 {
		t.Error("comment lines produced records")
	}
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Source: "layout.csv", Line: 3, Reason: "bad", Err: ErrBadColumns}
	if got, want := err.Error(), "config error in layout.csv line 3: bad"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	err.Line = 0
	if got, want := err.Error(), "config error in layout.csv: bad"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
