package setup

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"cluegame/pkg/game/board"
)

// maxLegendFields is the field count of the longest record (Player).
const maxLegendFields = 6

// Legend record kinds
const (
	KindRoom   = "Room"
	KindSpace  = "Space"
	KindPlayer = "Player"
	KindWeapon = "Weapon"
)

// Player behaviour kinds
const (
	BehaviorHuman    = "Human"
	BehaviorComputer = "Computer"
)

// PlayerSpec is a roster entry read from the legend.
type PlayerSpec struct {
	Behavior string // BehaviorHuman or BehaviorComputer
	Name     string
	Color    string
	Row      int
	Col      int
}

// IsHuman returns true for human-driven roster entries
func (p PlayerSpec) IsHuman() bool {
	return p.Behavior == BehaviorHuman
}

// Legend is the parsed room/player/weapon description.
type Legend struct {
	Board   *board.Board
	Players []PlayerSpec
	Weapons []string
}

// ParseLegend reads legend records from r. source names the input in errors.
func ParseLegend(source string, r io.Reader) (*Legend, error) {
	legend := &Legend{Board: board.New()}
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}

		fields := strings.Split(text, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if len(fields) > maxLegendFields {
			return nil, configErrorf(source, line, ErrBadRecord, "too many fields (%d)", len(fields))
		}

		if err := legend.addRecord(source, line, fields); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, configErrorf(source, line, ErrUnreadable, "%v", err)
	}

	return legend, nil
}

func (l *Legend) addRecord(source string, line int, fields []string) error {
	switch fields[0] {
	case KindRoom, KindSpace:
		if len(fields) != 3 || fields[1] == "" {
			return configErrorf(source, line, ErrBadRecord, "%s record needs a name and a code", fields[0])
		}
		code, err := parseCode(source, line, fields[2])
		if err != nil {
			return err
		}
		kind := board.KindRoom
		if fields[0] == KindSpace {
			kind = board.KindSpace
		}
		if !l.Board.AddRoom(board.NewRoom(fields[1], code, kind)) {
			return configErrorf(source, line, ErrDuplicate, "room code %q used twice", fields[2])
		}

	case KindPlayer:
		spec, err := parsePlayer(source, line, fields)
		if err != nil {
			return err
		}
		for _, existing := range l.Players {
			if existing.Name == spec.Name {
				return configErrorf(source, line, ErrDuplicate, "player %q defined twice", spec.Name)
			}
		}
		l.Players = append(l.Players, spec)

	case KindWeapon:
		if len(fields) < 2 || fields[1] == "" {
			return configErrorf(source, line, ErrBadRecord, "Weapon record needs a name")
		}
		for _, existing := range l.Weapons {
			if existing == fields[1] {
				return configErrorf(source, line, ErrDuplicate, "weapon %q defined twice", fields[1])
			}
		}
		l.Weapons = append(l.Weapons, fields[1])

	default:
		return configErrorf(source, line, ErrUnknownKind, "invalid record kind %q", fields[0])
	}
	return nil
}

func parseCode(source string, line int, field string) (rune, error) {
	if utf8.RuneCountInString(field) != 1 {
		return 0, configErrorf(source, line, ErrBadRecord, "room code %q must be a single character", field)
	}
	code, _ := utf8.DecodeRuneInString(field)
	return code, nil
}

func parsePlayer(source string, line int, fields []string) (PlayerSpec, error) {
	if len(fields) != maxLegendFields {
		return PlayerSpec{}, configErrorf(source, line, ErrBadPlayer, "Player record needs %d fields, got %d", maxLegendFields, len(fields))
	}
	behavior := fields[1]
	if behavior != BehaviorHuman && behavior != BehaviorComputer {
		return PlayerSpec{}, configErrorf(source, line, ErrBadPlayer, "invalid player type %q", behavior)
	}
	if fields[2] == "" {
		return PlayerSpec{}, configErrorf(source, line, ErrBadPlayer, "player has no name")
	}
	row, err := strconv.Atoi(fields[4])
	if err != nil {
		return PlayerSpec{}, configErrorf(source, line, ErrBadPlayer, "invalid start row %q", fields[4])
	}
	col, err := strconv.Atoi(fields[5])
	if err != nil {
		return PlayerSpec{}, configErrorf(source, line, ErrBadPlayer, "invalid start column %q", fields[5])
	}
	return PlayerSpec{
		Behavior: behavior,
		Name:     fields[2],
		Color:    fields[3],
		Row:      row,
		Col:      col,
	}, nil
}
