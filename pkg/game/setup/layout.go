package setup

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"cluegame/pkg/engine/world"
	"cluegame/pkg/game/board"
)

// Room metadata modifiers
const (
	modifierLabel  = '#'
	modifierCenter = '*'
)

// cellSpec is one parsed layout token
type cellSpec struct {
	line          int
	code          rune
	door          world.Direction
	label         bool
	center        bool
	secretPassage rune
}

// ParseLayout reads the grid description and attaches the resulting grid to b.
// Every room code must already be registered on b by the legend. On error the
// board must be discarded.
func ParseLayout(source string, r io.Reader, b *board.Board) (*world.Grid, error) {
	scanner := bufio.NewScanner(r)
	var specs [][]cellSpec
	cols := -1
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		tokens := strings.Split(text, ",")
		if cols < 0 {
			cols = len(tokens)
		} else if len(tokens) != cols {
			return nil, configErrorf(source, line, ErrBadColumns, "row %d has %d columns, want %d", len(specs), len(tokens), cols)
		}

		row := make([]cellSpec, cols)
		for i, tok := range tokens {
			spec, err := parseToken(source, line, strings.TrimSpace(tok), b)
			if err != nil {
				return nil, err
			}
			row[i] = spec
		}
		specs = append(specs, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, configErrorf(source, line, ErrUnreadable, "%v", err)
	}
	if len(specs) == 0 {
		return nil, configErrorf(source, 0, ErrBadColumns, "layout has no rows")
	}

	grid := world.NewGrid(len(specs), cols, b.WalkwayCode())
	for row, rowSpecs := range specs {
		for col, spec := range rowSpecs {
			cell := grid.GetCell(row, col)
			if err := applySpec(source, cell, spec, b); err != nil {
				return nil, err
			}
		}
	}

	b.Grid = grid
	return grid, nil
}

func parseToken(source string, line int, tok string, b *board.Board) (cellSpec, error) {
	n := utf8.RuneCountInString(tok)
	if n < 1 || n > 2 {
		return cellSpec{}, configErrorf(source, line, ErrBadRecord, "invalid cell data %q", tok)
	}
	runes := []rune(tok)
	spec := cellSpec{line: line, code: runes[0]}

	room := b.Room(spec.code)
	if room == nil {
		return cellSpec{}, configErrorf(source, line, ErrUnknownRoom, "room code %q is not in the legend", string(spec.code))
	}
	if n == 1 {
		return spec, nil
	}

	modifier := runes[1]
	if dir, ok := world.DirectionFromSymbol(modifier); ok {
		if !room.IsSpace() {
			return cellSpec{}, configErrorf(source, line, ErrBadModifier, "door %q on room %q", tok, room.Name)
		}
		spec.door = dir
		return spec, nil
	}

	switch modifier {
	case modifierLabel, modifierCenter:
		if room.IsSpace() {
			return cellSpec{}, configErrorf(source, line, ErrBadModifier, "room marker %q on space %q", tok, room.Name)
		}
		spec.label = modifier == modifierLabel
		spec.center = modifier == modifierCenter
		return spec, nil
	}

	target := b.Room(modifier)
	if target == nil || target.IsSpace() || room.IsSpace() {
		return cellSpec{}, configErrorf(source, line, ErrBadModifier, "invalid modifier in %q", tok)
	}
	spec.secretPassage = modifier
	return spec, nil
}

func applySpec(source string, cell *world.Cell, spec cellSpec, b *board.Board) error {
	cell.Code = spec.code
	cell.DoorDirection = spec.door
	cell.SecretPassage = spec.secretPassage

	room := b.Room(spec.code)
	switch {
	case spec.center:
		cell.Center = true
		if !room.SetCenterCell(cell) {
			return configErrorf(source, spec.line, ErrDuplicate, "room %q has a second center cell at %v", room.Name, cell.Pos())
		}
	case spec.label:
		cell.Label = true
		if !room.SetLabelCell(cell) {
			return configErrorf(source, spec.line, ErrDuplicate, "room %q has a second label cell at %v", room.Name, cell.Pos())
		}
	case spec.secretPassage != 0:
		room.SecretPassage = spec.secretPassage
	}
	return nil
}
