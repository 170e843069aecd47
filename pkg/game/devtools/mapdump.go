// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cluegame/pkg/engine/world"
	"cluegame/pkg/game/board"
	"cluegame/pkg/game/player"
)

// MapDumpFilename is the default dump file name
const MapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell (no player overlay).
func cellSymbol(b *board.Board, cell *world.Cell) rune {
	switch {
	case cell == nil:
		return '#'
	case cell.IsRoomCenter():
		return '*'
	case cell.IsLabel():
		return '#'
	case cell.HasSecretPassage():
		return '%'
	case cell.IsDoorway():
		return cell.DoorDirection.Symbol()
	case b.IsWalkway(cell):
		return '.'
	}
	if room := b.RoomFor(cell); room != nil && !room.IsSpace() {
		return cell.Code
	}
	return ' '
}

// writeMapGrid writes the grid with an optional player overlay (roster
// number, 1-based).
func writeMapGrid(w io.Writer, b *board.Board, players []player.Player) {
	overlay := make(map[world.Position]int)
	for i, p := range players {
		if pos := p.Position(); pos != nil {
			if _, taken := overlay[pos.Pos()]; !taken {
				overlay[pos.Pos()] = i + 1
			}
		}
	}

	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Cols(); col++ {
			pos := world.Position{Row: row, Col: col}
			if n, ok := overlay[pos]; ok && n < 10 {
				fmt.Fprintf(w, "%d", n)
				continue
			}
			fmt.Fprintf(w, "%c", cellSymbol(b, b.GetCell(row, col)))
		}
		fmt.Fprintln(w)
	}
}

// WriteMapDump writes a debug dump of the board: metadata, rooms, the map
// with and without pieces, and the adjacency list of every movement cell.
func WriteMapDump(w io.Writer, b *board.Board, players []player.Player) error {
	if b == nil || b.Grid == nil {
		return fmt.Errorf("no grid")
	}

	fmt.Fprintln(w, "=== MAP DUMP DEBUG (board layout, rooms, adjacency) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "grid_rows: %d\n", b.Rows())
	fmt.Fprintf(w, "grid_cols: %d\n", b.Cols())
	fmt.Fprintf(w, "walkway_code: %c\n", b.WalkwayCode())
	fmt.Fprintf(w, "adjacency_built: %v\n", b.AdjacencyBuilt())
	fmt.Fprintf(w, "modifier_cells: %d\n", b.Grid.CountCells(func(c *world.Cell) bool { return c.HasModifier() }))
	fmt.Fprintf(w, "occupied_cells: %d\n", b.OccupiedCount())
	fmt.Fprintf(w, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Legend ---")
	fmt.Fprintln(w, "*: room center, #: room label, %: secret passage, ^>v<: doorway, .: walkway, 1-9: player")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Rooms ---")
	for _, room := range b.Rooms() {
		kind := "room"
		if room.IsSpace() {
			kind = "space"
		}
		fmt.Fprintf(w, "%c %s (%s)", room.Code, room.Name, kind)
		if c := room.CenterCell(); c != nil {
			fmt.Fprintf(w, " center=%v", c.Pos())
		}
		if c := room.LabelCell(); c != nil {
			fmt.Fprintf(w, " label=%v", c.Pos())
		}
		if room.HasSecretPassage() {
			fmt.Fprintf(w, " passage=%c", room.SecretPassage)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, b, nil)
	fmt.Fprintln(w, "")

	if len(players) > 0 {
		fmt.Fprintln(w, "--- Map with players ---")
		writeMapGrid(w, b, players)
		fmt.Fprintln(w, "")

		fmt.Fprintln(w, "--- Players ---")
		for i, p := range players {
			kind := "computer"
			if p.IsHuman() {
				kind = "human"
			}
			pos := "none"
			if p.Position() != nil {
				pos = p.Position().Pos().String()
			}
			fmt.Fprintf(w, "%d %s (%s) at %s\n", i+1, p.Name(), kind, pos)
		}
		fmt.Fprintln(w, "")
	}

	fmt.Fprintln(w, "--- Adjacency ---")
	b.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if cell.AdjCount() == 0 {
			return
		}
		adj := make([]string, 0, cell.AdjCount())
		for _, p := range cell.Adjacent() {
			adj = append(adj, p.String())
		}
		fmt.Fprintf(w, "%v: %s\n", cell.Pos(), strings.Join(adj, " "))
	})
	return nil
}

// DumpMapToFile writes the map dump to MapDumpFilename in the working
// directory and returns its absolute path.
func DumpMapToFile(b *board.Board, players []player.Player) (string, error) {
	absPath, err := filepath.Abs(MapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, b, players); err != nil {
		return "", err
	}
	return absPath, nil
}
