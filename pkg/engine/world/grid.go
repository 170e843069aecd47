package world

// Grid represents the board with encapsulated cell storage. Its dimensions
// are fixed once built and every row has the same length.
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions. Every cell starts
// with the given room code and no modifiers.
func NewGrid(rows, cols int, code rune) *Grid {
	g := &Grid{}
	g.Build(rows, cols, code)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// CellAt returns the cell at p, or nil if out of bounds
func (g *Grid) CellAt(p Position) *Cell {
	return g.GetCell(p.Row, p.Col)
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return g.GetCell(c.Row+rowRel, c.Col+colRel)
}

// Neighbors returns the in-bounds orthogonal neighbours of a cell
func (g *Grid) Neighbors(c *Cell) []*Cell {
	var neighbors []*Cell
	for _, dir := range AllDirections() {
		if n := g.GetCellRelative(c, dir); n != nil {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// AdjacentCells resolves the adjacency positions of c to cells, in row-major order
func (g *Grid) AdjacentCells(c *Cell) []*Cell {
	if c == nil {
		return nil
	}
	positions := c.Adjacent()
	cells := make([]*Cell, 0, len(positions))
	for _, p := range positions {
		if adj := g.CellAt(p); adj != nil {
			cells = append(cells, adj)
		}
	}
	return cells
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int, code rune) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([][]*Cell, rows)

	for currentRow := 0; currentRow < rows; currentRow++ {
		g.cells[currentRow] = make([]*Cell, cols)
		for currentCol := 0; currentCol < cols; currentCol++ {
			g.cells[currentRow][currentCol] = NewCell(currentRow, currentCol, code)
		}
	}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// CountCells returns how many cells satisfy pred
func (g *Grid) CountCells(pred func(*Cell) bool) int {
	n := 0
	g.ForEachCell(func(row, col int, cell *Cell) {
		if pred(cell) {
			n++
		}
	})
	return n
}
