package main

const (
	boardWidth    = 10
	boardHeight   = 40 // 20 visible + 20 buffer
	visibleHeight = 20
)

// Cell is one grid slot: empty, filled by a piece kind, or garbage.
type Cell int8

const (
	CellEmpty   Cell = 0
	CellGarbage Cell = 8
)

func cellFor(kind PieceKind) Cell { return Cell(kind) + 1 }

func (c Cell) Occupied() bool { return c != CellEmpty }
func (c Cell) Garbage() bool  { return c == CellGarbage }

// Kind returns the piece kind that filled this cell, if any.
func (c Cell) Kind() (PieceKind, bool) {
	if c == CellEmpty || c == CellGarbage {
		return 0, false
	}
	return PieceKind(c - 1), true
}

// Board is the playfield. Row 0 is the floor. The zero value is an empty
// board; copying the struct copies the whole grid, which is what the AI
// search relies on for hypothetical placements.
type Board struct {
	grid [boardHeight][boardWidth]Cell
}

func NewBoard() Board {
	return Board{}
}

// At returns the cell at (x, y). Anything outside the grid reads as solid.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= boardWidth || y < 0 || y >= boardHeight {
		return CellGarbage
	}
	return b.grid[y][x]
}

func (b *Board) Set(x, y int, c Cell) {
	if x >= 0 && x < boardWidth && y >= 0 && y < boardHeight {
		b.grid[y][x] = c
	}
}

func (b *Board) Fits(p Piece) bool {
	return b.FitsAt(p, p.X, p.Y, p.Rotation)
}

func (b *Board) FitsAt(p Piece, x, y int, rotation Rotation) bool {
	for _, c := range p.CellsAt(x, y, rotation) {
		if c.X < 0 || c.X >= boardWidth || c.Y < 0 || c.Y >= boardHeight {
			return false
		}
		if b.grid[c.Y][c.X].Occupied() {
			return false
		}
	}
	return true
}

// Lock burns the piece's cells into the grid.
func (b *Board) Lock(p Piece) {
	for _, c := range p.Cells() {
		b.Set(c.X, c.Y, cellFor(p.Kind))
	}
}

// FullLines returns the indices of completely filled rows, ascending.
func (b *Board) FullLines() []int {
	var full []int
	for y := 0; y < boardHeight; y++ {
		filled := true
		for x := 0; x < boardWidth; x++ {
			if !b.grid[y][x].Occupied() {
				filled = false
				break
			}
		}
		if filled {
			full = append(full, y)
		}
	}
	return full
}

// ClearLines removes the given rows and collapses everything above down,
// preserving the relative order of the surviving rows.
func (b *Board) ClearLines(rows []int) {
	if len(rows) == 0 {
		return
	}
	cleared := make(map[int]bool, len(rows))
	for _, r := range rows {
		cleared[r] = true
	}
	var next [boardHeight][boardWidth]Cell
	dest := 0
	for src := 0; src < boardHeight; src++ {
		if cleared[src] {
			continue
		}
		next[dest] = b.grid[src]
		dest++
	}
	b.grid = next
}

func (b *Board) Empty() bool {
	for y := 0; y < boardHeight; y++ {
		for x := 0; x < boardWidth; x++ {
			if b.grid[y][x].Occupied() {
				return false
			}
		}
	}
	return true
}

// ColumnHeight is the highest occupied row + 1, or 0 for an empty column.
func (b *Board) ColumnHeight(col int) int {
	for y := boardHeight - 1; y >= 0; y-- {
		if b.grid[y][col].Occupied() {
			return y + 1
		}
	}
	return 0
}

func (b *Board) MaxHeight() int {
	max := 0
	for x := 0; x < boardWidth; x++ {
		if h := b.ColumnHeight(x); h > max {
			max = h
		}
	}
	return max
}

func (b *Board) AggregateHeight() int {
	sum := 0
	for x := 0; x < boardWidth; x++ {
		sum += b.ColumnHeight(x)
	}
	return sum
}

// Holes counts empty cells with at least one filled cell above them.
func (b *Board) Holes() int {
	holes := 0
	for x := 0; x < boardWidth; x++ {
		foundFilled := false
		for y := boardHeight - 1; y >= 0; y-- {
			if b.grid[y][x].Occupied() {
				foundFilled = true
			} else if foundFilled {
				holes++
			}
		}
	}
	return holes
}

// Bumpiness is the sum of absolute differences between adjacent column heights.
func (b *Board) Bumpiness() int {
	sum := 0
	prev := b.ColumnHeight(0)
	for x := 1; x < boardWidth; x++ {
		h := b.ColumnHeight(x)
		d := prev - h
		if d < 0 {
			d = -d
		}
		sum += d
		prev = h
	}
	return sum
}

// AddGarbage inserts count garbage rows at the bottom with a single gap at
// gapCol, shifting existing content upward.
func (b *Board) AddGarbage(count, gapCol int) {
	for y := boardHeight - 1; y >= 0; y-- {
		if y >= count {
			b.grid[y] = b.grid[y-count]
			continue
		}
		for x := 0; x < boardWidth; x++ {
			b.grid[y][x] = CellGarbage
		}
		b.grid[y][gapCol] = CellEmpty
	}
}

// GarbageInRows counts how many of the given rows contain garbage cells.
func (b *Board) GarbageInRows(rows []int) int {
	n := 0
	for _, y := range rows {
		for x := 0; x < boardWidth; x++ {
			if b.grid[y][x].Garbage() {
				n++
				break
			}
		}
	}
	return n
}
