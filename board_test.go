package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, gaps ...int) {
	skip := map[int]bool{}
	for _, g := range gaps {
		skip[g] = true
	}
	for x := 0; x < boardWidth; x++ {
		if !skip[x] {
			b.Set(x, y, cellFor(PieceT))
		}
	}
}

func TestBoardOutOfBoundsReadsSolid(t *testing.T) {
	b := NewBoard()
	assert.True(t, b.At(-1, 0).Occupied())
	assert.True(t, b.At(boardWidth, 0).Occupied())
	assert.True(t, b.At(0, -1).Occupied())
	assert.True(t, b.At(0, boardHeight).Occupied())
	assert.False(t, b.At(0, 0).Occupied())
}

func TestBoardLockAndFullLines(t *testing.T) {
	b := NewBoard()
	fillRow(&b, 0)
	fillRow(&b, 2)
	fillRow(&b, 1, 5)

	full := b.FullLines()
	assert.Equal(t, []int{0, 2}, full)
}

func TestBoardClearLinesCollapses(t *testing.T) {
	b := NewBoard()
	fillRow(&b, 0)
	fillRow(&b, 1, 3)
	fillRow(&b, 2)
	b.Set(4, 3, cellFor(PieceS))

	b.ClearLines([]int{0, 2})

	// Row 1 drops to the floor, the lone cell above drops two rows.
	assert.False(t, b.At(3, 0).Occupied())
	assert.True(t, b.At(0, 0).Occupied())
	assert.True(t, b.At(4, 1).Occupied())
	assert.False(t, b.At(4, 3).Occupied())
	assert.Empty(t, b.FullLines())
}

func TestBoardAddGarbage(t *testing.T) {
	b := NewBoard()
	b.Set(0, 0, cellFor(PieceI))

	b.AddGarbage(2, 7)

	// Existing content shifts up past the new garbage.
	assert.True(t, b.At(0, 2).Occupied())
	for y := 0; y < 2; y++ {
		for x := 0; x < boardWidth; x++ {
			if x == 7 {
				assert.False(t, b.At(x, y).Occupied())
			} else {
				assert.True(t, b.At(x, y).Garbage())
			}
		}
	}
}

func TestBoardGarbageInRows(t *testing.T) {
	b := NewBoard()
	b.AddGarbage(2, 3)
	fillRow(&b, 2)
	assert.Equal(t, 2, b.GarbageInRows([]int{0, 1, 2}))
}

func TestBoardHeightsAndHoles(t *testing.T) {
	b := NewBoard()
	b.Set(0, 0, cellFor(PieceJ))
	b.Set(0, 2, cellFor(PieceJ))
	b.Set(1, 0, cellFor(PieceJ))

	assert.Equal(t, 3, b.ColumnHeight(0))
	assert.Equal(t, 1, b.ColumnHeight(1))
	assert.Equal(t, 0, b.ColumnHeight(2))
	assert.Equal(t, 3, b.MaxHeight())
	assert.Equal(t, 4, b.AggregateHeight())
	assert.Equal(t, 1, b.Holes())
	assert.Equal(t, 2+1, b.Bumpiness())
}

func TestBoardFitsRejectsOverlap(t *testing.T) {
	b := NewBoard()
	p := Piece{Kind: PieceO, X: 0, Y: 0}
	require.True(t, b.Fits(p))
	b.Set(0, 0, CellGarbage)
	assert.False(t, b.Fits(p))
	assert.False(t, b.FitsAt(p, -1, 0, Rot0))
}

func TestBoardEmpty(t *testing.T) {
	b := NewBoard()
	assert.True(t, b.Empty())
	b.Set(5, 5, cellFor(PieceZ))
	assert.False(t, b.Empty())
}
