package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPieceSpawnsAboveVisibleArea(t *testing.T) {
	for _, kind := range allPieces {
		p := NewPiece(kind)
		assert.Equal(t, spawnX, p.X)
		assert.Equal(t, spawnY, p.Y)
		assert.Equal(t, Rot0, p.Rotation)
		for _, c := range p.Cells() {
			assert.GreaterOrEqual(t, c.Y, visibleHeight, "%s spawns inside the visible area", kind)
		}
	}
}

func TestRotationRoundTrip(t *testing.T) {
	for r := Rot0; r <= Rot3; r++ {
		assert.Equal(t, r, r.CW().CCW())
		assert.Equal(t, r, r.CCW().CW())
		assert.Equal(t, r, r.Flip().Flip())
		assert.Equal(t, r.CW().CW(), r.Flip())
	}
}

func TestPieceCellsDistinct(t *testing.T) {
	for _, kind := range allPieces {
		for r := Rot0; r <= Rot3; r++ {
			p := Piece{Kind: kind, Rotation: r, X: 4, Y: 10}
			seen := map[Point]bool{}
			for _, c := range p.Cells() {
				assert.False(t, seen[c], "%s rot %d has overlapping cells", kind, r)
				seen[c] = true
			}
			assert.Len(t, seen, 4)
		}
	}
}

func TestOPieceRotationInvariant(t *testing.T) {
	base := Piece{Kind: PieceO, X: 4, Y: 10}
	cells := base.Cells()
	for r := Rot1; r <= Rot3; r++ {
		rotated := base
		rotated.Rotation = r
		assert.Equal(t, cells, rotated.Cells())
	}
}
