package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKicksFirstCandidateIsIdentity(t *testing.T) {
	for _, kind := range allPieces {
		for from := Rot0; from <= Rot3; from++ {
			for _, to := range []Rotation{from.CW(), from.CCW(), from.Flip()} {
				table := kicks(kind, from, to)
				assert.NotEmpty(t, table, "%s %d->%d", kind, from, to)
				assert.Equal(t, Point{0, 0}, table[0])
			}
		}
	}
}

func TestKickTableSizes(t *testing.T) {
	for _, kind := range []PieceKind{PieceI, PieceT, PieceS, PieceZ, PieceJ, PieceL} {
		for from := Rot0; from <= Rot3; from++ {
			assert.Len(t, kicks(kind, from, from.CW()), 5, "%s %d CW", kind, from)
			assert.Len(t, kicks(kind, from, from.CCW()), 5, "%s %d CCW", kind, from)
			assert.Len(t, kicks(kind, from, from.Flip()), 6, "%s %d 180", kind, from)
		}
	}
	for from := Rot0; from <= Rot3; from++ {
		for _, to := range []Rotation{from.CW(), from.CCW(), from.Flip()} {
			assert.Equal(t, []Point{{0, 0}}, kicks(PieceO, from, to))
		}
	}
}

func TestKicksMirrorSymmetry(t *testing.T) {
	// CW and CCW across the same boundary use negated offsets.
	for _, pair := range [][2]Rotation{{Rot0, Rot1}, {Rot1, Rot2}, {Rot2, Rot3}, {Rot3, Rot0}} {
		forward := kicks(PieceT, pair[0], pair[1])
		backward := kicks(PieceT, pair[1], pair[0])
		for i := range forward {
			assert.Equal(t, Point{-forward[i].X, -forward[i].Y}, backward[i],
				fmt.Sprintf("%d<->%d offset %d", pair[0], pair[1], i))
		}
	}
}
