package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagSevenUniquePerCycle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bag := NewBag(rng)

	for cycle := 0; cycle < 4; cycle++ {
		seen := map[PieceKind]bool{}
		for i := 0; i < 7; i++ {
			kind := bag.Next(rng)
			assert.False(t, seen[kind], "cycle %d repeats %s", cycle, kind)
			seen[kind] = true
		}
		assert.Len(t, seen, 7)
	}
	assert.Equal(t, 28, bag.Drawn())
}

func TestBagPeekMatchesDraws(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	bag := NewBag(rng)

	// Peek across the bag boundary.
	for i := 0; i < 5; i++ {
		bag.Next(rng)
	}
	preview := bag.Peek(5)
	require.Len(t, preview, 5)
	for i, want := range preview {
		assert.Equal(t, want, bag.Next(rng), "preview index %d", i)
	}
}

func TestBagDeterministicForSeed(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	bagA := NewBag(a)
	bagB := NewBag(b)
	for i := 0; i < 21; i++ {
		assert.Equal(t, bagA.Next(a), bagB.Next(b))
	}
}
