package main

import "math/rand"

// Bag is the 7-bag randomizer, double-buffered so previews can look past
// the current bag without consuming it.
type Bag struct {
	current []PieceKind
	next    []PieceKind
	drawn   int
}

func NewBag(rng *rand.Rand) Bag {
	return Bag{
		current: shuffledBag(rng),
		next:    shuffledBag(rng),
	}
}

func shuffledBag(rng *rand.Rand) []PieceKind {
	bag := make([]PieceKind, len(allPieces))
	copy(bag, allPieces[:])
	rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}

func (b *Bag) Next(rng *rand.Rand) PieceKind {
	if len(b.current) == 0 {
		b.current = b.next
		b.next = shuffledBag(rng)
	}
	kind := b.current[0]
	b.current = b.current[1:]
	b.drawn++
	return kind
}

// Peek returns the next count pieces without consuming them.
func (b *Bag) Peek(count int) []PieceKind {
	preview := make([]PieceKind, 0, count)
	for i := 0; i < count; i++ {
		if i < len(b.current) {
			preview = append(preview, b.current[i])
		} else if j := i - len(b.current); j < len(b.next) {
			preview = append(preview, b.next[j])
		}
	}
	return preview
}

func (b *Bag) Drawn() int {
	return b.drawn
}
