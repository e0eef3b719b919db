package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDasChargesBeforeRepeating(t *testing.T) {
	h := NewDasHandler()
	assert.True(t, h.PressLeft())
	assert.False(t, h.PressLeft(), "press while held is ignored")

	assert.Empty(t, h.Tick(100*time.Millisecond))

	// Crossing the DAS threshold with instant ARR floods moves.
	actions := h.Tick(50 * time.Millisecond)
	assert.Len(t, actions, instantMoves)
	for _, a := range actions {
		assert.Equal(t, ActionMoveLeft, a)
	}

	// Still held: the repeat phase keeps flooding each tick.
	assert.Len(t, h.Tick(16*time.Millisecond), instantMoves)

	h.ReleaseLeft()
	assert.Empty(t, h.Tick(16*time.Millisecond))
}

func TestDasFiniteArrRate(t *testing.T) {
	h := NewDasHandler()
	h.ARR = 16 * time.Millisecond
	h.PressRight()

	// 150ms elapsed: 17ms past the charge point is one repeat plus one
	// full ARR interval.
	assert.Empty(t, h.Tick(100*time.Millisecond))
	actions := h.Tick(50 * time.Millisecond)
	assert.Len(t, actions, 2)
	assert.Equal(t, ActionMoveRight, actions[0])

	assert.Len(t, h.Tick(32*time.Millisecond), 2)
}

func TestDasOppositeDirectionTakesOver(t *testing.T) {
	h := NewDasHandler()
	h.PressLeft()
	h.Tick(200 * time.Millisecond)

	assert.True(t, h.PressRight())
	assert.False(t, h.HeldLeft())
	assert.True(t, h.HeldRight())

	// The new direction charges from scratch.
	assert.Empty(t, h.Tick(100*time.Millisecond))
	actions := h.Tick(50 * time.Millisecond)
	for _, a := range actions {
		assert.Equal(t, ActionMoveRight, a)
	}
	assert.NotEmpty(t, actions)
}

func TestDasSoftDropIndependent(t *testing.T) {
	h := NewDasHandler()
	h.PressLeft()
	h.PressSoftDrop()

	actions := h.Tick(150 * time.Millisecond)
	var lefts, drops int
	for _, a := range actions {
		switch a {
		case ActionMoveLeft:
			lefts++
		case ActionSoftDrop:
			drops++
		}
	}
	assert.Equal(t, instantMoves, lefts)
	assert.Equal(t, instantMoves, drops)

	h.ReleaseAll()
	assert.False(t, h.HeldLeft())
	assert.False(t, h.HeldSoftDrop())
}
