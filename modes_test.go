package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndlessCompletesOnTopOut(t *testing.T) {
	g := newTestGame(20)
	mode := NewEndlessMode()
	mode.Start(g)

	_, done := mode.Complete(g)
	assert.False(t, done)

	g.Over = true
	g.Scoring.Score = 12345
	result, done := mode.Complete(g)
	require.True(t, done)
	assert.Equal(t, "Endless Marathon", result.ModeName)
	assert.Equal(t, "SCORE", result.PrimaryLabel)
	assert.Equal(t, "12,345", result.PrimaryValue)
	assert.Equal(t, OutcomeNone, result.Outcome)
}

func TestSprintCompletesAtTarget(t *testing.T) {
	g := newTestGame(21)
	mode := NewSprintMode()
	mode.Start(g)

	g.Scoring.Lines = 39
	_, done := mode.Complete(g)
	assert.False(t, done)
	assert.Equal(t, "1 lines left", mode.InfoText(g))

	g.Scoring.Lines = 40
	result, done := mode.Complete(g)
	require.True(t, done)
	assert.True(t, mode.Won(g))
	assert.Equal(t, "40-Line Sprint", result.ModeName)
	assert.Equal(t, "TIME", result.PrimaryLabel)
}

func TestSprintTopOutIsNotAWin(t *testing.T) {
	g := newTestGame(22)
	mode := NewSprintMode()
	g.Over = true
	g.Scoring.Lines = 12

	_, done := mode.Complete(g)
	assert.True(t, done)
	assert.False(t, mode.Won(g))
}

func TestVersusOutcomes(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	g := newTestGame(23)
	mode := NewVersusMode(DifficultyMedium, rng)
	mode.Start(g)

	_, done := mode.Complete(g)
	assert.False(t, done)

	mode.AIGame.Over = true
	result, done := mode.Complete(g)
	require.True(t, done)
	assert.Equal(t, OutcomeWin, result.Outcome)
	assert.Equal(t, "VICTORY", result.PrimaryLabel)
	assert.Equal(t, "Versus AI (Medium)", result.ModeName)

	// Both dead counts as a loss for the player.
	g.Over = true
	result, _ = mode.Complete(g)
	assert.Equal(t, OutcomeLoss, result.Outcome)
}

func TestVersusReceiveAttackQueuesGarbage(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	g := newTestGame(24)
	mode := NewVersusMode(DifficultyEasy, rng)
	mode.Start(g)

	mode.ReceiveAttack(3)
	assert.Equal(t, 3, mode.AIGame.Garbage.Pending())

	mode.ReceiveAttack(0)
	assert.Equal(t, 3, mode.AIGame.Garbage.Pending())
}

func TestVersusUpdateAIAdvancesOpponent(t *testing.T) {
	rng := rand.New(rand.NewSource(25))
	g := newTestGame(25)
	mode := NewVersusMode(DifficultyExpert, rng)
	mode.Start(g)

	dt := 50 * time.Millisecond
	for i := 0; i < 200 && !mode.AIGame.Over; i++ {
		mode.UpdateAI(dt)
	}
	assert.Greater(t, mode.AIGame.Stats.PiecesPlaced, 0)
}
