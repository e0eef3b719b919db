package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSprintSortsByTime(t *testing.T) {
	var s HighScoreStore
	assert.True(t, s.AddSprint(60_000, 40, 100))
	assert.False(t, s.AddSprint(75_000, 40, 110))
	assert.True(t, s.AddSprint(55_000, 40, 95), "faster time is a new best")

	assert.Equal(t, int64(55_000), s.Sprint[0].TimeMs)
	assert.Equal(t, int64(60_000), s.Sprint[1].TimeMs)
	assert.Equal(t, int64(75_000), s.Sprint[2].TimeMs)
}

func TestAddEndlessKeepsTopTen(t *testing.T) {
	var s HighScoreStore
	for i := 0; i < 12; i++ {
		s.AddEndless(i*1000, 1, i*4)
	}
	assert.Len(t, s.Endless, maxScores)
	assert.Equal(t, 11_000, s.Endless[0].Score)
	assert.Equal(t, 2000, s.Endless[maxScores-1].Score)
}

func TestAddVersusWinsSortFirst(t *testing.T) {
	var s HighScoreStore
	assert.False(t, s.AddVersus(false, "Hard", 90_000, 12))
	assert.True(t, s.AddVersus(true, "Medium", 120_000, 8), "first win tops a loss")
	assert.False(t, s.AddVersus(true, "Hard", 100_000, 20))

	assert.True(t, s.Versus[0].Won)
	assert.Equal(t, 20, s.Versus[0].DamageSent)
	assert.False(t, s.Versus[2].Won)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "999", formatNumber(999))
	assert.Equal(t, "1,000", formatNumber(1000))
	assert.Equal(t, "1,234,567", formatNumber(1234567))
}
