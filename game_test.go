package main

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(seed int64) *Game {
	g := NewGame(rand.New(rand.NewSource(seed)))
	g.Start()
	return g
}

func TestGameStartSpawnsPiece(t *testing.T) {
	g := newTestGame(1)
	require.NotNil(t, g.Current)
	assert.False(t, g.Over)
	assert.Equal(t, spawnX, g.Current.X)
	assert.Len(t, g.Preview(), 3)
}

func TestGameHardDropLocksAndSpawns(t *testing.T) {
	g := newTestGame(1)
	preview := g.Preview()

	result := g.HandleAction(ActionHardDrop)
	assert.True(t, result.Locked)
	assert.True(t, result.HardDropped)
	assert.Equal(t, 0, result.Lines)
	assert.Equal(t, 1, g.Stats.PiecesPlaced)

	// No lines cleared: the next piece spawns immediately.
	require.NotNil(t, g.Current)
	assert.Equal(t, preview[0], g.Current.Kind)
	assert.NotEqual(t, 0, g.Scoring.Score, "hard drop distance scores")
}

func TestGameHoldSwapsAndBlocksSecondHold(t *testing.T) {
	g := newTestGame(3)
	first := g.Current.Kind
	preview := g.Preview()

	g.HandleAction(ActionHold)
	require.True(t, g.Hold.Has)
	assert.Equal(t, first, g.Hold.Kind)
	assert.Equal(t, preview[0], g.Current.Kind)

	// A second hold in the same piece cycle is refused.
	second := g.Current.Kind
	g.HandleAction(ActionHold)
	assert.Equal(t, second, g.Current.Kind)
	assert.Equal(t, first, g.Hold.Kind)

	// After locking, hold re-arms and swaps back.
	g.HandleAction(ActionHardDrop)
	g.HandleAction(ActionHold)
	assert.Equal(t, first, g.Current.Kind)
}

func TestGameHoldRollsBackWhenSwapBlocked(t *testing.T) {
	g := newTestGame(19)
	g.Hold.Kind = PieceI
	g.Hold.Has = true
	current := &Piece{Kind: PieceT, Rotation: Rot0, X: 3, Y: 5}
	g.Current = current

	// Block the I spawn cell; the hold attempt must undo itself fully.
	g.Board.Set(3, spawnY, cellFor(PieceJ))
	g.HandleAction(ActionHold)

	assert.Equal(t, current, g.Current)
	assert.Equal(t, PieceI, g.Hold.Kind)
	assert.False(t, g.Hold.UsedThisTurn, "a failed hold stays available")
}

func TestGameGravityDropsPiece(t *testing.T) {
	g := newTestGame(4)
	startY := g.Current.Y
	g.Update(time.Second)
	assert.Equal(t, startY-1, g.Current.Y)
}

func TestGameSoftDropScoresPerCell(t *testing.T) {
	g := newTestGame(5)
	before := g.Scoring.Score
	g.HandleAction(ActionSoftDrop)
	assert.Equal(t, before+1, g.Scoring.Score)
	assert.True(t, g.Gravity.SoftDropping)
	g.HandleAction(ActionSoftDropRelease)
	assert.False(t, g.Gravity.SoftDropping)
}

func TestGameQuadEndToEnd(t *testing.T) {
	g := newTestGame(6)
	for y := 0; y < 4; y++ {
		fillRow(&g.Board, y, 9)
	}
	// A marker above the stack proves the collapse shifts rows down.
	g.Board.Set(0, 4, cellFor(PieceS))
	g.Current = &Piece{Kind: PieceI, Rotation: Rot1, X: 7, Y: 21}

	result := g.HandleAction(ActionHardDrop)
	assert.True(t, result.Locked)
	assert.Equal(t, 4, result.Lines)
	assert.Equal(t, ClearQuad, result.Clear)
	assert.False(t, result.PerfectClear)
	assert.Equal(t, 800, result.ScoreGained)
	assert.Equal(t, 4, result.Attack)

	// The clear animation holds the rows until the delay runs out.
	rows, clearing := g.Clearing()
	require.True(t, clearing)
	assert.Equal(t, []int{0, 1, 2, 3}, rows)
	assert.Equal(t, TickResult{}, g.HandleAction(ActionMoveLeft))

	g.Update(250 * time.Millisecond)
	_, clearing = g.Clearing()
	assert.False(t, clearing)
	require.NotNil(t, g.Current)
	assert.True(t, g.Board.At(0, 0).Occupied(), "marker row collapsed to the floor")
	assert.False(t, g.Board.At(0, 4).Occupied())
	assert.Equal(t, 4, g.Scoring.Lines)
}

func TestGamePerfectClearBonus(t *testing.T) {
	g := newTestGame(7)
	// Six cells on the floor plus a flat I complete the only row.
	fillRow(&g.Board, 0, 6, 7, 8, 9)
	g.Current = &Piece{Kind: PieceI, Rotation: Rot0, X: 6, Y: 21}

	result := g.HandleAction(ActionHardDrop)
	require.Equal(t, 1, result.Lines)
	require.True(t, result.PerfectClear)
	assert.Equal(t, 100+3500, result.ScoreGained)
	assert.Equal(t, 10, result.Attack)
	assert.Equal(t, 1, g.Stats.PerfectClears)
}

func TestGameGarbageDeploysAfterTravel(t *testing.T) {
	g := newTestGame(8)
	g.Garbage.Add(2)

	g.Update(100 * time.Millisecond)
	assert.Equal(t, 0, g.Stats.GarbageReceived)

	g.Update(500 * time.Millisecond)
	assert.Equal(t, 2, g.Stats.GarbageReceived)
	assert.Equal(t, 2, g.Board.GarbageInRows([]int{0, 1}))
}

func TestGameAttackCancelsIncomingGarbage(t *testing.T) {
	g := newTestGame(9)
	g.Garbage.Add(3)
	for y := 0; y < 2; y++ {
		fillRow(&g.Board, y, 8, 9)
	}
	// A stray cell above the stack keeps the double from being a perfect
	// clear; a plain double sends 1, which cancels pending garbage instead.
	g.Board.Set(0, 2, cellFor(PieceL))
	g.Current = &Piece{Kind: PieceO, Rotation: Rot0, X: 8, Y: 21}
	result := g.HandleAction(ActionHardDrop)
	require.Equal(t, 2, result.Lines)
	assert.False(t, result.PerfectClear)
	assert.Equal(t, 0, result.Attack)
	assert.Equal(t, 0, g.Stats.AttackSent)
	assert.Equal(t, 2, g.Garbage.Pending())
}

func TestGameEventsDrain(t *testing.T) {
	g := newTestGame(10)
	g.HandleAction(ActionHardDrop)
	events := g.DrainEvents()
	assert.NotEmpty(t, events)
	assert.Empty(t, g.DrainEvents())

	found := false
	for _, ev := range events {
		if ev.Kind == EventPieceLocked {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGameTopOutOnBlockedSpawn(t *testing.T) {
	g := newTestGame(11)
	for y := visibleHeight; y < visibleHeight+4; y++ {
		fillRow(&g.Board, y)
	}
	g.HandleAction(ActionHardDrop)
	// The stack occupies the spawn area, so the next spawn fails.
	assert.True(t, g.Over)
	assert.Equal(t, TickResult{}, g.HandleAction(ActionMoveLeft))
}

func TestGameStatsTrackTime(t *testing.T) {
	g := newTestGame(12)
	g.Update(16 * time.Millisecond)
	g.Update(16 * time.Millisecond)
	assert.Equal(t, 32*time.Millisecond, g.Stats.Time)
}
