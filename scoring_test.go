package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoringSingle(t *testing.T) {
	s := NewScoring()
	score, attack := s.ProcessClear(ClearSingle, 1, false)
	assert.Equal(t, 100, score)
	assert.Equal(t, 0, attack)
	assert.Equal(t, 0, s.Combo)
	assert.Equal(t, -1, s.BackToBack)
}

func TestScoringComboBonus(t *testing.T) {
	s := NewScoring()
	s.ProcessClear(ClearSingle, 1, false)
	score, _ := s.ProcessClear(ClearSingle, 1, false)
	assert.Equal(t, 150, score)
	assert.Equal(t, 1, s.Combo)
}

func TestScoringComboBreaksOnEmptyLock(t *testing.T) {
	s := NewScoring()
	s.ProcessClear(ClearSingle, 1, false)
	s.ProcessClear(ClearSingle, 1, false)
	s.ProcessClear(ClearNone, 0, false)
	assert.Equal(t, -1, s.Combo)
}

func TestScoringBackToBackMultiplier(t *testing.T) {
	s := NewScoring()
	first, attack1 := s.ProcessClear(ClearQuad, 4, false)
	assert.Equal(t, 800, first)
	assert.Equal(t, 4, attack1)
	assert.Equal(t, 0, s.BackToBack)

	// Second quad: combo 1 (+50), back-to-back x1.5, attack row plus log bonus.
	second, attack2 := s.ProcessClear(ClearQuad, 4, false)
	assert.Equal(t, (800+50)*3/2, second)
	assert.Equal(t, 6, attack2)
	assert.Equal(t, 1, s.BackToBack)
}

func TestScoringBackToBackSurvivesNonClearLock(t *testing.T) {
	s := NewScoring()
	s.ProcessClear(ClearQuad, 4, false)
	s.ProcessClear(ClearNone, 0, false)
	assert.Equal(t, 0, s.BackToBack)
	s.ProcessClear(ClearSingle, 1, false)
	assert.Equal(t, -1, s.BackToBack)
}

func TestScoringPerfectClear(t *testing.T) {
	s := NewScoring()
	score, attack := s.ProcessClear(ClearSingle, 1, true)
	assert.Equal(t, 100+3500, score)
	assert.Equal(t, 10, attack)
}

func TestScoringLevelMultiplierAndLevelUp(t *testing.T) {
	s := NewScoring()
	s.Level = 2
	score, _ := s.ProcessClear(ClearSingle, 1, false)
	assert.Equal(t, 300, score)

	s = NewScoring()
	for i := 0; i < 3; i++ {
		s.ProcessClear(ClearQuad, 4, false)
		s.Combo = -1
		s.BackToBack = -1
	}
	assert.Equal(t, 12, s.Lines)
	assert.Equal(t, 1, s.Level)
}

func TestScoringMinAttackFloorOnLongCombo(t *testing.T) {
	s := NewScoring()
	s.ProcessClear(ClearSingle, 1, false)
	s.ProcessClear(ClearSingle, 1, false)
	s.ProcessClear(ClearSingle, 1, false)
	// All-spin clears carry no table damage; a running combo still sends 1.
	_, attack := s.ProcessClear(ClearAllSpin, 1, false)
	assert.Equal(t, 3, s.Combo)
	assert.Equal(t, 1, attack)
}

func TestScoringTSpinAttackRows(t *testing.T) {
	s := NewScoring()
	_, attack := s.ProcessClear(ClearTSpinDouble, 2, false)
	assert.Equal(t, 4, attack)

	s = NewScoring()
	_, attack = s.ProcessClear(ClearTSpinTriple, 3, false)
	assert.Equal(t, 6, attack)
}

func TestScoringDropPoints(t *testing.T) {
	s := NewScoring()
	s.AddHardDrop(10)
	s.AddSoftDrop(3)
	assert.Equal(t, 23, s.Score)
}
