package main

import "math"

// Attack damage table indexed by clear type then combo count (capped at 20).
var attackTable = map[ClearType][21]int{
	ClearSingle:          {0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3},
	ClearDouble:          {1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 6},
	ClearTriple:          {2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12},
	ClearQuad:            {4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
	ClearTSpinSingle:     {2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12},
	ClearTSpinDouble:     {4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24},
	ClearTSpinTriple:     {6, 7, 9, 10, 12, 13, 15, 16, 18, 19, 21, 22, 24, 25, 27, 28, 30, 31, 33, 34, 36},
	ClearMiniTSpinSingle: {0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3},
}

func baseScore(c ClearType) int {
	switch c {
	case ClearSingle:
		return 100
	case ClearDouble:
		return 300
	case ClearTriple:
		return 500
	case ClearQuad:
		return 800
	case ClearTSpin:
		return 400
	case ClearTSpinSingle:
		return 800
	case ClearTSpinDouble:
		return 1200
	case ClearTSpinTriple:
		return 1600
	case ClearMiniTSpin:
		return 100
	case ClearMiniTSpinSingle:
		return 200
	case ClearMiniTSpinDouble:
		return 400
	case ClearAllSpin:
		return 400
	}
	return 0
}

// Scoring tracks score, combo, back-to-back and level. Combo and
// BackToBack use -1 for inactive.
type Scoring struct {
	Score      int
	Combo      int
	BackToBack int
	Level      int
	Lines      int

	linesPerLevel int
}

func NewScoring() Scoring {
	return Scoring{Combo: -1, BackToBack: -1, linesPerLevel: 10}
}

// ProcessClear applies one lock's clear to the score and combo/B2B chains
// and returns (score gained, attack damage).
func (s *Scoring) ProcessClear(clear ClearType, lines int, perfectClear bool) (int, int) {
	if clear == ClearNone && lines == 0 {
		s.Combo = -1
		return 0, 0
	}

	s.Combo++

	if lines > 0 {
		if clear.Difficult() {
			s.BackToBack++
		} else {
			s.BackToBack = -1
		}
	}

	score := baseScore(clear)
	if perfectClear {
		score += 3500
	}
	if s.Combo > 0 {
		score += 50 * s.Combo
	}
	if s.BackToBack > 0 {
		score = score * 3 / 2
	}
	score *= s.Level + 1
	s.Score += score

	attack := s.attack(clear, perfectClear)

	s.Lines += lines
	s.checkLevelUp()

	// Non-obvious floor: long combos always send something.
	if lines > 0 && attack == 0 && s.Combo > 2 {
		attack = 1
	}

	return score, attack
}

func (s *Scoring) attack(clear ClearType, perfectClear bool) int {
	comboIdx := s.Combo
	if comboIdx < 0 {
		comboIdx = 0
	}
	if comboIdx > 20 {
		comboIdx = 20
	}

	attack := 0
	if row, ok := attackTable[clear]; ok {
		attack = row[comboIdx]
	}

	if s.BackToBack > 0 {
		x := math.Log(1 + float64(s.BackToBack)*0.8)
		bonus := math.Floor(x+1) + (1+math.Mod(x, 1))/3
		attack += int(math.Floor(bonus))
	}
	if perfectClear {
		attack += 10
	}
	return attack
}

func (s *Scoring) AddHardDrop(cells int) {
	s.Score += cells * 2
}

func (s *Scoring) AddSoftDrop(cells int) {
	s.Score += cells
}

func (s *Scoring) checkLevelUp() {
	if s.Lines >= (s.Level+1)*s.linesPerLevel {
		s.Level++
	}
}

func (s *Scoring) Reset() {
	*s = NewScoring()
}
