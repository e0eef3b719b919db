package main

import "time"

// Difficulty selects an opponent preset.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyExpert
)

var allDifficulties = []Difficulty{
	DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert,
}

func (d Difficulty) Name() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	case DifficultyExpert:
		return "Expert"
	}
	return "?"
}

func (d Difficulty) Description() string {
	switch d {
	case DifficultyEasy:
		return "Slow, makes mistakes, sends little garbage"
	case DifficultyMedium:
		return "Moderate speed, decent play"
	case DifficultyHard:
		return "Fast, efficient, aggressive garbage"
	case DifficultyExpert:
		return "Relentless, near-optimal play"
	}
	return ""
}

// ThinkTime is the delay before the opponent starts moving a piece.
func (d Difficulty) ThinkTime() time.Duration {
	switch d {
	case DifficultyEasy:
		return 800 * time.Millisecond
	case DifficultyMedium:
		return 400 * time.Millisecond
	case DifficultyHard:
		return 150 * time.Millisecond
	}
	return 50 * time.Millisecond
}

// MoveSpeed is how fast the opponent moves pieces, in cells per second.
func (d Difficulty) MoveSpeed() float64 {
	switch d {
	case DifficultyEasy:
		return 3
	case DifficultyMedium:
		return 6
	case DifficultyHard:
		return 15
	}
	return 30
}

// ErrorRate is the chance of picking a suboptimal placement.
func (d Difficulty) ErrorRate() float64 {
	switch d {
	case DifficultyEasy:
		return 0.15
	case DifficultyMedium:
		return 0.05
	case DifficultyHard:
		return 0.01
	}
	return 0
}

func (d Difficulty) UsesHold() bool {
	return d != DifficultyEasy
}

// EvalWeights are the heuristic evaluation weights.
type EvalWeights struct {
	AggregateHeight   float64
	Holes             float64
	Bumpiness         float64
	LinesCleared      float64
	Wells             float64
	ColumnTransitions float64
	RowTransitions    float64
	PerfectClear      float64
}

func (d Difficulty) Weights() EvalWeights {
	switch d {
	case DifficultyEasy:
		return EvalWeights{
			AggregateHeight:   -0.30,
			Holes:             -0.25,
			Bumpiness:         -0.10,
			LinesCleared:      0.50,
			Wells:             0.05,
			ColumnTransitions: -0.05,
			RowTransitions:    -0.03,
			PerfectClear:      2.0,
		}
	case DifficultyMedium:
		return EvalWeights{
			AggregateHeight:   -0.45,
			Holes:             -0.35,
			Bumpiness:         -0.15,
			LinesCleared:      0.65,
			Wells:             0.08,
			ColumnTransitions: -0.08,
			RowTransitions:    -0.04,
			PerfectClear:      4.0,
		}
	case DifficultyHard:
		return EvalWeights{
			AggregateHeight:   -0.51,
			Holes:             -0.36,
			Bumpiness:         -0.18,
			LinesCleared:      0.76,
			Wells:             0.10,
			ColumnTransitions: -0.10,
			RowTransitions:    -0.05,
			PerfectClear:      5.0,
		}
	}
	return EvalWeights{
		AggregateHeight:   -0.51,
		Holes:             -0.36,
		Bumpiness:         -0.18,
		LinesCleared:      0.76,
		Wells:             0.12,
		ColumnTransitions: -0.12,
		RowTransitions:    -0.06,
		PerfectClear:      6.0,
	}
}
