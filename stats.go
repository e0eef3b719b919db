package main

import (
	"fmt"
	"time"
)

// Stats are cumulative counters for one run, published read-only to the
// UI and mode layer.
type Stats struct {
	PiecesPlaced    int
	LinesCleared    int
	Score           int
	Level           int
	Time            time.Duration
	AttackSent      int
	GarbageReceived int
	GarbageCleared  int

	Singles       int
	Doubles       int
	Triples       int
	Quads         int
	TSpins        int
	TSpinSingles  int
	TSpinDoubles  int
	TSpinTriples  int
	MiniTSpins    int
	AllSpins      int
	PerfectClears int

	MaxCombo      int
	MaxBackToBack int

	Inputs int
}

// PPS is pieces per second.
func (s *Stats) PPS() float64 {
	secs := s.Time.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.PiecesPlaced) / secs
}

// APM is attack per minute.
func (s *Stats) APM() float64 {
	mins := s.Time.Minutes()
	if mins <= 0 {
		return 0
	}
	return float64(s.AttackSent) / mins
}

// LPM is lines per minute.
func (s *Stats) LPM() float64 {
	mins := s.Time.Minutes()
	if mins <= 0 {
		return 0
	}
	return float64(s.LinesCleared) / mins
}

// KPP is key presses per piece.
func (s *Stats) KPP() float64 {
	if s.PiecesPlaced == 0 {
		return 0
	}
	return float64(s.Inputs) / float64(s.PiecesPlaced)
}

// FormatTime renders elapsed time as MM:SS.mmm.
func (s *Stats) FormatTime() string {
	totalMs := s.Time.Milliseconds()
	minutes := totalMs / 60_000
	seconds := (totalMs % 60_000) / 1000
	millis := totalMs % 1000
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}

func (s *Stats) Reset() {
	*s = Stats{}
}
