package main

import "fmt"

// SpinType is the spin classification attached to a lock.
type SpinType int

const (
	SpinNone SpinType = iota
	SpinTSpin
	SpinMiniTSpin
	SpinAll
)

// ClearType tags what a lock accomplished. All-spin clears share one tag;
// their line count travels alongside.
type ClearType int

const (
	ClearNone ClearType = iota
	ClearSingle
	ClearDouble
	ClearTriple
	ClearQuad
	ClearTSpin // T-spin, no lines
	ClearTSpinSingle
	ClearTSpinDouble
	ClearTSpinTriple
	ClearMiniTSpin // mini T-spin, no lines
	ClearMiniTSpinSingle
	ClearMiniTSpinDouble
	ClearAllSpin
)

// classifyClear maps (line count, spin) to a clear type.
func classifyClear(lines int, spin SpinType) ClearType {
	switch spin {
	case SpinTSpin:
		switch lines {
		case 0:
			return ClearTSpin
		case 1:
			return ClearTSpinSingle
		case 2:
			return ClearTSpinDouble
		case 3:
			return ClearTSpinTriple
		default:
			return ClearQuad
		}
	case SpinMiniTSpin:
		switch lines {
		case 0:
			return ClearMiniTSpin
		case 1:
			return ClearMiniTSpinSingle
		case 2:
			return ClearMiniTSpinDouble
		default:
			return ClearTriple
		}
	case SpinAll:
		if lines > 0 {
			return ClearAllSpin
		}
		return ClearNone
	default:
		switch lines {
		case 0:
			return ClearNone
		case 1:
			return ClearSingle
		case 2:
			return ClearDouble
		case 3:
			return ClearTriple
		default:
			return ClearQuad
		}
	}
}

// Difficult clears extend the back-to-back chain.
func (c ClearType) Difficult() bool {
	switch c {
	case ClearQuad, ClearTSpin, ClearTSpinSingle, ClearTSpinDouble, ClearTSpinTriple,
		ClearMiniTSpin, ClearMiniTSpinSingle, ClearMiniTSpinDouble, ClearAllSpin:
		return true
	}
	return false
}

// DisplayName is the action text shown by the UI. All-spin names carry the
// line count.
func (c ClearType) DisplayName(lines int) string {
	switch c {
	case ClearNone:
		return ""
	case ClearSingle:
		return "SINGLE"
	case ClearDouble:
		return "DOUBLE"
	case ClearTriple:
		return "TRIPLE"
	case ClearQuad:
		return "TETRIS"
	case ClearTSpin:
		return "T-SPIN"
	case ClearTSpinSingle:
		return "T-SPIN SINGLE"
	case ClearTSpinDouble:
		return "T-SPIN DOUBLE"
	case ClearTSpinTriple:
		return "T-SPIN TRIPLE"
	case ClearMiniTSpin:
		return "MINI T-SPIN"
	case ClearMiniTSpinSingle:
		return "MINI T-SPIN SINGLE"
	case ClearMiniTSpinDouble:
		return "MINI T-SPIN DOUBLE"
	case ClearAllSpin:
		switch lines {
		case 1:
			return "ALL-SPIN SINGLE"
		case 2:
			return "ALL-SPIN DOUBLE"
		case 3:
			return "ALL-SPIN TRIPLE"
		default:
			return "ALL-SPIN"
		}
	}
	return fmt.Sprintf("CLEAR(%d)", int(c))
}
