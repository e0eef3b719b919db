package main

// Hold is the hold slot plus the once-per-piece-cycle flag.
type Hold struct {
	Kind         PieceKind
	Has          bool
	UsedThisTurn bool
}

// Take stores the current piece and returns the previously held kind.
// Fails without state change if hold was already used this cycle.
func (h *Hold) Take(current PieceKind) (prev PieceKind, hadPrev, ok bool) {
	if h.UsedThisTurn {
		return 0, false, false
	}
	prev, hadPrev = h.Kind, h.Has
	h.Kind = current
	h.Has = true
	h.UsedThisTurn = true
	return prev, hadPrev, true
}

// ResetTurn re-arms hold for the next piece cycle.
func (h *Hold) ResetTurn() {
	h.UsedThisTurn = false
}

func (h *Hold) Reset() {
	*h = Hold{}
}
