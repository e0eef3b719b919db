package main

import "time"

// Delayed auto shift. Holding a direction emits one move, waits out the
// DAS delay, then repeats at the ARR interval. An ARR of zero means
// instant: the repeat phase emits enough moves to cross the whole board.

const (
	defaultDAS         = 133 * time.Millisecond
	defaultARR         = 0
	defaultSoftDropARR = 0

	// Moves emitted per tick when ARR is instant.
	instantMoves = 20
)

type dasPhase int

const (
	dasIdle dasPhase = iota
	dasCharging
	dasRepeating
)

type dasState struct {
	phase dasPhase
	timer time.Duration
}

func (s *dasState) Press() bool {
	if s.phase != dasIdle {
		return false
	}
	s.phase = dasCharging
	s.timer = 0
	return true
}

func (s *dasState) Release() {
	s.phase = dasIdle
	s.timer = 0
}

func (s *dasState) Held() bool {
	return s.phase != dasIdle
}

// Tick advances the state machine and returns how many repeat moves to
// emit this frame.
func (s *dasState) Tick(dt, das, arr time.Duration) int {
	switch s.phase {
	case dasIdle:
		return 0
	case dasCharging:
		s.timer += dt
		if s.timer < das {
			return 0
		}
		s.timer -= das
		s.phase = dasRepeating
		if arr == 0 {
			return instantMoves
		}
		moves := 1
		moves += int(s.timer / arr)
		s.timer %= arr
		return moves
	default:
		if arr == 0 {
			return instantMoves
		}
		s.timer += dt
		moves := int(s.timer / arr)
		s.timer %= arr
		return moves
	}
}

// DasHandler owns the per-direction state machines and maps them to game
// actions.
type DasHandler struct {
	DAS         time.Duration
	ARR         time.Duration
	SoftDropARR time.Duration

	left     dasState
	right    dasState
	softDrop dasState
}

func NewDasHandler() DasHandler {
	return DasHandler{
		DAS:         defaultDAS,
		ARR:         defaultARR,
		SoftDropARR: defaultSoftDropARR,
	}
}

// PressLeft returns true when the press itself should move (initial tap).
func (h *DasHandler) PressLeft() bool {
	// Opposite direction takes over immediately.
	h.right.Release()
	return h.left.Press()
}

func (h *DasHandler) PressRight() bool {
	h.left.Release()
	return h.right.Press()
}

func (h *DasHandler) PressSoftDrop() bool {
	return h.softDrop.Press()
}

func (h *DasHandler) ReleaseLeft()     { h.left.Release() }
func (h *DasHandler) ReleaseRight()    { h.right.Release() }
func (h *DasHandler) ReleaseSoftDrop() { h.softDrop.Release() }

func (h *DasHandler) ReleaseAll() {
	h.left.Release()
	h.right.Release()
	h.softDrop.Release()
}

func (h *DasHandler) HeldLeft() bool     { return h.left.Held() }
func (h *DasHandler) HeldRight() bool    { return h.right.Held() }
func (h *DasHandler) HeldSoftDrop() bool { return h.softDrop.Held() }

// Tick returns the auto-repeat actions accumulated over dt.
func (h *DasHandler) Tick(dt time.Duration) []Action {
	var actions []Action
	for i := h.left.Tick(dt, h.DAS, h.ARR); i > 0; i-- {
		actions = append(actions, ActionMoveLeft)
	}
	for i := h.right.Tick(dt, h.DAS, h.ARR); i > 0; i-- {
		actions = append(actions, ActionMoveRight)
	}
	for i := h.softDrop.Tick(dt, h.DAS, h.SoftDropARR); i > 0; i-- {
		actions = append(actions, ActionSoftDrop)
	}
	return actions
}
