package main

import "time"

const (
	lockDelay     = 500 * time.Millisecond
	maxLockResets = 15
)

// LockDelay governs when a grounded piece locks: a countdown that starts
// on grounding, restarts on accepted moves up to a bounded reset count,
// and restores fully when the piece leaves the ground.
type LockDelay struct {
	Timer    time.Duration
	Resets   int
	Grounded bool
	Active   bool
}

func NewLockDelay() LockDelay {
	return LockDelay{Timer: lockDelay}
}

// SetGrounded updates the grounded state. Leaving the ground deactivates
// the countdown and restores the full timer.
func (l *LockDelay) SetGrounded(grounded bool) {
	if grounded && !l.Active {
		l.Active = true
	} else if !grounded {
		l.Active = false
		l.Timer = lockDelay
	}
	l.Grounded = grounded
}

// TryReset restarts the countdown after an accepted move or rotation.
// Rejected once the reset cap is reached.
func (l *LockDelay) TryReset() bool {
	if l.Active && l.Resets < maxLockResets {
		l.Timer = lockDelay
		l.Resets++
		return true
	}
	return false
}

// Tick advances the countdown and reports whether the piece must lock.
func (l *LockDelay) Tick(dt time.Duration) bool {
	if !l.Active {
		return false
	}
	if dt >= l.Timer {
		l.Timer = 0
		return true
	}
	l.Timer -= dt
	return false
}

// Progress is 0 when the countdown starts and 1 when the lock is due.
func (l *LockDelay) Progress() float64 {
	if !l.Active {
		return 0
	}
	return 1 - l.Timer.Seconds()/lockDelay.Seconds()
}

func (l *LockDelay) Reset() {
	l.Timer = lockDelay
	l.Resets = 0
	l.Grounded = false
	l.Active = false
}

func (l *LockDelay) ResetsRemaining() int {
	if l.Resets >= maxLockResets {
		return 0
	}
	return maxLockResets - l.Resets
}
