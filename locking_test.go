package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLockDelayActivatesOnGround(t *testing.T) {
	l := NewLockDelay()
	assert.False(t, l.Tick(time.Second))

	l.SetGrounded(true)
	assert.True(t, l.Active)
	assert.False(t, l.Tick(200*time.Millisecond))
	assert.True(t, l.Tick(300*time.Millisecond))
}

func TestLockDelayRestoresWhenAirborne(t *testing.T) {
	l := NewLockDelay()
	l.SetGrounded(true)
	l.Tick(400 * time.Millisecond)

	l.SetGrounded(false)
	assert.False(t, l.Active)
	assert.Equal(t, lockDelay, l.Timer)

	// Back on the ground the full delay applies again.
	l.SetGrounded(true)
	assert.False(t, l.Tick(400*time.Millisecond))
	assert.True(t, l.Tick(100*time.Millisecond))
}

func TestLockDelayResetCap(t *testing.T) {
	l := NewLockDelay()
	l.SetGrounded(true)
	for i := 0; i < maxLockResets; i++ {
		l.Tick(300 * time.Millisecond)
		assert.True(t, l.TryReset())
	}
	assert.False(t, l.TryReset())
	assert.Equal(t, 0, l.ResetsRemaining())

	// With resets exhausted the countdown runs to completion.
	assert.True(t, l.Tick(lockDelay))
}

func TestLockDelayProgress(t *testing.T) {
	l := NewLockDelay()
	assert.Equal(t, 0.0, l.Progress())
	l.SetGrounded(true)
	l.Tick(250 * time.Millisecond)
	assert.InDelta(t, 0.5, l.Progress(), 0.01)
}
