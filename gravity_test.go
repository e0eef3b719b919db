package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGravityLevelZeroInterval(t *testing.T) {
	g := NewGravity()
	assert.Equal(t, time.Second, g.Interval())
}

func TestGravityIntervalShrinksWithLevel(t *testing.T) {
	g := NewGravity()
	prev := g.Interval()
	for level := 1; level <= 15; level++ {
		g.Level = level
		cur := g.Interval()
		assert.Less(t, cur, prev, "level %d", level)
		prev = cur
	}
}

func TestGravitySoftDropFactor(t *testing.T) {
	g := NewGravity()
	normal := g.Interval()
	g.SoftDropping = true
	assert.Equal(t, normal/20, g.Interval())
}

func TestGravityTickEmitsDrops(t *testing.T) {
	g := NewGravity()
	assert.Equal(t, 0, g.Tick(400*time.Millisecond))
	assert.Equal(t, 1, g.Tick(600*time.Millisecond))
	assert.Equal(t, 2, g.Tick(2*time.Second))
}

func TestGravityTickCapped(t *testing.T) {
	g := NewGravity()
	g.SoftDropping = true
	assert.Equal(t, 20, g.Tick(10*time.Second))
}

func TestGravityReset(t *testing.T) {
	g := NewGravity()
	g.Tick(900 * time.Millisecond)
	g.Reset()
	assert.Equal(t, 0, g.Tick(900*time.Millisecond))
}
