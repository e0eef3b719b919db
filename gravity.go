package main

import (
	"math"
	"time"
)

const softDropFactor = 20.0

// Gravity accumulates elapsed time and emits discrete drop ticks at the
// guideline fall speed for the current level.
type Gravity struct {
	Accumulator  time.Duration
	Level        int
	SoftDropping bool
}

func NewGravity() Gravity {
	return Gravity{}
}

// Interval is the time per cell: (0.8 - level*0.007)^level seconds,
// divided by the soft-drop factor while soft-dropping.
func (g *Gravity) Interval() time.Duration {
	level := float64(g.Level)
	seconds := math.Pow(math.Max(0.8-level*0.007, 0.001), level)
	if g.SoftDropping {
		seconds /= softDropFactor
	}
	return time.Duration(math.Max(seconds, 0.001) * float64(time.Second))
}

// Tick returns the number of cells to drop this frame, capped to bound
// catch-up work after a stall.
func (g *Gravity) Tick(dt time.Duration) int {
	g.Accumulator += dt
	interval := g.Interval()
	drops := 0
	for g.Accumulator >= interval {
		g.Accumulator -= interval
		drops++
	}
	if drops > 20 {
		drops = 20
	}
	return drops
}

func (g *Gravity) Reset() {
	g.Accumulator = 0
}
