package main

import (
	"math/rand"
	"time"
)

type garbageBatch struct {
	lines     int
	remaining time.Duration
}

// GarbageQueue holds incoming garbage batches while they travel toward the
// board. Attack cancels pending batches oldest-first before anything is
// sent onward.
type GarbageQueue struct {
	queue []garbageBatch
	// TravelTime applies to newly added batches.
	TravelTime time.Duration
	// Messiness is the per-line chance of picking a new gap column.
	Messiness float64
	lastGap   int
}

func NewGarbageQueue() GarbageQueue {
	return GarbageQueue{
		TravelTime: 500 * time.Millisecond,
		Messiness:  0.3,
		lastGap:    4,
	}
}

func (q *GarbageQueue) Add(lines int) {
	if lines > 0 {
		q.queue = append(q.queue, garbageBatch{lines: lines, remaining: q.TravelTime})
	}
}

// Cancel consumes attack credit against pending garbage, oldest batch
// first, and returns the surplus that becomes outgoing attack.
func (q *GarbageQueue) Cancel(attack int) int {
	for attack > 0 && len(q.queue) > 0 {
		batch := &q.queue[0]
		if attack >= batch.lines {
			attack -= batch.lines
			q.queue = q.queue[1:]
		} else {
			batch.lines -= attack
			attack = 0
		}
	}
	return attack
}

// Tick advances all travel timers and returns the lines ready to deploy.
func (q *GarbageQueue) Tick(dt time.Duration) int {
	ready := 0
	remaining := q.queue[:0]
	for _, batch := range q.queue {
		if dt >= batch.remaining {
			ready += batch.lines
			continue
		}
		batch.remaining -= dt
		remaining = append(remaining, batch)
	}
	q.queue = remaining
	return ready
}

// GapColumn picks the empty column for the next garbage line. Mostly the
// previous column, re-rolled with probability Messiness.
func (q *GarbageQueue) GapColumn(rng *rand.Rand) int {
	if rng.Float64() < q.Messiness {
		q.lastGap = rng.Intn(boardWidth)
	}
	return q.lastGap
}

func (q *GarbageQueue) Pending() int {
	total := 0
	for _, batch := range q.queue {
		total += batch.lines
	}
	return total
}

func (q *GarbageQueue) Clear() {
	q.queue = nil
}
