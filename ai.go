package main

import (
	"math/rand"
	"time"
)

// AIPlayer drives one Game through the same Action interface a human
// uses. Call Think once per frame and feed the returned actions back
// into the game.
type AIPlayer struct {
	Difficulty Difficulty

	target     *Placement
	thinkTimer time.Duration
	moveAccum  time.Duration

	lastAttackSent int

	rng *rand.Rand
}

func NewAIPlayer(difficulty Difficulty, rng *rand.Rand) *AIPlayer {
	return &AIPlayer{Difficulty: difficulty, rng: rng}
}

// Think decides the actions for this frame.
func (a *AIPlayer) Think(g *Game, dt time.Duration) []Action {
	if g.Over || g.Current == nil {
		a.target = nil
		return nil
	}
	piece := *g.Current

	if a.target == nil {
		weights := a.Difficulty.Weights()
		var held *PieceKind
		if g.Hold.Has {
			kind := g.Hold.Kind
			held = &kind
		}
		best, have := findBestPlacement(&g.Board, piece.Kind, held, weights, a.Difficulty.UsesHold())

		if have && a.rng.Float64() < a.Difficulty.ErrorRate() {
			placements := generatePlacements(&g.Board, piece.Kind, weights, false)
			if len(placements) > 1 {
				limit := len(placements)
				if limit > 5 {
					limit = 5
				}
				best = placements[1+a.rng.Intn(limit-1)]
			}
		}

		if have {
			a.target = &best
		}
		a.thinkTimer = a.Difficulty.ThinkTime()
		a.moveAccum = 0
	}

	if a.thinkTimer > 0 {
		a.thinkTimer -= dt
		if a.thinkTimer < 0 {
			a.thinkTimer = 0
		}
		return nil
	}

	if a.target == nil {
		// No legal landing found, bail out with the current piece.
		return []Action{ActionHardDrop}
	}
	target := *a.target

	// Hold swaps the piece, so the plan has to be rebuilt afterwards.
	if target.UseHold && !g.Hold.UsedThisTurn {
		a.target = nil
		return []Action{ActionHold}
	}

	moveInterval := time.Duration(float64(time.Second) / a.Difficulty.MoveSpeed())
	a.moveAccum += dt
	if a.moveAccum < moveInterval {
		return nil
	}
	a.moveAccum -= moveInterval

	if piece.Rotation != target.Rotation {
		cwDist := (int(target.Rotation) - int(piece.Rotation) + 4) % 4
		ccwDist := (int(piece.Rotation) - int(target.Rotation) + 4) % 4
		switch {
		case cwDist == 2:
			return []Action{ActionRotate180}
		case cwDist <= ccwDist:
			return []Action{ActionRotateCW}
		default:
			return []Action{ActionRotateCCW}
		}
	}

	if piece.X != target.X {
		if piece.X < target.X {
			return []Action{ActionMoveRight}
		}
		return []Action{ActionMoveLeft}
	}

	a.target = nil
	return []Action{ActionHardDrop}
}

// CheckAttack returns the attack damage sent since the previous call.
func (a *AIPlayer) CheckAttack(g *Game) int {
	current := g.Stats.AttackSent
	delta := current - a.lastAttackSent
	if delta < 0 {
		delta = 0
	}
	a.lastAttackSent = current
	return delta
}

func (a *AIPlayer) Reset() {
	a.target = nil
	a.thinkTimer = 0
	a.moveAccum = 0
	a.lastAttackSent = 0
}
