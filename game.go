package main

import (
	"math/rand"
	"time"
)

// Action is one player (or AI) input applied against the game state.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionSoftDrop
	ActionSoftDropRelease
	ActionHardDrop
	ActionRotateCW
	ActionRotateCCW
	ActionRotate180
	ActionHold
)

// TickResult describes what one action or time step accomplished.
type TickResult struct {
	Lines        int
	Clear        ClearType
	PerfectClear bool
	ScoreGained  int
	Attack       int
	Locked       bool
	GameOver     bool
	HardDropped  bool
	Spin         SpinType
}

// EventKind tags entries of the drainable event stream consumed by the
// rendering layer.
type EventKind int

const (
	EventPieceLocked EventKind = iota
	EventLinesClear
	EventHardDrop
	EventSpin
	EventPerfectClear
	EventCombo
	EventBackToBack
	EventGarbageReceived
	EventGameOver
	EventLevelUp
)

type Event struct {
	Kind EventKind
	Rows []int    // EventLinesClear
	N    int      // EventHardDrop cells, EventCombo, EventBackToBack, EventGarbageReceived, EventLevelUp
	Spin SpinType // EventSpin
}

const clearDelay = 200 * time.Millisecond

// Game is the coordinator for a single board: it owns the piece
// lifecycle, timers, scoring, garbage, statistics and the event stream.
// Advance it with HandleAction per input and Update once per frame.
type Game struct {
	Board     Board
	Current   *Piece
	Bag       Bag
	Hold      Hold
	Gravity   Gravity
	LockDelay LockDelay
	Scoring   Scoring
	Garbage   GarbageQueue
	Stats     Stats
	Over      bool
	Started   bool

	rng *rand.Rand

	// Spin detection context: whether the last successful action was a
	// rotation, and its kick offset.
	lastWasRotation bool
	lastKick        Point

	// Line-clear animation: rows held on the board until the timer runs out.
	clearingRows []int
	clearTimer   time.Duration

	events []Event

	// Action text for the UI.
	LastClear      ClearType
	LastClearLines int
	actionTimer    time.Duration
}

func NewGame(rng *rand.Rand) *Game {
	return &Game{
		Bag:       NewBag(rng),
		Hold:      Hold{},
		Gravity:   NewGravity(),
		LockDelay: NewLockDelay(),
		Scoring:   NewScoring(),
		Garbage:   NewGarbageQueue(),
		rng:       rng,
	}
}

// Start resets everything and spawns the first piece.
func (g *Game) Start() {
	g.Board = NewBoard()
	g.Bag = NewBag(g.rng)
	g.Hold.Reset()
	g.Gravity = NewGravity()
	g.LockDelay.Reset()
	g.Scoring.Reset()
	g.Garbage.Clear()
	g.Stats.Reset()
	g.Over = false
	g.Started = true
	g.Current = nil
	g.clearingRows = nil
	g.events = nil
	g.LastClear = ClearNone
	g.lastWasRotation = false
	g.lastKick = Point{}
	g.actionTimer = 0
	g.spawnPiece()
}

func (g *Game) spawnPiece() {
	piece := NewPiece(g.Bag.Next(g.rng))
	if !g.Board.Fits(piece) {
		g.Over = true
		g.events = append(g.events, Event{Kind: EventGameOver})
		return
	}
	g.Current = &piece
	g.LockDelay.Reset()
	g.Gravity.Reset()
	g.lastWasRotation = false
	g.lastKick = Point{}
}

// HandleAction applies one input. Illegal transitions are silent no-ops.
func (g *Game) HandleAction(action Action) TickResult {
	if g.Over || !g.Started {
		return TickResult{}
	}
	if g.clearingRows != nil {
		return TickResult{}
	}

	g.Stats.Inputs++

	switch action {
	case ActionMoveLeft:
		g.doShift(tryMoveLeft)
	case ActionMoveRight:
		g.doShift(tryMoveRight)
	case ActionSoftDrop:
		g.doSoftDrop()
	case ActionSoftDropRelease:
		g.Gravity.SoftDropping = false
	case ActionHardDrop:
		return g.doHardDrop()
	case ActionRotateCW:
		g.doRotate(func(r Rotation) Rotation { return r.CW() })
	case ActionRotateCCW:
		g.doRotate(func(r Rotation) Rotation { return r.CCW() })
	case ActionRotate180:
		g.doRotate(func(r Rotation) Rotation { return r.Flip() })
	case ActionHold:
		g.doHold()
	}
	return TickResult{}
}

// Update advances all timers by dt. Call once per frame after actions.
func (g *Game) Update(dt time.Duration) TickResult {
	if g.Over || !g.Started {
		return TickResult{}
	}

	g.Stats.Time += dt

	if g.actionTimer > 0 {
		g.actionTimer -= dt
		if g.actionTimer <= 0 {
			g.actionTimer = 0
			g.LastClear = ClearNone
		}
	}

	// Finish the line-clear animation before anything else moves.
	if g.clearingRows != nil {
		if dt >= g.clearTimer {
			rows := g.clearingRows
			g.clearingRows = nil
			g.Board.ClearLines(rows)
			g.spawnPiece()
		} else {
			g.clearTimer -= dt
		}
		return TickResult{}
	}

	if g.Current != nil {
		drops := g.Gravity.Tick(dt)
		for i := 0; i < drops; i++ {
			if !tryMoveDown(&g.Board, g.Current) {
				break
			}
			g.lastWasRotation = false
			if g.Gravity.SoftDropping {
				g.Scoring.AddSoftDrop(1)
			}
		}

		grounded := isGrounded(&g.Board, *g.Current)
		g.LockDelay.SetGrounded(grounded)
		if grounded && g.LockDelay.Tick(dt) {
			return g.lockCurrent()
		}
	}

	ready := g.Garbage.Tick(dt)
	if ready > 0 {
		for i := 0; i < ready; i++ {
			g.Board.AddGarbage(1, g.Garbage.GapColumn(g.rng))
		}
		g.Stats.GarbageReceived += ready
		g.events = append(g.events, Event{Kind: EventGarbageReceived, N: ready})

		// Rising garbage can push the stack into the falling piece.
		if g.Current != nil && !g.Board.Fits(*g.Current) {
			g.Over = true
			g.events = append(g.events, Event{Kind: EventGameOver})
		}
	}

	return TickResult{}
}

func (g *Game) doShift(move func(*Board, *Piece) bool) {
	if g.Current == nil {
		return
	}
	if move(&g.Board, g.Current) {
		g.lastWasRotation = false
		if isGrounded(&g.Board, *g.Current) {
			g.LockDelay.TryReset()
		}
	}
}

func (g *Game) doSoftDrop() {
	g.Gravity.SoftDropping = true
	if g.Current == nil {
		return
	}
	if tryMoveDown(&g.Board, g.Current) {
		g.lastWasRotation = false
		g.Scoring.AddSoftDrop(1)
		g.Gravity.Reset()
	}
}

func (g *Game) doHardDrop() TickResult {
	if g.Current == nil {
		return TickResult{}
	}
	cells := hardDrop(&g.Board, g.Current)
	g.Scoring.AddHardDrop(cells)
	g.events = append(g.events, Event{Kind: EventHardDrop, N: cells})
	result := g.lockCurrent()
	result.HardDropped = true
	return result
}

func (g *Game) doRotate(turn func(Rotation) Rotation) {
	if g.Current == nil {
		return
	}
	target := turn(g.Current.Rotation)
	if kick, ok := tryRotate(&g.Board, g.Current, target); ok {
		g.lastWasRotation = true
		g.lastKick = kick
		if isGrounded(&g.Board, *g.Current) {
			g.LockDelay.TryReset()
		}
	}
}

func (g *Game) doHold() {
	if g.Current == nil {
		return
	}
	current := g.Current.Kind
	prev, hadPrev, ok := g.Hold.Take(current)
	if !ok {
		return
	}
	if hadPrev {
		piece := NewPiece(prev)
		if !g.Board.Fits(piece) {
			// Roll the whole attempt back: held piece and used flag restored.
			g.Hold.Kind = prev
			g.Hold.UsedThisTurn = false
			return
		}
		g.Current = &piece
	} else {
		g.Current = nil
		g.spawnPiece()
	}
	g.LockDelay.Reset()
	g.Gravity.Reset()
	g.lastWasRotation = false
	g.lastKick = Point{}
}

// lockCurrent burns the piece in, classifies the result and either starts
// the line-clear animation or spawns the next piece.
func (g *Game) lockCurrent() TickResult {
	if g.Current == nil {
		return TickResult{}
	}
	piece := *g.Current
	g.Current = nil

	spin := detectSpin(&g.Board, piece, g.lastWasRotation, g.lastKick)

	g.Board.Lock(piece)
	g.Stats.PiecesPlaced++
	g.Hold.ResetTurn()
	g.events = append(g.events, Event{Kind: EventPieceLocked})

	// Lockout: the whole piece rests above the visible region.
	allAbove := true
	for _, c := range piece.Cells() {
		if c.Y < visibleHeight {
			allAbove = false
			break
		}
	}
	if allAbove {
		g.Over = true
		g.events = append(g.events, Event{Kind: EventGameOver})
		return TickResult{Locked: true, GameOver: true}
	}

	fullLines := g.Board.FullLines()
	lines := len(fullLines)
	g.Stats.GarbageCleared += g.Board.GarbageInRows(fullLines)

	clear := classifyClear(lines, spin)
	g.countClear(clear)

	perfect := false
	if lines > 0 {
		after := g.Board
		after.ClearLines(fullLines)
		perfect = after.Empty()
	}
	if perfect {
		g.Stats.PerfectClears++
		g.events = append(g.events, Event{Kind: EventPerfectClear})
	}

	prevLevel := g.Scoring.Level
	scoreGained, attack := g.Scoring.ProcessClear(clear, lines, perfect)
	g.Stats.Score = g.Scoring.Score
	g.Stats.Level = g.Scoring.Level
	g.Stats.LinesCleared = g.Scoring.Lines

	if g.Scoring.Combo > g.Stats.MaxCombo {
		g.Stats.MaxCombo = g.Scoring.Combo
	}
	if g.Scoring.BackToBack > g.Stats.MaxBackToBack {
		g.Stats.MaxBackToBack = g.Scoring.BackToBack
	}

	// Attack first cancels incoming garbage; only the surplus is sent.
	remaining := attack
	if attack > 0 {
		remaining = g.Garbage.Cancel(attack)
	}
	g.Stats.AttackSent += remaining

	g.Gravity.Level = g.Scoring.Level
	if g.Scoring.Level > prevLevel {
		g.events = append(g.events, Event{Kind: EventLevelUp, N: g.Scoring.Level})
	}

	if spin != SpinNone {
		g.events = append(g.events, Event{Kind: EventSpin, Spin: spin})
	}
	if g.Scoring.Combo > 0 {
		g.events = append(g.events, Event{Kind: EventCombo, N: g.Scoring.Combo})
	}
	if g.Scoring.BackToBack > 0 {
		g.events = append(g.events, Event{Kind: EventBackToBack, N: g.Scoring.BackToBack})
	}
	if lines > 0 {
		rows := make([]int, len(fullLines))
		copy(rows, fullLines)
		g.events = append(g.events, Event{Kind: EventLinesClear, Rows: rows})
	}

	if clear != ClearNone {
		g.LastClear = clear
		g.LastClearLines = lines
		g.actionTimer = 2 * time.Second
	}

	if lines > 0 {
		g.clearingRows = fullLines
		g.clearTimer = clearDelay
	} else {
		g.spawnPiece()
	}

	return TickResult{
		Lines:        lines,
		Clear:        clear,
		PerfectClear: perfect,
		ScoreGained:  scoreGained,
		Attack:       remaining,
		Locked:       true,
		GameOver:     g.Over,
		Spin:         spin,
	}
}

func (g *Game) countClear(clear ClearType) {
	switch clear {
	case ClearSingle:
		g.Stats.Singles++
	case ClearDouble:
		g.Stats.Doubles++
	case ClearTriple:
		g.Stats.Triples++
	case ClearQuad:
		g.Stats.Quads++
	case ClearTSpin, ClearMiniTSpin:
		g.Stats.TSpins++
	case ClearTSpinSingle:
		g.Stats.TSpinSingles++
		g.Stats.TSpins++
	case ClearTSpinDouble:
		g.Stats.TSpinDoubles++
		g.Stats.TSpins++
	case ClearTSpinTriple:
		g.Stats.TSpinTriples++
		g.Stats.TSpins++
	case ClearMiniTSpinSingle, ClearMiniTSpinDouble:
		g.Stats.MiniTSpins++
	case ClearAllSpin:
		g.Stats.AllSpins++
	}
}

// Preview returns the next pieces without consuming the bag.
func (g *Game) Preview() []PieceKind {
	return g.Bag.Peek(3)
}

// GhostY returns the current piece's drop row.
func (g *Game) GhostY() (int, bool) {
	if g.Current == nil {
		return 0, false
	}
	return ghostY(&g.Board, *g.Current), true
}

// Clearing reports the rows held by the line-clear animation, if active.
func (g *Game) Clearing() ([]int, bool) {
	return g.clearingRows, g.clearingRows != nil
}

// Danger reports whether the stack is close to the top of the visible area.
func (g *Game) Danger() bool {
	return g.Board.MaxHeight() >= visibleHeight-4
}

// DrainEvents returns and clears the pending event stream.
func (g *Game) DrainEvents() []Event {
	events := g.events
	g.events = nil
	return events
}
