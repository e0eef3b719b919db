package main

import (
	"fmt"
	"math/rand"
	"time"
)

// Outcome is the end state of a finished run. Score-chasing modes stay
// OutcomeNone; versus records a winner.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
)

// GameResult is the summary handed to the game-over screen.
type GameResult struct {
	ModeName     string
	PrimaryLabel string
	PrimaryValue string
	NewHighScore bool
	Stats        Stats
	Outcome      Outcome
}

// GameMode gives each mode its name, win condition and sidebar text.
type GameMode interface {
	Name() string
	Start(g *Game)
	Complete(g *Game) (GameResult, bool)
	InfoText(g *Game) string
}

type EndlessMode struct{}

func NewEndlessMode() *EndlessMode { return &EndlessMode{} }

func (m *EndlessMode) Name() string  { return "ENDLESS" }
func (m *EndlessMode) Start(g *Game) {}

func (m *EndlessMode) Complete(g *Game) (GameResult, bool) {
	if !g.Over {
		return GameResult{}, false
	}
	return GameResult{
		ModeName:     "Endless Marathon",
		PrimaryLabel: "SCORE",
		PrimaryValue: formatNumber(g.Scoring.Score),
		Stats:        g.Stats,
	}, true
}

func (m *EndlessMode) InfoText(g *Game) string { return "" }

type SprintMode struct {
	Target int
}

func NewSprintMode() *SprintMode { return &SprintMode{Target: 40} }

func (m *SprintMode) Name() string  { return "SPRINT" }
func (m *SprintMode) Start(g *Game) {}

func (m *SprintMode) Complete(g *Game) (GameResult, bool) {
	if !g.Over && g.Scoring.Lines < m.Target {
		return GameResult{}, false
	}
	return GameResult{
		ModeName:     fmt.Sprintf("%d-Line Sprint", m.Target),
		PrimaryLabel: "TIME",
		PrimaryValue: g.Stats.FormatTime(),
		Stats:        g.Stats,
	}, true
}

// Won reports whether the sprint actually reached its target rather than
// topping out.
func (m *SprintMode) Won(g *Game) bool {
	return g.Scoring.Lines >= m.Target
}

func (m *SprintMode) InfoText(g *Game) string {
	remaining := m.Target - g.Scoring.Lines
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%d lines left", remaining)
}

// VersusMode runs a second Game driven by an AIPlayer. The app loop
// advances the opponent with UpdateAI and feeds its attack back through
// ReceiveAttack.
type VersusMode struct {
	AI         *AIPlayer
	AIGame     *Game
	Difficulty Difficulty
}

func NewVersusMode(difficulty Difficulty, rng *rand.Rand) *VersusMode {
	return &VersusMode{
		AI:         NewAIPlayer(difficulty, rng),
		AIGame:     NewGame(rng),
		Difficulty: difficulty,
	}
}

func (m *VersusMode) Name() string { return "VERSUS" }

func (m *VersusMode) Start(g *Game) {
	m.AIGame.Start()
	m.AI.Reset()
}

// UpdateAI advances the opponent one frame and returns the attack lines
// it sent toward the player during that frame.
func (m *VersusMode) UpdateAI(dt time.Duration) int {
	if m.AIGame.Over {
		return 0
	}
	for _, action := range m.AI.Think(m.AIGame, dt) {
		m.AIGame.HandleAction(action)
	}
	m.AIGame.Update(dt)
	m.AIGame.DrainEvents()
	return m.AI.CheckAttack(m.AIGame)
}

// ReceiveAttack queues player damage on the opponent's board.
func (m *VersusMode) ReceiveAttack(lines int) {
	if lines > 0 && !m.AIGame.Over {
		m.AIGame.Garbage.Add(lines)
	}
}

func (m *VersusMode) Complete(g *Game) (GameResult, bool) {
	playerDead := g.Over
	aiDead := m.AIGame.Over
	if !playerDead && !aiDead {
		return GameResult{}, false
	}

	won := aiDead && !playerDead
	label := "DEFEAT"
	outcome := OutcomeLoss
	if won {
		label = "VICTORY"
		outcome = OutcomeWin
	}
	return GameResult{
		ModeName:     fmt.Sprintf("Versus AI (%s)", m.Difficulty.Name()),
		PrimaryLabel: label,
		PrimaryValue: fmt.Sprintf("ATK: %d | DMG: %d", g.Stats.AttackSent, g.Stats.GarbageReceived),
		Stats:        g.Stats,
		Outcome:      outcome,
	}, true
}

func (m *VersusMode) InfoText(g *Game) string {
	return fmt.Sprintf("ATK:%d RCV:%d", g.Stats.AttackSent, g.Stats.GarbageReceived)
}
