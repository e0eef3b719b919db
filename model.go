package main

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type Screen int

const (
	screenMenu Screen = iota
	screenDifficulty
	screenGame
	screenGameOver
	screenScores
	screenConfig
)

type frameMsg struct{}
type soundMsg struct{}
type syncTickMsg struct{}
type countdownTickMsg struct{}

type scoresLoadedMsg struct {
	scores []EndlessEntry
	err    error
}

type scoreUploadedMsg struct {
	err error
}

const (
	frameInterval = 16 * time.Millisecond
	maxFrameDelta = 100 * time.Millisecond

	// Terminals deliver key repeats but no release events; a held key is
	// inferred released when its repeats stop arriving.
	keyHoldTimeout = 150 * time.Millisecond
)

type Model struct {
	screen Screen
	width  int
	height int

	menuIndex       int
	difficultyIndex int
	configIndex     int
	scoresTab       int
	themeIndex      int

	config Config
	store  HighScoreStore

	rng    *rand.Rand
	game   *Game
	mode   GameMode
	versus *VersusMode
	das    DasHandler

	lastFrame        time.Time
	paused           bool
	startCount       int
	lastPlayerAttack int

	// Hard-drop streak shown for a few frames behind the landed piece.
	trace      map[Point]struct{}
	traceTimer time.Duration

	result    GameResult
	hasResult bool

	lastLeftAt  time.Time
	lastRightAt time.Time
	lastDownAt  time.Time

	sound        *SoundEngine
	sync         *ScoreSync
	remoteScores []EndlessEntry
	syncWarning  string
	syncLoading  bool
	syncDots     int
}

func NewModel() Model {
	config, _ := loadConfig()
	index := themeIndexByName(config.Theme)
	if index < 0 {
		index = 0
		config.Theme = themes[index].Name
	}
	sound := NewSoundEngine(config.Sound)
	sound.SetVolume(float64(config.Volume) / 100)
	m := Model{
		screen:     screenMenu,
		config:     config,
		store:      loadHighScores(),
		themeIndex: index,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		sound:      sound,
		sync:       NewScoreSyncFromEnv(),
	}
	m.das = dasFromConfig(config)
	if d := config.Difficulty; d >= 0 && d < len(allDifficulties) {
		m.difficultyIndex = d
	}
	return m
}

func dasFromConfig(config Config) DasHandler {
	das := NewDasHandler()
	das.DAS = time.Duration(config.DasMs) * time.Millisecond
	das.ARR = time.Duration(config.ArrMs) * time.Millisecond
	das.SoftDropARR = time.Duration(config.SoftDropArrMs) * time.Millisecond
	return das
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		return m.updateFrame()
	case countdownTickMsg:
		if m.screen != screenGame || m.startCount <= 0 {
			return m, nil
		}
		m.startCount--
		if m.startCount > 0 {
			return m, countdownTickCmd()
		}
		m.lastFrame = time.Now()
		if m.config.Sound {
			return m, tea.Batch(playSound(m.sound, SoundMenuSelect), frameCmd())
		}
		return m, frameCmd()
	case soundMsg:
		return m, nil
	case syncTickMsg:
		if m.syncLoading {
			m.syncDots = (m.syncDots + 1) % 4
			return m, syncTickCmd()
		}
		return m, nil
	case scoresLoadedMsg:
		m.syncLoading = false
		if msg.err != nil {
			DebugWarnf("scores fetch error: %v", msg.err)
			m.syncWarning = "Offline: scores not synced."
			return m, nil
		}
		m.syncWarning = ""
		m.remoteScores = msg.scores
		return m, nil
	case scoreUploadedMsg:
		m.syncLoading = false
		if msg.err != nil {
			DebugWarnf("score upload error: %v", msg.err)
			m.syncWarning = "Offline: scores not synced."
			return m, nil
		}
		m.syncWarning = ""
		return m, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		switch m.screen {
		case screenMenu:
			cmd = m.updateMenu(msg)
		case screenDifficulty:
			cmd = m.updateDifficulty(msg)
		case screenGame:
			cmd = m.updateGame(msg)
		case screenGameOver:
			cmd = m.updateGameOver(msg)
		case screenScores:
			cmd = m.updateScores(msg)
		case screenConfig:
			cmd = m.updateConfig(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return viewMenu(m)
	case screenDifficulty:
		return viewDifficulty(m)
	case screenGame:
		return viewGame(m)
	case screenGameOver:
		return viewGameOver(m)
	case screenScores:
		return viewScores(m)
	case screenConfig:
		return viewConfig(m)
	default:
		return ""
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func countdownTickCmd() tea.Cmd {
	return tea.Tick(380*time.Millisecond, func(time.Time) tea.Msg { return countdownTickMsg{} })
}

func syncTickCmd() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg { return syncTickMsg{} })
}

func playSound(engine *SoundEngine, event SoundEvent) tea.Cmd {
	return func() tea.Msg {
		if engine != nil {
			engine.Play(event)
		}
		return soundMsg{}
	}
}

func playComboSound(engine *SoundEngine, combo int) tea.Cmd {
	return func() tea.Msg {
		if engine != nil {
			engine.PlayCombo(combo)
		}
		return soundMsg{}
	}
}

// updateFrame is the fixed-rate game loop: release stale held keys, run
// auto-repeat, advance both boards, route attacks, then check completion.
func (m Model) updateFrame() (tea.Model, tea.Cmd) {
	if m.screen != screenGame {
		return m, nil
	}
	now := time.Now()
	dt := now.Sub(m.lastFrame)
	m.lastFrame = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	if m.paused || m.startCount > 0 {
		return m, frameCmd()
	}

	if m.traceTimer > 0 {
		m.traceTimer -= dt
		if m.traceTimer <= 0 {
			m.trace = nil
		}
	}

	m.releaseStaleKeys(now)
	for _, action := range m.das.Tick(dt) {
		m.game.HandleAction(action)
	}

	m.game.Update(dt)

	if m.versus != nil {
		if attack := m.versus.UpdateAI(dt); attack > 0 {
			m.game.Garbage.Add(attack)
		}
		if delta := m.game.Stats.AttackSent - m.lastPlayerAttack; delta > 0 {
			m.versus.ReceiveAttack(delta)
		}
		m.lastPlayerAttack = m.game.Stats.AttackSent
	}

	cmds := []tea.Cmd{frameCmd()}
	cmds = append(cmds, m.eventSounds()...)

	if result, done := m.mode.Complete(m.game); done {
		m.finishGame(result)
		var after []tea.Cmd
		for _, c := range cmds[1:] {
			after = append(after, c)
		}
		if m.result.ModeName == "Endless Marathon" && m.sync.Enabled() {
			m.syncLoading = true
			m.syncDots = 0
			entry := EndlessEntry{
				Score: m.game.Scoring.Score,
				Level: m.game.Scoring.Level,
				Lines: m.game.Scoring.Lines,
				When:  scoreWhen(),
			}
			after = append(after, m.sync.UploadScoreCmd(entry), syncTickCmd())
		}
		if len(after) == 0 {
			return m, nil
		}
		return m, tea.Batch(after...)
	}

	return m, tea.Batch(cmds...)
}

// captureDropTrace records the cells the piece is about to fall through
// so the renderer can flash a streak behind the hard drop.
func (m *Model) captureDropTrace() {
	if m.game == nil || m.game.Current == nil {
		return
	}
	piece := *m.game.Current
	cur := piece.Cells()
	ghost := ghostCells(&m.game.Board, piece)
	trace := make(map[Point]struct{})
	for i := range cur {
		for y := ghost[i].Y; y <= cur[i].Y; y++ {
			trace[Point{X: cur[i].X, Y: y}] = struct{}{}
		}
	}
	m.trace = trace
	m.traceTimer = 150 * time.Millisecond
}

func (m *Model) releaseStaleKeys(now time.Time) {
	if m.das.HeldLeft() && now.Sub(m.lastLeftAt) > keyHoldTimeout {
		m.das.ReleaseLeft()
	}
	if m.das.HeldRight() && now.Sub(m.lastRightAt) > keyHoldTimeout {
		m.das.ReleaseRight()
	}
	if m.das.HeldSoftDrop() && now.Sub(m.lastDownAt) > keyHoldTimeout {
		m.das.ReleaseSoftDrop()
		m.game.HandleAction(ActionSoftDropRelease)
	}
}

// eventSounds maps the frame's game events to sound commands.
func (m *Model) eventSounds() []tea.Cmd {
	events := m.game.DrainEvents()
	if !m.config.Sound {
		return nil
	}
	var cmds []tea.Cmd
	locked := false
	cleared := 0
	spun := false
	for _, ev := range events {
		switch ev.Kind {
		case EventPieceLocked:
			locked = true
		case EventLinesClear:
			cleared = len(ev.Rows)
		case EventSpin:
			spun = true
		case EventCombo:
			if ev.N > 1 {
				cmds = append(cmds, playComboSound(m.sound, ev.N))
			}
		case EventGarbageReceived:
			cmds = append(cmds, playSound(m.sound, SoundGarbage))
		case EventLevelUp:
			cmds = append(cmds, playSound(m.sound, SoundLevelUp))
		case EventGameOver:
			cmds = append(cmds, playSound(m.sound, SoundGameOver))
		}
	}
	switch {
	case spun:
		cmds = append(cmds, playSound(m.sound, SoundTSpin))
	case cleared >= 4:
		cmds = append(cmds, playSound(m.sound, SoundLine4))
	case cleared == 3:
		cmds = append(cmds, playSound(m.sound, SoundLine3))
	case cleared == 2:
		cmds = append(cmds, playSound(m.sound, SoundLine2))
	case cleared == 1:
		cmds = append(cmds, playSound(m.sound, SoundLine1))
	case locked:
		cmds = append(cmds, playSound(m.sound, SoundLock))
	}
	return cmds
}

func (m *Model) finishGame(result GameResult) {
	timeMs := m.game.Stats.Time.Milliseconds()
	switch mode := m.mode.(type) {
	case *SprintMode:
		if mode.Won(m.game) {
			result.NewHighScore = m.store.AddSprint(timeMs, m.game.Scoring.Lines, m.game.Stats.PiecesPlaced)
		}
	case *EndlessMode:
		result.NewHighScore = m.store.AddEndless(m.game.Scoring.Score, m.game.Scoring.Level, m.game.Scoring.Lines)
	case *VersusMode:
		result.NewHighScore = m.store.AddVersus(result.Outcome == OutcomeWin, mode.Difficulty.Name(), timeMs, m.game.Stats.AttackSent)
	}
	if err := m.store.Save(); err != nil {
		DebugWarnf("high score save error: %v", err)
	}
	m.result = result
	m.hasResult = true
	m.screen = screenGameOver
}

func (m *Model) startGame(mode GameMode) tea.Cmd {
	m.game = NewGame(m.rng)
	m.mode = mode
	m.versus = nil
	if versus, ok := mode.(*VersusMode); ok {
		m.versus = versus
	}
	m.das = dasFromConfig(m.config)
	m.paused = false
	m.hasResult = false
	m.lastPlayerAttack = 0
	m.trace = nil
	m.traceTimer = 0
	m.game.Start()
	mode.Start(m.game)
	m.screen = screenGame
	m.startCount = 2
	return countdownTickCmd()
}

var menuItems = []string{
	"Endless Marathon",
	"40-Line Sprint",
	"Versus AI",
	"High Scores",
	"Config",
	"Quit",
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch msg.String() {
	case "up", "k":
		if m.menuIndex > 0 {
			m.menuIndex--
			if m.config.Sound {
				cmd = playSound(m.sound, SoundMenuMove)
			}
		}
	case "down", "j":
		if m.menuIndex < len(menuItems)-1 {
			m.menuIndex++
			if m.config.Sound {
				cmd = playSound(m.sound, SoundMenuMove)
			}
		}
	case "enter":
		if m.config.Sound {
			cmd = playSound(m.sound, SoundMenuSelect)
		}
		switch m.menuIndex {
		case 0:
			return tea.Batch(cmd, m.startGame(NewEndlessMode()))
		case 1:
			return tea.Batch(cmd, m.startGame(NewSprintMode()))
		case 2:
			m.screen = screenDifficulty
			return cmd
		case 3:
			m.screen = screenScores
			if m.sync.Enabled() {
				m.syncLoading = true
				m.syncDots = 0
				return tea.Batch(cmd, m.sync.FetchScoresCmd(), syncTickCmd())
			}
			return cmd
		case 4:
			m.screen = screenConfig
			return cmd
		case 5:
			return tea.Quit
		}
	case "q", "esc", "ctrl+c":
		return tea.Quit
	}
	return cmd
}

func (m *Model) updateDifficulty(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch msg.String() {
	case "up", "k":
		if m.difficultyIndex > 0 {
			m.difficultyIndex--
			if m.config.Sound {
				cmd = playSound(m.sound, SoundMenuMove)
			}
		}
	case "down", "j":
		if m.difficultyIndex < len(allDifficulties)-1 {
			m.difficultyIndex++
			if m.config.Sound {
				cmd = playSound(m.sound, SoundMenuMove)
			}
		}
	case "enter":
		m.config.Difficulty = m.difficultyIndex
		_ = saveConfig(m.config)
		if m.config.Sound {
			cmd = playSound(m.sound, SoundMenuSelect)
		}
		difficulty := allDifficulties[m.difficultyIndex]
		return tea.Batch(cmd, m.startGame(NewVersusMode(difficulty, m.rng)))
	case "q", "esc":
		m.screen = screenMenu
	}
	return cmd
}

func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	if m.startCount > 0 {
		if key := msg.String(); key == "q" || key == "esc" {
			m.screen = screenMenu
		}
		return nil
	}

	now := time.Now()
	switch msg.String() {
	case "left", "h":
		m.lastLeftAt = now
		if m.das.PressLeft() {
			m.game.HandleAction(ActionMoveLeft)
			if m.config.Sound {
				return playSound(m.sound, SoundMove)
			}
		}
	case "right", "l":
		m.lastRightAt = now
		if m.das.PressRight() {
			m.game.HandleAction(ActionMoveRight)
			if m.config.Sound {
				return playSound(m.sound, SoundMove)
			}
		}
	case "down", "j":
		m.lastDownAt = now
		if m.das.PressSoftDrop() {
			m.game.HandleAction(ActionSoftDrop)
		}
	case " ":
		m.captureDropTrace()
		m.game.HandleAction(ActionHardDrop)
		if m.config.Sound {
			return playSound(m.sound, SoundDrop)
		}
	case "up", "x":
		m.game.HandleAction(ActionRotateCW)
		if m.config.Sound {
			return playSound(m.sound, SoundRotate)
		}
	case "z":
		m.game.HandleAction(ActionRotateCCW)
		if m.config.Sound {
			return playSound(m.sound, SoundRotate)
		}
	case "a":
		m.game.HandleAction(ActionRotate180)
		if m.config.Sound {
			return playSound(m.sound, SoundRotate)
		}
	case "c":
		m.game.HandleAction(ActionHold)
		if m.config.Sound {
			return playSound(m.sound, SoundHold)
		}
	case "p":
		m.paused = !m.paused
		m.das.ReleaseAll()
	case "q", "esc":
		m.das.ReleaseAll()
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) updateGameOver(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "q", "esc":
		m.screen = screenMenu
		if m.config.Sound {
			return playSound(m.sound, SoundMenuSelect)
		}
	case "r":
		switch mode := m.mode.(type) {
		case *SprintMode:
			return m.startGame(NewSprintMode())
		case *VersusMode:
			return m.startGame(NewVersusMode(mode.Difficulty, m.rng))
		default:
			return m.startGame(NewEndlessMode())
		}
	}
	return nil
}

var scoresTabs = []string{"Sprint", "Endless", "Versus"}

func (m *Model) updateScores(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		if m.scoresTab > 0 {
			m.scoresTab--
		}
	case "right", "l", "tab":
		if m.scoresTab < len(scoresTabs)-1 {
			m.scoresTab++
		}
	case "q", "esc", "enter":
		m.screen = screenMenu
		if m.config.Sound {
			return playSound(m.sound, SoundMenuSelect)
		}
	}
	return nil
}

var configItems = []string{
	"Sound Effects",
	"Volume",
	"Theme",
	"DAS Delay",
	"ARR Delay",
	"Soft Drop ARR",
}

func (m *Model) updateConfig(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.configIndex > 0 {
			m.configIndex--
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "down", "j":
		if m.configIndex < len(configItems)-1 {
			m.configIndex++
			if m.config.Sound {
				return playSound(m.sound, SoundMenuMove)
			}
		}
	case "enter":
		if m.configIndex == 0 {
			m.config.Sound = !m.config.Sound
			if m.sound != nil {
				m.sound.SetEnabled(m.config.Sound)
			}
			_ = saveConfig(m.config)
			if m.config.Sound {
				return playSound(m.sound, SoundMenuSelect)
			}
		}
	case "left", "h":
		return m.adjustConfig(-1)
	case "right", "l":
		return m.adjustConfig(1)
	case "q", "esc":
		m.screen = screenMenu
	}
	return nil
}

func (m *Model) adjustConfig(dir int) tea.Cmd {
	switch m.configIndex {
	case 1:
		m.config.Volume = clampMs(m.config.Volume+dir*10, 0, 100)
		if m.sound != nil {
			m.sound.SetVolume(float64(m.config.Volume) / 100)
		}
	case 2:
		m.themeIndex = (m.themeIndex + dir + len(themes)) % len(themes)
		m.config.Theme = themes[m.themeIndex].Name
	case 3:
		m.config.DasMs = clampMs(m.config.DasMs+dir*16, 16, 500)
	case 4:
		m.config.ArrMs = clampMs(m.config.ArrMs+dir*16, 0, 200)
	case 5:
		m.config.SoftDropArrMs = clampMs(m.config.SoftDropArrMs+dir*16, 0, 200)
	default:
		return nil
	}
	_ = saveConfig(m.config)
	if m.config.Sound {
		return playSound(m.sound, SoundMenuMove)
	}
	return nil
}

func clampMs(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
