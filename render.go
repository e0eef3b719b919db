package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name         string
	BorderColor  lipgloss.Color
	TextColor    lipgloss.Color
	AccentColor  lipgloss.Color
	GarbageColor lipgloss.Color
	PieceColors  []lipgloss.Color
}

var themes = []Theme{
	{
		Name:         "Classic",
		BorderColor:  lipgloss.Color("15"),
		TextColor:    lipgloss.Color("250"),
		AccentColor:  lipgloss.Color("226"),
		GarbageColor: lipgloss.Color("240"),
		PieceColors:  []lipgloss.Color{"51", "226", "93", "46", "196", "21", "208"},
	},
	{
		Name:         "Amber Terminal",
		BorderColor:  lipgloss.Color("214"),
		TextColor:    lipgloss.Color("223"),
		AccentColor:  lipgloss.Color("208"),
		GarbageColor: lipgloss.Color("94"),
		PieceColors:  []lipgloss.Color{"220", "214", "222", "208", "215", "216", "223"},
	},
	{
		Name:         "Ocean Neon",
		BorderColor:  lipgloss.Color("33"),
		TextColor:    lipgloss.Color("159"),
		AccentColor:  lipgloss.Color("39"),
		GarbageColor: lipgloss.Color("240"),
		PieceColors:  []lipgloss.Color{"45", "39", "51", "44", "50", "75", "81"},
	},
	{
		Name:         "Forest CRT",
		BorderColor:  lipgloss.Color("22"),
		TextColor:    lipgloss.Color("120"),
		AccentColor:  lipgloss.Color("34"),
		GarbageColor: lipgloss.Color("239"),
		PieceColors:  []lipgloss.Color{"47", "64", "77", "48", "71", "35", "106"},
	},
	{
		Name:         "Mono Matrix",
		BorderColor:  lipgloss.Color("250"),
		TextColor:    lipgloss.Color("245"),
		AccentColor:  lipgloss.Color("82"),
		GarbageColor: lipgloss.Color("237"),
		PieceColors:  []lipgloss.Color{"236", "239", "242", "245", "248", "251", "254"},
	},
}

func themeIndexByName(name string) int {
	for i, theme := range themes {
		if theme.Name == name {
			return i
		}
	}
	return -1
}

const cellWidth = 2

func viewMenu(m Model) string {
	theme := themes[m.themeIndex]
	content := renderMenu("TETRS", menuItems, m.menuIndex, "Enter to select, Q to quit", theme)
	return center(m.width, m.height, content)
}

func viewDifficulty(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(allDifficulties))
	for _, d := range allDifficulties {
		items = append(items, fmt.Sprintf("%-8s %s", d.Name(), d.Description()))
	}
	content := renderMenu("Versus AI", items, m.difficultyIndex, "Enter to start, Esc to back", theme)
	return center(m.width, m.height, content)
}

func viewGame(m Model) string {
	theme := themes[m.themeIndex]
	readyLabel := ""
	if m.startCount > 1 {
		readyLabel = "READY"
	} else if m.startCount == 1 {
		readyLabel = "GO"
	}

	board := renderBoard(m.game, theme, m.trace)
	sidebar := renderSidebar(m, theme, readyLabel)

	var content string
	if m.versus != nil {
		aiBoard := renderBoard(m.versus.AIGame, theme, nil)
		player := lipgloss.JoinVertical(lipgloss.Center, helpStyle(theme).Render("YOU"), board)
		ai := lipgloss.JoinVertical(lipgloss.Center,
			helpStyle(theme).Render(fmt.Sprintf("AI (%s)", m.versus.Difficulty.Name())), aiBoard)
		content = lipgloss.JoinHorizontal(lipgloss.Top, player, sidebar, ai)
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top, board, sidebar)
	}
	return center(m.width, m.height, content)
}

// renderBoard draws the visible rows top down with the falling piece and
// its ghost overlaid. Rows mid-clear flash solid; trace cells show the
// streak of the last hard drop.
func renderBoard(g *Game, theme Theme, trace map[Point]struct{}) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	cellText := strings.Repeat(" ", cellWidth)
	ghostText := strings.Repeat(".", cellWidth)
	flashStyle := lipgloss.NewStyle().Background(lipgloss.Color("15"))

	type overlay struct {
		kind  PieceKind
		ghost bool
	}
	overlays := map[Point]overlay{}
	if g.Current != nil {
		for _, c := range ghostCells(&g.Board, *g.Current) {
			overlays[c] = overlay{kind: g.Current.Kind, ghost: true}
		}
		for _, c := range g.Current.Cells() {
			overlays[c] = overlay{kind: g.Current.Kind}
		}
	}
	clearing := map[int]struct{}{}
	if rows, ok := g.Clearing(); ok {
		for _, row := range rows {
			clearing[row] = struct{}{}
		}
	}

	var b strings.Builder
	b.WriteString(border.Render("+" + strings.Repeat("-", boardWidth*cellWidth) + "+"))
	b.WriteString("\n")
	for y := visibleHeight - 1; y >= 0; y-- {
		b.WriteString(border.Render("|"))
		for x := 0; x < boardWidth; x++ {
			if _, ok := clearing[y]; ok {
				b.WriteString(flashStyle.Render(cellText))
				continue
			}
			if ov, ok := overlays[Point{X: x, Y: y}]; ok {
				color := theme.PieceColors[int(ov.kind)%len(theme.PieceColors)]
				if ov.ghost {
					if !g.Board.At(x, y).Occupied() {
						b.WriteString(lipgloss.NewStyle().Foreground(color).Faint(true).Render(ghostText))
						continue
					}
				} else {
					b.WriteString(lipgloss.NewStyle().Background(color).Render(cellText))
					continue
				}
			}
			cell := g.Board.At(x, y)
			switch {
			case cell.Garbage():
				b.WriteString(lipgloss.NewStyle().Background(theme.GarbageColor).Render(cellText))
			case cell.Occupied():
				kind, _ := cell.Kind()
				color := theme.PieceColors[int(kind)%len(theme.PieceColors)]
				b.WriteString(lipgloss.NewStyle().Background(color).Render(cellText))
			default:
				if _, ok := trace[Point{X: x, Y: y}]; ok {
					b.WriteString(lipgloss.NewStyle().Foreground(theme.AccentColor).Faint(true).Render(strings.Repeat("░", cellWidth)))
				} else {
					b.WriteString(cellText)
				}
			}
		}
		b.WriteString(border.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(border.Render("+" + strings.Repeat("-", boardWidth*cellWidth) + "+"))
	return b.String()
}

func renderSidebar(m Model, theme Theme, readyLabel string) string {
	g := m.game
	var b strings.Builder
	pad := lipgloss.NewStyle().PaddingLeft(2).PaddingRight(2)
	if readyLabel != "" {
		b.WriteString(pad.Render(highlightStyle(theme).Render(readyLabel)))
		b.WriteString("\n\n")
	}
	b.WriteString(pad.Render(titleStyle(theme).Render(m.mode.Name())))
	b.WriteString("\n")
	if info := m.mode.InfoText(g); info != "" {
		b.WriteString(pad.Render(helpStyle(theme).Render(info)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(pad.Render(titleStyle(theme).Render("Next")))
	b.WriteString("\n")
	for _, kind := range g.Preview() {
		b.WriteString(pad.Render(renderMiniPiece(kind, theme)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(pad.Render(titleStyle(theme).Render("Hold")))
	b.WriteString("\n")
	if g.Hold.Has {
		b.WriteString(pad.Render(renderMiniPiece(g.Hold.Kind, theme)))
	} else {
		b.WriteString(pad.Render("(empty)"))
	}
	b.WriteString("\n\n")

	b.WriteString(pad.Render(fmt.Sprintf("Score: %s", formatNumber(g.Scoring.Score))))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Lines: %d", g.Scoring.Lines)))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Level: %d", g.Scoring.Level)))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("Time:  %s", g.Stats.FormatTime())))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("PPS:   %.2f", g.Stats.PPS())))
	b.WriteString("\n")
	b.WriteString(pad.Render(fmt.Sprintf("APM:   %.1f", g.Stats.APM())))
	b.WriteString("\n\n")

	if g.LastClear != ClearNone {
		b.WriteString(pad.Render(highlightStyle(theme).Render(g.LastClear.DisplayName(g.LastClearLines))))
		b.WriteString("\n")
	}
	if g.Scoring.Combo > 0 {
		b.WriteString(pad.Render(highlightStyle(theme).Render(fmt.Sprintf("Combo x%d", g.Scoring.Combo))))
		b.WriteString("\n")
	}
	if g.Scoring.BackToBack > 0 {
		b.WriteString(pad.Render(highlightStyle(theme).Render(fmt.Sprintf("B2B x%d", g.Scoring.BackToBack))))
		b.WriteString("\n")
	}
	if pending := g.Garbage.Pending(); pending > 0 {
		b.WriteString(pad.Render(warningStyle(theme).Render(fmt.Sprintf("Incoming: %d", pending))))
		b.WriteString("\n")
	}
	if g.Danger() {
		b.WriteString(pad.Render(warningStyle(theme).Render("DANGER")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	keys := []string{
		"Arrows/HJKL: move",
		"Z/X/A: rotate",
		"Space: hard drop",
		"C: hold",
		"P: pause",
		"Q: menu",
	}
	for _, line := range keys {
		b.WriteString(pad.Render(helpStyle(theme).Render(line)))
		b.WriteString("\n")
	}
	if m.paused {
		b.WriteString("\n")
		b.WriteString(pad.Render(highlightStyle(theme).Render("Paused")))
	}
	return b.String()
}

func renderMiniPiece(kind PieceKind, theme Theme) string {
	var grid [2][4]bool
	for _, off := range pieceCells[kind][Rot0] {
		grid[off.Y][off.X] = true
	}
	color := theme.PieceColors[int(kind)%len(theme.PieceColors)]
	block := lipgloss.NewStyle().Background(color).Render(strings.Repeat(" ", cellWidth))
	empty := strings.Repeat(" ", cellWidth)
	var b strings.Builder
	for y := 1; y >= 0; y-- {
		for x := 0; x < 4; x++ {
			if grid[y][x] {
				b.WriteString(block)
			} else {
				b.WriteString(empty)
			}
		}
		if y > 0 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), " \n")
}

func viewGameOver(m Model) string {
	theme := themes[m.themeIndex]
	var b strings.Builder
	b.WriteString(titleStyle(theme).Render(m.result.ModeName))
	b.WriteString("\n\n")
	b.WriteString(highlightStyle(theme).Render(fmt.Sprintf("%s: %s", m.result.PrimaryLabel, m.result.PrimaryValue)))
	b.WriteString("\n")
	if m.result.NewHighScore {
		b.WriteString(highlightStyle(theme).Render("NEW HIGH SCORE"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	stats := m.result.Stats
	b.WriteString(fmt.Sprintf("Score: %s   Level: %d   Lines: %d\n", formatNumber(stats.Score), stats.Level, stats.LinesCleared))
	b.WriteString(fmt.Sprintf("Pieces: %d   Time: %s\n", stats.PiecesPlaced, stats.FormatTime()))
	b.WriteString(fmt.Sprintf("PPS: %.2f   APM: %.1f   KPP: %.2f\n", stats.PPS(), stats.APM(), stats.KPP()))
	if stats.TSpins > 0 || stats.Quads > 0 || stats.PerfectClears > 0 {
		b.WriteString(fmt.Sprintf("Quads: %d   T-Spins: %d   Perfect Clears: %d\n", stats.Quads, stats.TSpins, stats.PerfectClears))
	}
	if stats.MaxCombo > 0 || stats.MaxBackToBack > 0 {
		b.WriteString(fmt.Sprintf("Max Combo: %d   Max B2B: %d\n", stats.MaxCombo, stats.MaxBackToBack))
	}
	if stats.AttackSent > 0 || stats.GarbageReceived > 0 {
		b.WriteString(fmt.Sprintf("Attack: %d   Garbage Taken: %d\n", stats.AttackSent, stats.GarbageReceived))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle(theme).Render("R to retry, Enter for menu"))
	return center(m.width, m.height, b.String())
}

func viewScores(m Model) string {
	theme := themes[m.themeIndex]
	var b strings.Builder
	b.WriteString(titleStyle(theme).Render("High Scores"))
	b.WriteString("\n\n")

	tabs := make([]string, 0, len(scoresTabs))
	for i, tab := range scoresTabs {
		if i == m.scoresTab {
			tabs = append(tabs, highlightStyle(theme).Render("["+tab+"]"))
		} else {
			tabs = append(tabs, helpStyle(theme).Render(" "+tab+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	switch m.scoresTab {
	case 0:
		if len(m.store.Sprint) == 0 {
			b.WriteString("No sprints finished yet.\n")
		}
		for i, entry := range m.store.Sprint {
			secs := float64(entry.TimeMs) / 1000
			b.WriteString(fmt.Sprintf("%2d. %7.2fs  %3d lines  %3d pieces  %s\n", i+1, secs, entry.Lines, entry.Pieces, entry.When))
		}
	case 1:
		entries := m.store.Endless
		if m.sync.Enabled() && len(m.remoteScores) > 0 {
			entries = m.remoteScores
		}
		if len(entries) == 0 {
			b.WriteString("No runs recorded yet.\n")
		}
		for i, entry := range entries {
			b.WriteString(fmt.Sprintf("%2d. %10s  L%2d  %4d lines  %s\n", i+1, formatNumber(entry.Score), entry.Level, entry.Lines, entry.When))
		}
	case 2:
		if len(m.store.Versus) == 0 {
			b.WriteString("No matches played yet.\n")
		}
		for i, entry := range m.store.Versus {
			outcome := "LOSS"
			if entry.Won {
				outcome = "WIN "
			}
			b.WriteString(fmt.Sprintf("%2d. %s vs %-6s  %3d atk  %s\n", i+1, outcome, entry.Difficulty, entry.DamageSent, entry.When))
		}
	}

	if m.syncWarning != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle(theme).Render(m.syncWarning))
		b.WriteString("\n")
	}
	if m.syncLoading {
		b.WriteString("\n")
		b.WriteString(helpStyle(theme).Render(renderSyncLoader(m.syncDots)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle(theme).Render("Left/Right to switch, Enter to back"))
	return center(m.width, m.height, b.String())
}

func viewConfig(m Model) string {
	theme := themes[m.themeIndex]
	items := make([]string, 0, len(configItems))
	for i, item := range configItems {
		switch i {
		case 0:
			state := "OFF"
			if m.config.Sound {
				state = "ON"
			}
			items = append(items, fmt.Sprintf("%s: %s", item, state))
		case 1:
			items = append(items, fmt.Sprintf("%s: %d%%", item, m.config.Volume))
		case 2:
			items = append(items, fmt.Sprintf("%s: %s", item, m.config.Theme))
		case 3:
			items = append(items, fmt.Sprintf("%s: %dms", item, m.config.DasMs))
		case 4:
			items = append(items, fmt.Sprintf("%s: %dms", item, m.config.ArrMs))
		case 5:
			items = append(items, fmt.Sprintf("%s: %dms", item, m.config.SoftDropArrMs))
		}
	}
	content := renderMenu("Config", items, m.configIndex, "Enter to toggle, Left/Right to adjust, Esc to back", theme)
	return center(m.width, m.height, content)
}

func renderMenu(title string, items []string, selected int, footer string, theme Theme) string {
	maxWidth := lipgloss.Width(title)
	for _, item := range items {
		if width := lipgloss.Width(item); width > maxWidth {
			maxWidth = width
		}
	}
	if width := lipgloss.Width(footer); width > maxWidth {
		maxWidth = width
	}
	lineStyle := lipgloss.NewStyle().Width(maxWidth).Align(lipgloss.Center)
	var b strings.Builder
	b.WriteString(lineStyle.Render(titleStyle(theme).Render(title)))
	b.WriteString("\n\n")
	for i, line := range items {
		if i == selected {
			b.WriteString(lineStyle.Render(highlightStyle(theme).Render(line)))
		} else {
			b.WriteString(lineStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lineStyle.Render(helpStyle(theme).Render(footer)))
	return b.String()
}

func titleStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func highlightStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func helpStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor)
}

func warningStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderSyncLoader(dots int) string {
	if dots < 0 {
		dots = 0
	}
	return "Syncing" + strings.Repeat(".", dots%4)
}

func formatNumber(value int) string {
	text := fmt.Sprintf("%d", value)
	if len(text) <= 3 {
		return text
	}
	var b strings.Builder
	lead := len(text) % 3
	if lead > 0 {
		b.WriteString(text[:lead])
	}
	for i := lead; i < len(text); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(text[i : i+3])
	}
	return b.String()
}
