package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexblocks/internal/registry"
	"github.com/vovakirdan/hexblocks/internal/storage"
)

// Scoreboard layout constants
const (
	maxRuns      = 100 // Max runs to load per algorithm
	tableMargins = 8   // Rows used by title, tabs and help
)

// ScoreboardModel is the Bubble Tea model for browsing stored runs.
type ScoreboardModel struct {
	algos    []registry.AlgorithmInfo
	cursor   int
	store    *storage.Store
	runs     []storage.Run
	stats    *storage.AlgorithmStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		algos:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	if len(m.algos) > 0 {
		m.loadRuns(m.algos[0].ID)
	}
	return m
}

// createTable creates a new table with the run columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Turns", Width: 7},
		{Title: "Cleared", Width: 8},
		{Title: "Radius", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-tableMargins, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the best runs of the given algorithm.
func (m *ScoreboardModel) loadRuns(algorithm string) {
	m.runs, m.stats = nil, nil
	if m.store != nil {
		if runs, err := m.store.TopRuns(algorithm, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.AlgorithmStats(algorithm); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.Cleared),
			fmt.Sprintf("%d", r.Radius),
			fmt.Sprintf("%d", r.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextAlgo), key.Matches(msg, m.keys.Right):
			if len(m.algos) > 0 {
				m.cursor = (m.cursor + 1) % len(m.algos)
				m.loadRuns(m.algos[m.cursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevAlgo), key.Matches(msg, m.keys.Left):
			if len(m.algos) > 0 {
				m.cursor = (m.cursor + len(m.algos) - 1) % len(m.algos)
				m.loadRuns(m.algos[m.cursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Current returns the ID of the algorithm being shown.
func (m ScoreboardModel) Current() string {
	if len(m.algos) == 0 {
		return ""
	}
	return m.algos[m.cursor].ID
}

// Runs returns the runs currently listed.
func (m ScoreboardModel) Runs() []storage.Run {
	return m.runs
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "RUN HISTORY"
	if len(m.algos) > 0 {
		title = fmt.Sprintf("RUN HISTORY - %s", m.algos[m.cursor].Title)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.stats != nil && m.stats.Runs > 0 {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%d runs  best %d  avg score %.1f  avg turns %.1f",
			m.stats.Runs, m.stats.BestScore, m.stats.AvgScore, m.stats.AvgTurns)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs renders one tab per algorithm.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.algos))
	for i, a := range m.algos {
		if i == m.cursor {
			tabs[i] = activeTabStyle.Render(a.ID)
		} else {
			tabs[i] = tabStyle.Render(a.ID)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nRun 'hexblocks autoplay' to record one!")
	}

	return m.table.View()
}

// RunScoreboard runs the scoreboard screen.
func RunScoreboard(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
