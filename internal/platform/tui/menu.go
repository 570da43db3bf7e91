package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/registry"
	"github.com/vovakirdan/hexblocks/internal/storage"
)

var cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// MenuModel is the Bubble Tea model for the algorithm picker.
type MenuModel struct {
	items    []registry.AlgorithmInfo
	best     map[string]int // Best stored score per algorithm
	cursor   int
	width    int
	height   int
	help     help.Model
	keys     MenuKeyMap
	quitting bool
	selected *registry.AlgorithmInfo // Set when user selects an algorithm
}

// NewMenuModel creates a new menu model. The store is optional and only
// used to show best scores.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	items := registry.List()
	best := make(map[string]int, len(items))
	if store != nil {
		for _, it := range items {
			if score, err := store.BestScore(it.ID); err == nil && score > 0 {
				best[it.ID] = score
			}
		}
	}

	return MenuModel{
		items:  items,
		best:   best,
		width:  width,
		height: height,
		help:   help.New(),
		keys:   DefaultMenuKeyMap(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, nil
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  H E X B L O C K S  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick an algorithm to watch", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %-12s %s", item.ID, item.Title)
		if score, ok := m.best[item.ID]; ok {
			line += labelStyle.Render(fmt.Sprintf("  best %d", score))
		}
		if i == m.cursor {
			line = cursorStyle.Render(">") + line[1:]
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected algorithm, or nil if none selected.
func (m MenuModel) Selected() *registry.AlgorithmInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// RunSession runs the picker and viewer loop in the local terminal, the
// same flow SSH visitors get.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, rate, width, height int) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, rate, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
