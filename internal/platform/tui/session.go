package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/registry"
	"github.com/vovakirdan/hexblocks/internal/storage"
)

// SessionModel manages one visitor: menu -> viewer -> menu.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	rate     int
	width    int
	height   int
	menu     MenuModel
	watch    *WatchModel
	watches  int // Viewers opened so far, used as tick IDs
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, rate, width, height int) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		rate:   rate,
		width:  width,
		height: height,
		menu:   NewMenuModel(store, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.watch != nil {
		return m.updateWatch(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Ticks of a closed viewer are dropped.
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		alg, err := registry.Create(selected.ID)
		if err != nil {
			// Shouldn't happen since menu only shows registered algorithms
			m.menu = NewMenuModel(m.store, m.width, m.height)
			return m, nil
		}

		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		watch := NewWatchModel(alg, m.store, WatchConfig{Runtime: cfg, Rate: m.rate})
		m.watches++
		watch.embedded = true
		watch.id = m.watches
		watch.width, watch.height = m.width, m.height
		watch.help.Width = m.width
		m.watch = &watch
		return m, m.watch.Init()
	}

	return m, cmd
}

// updateWatch handles updates when a viewer is open.
func (m SessionModel) updateWatch(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.watch.Update(msg)
	if watch, ok := newModel.(WatchModel); ok {
		m.watch = &watch
	}

	if m.watch.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.watch.BackToMenu() {
		m.watch = nil
		m.menu = NewMenuModel(m.store, m.width, m.height)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.watch != nil {
		return m.watch.View()
	}
	return m.menu.View()
}
