package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/hexblocks/internal/algos"
	"github.com/vovakirdan/hexblocks/internal/codec"
	"github.com/vovakirdan/hexblocks/internal/core"
	"github.com/vovakirdan/hexblocks/internal/game"
	"github.com/vovakirdan/hexblocks/internal/registry"
	"github.com/vovakirdan/hexblocks/internal/render"
	"github.com/vovakirdan/hexblocks/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// WatchConfig configures the autoplay viewer.
type WatchConfig struct {
	Runtime  core.RuntimeConfig
	Rate     int // Moves per second, 0 for the default
	MaxTurns int // 0 plays until no piece fits
}

// WatchModel is the Bubble Tea model that plays a game with an algorithm,
// showing each chosen move on the board before it is applied.
type WatchModel struct {
	alg      registry.Algorithm
	game     *game.Game
	store    *storage.Store
	config   core.RuntimeConfig
	maxTurns int
	rate     int
	started  time.Time

	pending *algos.Decision // Chosen but not yet applied
	last    *core.StepResult
	err     error

	help      help.Model
	keys      WatchKeyMap
	width     int
	height    int
	paused    bool
	quitting  bool
	goingBack bool
	embedded  bool // Hosted by a session; back returns to its menu
	id        int  // Tick ID
	saved     bool // Whether the finished game has been stored
}

// NewWatchModel creates a viewer for alg. A zero seed is replaced by the
// current time.
func NewWatchModel(alg registry.Algorithm, store *storage.Store, cfg WatchConfig) WatchModel {
	rt := cfg.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rate := cfg.Rate
	if rate == 0 {
		rate = defaultRate
	}

	alg.Reset(rt)
	return WatchModel{
		alg:      alg,
		game:     game.New(rt),
		store:    store,
		config:   rt,
		maxTurns: max(cfg.MaxTurns, 0),
		rate:     core.Clamp(rate, minRate, maxRate),
		started:  time.Now(),
		help:     help.New(),
		keys:     DefaultWatchKeyMap(),
	}
}

// Init starts the tick loop.
func (m WatchModel) Init() tea.Cmd {
	return tickCmd(m.id, 2*m.rate)
}

// Update handles messages and updates the model state.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		if !m.paused {
			m.advance()
		}
		return m, tickCmd(m.id, 2*m.rate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m WatchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		if !m.embedded {
			return m, tea.Quit
		}
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
	case key.Matches(msg, m.keys.Step):
		m.paused = true
		m.advance()
	case key.Matches(msg, m.keys.Faster):
		m.rate = core.Clamp(m.rate*2, minRate, maxRate)
	case key.Matches(msg, m.keys.Slower):
		m.rate = core.Clamp(m.rate/2, minRate, maxRate)
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// advance runs one phase: pick a move, or apply the picked one.
func (m *WatchModel) advance() {
	if m.Finished() || m.err != nil {
		return
	}

	if m.pending == nil {
		d, err := m.game.Decide(m.alg)
		if err != nil {
			if !algos.IsNoMove(err) {
				m.err = err
			}
			m.save()
			return
		}
		m.pending = &d
		return
	}

	res, err := m.game.Apply(m.pending.Index, m.pending.Origin)
	m.pending = nil
	if err != nil {
		m.err = err
		return
	}
	m.last = &res
	if m.Finished() {
		m.save()
	}
}

// restart begins a new game with a fresh seed.
func (m *WatchModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.alg.Reset(m.config)
	m.game.Reset(m.config)
	m.started = time.Now()
	m.pending = nil
	m.last = nil
	m.err = nil
	m.saved = false
}

// save stores the finished game once. Storage failures are not fatal for
// the viewer.
func (m *WatchModel) save() {
	if m.saved || m.store == nil || m.game.State().Turn == 0 {
		return
	}
	m.saved = true
	st := m.game.State()
	run := &storage.Run{
		Algorithm:  m.alg.ID(),
		Radius:     m.config.Radius,
		QueueSize:  m.config.QueueSize,
		Easy:       m.config.Easy,
		Seed:       m.config.Seed,
		Score:      st.Score,
		Turns:      st.Turn,
		Cleared:    m.game.Cleared(),
		DurationMs: time.Since(m.started).Milliseconds(),
		FinalBoard: codec.FormatBoard(m.game.Board()),
	}
	//nolint:errcheck // Best-effort save, the viewer continues regardless
	m.store.SaveRun(run)
}

// Finished reports whether the game is over or hit the turn limit.
func (m WatchModel) Finished() bool {
	st := m.game.State()
	return st.GameOver || (m.maxTurns > 0 && st.Turn >= m.maxTurns)
}

// State returns the current game state.
func (m WatchModel) State() core.GameState {
	return m.game.State()
}

// Pending returns the move about to be applied, if any.
func (m WatchModel) Pending() (algos.Decision, bool) {
	if m.pending == nil {
		return algos.Decision{}, false
	}
	return *m.pending, true
}

// Err returns the error that stopped the game, if any.
func (m WatchModel) Err() error {
	return m.err
}

// View renders the board, the status panel, the queue and the help bar.
func (m WatchModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var board string
	if m.pending != nil {
		board = render.Decision(m.game.Board(), m.pending.Origin, m.pending.Piece, render.Options{})
	} else {
		board = render.Board(m.game.Board(), render.Options{})
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(board),
		"  ",
		panelStyle.Render(m.statusView()),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("HEXBLOCKS - " + m.alg.Title()))
	b.WriteString("\n\n")
	b.WriteString(top)
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(render.Queue(m.game.Queue(), render.Options{})))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m WatchModel) statusView() string {
	st := m.game.State()
	lines := []string{
		fmt.Sprintf("%s %d", labelStyle.Render("Score  "), st.Score),
		fmt.Sprintf("%s %d", labelStyle.Render("Turn   "), st.Turn),
		fmt.Sprintf("%s %d", labelStyle.Render("Cleared"), m.game.Cleared()),
		fmt.Sprintf("%s %.0f%%", labelStyle.Render("Filled "), 100*m.game.Board().FilledRatio()),
		fmt.Sprintf("%s %d", labelStyle.Render("Seed   "), m.config.Seed),
		fmt.Sprintf("%s %d/s", labelStyle.Render("Speed  "), m.rate),
		"",
	}

	if m.pending != nil {
		lines = append(lines, fmt.Sprintf("next: piece %d at %v", m.pending.Index, m.pending.Origin))
	} else if m.last != nil {
		lines = append(lines, fmt.Sprintf("last: piece %d at %v +%d", m.last.Index, m.last.Origin, m.last.Gained))
	}

	switch {
	case m.err != nil && !errors.Is(m.err, game.ErrGameOver):
		lines = append(lines, alertStyle.Render("error: "+m.err.Error()))
	case m.Finished():
		lines = append(lines, alertStyle.Render("GAME OVER")+labelStyle.Render("  r: new game"))
	case m.paused:
		lines = append(lines, labelStyle.Render("paused"))
	}
	return strings.Join(lines, "\n")
}

// IsQuitting returns true if user requested to quit entirely.
func (m WatchModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m WatchModel) BackToMenu() bool {
	return m.goingBack
}

// RunWatch starts the viewer in the local terminal.
func RunWatch(alg registry.Algorithm, store *storage.Store, cfg WatchConfig) error {
	p := tea.NewProgram(
		NewWatchModel(alg, store, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
