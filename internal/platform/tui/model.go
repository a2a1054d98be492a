package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/snackfall/snackfall/internal/core"
	"github.com/snackfall/snackfall/internal/game"
	"github.com/snackfall/snackfall/internal/storage"
)

// Model is the Bubble Tea model for a Snackfall session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	nameEntry  nameEntry
	quitting   bool
	backToMenu bool
	submitted  bool // Whether the finished session's score has been recorded
}

// NewModel creates a new Bubble Tea model for a session.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		nameEntry:  newNameEntry(),
	}
}

// Init initializes the model and starts the session.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.nameEntry.active {
		return m.handleNameEntryKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	action, _ := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionPause:
		m.inputFrame.Set(action)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		m.inputFrame.Set(core.ActionPause)
	}

	return m, nil
}

// handleNameEntryKey routes input to the leaderboard name prompt.
func (m Model) handleNameEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.submitScore(m.nameEntry.deactivate())
		return m, nil
	case "esc":
		m.nameEntry.deactivate()
		m.submitScore("")
		return m, nil
	}

	var cmd tea.Cmd
	m.nameEntry.input, cmd = m.nameEntry.input.Update(msg)
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.submitted = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		if ended, ok := ev.(game.SessionEndedEvent); ok {
			m.handleSessionEnd(ended)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleSessionEnd decides between the name prompt and an anonymous record.
func (m *Model) handleSessionEnd(ev game.SessionEndedEvent) {
	if m.submitted || m.store == nil || ev.FinalScore <= 0 {
		return
	}

	qualifies, err := m.store.Qualifies(ev.FinalScore)
	if err == nil && qualifies {
		m.nameEntry.activate(ev.FinalScore, ev.FinalLevel)
		return
	}
	m.submitScore("")
}

// submitScore records the finished session. Blank names become Anonymous
// inside the store.
func (m *Model) submitScore(name string) {
	if m.submitted || m.store == nil {
		return
	}
	st := m.game.State()
	//nolint:errcheck // Best-effort save, session flow continues regardless
	m.store.SubmitScore(name, st.Score, st.Level)
	m.submitted = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".snackfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snackfall_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, session continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.nameEntry.active {
		return m.nameEntry.view(m.config.ScreenW, m.config.ScreenH)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for one play session. It reports
// whether the player asked to return to the menu rather than quit.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
