package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/snackfall/snackfall/internal/core"
	"github.com/snackfall/snackfall/internal/storage"
)

// MenuChoice identifies an entry on the title screen.
type MenuChoice int

const (
	MenuChoicePlay MenuChoice = iota
	MenuChoiceScores
	MenuChoiceQuit
)

var menuLabels = []string{"Play", "High Scores", "Quit"}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	highScore int
	quitting  bool
	selected  MenuChoice
	chosen    bool
}

// NewMenuModel creates a new title screen model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			m.highScore = hs
		}
	}
	return m
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuLabels)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = MenuChoice(m.cursor)
		m.chosen = true
		return m, tea.Quit
	}

	return m, nil
}

var menuTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

// View renders the title screen.
func (m MenuModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(menuTitleStyle.Render(centerText("S N A C K F A L L", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Catch the good food, dodge the bad!", m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("High Score: %d", m.highScore), m.width))
		b.WriteString("\n\n")
	}

	for i, label := range menuLabels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected entry and whether one was chosen.
func (m MenuModel) Choice() (MenuChoice, bool) {
	return m.selected, m.chosen
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the title screen and returns the player's choice.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuChoice, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuChoiceQuit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuChoiceQuit, nil
	}

	if choice, chosen := m.Choice(); chosen {
		return choice, nil
	}
	return MenuChoiceQuit, nil
}
