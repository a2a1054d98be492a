package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// maxNameLength caps leaderboard names.
const maxNameLength = 16

// nameEntry is the leaderboard name prompt shown when a finished session
// qualifies for the top list.
type nameEntry struct {
	input  textinput.Model
	score  int
	level  int
	active bool
}

// newNameEntry creates the prompt in an inactive state.
func newNameEntry() nameEntry {
	ti := textinput.New()
	ti.Placeholder = "Anonymous"
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength + 2
	ti.Prompt = "> "
	return nameEntry{input: ti}
}

// activate opens the prompt for a qualifying score.
func (n *nameEntry) activate(score, level int) {
	n.score = score
	n.level = level
	n.active = true
	n.input.SetValue("")
	n.input.Focus()
}

// deactivate closes the prompt and returns the entered name.
func (n *nameEntry) deactivate() string {
	n.active = false
	n.input.Blur()
	return n.input.Value()
}

var (
	nameEntryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))

	nameEntryBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("57")).
				Padding(1, 3)

	nameEntryHintStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// view renders the centered prompt box.
func (n nameEntry) view(width, height int) string {
	var b strings.Builder
	b.WriteString(nameEntryTitleStyle.Render("NEW HIGH SCORE!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score: %d   Level: %d", n.score, n.level))
	b.WriteString("\n\n")
	b.WriteString("Enter your name:")
	b.WriteString("\n")
	b.WriteString(n.input.View())
	b.WriteString("\n\n")
	b.WriteString(nameEntryHintStyle.Render("Enter: Save  |  Esc: Save as Anonymous"))

	box := nameEntryBoxStyle.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
