package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shape-dodger/internal/core"
	"github.com/vovakirdan/shape-dodger/internal/dodger"
)

// Preview box size in cells.
const (
	previewW = 16
	previewH = 8
)

// SetupKeyMap defines the key bindings for the setup picker.
type SetupKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Start  key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SetupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Prev, k.Next, k.Start, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SetupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Start, k.Scores, k.Quit},
	}
}

// DefaultSetupKeyMap returns default key bindings.
func DefaultSetupKeyMap() SetupKeyMap {
	return SetupKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/↓", "shape/color"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓", "next row"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→", "next"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Setup is the player shape and color chosen before a game.
type Setup struct {
	Kind  dodger.Kind
	Color dodger.ColorID
}

// SetupModel lets the player pick a shape and a color.
type SetupModel struct {
	setup  Setup
	row    int // 0 shape, 1 color
	keys   SetupKeyMap
	help   help.Model
	width  int
	height int

	preview *core.Screen
	cells   *CellRenderer

	done       bool
	quitting   bool
	wantScores bool
}

// NewSetupModel creates a picker starting from initial.
func NewSetupModel(initial Setup, width, height int) SetupModel {
	if !initial.Kind.Valid() {
		initial.Kind = dodger.KindRectangle
	}
	if !initial.Color.Valid() {
		initial.Color = dodger.Red
	}

	preview := core.NewScreen(previewW, previewH)
	h := help.New()
	h.Width = width

	return SetupModel{
		setup:   initial,
		keys:    DefaultSetupKeyMap(),
		help:    h,
		width:   width,
		height:  height,
		preview: preview,
		cells:   NewCellRenderer(preview, core.NewRect(0, 0, previewW, previewH)),
	}
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.row = (m.row + 1) % 2
		case key.Matches(msg, m.keys.Down):
			m.row = (m.row + 1) % 2
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
		case key.Matches(msg, m.keys.Next):
			m.step(1)
		case key.Matches(msg, m.keys.Start):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Scores):
			m.wantScores = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m *SetupModel) step(d int) {
	if m.row == 0 {
		n := int(dodger.KindCount)
		m.setup.Kind = dodger.Kind((int(m.setup.Kind) + d + n) % n)
		return
	}
	n := int(dodger.ColorCount)
	m.setup.Color = dodger.ColorID((int(m.setup.Color) + d + n) % n)
}

// View renders the picker.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S H A P E   D O D G E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Catch shapes of your color. Touch any other color and it's over.", m.width))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
		color core.Color
	}{
		{"Shape", m.setup.Kind.String(), core.ColorDefault},
		{"Color", m.setup.Color.String(), CellColor(m.setup.Color.RGB())},
	}
	for i, r := range rows {
		cursor := "  "
		if i == m.row {
			cursor = "> "
		}
		value := colorStyles[r.color].Render(fmt.Sprintf("< %-9s >", r.value))
		b.WriteString(centerText(fmt.Sprintf("%s%s  %s", cursor, r.label, value), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	m.preview.Clear()
	m.cells.Draw(m.setup.Kind, 0, 0, 1.2, m.setup.Color.RGB())
	previewStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, previewStyle.Render(RenderScreen(m.preview))))
	b.WriteString("\n\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen setup and whether the player confirmed it.
func (m SetupModel) Selected() (Setup, bool) {
	return m.setup, m.done
}

// IsQuitting returns true if user requested to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m SetupModel) WantsScoreboard() bool {
	return m.wantScores
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
