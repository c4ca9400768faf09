// Package tui holds the Bubble Tea title screen, the shared lipgloss
// styles and the Wish SSH server that hosts remote games.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-invaders/internal/config"
)

// TitleModel is the Bubble Tea model for the title screen. Any fire key
// starts the game; any quit key leaves.
type TitleModel struct {
	keys    KeyMap
	help    help.Model
	preview string
	width   int
	height  int
	started bool
	quit    bool
}

// NewTitleModel creates a title screen for the given bindings and theme.
func NewTitleModel(cfg config.Config) TitleModel {
	h := help.New()
	h.ShowAll = true
	return TitleModel{
		keys:    NewKeyMap(cfg.Keys),
		help:    h,
		preview: fleetPreview(cfg.Theme),
	}
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Fire):
			m.started = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit):
			m.quit = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	if m.started || m.quit {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		bannerStyle.Render("TERM INVADERS"),
		subtitleStyle.Render("defend the bottom row"),
		"",
		m.preview,
		"",
		m.help.View(m.keys),
	)
	box := boxStyle.Render(body)

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Started reports whether the player chose to play.
func (m TitleModel) Started() bool {
	return m.started
}

// RunTitle shows the title screen on the given streams and reports
// whether the player chose to play.
func RunTitle(in io.Reader, out io.Writer, cfg config.Config) (bool, error) {
	p := tea.NewProgram(NewTitleModel(cfg),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: title screen: %w", err)
	}
	m, ok := final.(TitleModel)
	return ok && m.Started(), nil
}
