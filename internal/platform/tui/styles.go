package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/core"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10")).
			Padding(0, 2)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("4")).
			Padding(1, 3)

	outcomeStyles = map[core.Outcome]lipgloss.Style{
		core.OutcomeWon:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		core.OutcomeLost: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		core.OutcomeQuit: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

// OutcomeMessage describes how a game ended, in plain text.
func OutcomeMessage(o core.Outcome) string {
	switch o {
	case core.OutcomeWon:
		return "You win! Every invader is gone."
	case core.OutcomeLost:
		return "Game over. The invaders landed."
	case core.OutcomeQuit:
		return "Bye."
	default:
		return "Game ended."
	}
}

// RenderOutcome styles OutcomeMessage for printing after the game.
func RenderOutcome(o core.Outcome) string {
	st, ok := outcomeStyles[o]
	if !ok {
		st = lipgloss.NewStyle()
	}
	return st.Render(OutcomeMessage(o))
}

// fleetPreview draws a row of invaders in the theme's colours.
func fleetPreview(theme config.ThemeConfig) string {
	invader := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Invader))
	ship := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Ship))
	shot := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Shot))

	return lipgloss.JoinVertical(lipgloss.Center,
		invader.Render("x + x + x + x"),
		"",
		shot.Render("|"),
		ship.Render("A"),
	)
}
