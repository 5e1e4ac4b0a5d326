package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Source        lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Prompt        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Watch         lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style

	// Cards
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardInactive lipgloss.Style // selected card while the grid is not focused
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style
	CardTag      lipgloss.Style

	// Pagination bar
	PageItem     lipgloss.Style
	PageCurrent  lipgloss.Style
	PageFocused  lipgloss.Style // current page while the bar has focus
	PageGap      lipgloss.Style
	PageArrow    lipgloss.Style
	PageDisabled lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Source: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Watch:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green

		Card:         card,
		CardSelected: card.BorderForeground(lipgloss.Color("99")),
		CardInactive: card.BorderForeground(lipgloss.Color("60")),
		CardTitle:    lipgloss.NewStyle().Bold(true),
		CardMeta:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		CardTag:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // blue

		PageItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		PageCurrent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		PageFocused:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("226")),
		PageGap:      lipgloss.NewStyle().Faint(true),
		PageArrow:    lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		PageDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
