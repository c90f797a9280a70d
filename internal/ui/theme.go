package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Accents are cycled with the accent key. Purely cosmetic.
var Accents = []string{"#A6E3A1", "#89B4FA", "#F5C2E7", "#F9E2AF", "#FAB387", "#94E2D5", "#CBA6F7"}

type Theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Digital   lipgloss.Style
	Face      lipgloss.Style
	Panel     lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	On        lipgloss.Style
	Off       lipgloss.Style
	Cursor    lipgloss.Style
	StatusBar lipgloss.Style

	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
}

// NewTheme builds the styles around an accent colour.
func NewTheme(accent string) Theme {
	a := lipgloss.Color(accent)
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(a),
		Label:     lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#89B4FA")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#F2CDCD")),
		Digital:   lipgloss.NewStyle().Bold(true).Foreground(a),
		Face:      lipgloss.NewStyle().Foreground(a),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6C7086")).Padding(0, 1),
		Hint:      lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
		On:        lipgloss.NewStyle().Bold(true).Foreground(a),
		Off:       lipgloss.NewStyle().Faint(true),
		Cursor:    lipgloss.NewStyle().Bold(true).Foreground(a),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Background(lipgloss.Color("#313244")).Padding(0, 1),

		ModalBox:   lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(a).Padding(1, 4),
		ModalTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	}
}

// ThemeFor resolves the config theme name. "mono" drops colour entirely;
// anything else is the default palette around accent.
func ThemeFor(name, accent string) Theme {
	if !strings.EqualFold(name, "mono") {
		return NewTheme(accent)
	}
	plain := lipgloss.NewStyle()
	return Theme{
		Title:      plain.Bold(true),
		Label:      plain.Faint(true),
		Value:      plain,
		Digital:    plain.Bold(true),
		Face:       plain,
		Panel:      plain.Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Hint:       plain.Faint(true),
		Error:      plain.Bold(true).Underline(true),
		On:         plain.Bold(true),
		Off:        plain.Faint(true),
		Cursor:     plain.Bold(true),
		StatusBar:  plain.Reverse(true).Padding(0, 1),
		ModalBox:   plain.Border(lipgloss.DoubleBorder()).Padding(1, 4),
		ModalTitle: plain.Bold(true),
	}
}
