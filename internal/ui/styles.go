package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the view. Colors are ANSI
// 256-color codes.
type Styles struct {
	Title    lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Due      lipgloss.Style
	Empty    lipgloss.Style
	Form     lipgloss.Style
	Label    lipgloss.Style
	Inline   lipgloss.Style
	Status   map[StatusKind]lipgloss.Style
}

// DefaultStyles returns the built-in styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51")).
			MarginBottom(1),
		Row:      lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
		Due:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Empty:    lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("245")).Italic(true),
		Form: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Inline: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Status: map[StatusKind]lipgloss.Style{
			StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		},
	}
}
