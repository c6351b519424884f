// Package terminal renders the dashboard for a terminal with lipgloss.
package terminal

import "github.com/charmbracelet/lipgloss"

// Theme defines the colors of one presentation mode.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Income     lipgloss.Color
	Expense    lipgloss.Color
}

// Light is the theme used while dark mode is off.
var Light = Theme{
	Name:       "light",
	Primary:    lipgloss.Color("#1F4287"),
	Foreground: lipgloss.Color("#1a1a1a"),
	Muted:      lipgloss.Color("#737373"),
	Border:     lipgloss.Color("#d4d4d4"),
	Income:     lipgloss.Color("#047857"),
	Expense:    lipgloss.Color("#b91c1c"),
}

// Dark is the theme used while dark mode is on.
var Dark = Theme{
	Name:       "dark",
	Primary:    lipgloss.Color("#0DB4B9"),
	Foreground: lipgloss.Color("#fafafa"),
	Muted:      lipgloss.Color("#a3a3a3"),
	Border:     lipgloss.Color("#404040"),
	Income:     lipgloss.Color("#10b981"),
	Expense:    lipgloss.Color("#ef4444"),
}

// styles are the lipgloss styles derived from a theme.
type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	income  lipgloss.Style
	expense lipgloss.Style
	muted   lipgloss.Style
	box     lipgloss.Style
}

const (
	labelWidth = 28
	valueWidth = 20
)

func newStyles(r *lipgloss.Renderer, t Theme) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			MarginBottom(1),
		section: r.NewStyle().
			Bold(true).
			Foreground(t.Foreground).
			MarginTop(1),
		label: r.NewStyle().
			Foreground(t.Foreground).
			Width(labelWidth),
		value: r.NewStyle().
			Foreground(t.Foreground).
			Width(valueWidth).
			Align(lipgloss.Right),
		income: r.NewStyle().
			Foreground(t.Income).
			Width(valueWidth).
			Align(lipgloss.Right),
		expense: r.NewStyle().
			Foreground(t.Expense).
			Width(valueWidth).
			Align(lipgloss.Right),
		muted: r.NewStyle().
			Foreground(t.Muted),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}
