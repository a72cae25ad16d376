// Package ui holds the shared terminal palette of authdesk's views.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Accent  = lipgloss.Color("#0D6EFD")
	Danger  = lipgloss.Color("#DC3545")
	Success = lipgloss.Color("#198754")
	Muted   = lipgloss.Color("#6C757D")
	Text    = lipgloss.Color("#FFFFFF")
)

var (
	TitleStyle   = lipgloss.NewStyle().Foreground(Accent).Bold(true).Padding(1, 0)
	LabelStyle   = lipgloss.NewStyle().Foreground(Text).Bold(true)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	KeyStyle     = lipgloss.NewStyle().Foreground(Accent)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Danger)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	ActiveTabStyle   = lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true)
	InactiveTabStyle = lipgloss.NewStyle().Foreground(Muted)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Accent).
			Padding(1, 2)
)
