// Package ui is the terminal front end: a Bubble Tea router over the login,
// feed and upload views.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary     = lipgloss.Color("#8BC34A")
	Muted       = lipgloss.Color("#7a8599")
	Border      = lipgloss.Color("#2a3850")
	Destructive = lipgloss.Color("#e53935")
	Info        = lipgloss.Color("#2196F3")
)

type Styles struct {
	Title     lipgloss.Style
	Author    lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Separator lipgloss.Style
	Sidebar   lipgloss.Style
	Content   lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Delete    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1),
		Author:    lipgloss.NewStyle().Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(Muted),
		Selected:  lipgloss.NewStyle().Foreground(Primary).Bold(true),
		Separator: lipgloss.NewStyle().Foreground(Border),
		Sidebar: lipgloss.NewStyle().
			Width(28).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(Border),
		Content: lipgloss.NewStyle().Padding(0, 2),
		Success: lipgloss.NewStyle().Foreground(Primary),
		Error:   lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(Info),
		Delete:  lipgloss.NewStyle().Foreground(Destructive),
	}
}
