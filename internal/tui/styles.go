package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("39")
	muted  = lipgloss.Color("241")
	danger = lipgloss.Color("203")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(accent)

	paneHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	selectedItemStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	normalItemStyle   = lipgloss.NewStyle()
	dimItemStyle      = lipgloss.NewStyle().Foreground(muted)

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	boundRowStyle    = lipgloss.NewStyle().Reverse(true)

	fieldLabelStyle  = lipgloss.NewStyle().Width(14)
	fieldCursorStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)

	modeCreateBadge = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("28")).Foreground(lipgloss.Color("230"))
	modeEditBadge   = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("130")).Foreground(lipgloss.Color("230"))
	readOnlyBadge   = lipgloss.NewStyle().Padding(0, 1).Background(muted).Foreground(lipgloss.Color("230"))

	commandOnStyle  = lipgloss.NewStyle().Foreground(accent)
	commandOffStyle = lipgloss.NewStyle().Foreground(muted).Strikethrough(true)

	errorStyle = lipgloss.NewStyle().Foreground(danger)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))

	helpKeyStyle  = lipgloss.NewStyle().Foreground(accent).Width(14)
	helpDescStyle = lipgloss.NewStyle()
)
