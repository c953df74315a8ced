package tui

import "github.com/charmbracelet/lipgloss"

var (
	// List rows
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("8")).
			Foreground(lipgloss.Color("15")).
			Bold(true)

	workspaceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6"))

	branchSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Background(lipgloss.Color("8"))

	activeIconStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D97706"))

	activeIconSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#D97706")).
				Background(lipgloss.Color("8"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	// Detail pane
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Width(13)

	// Separator
	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	// Help / status
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	// Error / notices
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1"))
)
