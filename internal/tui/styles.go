package tui

import "github.com/charmbracelet/lipgloss"

// Color palette (dracula).
var (
	colorRed    = lipgloss.Color("#ff5555")
	colorGreen  = lipgloss.Color("#50fa7b")
	colorYellow = lipgloss.Color("#f1fa8c")
	colorBlue   = lipgloss.Color("#8be9fd")
	colorPurple = lipgloss.Color("#bd93f9")
	colorDim    = lipgloss.Color("#6272a4")
	colorFg     = lipgloss.Color("#f8f8f2")
	colorBorder = lipgloss.Color("#44475a")
)

// Style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	bucketStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	fileCreatedStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	fileDeletedStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	fileModifiedStyle = lipgloss.NewStyle().
				Foreground(colorFg)

	statAddStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	statDelStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	messageBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	messageStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	diffViewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	hunkHeaderStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	addedLineStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	deletedLineStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	contextLineStyle = lipgloss.NewStyle().
				Foreground(colorFg)

	fileHeaderStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	helpBarStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	abortedStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)
