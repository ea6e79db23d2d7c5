package tui

import "github.com/charmbracelet/lipgloss"

type ReportStylesStruct struct {
	Banner,
	Notice,
	Stats,
	ErrorText lipgloss.Style
}

// ReportStyles declares formatting for everything the reporter prints
var ReportStyles = ReportStylesStruct{
	Banner: lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")).
		Faint(true),

	Notice: lipgloss.NewStyle().
		Faint(true),

	Stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")).
		Bold(true),

	ErrorText: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff5f5f")),
}
