package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	styleBold  = lipgloss.NewStyle().Bold(true)
	styleFaint = lipgloss.NewStyle().Faint(true)
	keyColor   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
)

var stdoutIsTerminal = term.IsTerminal(int(os.Stdout.Fd()))

// styled applies style only when writing to a terminal.
func styled(style lipgloss.Style, s string) string {
	if !stdoutIsTerminal {
		return s
	}
	return style.Render(s)
}
