package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/stylepick/stylepick/icon"
	"github.com/stylepick/stylepick/style"
	"golang.org/x/term"
)

// CheckTerminal exits with a boxed hint when stdin or stdout is not a terminal,
// since the interactive front ends cannot run without one.
func CheckTerminal(alternative string) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}

	printNotATerminalError(alternative)
	os.Exit(1)
}

func printNotATerminalError(alternative string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.Red).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.Red).Render(fmt.Sprintf("%s Error: Not a Terminal", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render("The interactive picker needs a terminal on stdin and stdout.")
	suggestion := fmt.Sprintf("\n\nFor scripts and pipes, try:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(alternative))

	fmt.Fprintln(os.Stderr, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
