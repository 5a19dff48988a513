package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/stylepick/stylepick/icon"
	"github.com/stylepick/stylepick/studio"
	"github.com/stylepick/stylepick/style"
)

// listItem adapts a picker option to list.Item. marked flags the option that is currently selected.
type listItem struct {
	option studio.Option
	marked bool
}

func (t *listItem) Title() string {
	title := t.option.Key

	if swatch := t.option.Swatch; swatch != nil {
		title = lipgloss.NewStyle().Foreground(swatch.Color()).Render("●") + " " + title
	}

	if t.marked {
		title += " " + lipgloss.NewStyle().Bold(true).Foreground(style.AccentColor).Render(icon.Get(icon.Mark))
	}

	return title
}

func (t *listItem) Description() string {
	return ""
}

func (t *listItem) FilterValue() string {
	return t.option.Key
}
