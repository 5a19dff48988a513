package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
	"github.com/stylepick/stylepick/icon"
	"github.com/stylepick/stylepick/key"
	"github.com/stylepick/stylepick/studio"
	"github.com/stylepick/stylepick/style"
	"github.com/stylepick/stylepick/util"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case mainState:
		output = b.viewMain()
	case editState:
		output = b.viewEdit()
	case pickerState:
		output = b.viewPicker()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewMain() string {
	lines := []string{
		style.Title("Style Preview"),
		"",
	}

	lines = append(lines, strings.Split(b.preview.Render(b.width), "\n")...)
	lines = append(lines, "")
	lines = append(lines, strings.Split(b.preview.Summary(), "\n")...)
	lines = append(lines, "", b.buttons())

	return b.renderLines(true, lines)
}

// buttons renders the three picker buttons in their accent colors.
func (b *statefulBubble) buttons() string {
	button := func(attr studio.Attribute, accent lipgloss.Color, glyph icon.Icon) string {
		label := fmt.Sprintf("%s %s", icon.Get(glyph), util.Capitalize(attr.String()))
		return style.Tag(style.Base, accent)(strings.TrimSpace(label))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		button(studio.Font, style.FontAccent, icon.Font),
		" ",
		button(studio.Size, style.SizeAccent, icon.Size),
		" ",
		button(studio.Color, style.ColorAccent, icon.Color),
	)
}

func (b *statefulBubble) viewEdit() string {
	return b.renderLines(true, []string{
		style.Title("Edit Sample Text"),
		"",
		b.inputC.View(),
	})
}

func (b *statefulBubble) viewPicker() string {
	return listExtraPaddingStyle.Render(b.pickersC[b.picker.Attribute()].View())
}

func (b *statefulBubble) viewError() string {
	errorMsg := wrap.String(style.Fg(style.ErrorColor)(b.lastError.Error()), b.width)
	return b.renderLines(
		true,
		[]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " Something went wrong:",
			"",
			errorMsg,
		},
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp && viper.GetBool(key.TUIShowHelp) {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}
