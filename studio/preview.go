package studio

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/stylepick/stylepick/color"
	"github.com/stylepick/stylepick/style"
)

// Preview is a snapshot of the styled sample text.
type Preview struct {
	Text      string       `json:"text" jsonschema:"description=Sample text"`
	Font      string       `json:"font" jsonschema:"description=Selected font name"`
	Size      string       `json:"size" jsonschema:"description=Selected size key"`
	PointSize int          `json:"point_size" jsonschema:"description=Numeric point size used for rendering"`
	Color     color.Swatch `json:"color"`
}

// Render draws the sample text in the selected color, wrapped to width when width > 0.
// Terminals have a single font and size, so those are shown as a caption underneath.
func (p Preview) Render(width int) string {
	text := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Color.Color()).
		Render(p.Text)

	if width > 0 {
		text = wrap.String(text, width)
	}

	caption := style.Faint(fmt.Sprintf("%s, %d pt", p.Font, p.PointSize))
	return lipgloss.JoinVertical(lipgloss.Left, text, caption)
}

// Summary lists the three selections, one per line.
func (p Preview) Summary() string {
	return strings.Join([]string{
		"Selected Font: " + p.Font,
		"Selected Size: " + p.Size + " pt",
		"Selected Color: " + p.Color.Name,
	}, "\n")
}
