package style

import "github.com/charmbracelet/lipgloss"

// Palette used by the TUI chrome. Preview text colors come from color.Swatches instead.
var (
	Base    = lipgloss.Color("#1e1e2e")
	Text    = lipgloss.Color("#cdd6f4")
	Subtext = lipgloss.Color("#a6adc8")
	Overlay = lipgloss.Color("#6c7086")
	Surface = lipgloss.Color("#313244")

	Mauve    = lipgloss.Color("#cba6f7")
	Red      = lipgloss.Color("#f38ba8")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
	Green    = lipgloss.Color("#a6e3a1")
	Blue     = lipgloss.Color("#89b4fa")
	Lavender = lipgloss.Color("#b4befe")

	AccentColor = Mauve
	ErrorColor  = Red
	FaintColor  = Overlay

	BorderColor       = Surface
	ActiveBorderColor = AccentColor
)

// Accent colors of the three picker buttons.
var (
	FontAccent  = Blue
	SizeAccent  = Green
	ColorAccent = Red
)
