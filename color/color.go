// Package color provides the ANSI palette used for CLI output and the named swatches offered by the color picker.
package color

import "github.com/charmbracelet/lipgloss"

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("0")
)

// High-intensity variants.
var (
	HiRed    = New("9")
	HiPurple = New("13")
	HiCyan   = New("14")
)

var Gray = New("#808080")

// Swatch is a pickable text color.
type Swatch struct {
	Name string `json:"name"`
	// Hex is the true-color value, lipgloss degrades it for smaller palettes.
	Hex string `json:"hex"`
}

// Color returns the swatch as a lipgloss color.
func (s Swatch) Color() lipgloss.Color {
	return New(s.Hex)
}

// Swatches offered by the color picker, in display order.
var Swatches = []Swatch{
	{Name: "Red", Hex: "#ff3b30"},
	{Name: "Blue", Hex: "#007aff"},
	{Name: "Yellow", Hex: "#ffcc00"},
	{Name: "Black", Hex: "#000000"},
}
