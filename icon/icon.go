// Package icon renders UI symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/stylepick/stylepick/key"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns every supported variant name.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Mark
	Font
	Size
	Color
)

type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
	squares string
}

var icons = map[Icon]*iconDef{
	Success: {emoji: "🎉", nerd: "", plain: "Success", kaomoji: "(ᵔ◡ᵔ)", squares: "🟩"},
	Fail:    {emoji: "💀", nerd: "", plain: "Fail", kaomoji: "(╯°□°)╯︵ ┻━┻", squares: "🟥"},
	Mark:    {emoji: "✅", nerd: "", plain: "*", kaomoji: "(* ^ ω ^)", squares: "🟪"},
	Font:    {emoji: "🔤", nerd: "", plain: "Aa", kaomoji: "φ(．．)", squares: "🟦"},
	Size:    {emoji: "📏", nerd: "", plain: "pt", kaomoji: "(⊙_⊙)", squares: "🟨"},
	Color:   {emoji: "🎨", nerd: "", plain: "#", kaomoji: "(✿◠‿◠)", squares: "🟧"},
}

func (d *iconDef) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Get returns the symbol for i in the configured variant, or "" for unknown icons.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.get()
}
