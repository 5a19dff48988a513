package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/stylepick/stylepick/color"
	"github.com/stylepick/stylepick/style"
	"github.com/stylepick/stylepick/studio"
)

// statefulKeymap holds every binding; help() narrows them to the active state.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	pickFont, pickSize, pickColor,
	edit, confirm, back,
	up, down, left, right,
	top, bottom,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		pickFont: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp(style.Fg(style.FontAccent)("f"), "pick a font"),
		),
		pickSize: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp(style.Fg(style.SizeAccent)("s"), "pick a size"),
		),
		pickColor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp(style.Fg(style.ColorAccent)("c"), "pick a color"),
		),
		edit: key.NewBinding(
			key.WithKeys("e", "i"),
			key.WithHelp("e", "edit text"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp(style.Fg(color.Green)("enter"), "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "right"),
		),
		top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// pickBinding returns the binding that opens the picker for attr.
func (k *statefulKeymap) pickBinding(attr studio.Attribute) key.Binding {
	switch attr {
	case studio.Size:
		return k.pickSize
	case studio.Color:
		return k.pickColor
	default:
		return k.pickFont
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case mainState:
		return h(k.pickFont, k.pickSize, k.pickColor, k.edit, k.quit), h(k.pickFont, k.pickSize, k.pickColor, k.edit, k.showHelp, k.quit, k.forceQuit)
	case editState:
		return to2(h(k.confirm, k.back))
	case pickerState:
		return to2(h(k.confirm, k.back))
	case errorState:
		return to2(h(k.back, k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func (k *statefulKeymap) forList() list.KeyMap {
	return list.KeyMap{
		CursorUp:      k.up,
		CursorDown:    k.down,
		NextPage:      k.right,
		PrevPage:      k.left,
		GoToStart:     k.top,
		GoToEnd:       k.bottom,
		ShowFullHelp:  k.showHelp,
		CloseFullHelp: k.showHelp,
		Quit:          k.quit,
		ForceQuit:     k.forceQuit,
	}
}
