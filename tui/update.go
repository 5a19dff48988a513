package tui

import (
	"errors"
	"fmt"

	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stylepick/stylepick/internal/ui"
	"github.com/stylepick/stylepick/log"
	"github.com/stylepick/stylepick/selection"
	"github.com/stylepick/stylepick/studio"
)

func (b *statefulBubble) Init() tea.Cmd {
	return nil
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := b.notifier.Update(msg); cmd != nil {
		return b, cmd
	}

	switch msg := msg.(type) {
	case error:
		b.raiseError(msg)
		return b, nil
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case mainState:
		return b.updateMain(msg)
	case editState:
		return b.updateEdit(msg)
	case pickerState:
		return b.updatePicker(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch {
	case bubblesKey.Matches(keyMsg, b.keymap.quit):
		return b, tea.Quit
	case bubblesKey.Matches(keyMsg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	case bubblesKey.Matches(keyMsg, b.keymap.edit):
		b.inputC.SetValue(b.studio.Text())
		b.inputC.CursorEnd()
		b.newState(editState)
		return b, tea.Batch(b.inputC.Focus(), textinput.Blink)
	default:
		for _, attr := range studio.Attributes {
			if bubblesKey.Matches(keyMsg, b.keymap.pickBinding(attr)) {
				return b, b.openPicker(attr)
			}
		}
	}

	return b, nil
}

func (b *statefulBubble) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			b.studio.SetText(b.inputC.Value())
			b.inputC.Blur()
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.inputC.Blur()
			b.previousState()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	attr := b.picker.Attribute()
	listC := b.pickersC[attr]

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.closePicker()
			return b, ui.Notify(fmt.Sprintf("%s unchanged", attr))
		case bubblesKey.Matches(msg, b.keymap.confirm):
			item, ok := listC.SelectedItem().(*listItem)
			if !ok {
				return b, nil
			}

			err := b.picker.Choose(item.option.Key)
			switch {
			case errors.Is(err, selection.ErrUnknownOptionKey):
				// the session stays open, so the user can pick again
				return b, listC.NewStatusMessage(err.Error())
			case err != nil:
				log.Error(err)
				b.closePicker()
				b.raiseError(err)
				return b, nil
			}

			b.closePicker()
			return b, ui.Notify(fmt.Sprintf("%s set to %s", attr, item.option.Key))
		}
	}

	var cmd tea.Cmd
	*listC, cmd = listC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		case bubblesKey.Matches(msg, b.keymap.back):
			b.lastError = nil
			b.previousState()
		}
	}

	return b, nil
}
