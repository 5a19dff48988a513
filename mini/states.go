package mini

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/stylepick/stylepick/icon"
	"github.com/stylepick/stylepick/log"
	"github.com/stylepick/stylepick/studio"
	"github.com/stylepick/stylepick/style"
	"github.com/stylepick/stylepick/util"
)

type state int

const (
	menuState state = iota + 1
	pickState
	editState
	quitState
)

const (
	menuEditText = "Edit text"
	menuQuit     = "Quit"
)

func menuLabel(a studio.Attribute) string {
	return "Pick " + a.String()
}

func (m *mini) printPreview() {
	if m.clear {
		util.ClearScreen()
	}

	p := m.studio.Preview()
	fmt.Fprintln(m.out, style.Title("Style Preview"))
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, p.Render(truncateAt))
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, p.Summary())
	fmt.Fprintln(m.out)
}

func (m *mini) handleMenuState() error {
	m.printPreview()

	choices := lo.Map(studio.Attributes, func(a studio.Attribute, _ int) string {
		return menuLabel(a)
	})
	choices = append(choices, menuEditText, menuQuit)

	choice, err := m.prompter.Select("What next?", choices, "")
	if interrupted(err) {
		m.newState(quitState)
		return nil
	}
	if err != nil {
		return err
	}

	switch choice {
	case menuEditText:
		m.newState(editState)
	case menuQuit:
		m.newState(quitState)
	default:
		attr, ok := lo.Find(studio.Attributes, func(a studio.Attribute) bool {
			return menuLabel(a) == choice
		})
		if !ok {
			return fmt.Errorf("unknown menu choice %q", choice)
		}

		m.attribute = attr
		m.newState(pickState)
	}

	return nil
}

func (m *mini) handlePickState() error {
	defer m.previousState()

	picker, err := m.studio.Open(m.attribute)
	if err != nil {
		return err
	}

	keys := lo.Map(picker.Options(), func(o studio.Option, _ int) string {
		return o.Key
	})

	choice, err := m.prompter.Select(fmt.Sprintf("Pick a %s", util.Capitalize(m.attribute.String())), keys, picker.Current())
	if interrupted(err) {
		log.Infof("%s picker cancelled", m.attribute)
		fmt.Fprintln(m.out, style.Faint(fmt.Sprintf("%s unchanged", m.attribute)))
		return picker.Cancel()
	}
	if err != nil {
		_ = picker.Cancel()
		return err
	}

	if err = picker.Choose(choice); err != nil {
		fmt.Fprintln(m.out, style.Fg(style.ErrorColor)(icon.Get(icon.Fail)+" "+err.Error()))
		return picker.Cancel()
	}

	fmt.Fprintln(m.out, strings.TrimSpace(icon.Get(icon.Success)+" "+fmt.Sprintf("%s set to %s", m.attribute, choice)))
	return nil
}

func (m *mini) handleEditState() error {
	defer m.previousState()

	text, err := m.prompter.Input("Sample text", m.studio.Text())
	if interrupted(err) {
		return nil
	}
	if err != nil {
		return err
	}

	m.studio.SetText(text)
	return nil
}
