// Package mini is the line-mode front end: the same preview and pickers as the TUI, driven by prompts.
package mini

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stylepick/stylepick/studio"
	"github.com/stylepick/stylepick/util"
)

var truncateAt = 80

// Options configures a mini session.
type Options struct {
	// Out receives the preview. Defaults to os.Stdout.
	Out io.Writer
	// Clear wipes the screen before each preview.
	Clear bool
}

type mini struct {
	state         state
	statesHistory util.Stack[state]

	studio   *studio.Studio
	prompter prompter
	out      io.Writer
	clear    bool

	// attribute is the picker to open in pickState
	attribute studio.Attribute
}

func newMini(s *studio.Studio, p prompter, options Options) *mini {
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	return &mini{
		statesHistory: util.Stack[state]{},
		studio:        s,
		prompter:      p,
		out:           out,
		clear:         options.Clear,
	}
}

func (m *mini) previousState() {
	if m.statesHistory.Len() > 0 {
		m.setState(m.statesHistory.Pop())
	}
}

func (m *mini) setState(s state) {
	m.state = s
}

func (m *mini) newState(s state) {
	if m.state == s {
		return
	}

	m.statesHistory.Push(m.state)
	m.setState(s)
}

// Run prompts on the terminal until the user quits.
func Run(s *studio.Studio, options Options) error {
	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	return newMini(s, surveyPrompter{}, options).loop()
}

func (m *mini) loop() error {
	m.state = menuState

	for m.state != quitState {
		if err := m.handleState(); err != nil {
			return err
		}
	}

	return nil
}

func (m *mini) handleState() error {
	switch m.state {
	case menuState:
		return m.handleMenuState()
	case pickState:
		return m.handlePickState()
	case editState:
		return m.handleEditState()
	default:
		return fmt.Errorf("unknown state %d", m.state)
	}
}

// interrupted reports whether err is the prompt being aborted with ctrl+c.
func interrupted(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}
