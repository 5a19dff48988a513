package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/stylepick/stylepick/internal/ui"
	"github.com/stylepick/stylepick/key"
	"github.com/stylepick/stylepick/studio"
	"github.com/stylepick/stylepick/style"
	"github.com/stylepick/stylepick/util"
)

// statefulBubble is the root bubbletea model.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	studio  *studio.Studio
	preview studio.Preview

	// picker is the open session while in pickerState, nil otherwise
	picker studio.Picker

	inputC   textinput.Model
	helpC    help.Model
	pickersC map[studio.Attribute]*list.Model

	lastError error

	width, height int
	notifier      *ui.Model
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	b.statesHistory.Push(b.state)
	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	listHeight := height - yy

	for _, l := range b.pickersC {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}

	b.inputC.Width = util.Max(listWidth-len(b.inputC.Prompt)-1, 0)
	b.helpC.Width = listWidth

	b.width = width - x
	b.height = height - y
}

// openPicker starts a session for attr and shows its list with the cursor on the current selection.
func (b *statefulBubble) openPicker(attr studio.Attribute) tea.Cmd {
	p, err := b.studio.Open(attr)
	if err != nil {
		b.raiseError(err)
		return nil
	}

	options := p.Options()
	items := make([]list.Item, len(options))
	selected := 0
	for i, o := range options {
		marked := o.Key == p.Current()
		if marked {
			selected = i
		}
		items[i] = &listItem{option: o, marked: marked}
	}

	l := b.pickersC[attr]
	cmd := l.SetItems(items)
	l.ResetFilter()
	l.Select(selected)

	b.picker = p
	b.newState(pickerState)
	return cmd
}

// closePicker cancels the open session if it was not resolved and returns to the previous screen.
func (b *statefulBubble) closePicker() {
	if b.picker != nil {
		// a resolved session rejects Cancel, which is fine here
		_ = b.picker.Cancel()
		b.picker = nil
	}
	b.previousState()
}

func newBubble(s *studio.Studio) *statefulBubble {
	bubble := &statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),
		studio:        s,
		preview:       s.Preview(),
		pickersC:      make(map[studio.Attribute]*list.Model),
		notifier:      &ui.Model{},
	}

	// the display-refresh callback is in place before any picker can open
	s.OnChange(func(p studio.Preview) {
		bubble.preview = p
	})

	makeList := func(title string, accent lipgloss.Color) *list.Model {
		delegate := list.NewDefaultDelegate()
		delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
		delegate.ShowDescription = false
		delegate.Styles.SelectedTitle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(accent).
			Foreground(accent).
			Padding(0, 0, 0, 1)
		delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))

		listC := list.New([]list.Item{}, delegate, 0, 0)
		listC.KeyMap = bubble.keymap.forList()
		listC.AdditionalShortHelpKeys = bubble.keymap.ShortHelp
		listC.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
			return bubble.keymap.FullHelp()[0]
		}
		listC.Title = title
		listC.Styles.Title = lipgloss.NewStyle().Foreground(style.Base).Background(accent).Padding(0, 1)
		listC.Styles.NoItems = paddingStyle
		listC.StatusMessageLifetime = time.Second * 3
		listC.SetFilteringEnabled(false)
		listC.SetShowStatusBar(false)

		return &listC
	}

	bubble.pickersC[studio.Font] = makeList("Pick a Font", style.FontAccent)
	bubble.pickersC[studio.Size] = makeList("Pick a Size", style.SizeAccent)
	bubble.pickersC[studio.Color] = makeList("Pick a Color", style.ColorAccent)

	bubble.pickersC[studio.Font].SetStatusBarItemName("font", "fonts")
	bubble.pickersC[studio.Size].SetStatusBarItemName("size", "sizes")
	bubble.pickersC[studio.Color].SetStatusBarItemName("color", "colors")

	bubble.helpC = help.New()

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Enter Sample Text"
	bubble.inputC.CharLimit = 120
	bubble.inputC.Prompt = fmt.Sprintf("%s ", style.Fg(style.AccentColor)(">"))

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}
