package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/stylepick/stylepick/selection"
	"github.com/stylepick/stylepick/studio"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestBubble() (*statefulBubble, *studio.Studio) {
	s := lo.Must(studio.New(studio.Options{}))
	b := newBubble(s)
	b.setState(mainState)
	b.resize(80, 40)
	return b, s
}

func TestBubblePicker(t *testing.T) {
	Convey("Given the main screen", t, func() {
		b, s := newTestBubble()

		Convey("The preview shows the defaults", func() {
			view := b.View()
			So(view, ShouldContainSubstring, "Selected Font: Helvetica")
			So(view, ShouldContainSubstring, "Selected Size: 24 pt")
			So(view, ShouldContainSubstring, "Selected Color: Blue")
		})

		Convey("When the font picker is opened", func() {
			b.Update(runes("f"))

			So(b.state, ShouldEqual, pickerState)
			So(b.picker, ShouldNotBeNil)
			So(b.picker.Attribute(), ShouldEqual, studio.Font)

			l := b.pickersC[studio.Font]
			So(l.Items(), ShouldHaveLength, 10)
			So(l.Index(), ShouldEqual, 0)
			So(l.SelectedItem().(*listItem).marked, ShouldBeTrue)

			Convey("Confirming another font applies it and closes the picker", func() {
				picker := b.picker
				l.Select(1)
				b.Update(enter)

				So(b.state, ShouldEqual, mainState)
				So(b.picker, ShouldBeNil)
				So(picker.State(), ShouldEqual, selection.Resolved)
				So(b.preview.Font, ShouldEqual, "Courier")
				So(s.Preview().Font, ShouldEqual, "Courier")
			})

			Convey("Going back cancels without a change", func() {
				picker := b.picker
				l.Select(3)
				b.Update(esc)

				So(b.state, ShouldEqual, mainState)
				So(picker.State(), ShouldEqual, selection.Cancelled)
				So(b.preview.Font, ShouldEqual, "Helvetica")
			})
		})

		Convey("When a color is picked", func() {
			b.Update(runes("c"))
			b.pickersC[studio.Color].Select(0)
			b.Update(enter)

			So(b.preview.Color.Name, ShouldEqual, "Red")
			So(b.View(), ShouldContainSubstring, "Selected Color: Red")
		})

		Convey("Reopening a picker marks the new selection", func() {
			b.Update(runes("s"))
			b.pickersC[studio.Size].Select(8)
			b.Update(enter)

			b.Update(runes("s"))
			l := b.pickersC[studio.Size]
			So(l.Index(), ShouldEqual, 8)
			So(l.SelectedItem().(*listItem).option.Key, ShouldEqual, "48")
			So(l.SelectedItem().(*listItem).marked, ShouldBeTrue)
		})
	})
}

func TestBubbleEdit(t *testing.T) {
	Convey("Given the text editor", t, func() {
		b, s := newTestBubble()
		b.Update(runes("e"))
		So(b.state, ShouldEqual, editState)
		So(b.inputC.Value(), ShouldEqual, "CSE 20")

		Convey("Confirming updates the sample text", func() {
			b.inputC.SetValue("Hello")
			b.Update(enter)

			So(b.state, ShouldEqual, mainState)
			So(s.Text(), ShouldEqual, "Hello")
			So(b.preview.Text, ShouldEqual, "Hello")
		})

		Convey("Going back discards the edit", func() {
			b.inputC.SetValue("Hello")
			b.Update(esc)

			So(b.state, ShouldEqual, mainState)
			So(s.Text(), ShouldEqual, "CSE 20")
		})
	})
}

func TestBubbleError(t *testing.T) {
	Convey("Given a raised error", t, func() {
		b, _ := newTestBubble()
		b.raiseError(errors.New("boom"))

		So(b.state, ShouldEqual, errorState)
		So(b.View(), ShouldContainSubstring, "boom")

		Convey("Going back returns to the main screen", func() {
			b.Update(esc)
			So(b.state, ShouldEqual, mainState)
			So(b.lastError, ShouldBeNil)
		})
	})
}
