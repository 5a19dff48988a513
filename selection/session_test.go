package selection

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type color int

const (
	red color = iota + 1
	blue
)

func TestSession(t *testing.T) {
	Convey("Given a font session", t, func() {
		fonts := MustCatalog(KeyedBy("Helvetica", "Courier")...)
		font := NewCoordinator("Helvetica", "Helvetica")
		session := OpenSession(fonts, font)

		Convey("Opening does not touch the coordinator", func() {
			So(session.State(), ShouldEqual, Open)
			_, k := font.Current()
			So(k, ShouldEqual, "Helvetica")
			So(session.Catalog(), ShouldEqual, fonts)
		})

		Convey("Choosing a known key resolves the session", func() {
			v, err := session.Choose("Courier")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "Courier")
			So(session.State(), ShouldEqual, Resolved)

			v, k := font.Current()
			So(v, ShouldEqual, "Courier")
			So(k, ShouldEqual, "Courier")

			Convey("And a second choose fails", func() {
				_, err := session.Choose("Helvetica")
				So(errors.Is(err, ErrSessionAlreadyClosed), ShouldBeTrue)
				_, k := font.Current()
				So(k, ShouldEqual, "Courier")
			})

			Convey("And cancel fails", func() {
				So(errors.Is(session.Cancel(), ErrSessionAlreadyClosed), ShouldBeTrue)
				So(session.State(), ShouldEqual, Resolved)
			})
		})

		Convey("Cancelling leaves the coordinator alone", func() {
			var notified bool
			font.Subscribe(func(string, string) { notified = true })

			So(session.Cancel(), ShouldBeNil)
			So(session.State(), ShouldEqual, Cancelled)
			So(notified, ShouldBeFalse)

			Convey("And choose afterwards fails", func() {
				_, err := session.Choose("Courier")
				So(errors.Is(err, ErrSessionAlreadyClosed), ShouldBeTrue)
				So(notified, ShouldBeFalse)
			})

			Convey("And a second cancel fails", func() {
				So(errors.Is(session.Cancel(), ErrSessionAlreadyClosed), ShouldBeTrue)
			})
		})

		Convey("An unknown key keeps the session open and suggests a key", func() {
			_, err := session.Choose("Courer")
			So(errors.Is(err, ErrUnknownOptionKey), ShouldBeTrue)

			var unknown *UnknownOptionKeyError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Key, ShouldEqual, "Courer")
			So(unknown.Suggestion.MustGet(), ShouldEqual, "Courier")
			So(err.Error(), ShouldContainSubstring, `did you mean "Courier"`)
			So(session.State(), ShouldEqual, Open)

			Convey("And a retry with a valid key succeeds", func() {
				v, err := session.Choose("Courier")
				So(err, ShouldBeNil)
				So(v, ShouldEqual, "Courier")
			})
		})
	})

	Convey("Given a size session over 12..60", t, func() {
		sizes := MustCatalog(KeyedBy("12", "14", "16", "18", "20", "24", "30", "36", "48", "60")...)
		size := NewCoordinator("24", "24")
		session := OpenSession(sizes, size)

		Convey("Choosing 99 fails and changes nothing", func() {
			_, err := session.Choose("99")
			So(errors.Is(err, ErrUnknownOptionKey), ShouldBeTrue)
			So(session.State(), ShouldEqual, Open)

			v, k := size.Current()
			So(v, ShouldEqual, "24")
			So(k, ShouldEqual, "24")
		})
	})

	Convey("Given a color session with two subscribers", t, func() {
		colors := MustCatalog(
			Entry[color]{Key: "Red", Value: red},
			Entry[color]{Key: "Blue", Value: blue},
		)
		coordinator := NewCoordinator(blue, "Blue")

		type call struct {
			who   string
			value color
			key   string
		}
		var calls []call

		coordinator.Subscribe(func(v color, k string) { calls = append(calls, call{"a", v, k}) })
		coordinator.Subscribe(func(v color, k string) { calls = append(calls, call{"b", v, k}) })

		Convey("Choosing Red notifies both once in order", func() {
			v, err := OpenSession(colors, coordinator).Choose("Red")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, red)
			So(calls, ShouldResemble, []call{{"a", red, "Red"}, {"b", red, "Red"}})
		})
	})

	Convey("Given a subscriber that opens a nested session on the same coordinator", t, func() {
		fonts := MustCatalog(KeyedBy("Helvetica", "Courier", "Arial")...)
		font := NewCoordinator("Helvetica", "Helvetica")

		var nested *Session[string]
		var nestedErr error
		font.Subscribe(func(string, string) {
			if nested == nil {
				nested = OpenSession(fonts, font)
				_, nestedErr = nested.Choose("Arial")
			}
		})

		_, err := OpenSession(fonts, font).Choose("Courier")

		Convey("The nested choose is rejected and stays open", func() {
			So(err, ShouldBeNil)
			So(errors.Is(nestedErr, ErrReentrantApply), ShouldBeTrue)
			So(nested.State(), ShouldEqual, Open)
			_, k := font.Current()
			So(k, ShouldEqual, "Courier")
		})
	})

	Convey("State names", t, func() {
		So(Open.String(), ShouldEqual, "open")
		So(Resolved.String(), ShouldEqual, "resolved")
		So(Cancelled.String(), ShouldEqual, "cancelled")
		So(State(42).String(), ShouldEqual, "unknown")
	})
}
