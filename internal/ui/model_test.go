package ui

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given an empty notifier", t, func() {
		var m Model

		Convey("View passes content through", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("A notification is shown on the last line until cleared", func() {
			cmd := m.Update(NotificationMsg("font set to Courier"))
			So(cmd, ShouldNotBeNil)
			So(m.Current(), ShouldEqual, "font set to Courier")
			So(m.View("a\nb"), ShouldStartWith, "a\nb  ")
			So(m.View("a\nb"), ShouldContainSubstring, "font set to Courier")

			m.Update(ClearNotificationMsg{generation: m.generation})
			So(m.Current(), ShouldBeEmpty)
		})

		Convey("A stale clear does not hide a newer notification", func() {
			m.Update(NotificationMsg("first"))
			stale := ClearNotificationMsg{generation: m.generation}
			m.Update(NotificationMsg("second"))

			m.Update(stale)
			So(m.Current(), ShouldEqual, "second")
		})

		Convey("Notify produces a notification message", func() {
			So(Notify("hi")(), ShouldEqual, NotificationMsg("hi"))
		})
	})
}
