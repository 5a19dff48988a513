package studio

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPreview(t *testing.T) {
	Convey("Given the default preview", t, func() {
		p := lo.Must(New(Options{})).Preview()

		Convey("Render shows the text and a caption", func() {
			out := p.Render(0)
			So(out, ShouldContainSubstring, "CSE 20")
			So(out, ShouldContainSubstring, "Helvetica, 24 pt")
		})

		Convey("Render wraps long text", func() {
			p.Text = "the quick brown fox jumps over the lazy dog"
			So(p.Render(10), ShouldContainSubstring, "\n")
		})

		Convey("Summary lists every selection", func() {
			So(p.Summary(), ShouldEqual, "Selected Font: Helvetica\nSelected Size: 24 pt\nSelected Color: Blue")
		})
	})
}
