package studio

import (
	"errors"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stylepick/stylepick/constant"
	"github.com/stylepick/stylepick/key"
	"github.com/stylepick/stylepick/selection"
)

func TestNew(t *testing.T) {
	Convey("Given a studio with no options", t, func() {
		s := lo.Must(New(Options{}))

		Convey("It starts on the documented defaults", func() {
			p := s.Preview()
			So(p.Text, ShouldEqual, "CSE 20")
			So(p.Font, ShouldEqual, "Helvetica")
			So(p.Size, ShouldEqual, "24")
			So(p.PointSize, ShouldEqual, 24)
			So(p.Color.Name, ShouldEqual, "Blue")
		})

		Convey("It carries the built-in catalogs", func() {
			So(s.Keys(Font), ShouldResemble, constant.Fonts)
			So(s.Keys(Size), ShouldResemble, constant.Sizes)
			So(s.Keys(Color), ShouldResemble, constant.Colors)
			So(s.Keys(Attribute(0)), ShouldBeNil)
		})

		Convey("Each coordinator has the preview subscribed", func() {
			So(s.Font.Subscribers(), ShouldEqual, 1)
			So(s.Size.Subscribers(), ShouldEqual, 1)
			So(s.Color.Subscribers(), ShouldEqual, 1)
		})
	})

	Convey("Given configured defaults outside the catalogs", t, func() {
		s := lo.Must(New(Options{
			Font:  "Wingdings",
			Size:  "99",
			Color: "Magenta",
			Fonts: []string{"Futura", "Avenir"},
		}))

		Convey("Fonts fall back to the first entry when Helvetica is missing", func() {
			_, k := s.Font.Current()
			So(k, ShouldEqual, "Futura")
		})

		Convey("Size and color fall back to the built-in defaults", func() {
			_, size := s.Size.Current()
			_, c := s.Color.Current()
			So(size, ShouldEqual, "24")
			So(c, ShouldEqual, "Blue")
		})
	})

	Convey("Given duplicate configured fonts", t, func() {
		_, err := New(Options{Fonts: []string{"Arial", "Arial"}})

		Convey("Construction fails", func() {
			So(errors.Is(err, selection.ErrDuplicateKey), ShouldBeTrue)
		})
	})
}

func TestPick(t *testing.T) {
	Convey("Given a studio with a change listener", t, func() {
		s := lo.Must(New(Options{}))

		var seen []Preview
		s.OnChange(func(p Preview) { seen = append(seen, p) })

		Convey("Picking a font updates the preview", func() {
			So(s.Pick(Font, "Courier"), ShouldBeNil)
			So(seen, ShouldHaveLength, 1)
			So(seen[0].Font, ShouldEqual, "Courier")
		})

		Convey("Picking a size updates the point size", func() {
			So(s.Pick(Size, "48"), ShouldBeNil)
			So(s.Preview().PointSize, ShouldEqual, 48)
		})

		Convey("Picking a color updates the swatch", func() {
			So(s.Pick(Color, "Red"), ShouldBeNil)
			So(s.Preview().Color.Name, ShouldEqual, "Red")
			So(s.Preview().Color.Hex, ShouldEqual, "#ff3b30")
		})

		Convey("Picking an unknown key is reported and changes nothing", func() {
			err := s.Pick(Size, "99")
			So(errors.Is(err, selection.ErrUnknownOptionKey), ShouldBeTrue)
			So(s.Preview().Size, ShouldEqual, "24")
			So(seen, ShouldBeEmpty)
		})

		Convey("Editing the text refreshes listeners", func() {
			s.SetText("hello")
			So(s.Text(), ShouldEqual, "hello")
			So(seen, ShouldHaveLength, 1)
			So(seen[0].Text, ShouldEqual, "hello")
		})

		Convey("Close detaches everything", func() {
			s.Close()
			So(s.Font.Subscribers(), ShouldEqual, 0)

			So(s.Pick(Font, "Arial"), ShouldBeNil)
			So(seen, ShouldBeEmpty)
		})
	})

	Convey("Given a size catalog with a non-numeric entry", t, func() {
		s := lo.Must(New(Options{Sizes: []string{"12", "huge", "24"}}))

		Convey("Choosing it keeps the previous numeric size", func() {
			So(s.Pick(Size, "12"), ShouldBeNil)
			So(s.Pick(Size, "huge"), ShouldBeNil)

			p := s.Preview()
			So(p.Size, ShouldEqual, "huge")
			So(p.PointSize, ShouldEqual, 12)
		})
	})
}

func TestOpen(t *testing.T) {
	Convey("Given an open color picker", t, func() {
		s := lo.Must(New(Options{}))
		p := lo.Must(s.Open(Color))

		Convey("It exposes swatches and the current key", func() {
			So(p.Attribute(), ShouldEqual, Color)
			So(p.Current(), ShouldEqual, "Blue")

			options := p.Options()
			So(options, ShouldHaveLength, 4)
			So(options[0].Key, ShouldEqual, "Red")
			So(options[0].Swatch, ShouldNotBeNil)
			So(options[0].Swatch.Hex, ShouldEqual, "#ff3b30")
		})

		Convey("Cancel closes it without a change", func() {
			So(p.Cancel(), ShouldBeNil)
			So(p.State(), ShouldEqual, selection.Cancelled)
			So(errors.Is(p.Choose("Red"), selection.ErrSessionAlreadyClosed), ShouldBeTrue)
			So(s.Preview().Color.Name, ShouldEqual, "Blue")
		})

		Convey("Choose resolves it", func() {
			So(p.Choose("Yellow"), ShouldBeNil)
			So(p.State(), ShouldEqual, selection.Resolved)
			So(s.Preview().Color.Name, ShouldEqual, "Yellow")
		})
	})

	Convey("Font options carry no swatch", t, func() {
		s := lo.Must(New(Options{}))
		p := lo.Must(s.Open(Font))
		So(p.Options()[0].Swatch, ShouldBeNil)
	})

	Convey("Unknown attributes cannot be opened", t, func() {
		s := lo.Must(New(Options{}))
		_, err := s.Open(Attribute(7))
		So(err, ShouldNotBeNil)
	})
}

func TestAttribute(t *testing.T) {
	Convey("ParseAttribute", t, func() {
		So(lo.Must(ParseAttribute("fonts")), ShouldEqual, Font)
		So(lo.Must(ParseAttribute(" Size ")), ShouldEqual, Size)
		So(lo.Must(ParseAttribute("COLOR")), ShouldEqual, Color)

		_, err := ParseAttribute("weight")
		So(err, ShouldNotBeNil)
	})

	Convey("Filter", t, func() {
		s := lo.Must(New(Options{}))
		So(s.Filter(Font, "gill"), ShouldResemble, []string{"Gill Sans"})
		So(s.Filter(Color, "bl"), ShouldResemble, []string{"Blue", "Black"})
		So(s.Filter(Size, "6"), ShouldResemble, []string{"16", "36", "60"})
	})
}

func TestParsePointSize(t *testing.T) {
	Convey("ParsePointSize", t, func() {
		So(ParsePointSize("36", 24), ShouldEqual, 36)
		So(ParsePointSize("abc", 24), ShouldEqual, 24)
		So(ParsePointSize("-4", 18), ShouldEqual, 18)
		So(ParsePointSize("", 12), ShouldEqual, 12)
	})
}

func TestFromConfig(t *testing.T) {
	Convey("Given configured overrides", t, func() {
		viper.Set(key.DefaultsFont, "Avenir")
		viper.Set(key.DefaultsText, "Hello")
		viper.Set(key.CatalogSizes, []string{"10", "20"})
		viper.Set(key.DefaultsSize, "20")

		s := lo.Must(FromConfig())

		Convey("The studio uses them", func() {
			p := s.Preview()
			So(p.Font, ShouldEqual, "Avenir")
			So(p.Text, ShouldEqual, "Hello")
			So(p.PointSize, ShouldEqual, 20)
			So(s.Keys(Size), ShouldResemble, []string{"10", "20"})
		})

		Reset(func() {
			viper.Set(key.DefaultsFont, constant.DefaultFont)
			viper.Set(key.DefaultsText, constant.DefaultText)
			viper.Set(key.CatalogSizes, []string{})
			viper.Set(key.DefaultsSize, constant.DefaultSize)
		})
	})
}
