package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stylepick/stylepick/constant"
	"github.com/stylepick/stylepick/filesystem"
	"github.com/stylepick/stylepick/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate every registered default", func() {
			So(Setup(), ShouldBeNil)
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
			So(viper.GetString(key.DefaultsFont), ShouldEqual, constant.DefaultFont)
			So(viper.GetString(key.DefaultsSize), ShouldEqual, constant.DefaultSize)
			So(viper.GetString(key.DefaultsColor), ShouldEqual, constant.DefaultColor)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("defaults.font"), ShouldEqual, "defaults_font")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the default font field", t, func() {
		f := Default[key.DefaultsFont]

		Convey("Env is prefixed and upper-cased", func() {
			So(f.Env(), ShouldEqual, "STYLEPICK_DEFAULTS_FONT")
		})

		Convey("Pretty mentions the key", func() {
			So(f.Pretty(), ShouldContainSubstring, key.DefaultsFont)
		})
	})
}

func TestStringList(t *testing.T) {
	Convey("StringList", t, func() {
		fallback := []string{"a", "b"}

		Convey("Falls back when unset or blank", func() {
			viper.Set(key.CatalogFonts, []string{" ", ""})
			So(StringList(key.CatalogFonts, fallback), ShouldResemble, fallback)
		})

		Convey("Trims and de-duplicates configured values", func() {
			viper.Set(key.CatalogFonts, []string{" Futura", "Avenir", "Futura "})
			So(StringList(key.CatalogFonts, fallback), ShouldResemble, []string{"Futura", "Avenir"})
		})

		Reset(func() {
			viper.Set(key.CatalogFonts, []string{})
		})
	})
}

func TestAccepts(t *testing.T) {
	Convey("Enumerated fields only accept their options", t, func() {
		color := Default[key.DefaultsColor]
		So(color.Accepts("Red"), ShouldBeTrue)
		So(color.Accepts("Magenta"), ShouldBeFalse)

		text := Default[key.DefaultsText]
		So(text.Accepts("anything at all"), ShouldBeTrue)
	})
}
