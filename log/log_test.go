package log

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/stylepick/stylepick/filesystem"
	"github.com/stylepick/stylepick/key"
	"github.com/stylepick/stylepick/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)

		Convey("Setup succeeds and nothing is written", func() {
			So(Setup(), ShouldBeNil)
			Info("dropped")

			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(files, ShouldBeEmpty)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		viper.Set(key.LogsJson, false)

		Convey("Setup writes to a dated file", func() {
			So(Setup(), ShouldBeNil)
			Debugf("font set to %s", "Courier")

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data := lo.Must(filesystem.API().ReadFile(path))
			So(string(data), ShouldContainSubstring, "font set to Courier")
		})

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			_ = Setup()
		})
	})

	Convey("Given a JSON configuration", t, func() {
		viper.Set(key.LogsJson, true)
		viper.Set(key.LogsLevel, "not-a-level")

		var buf bytes.Buffer
		So(configure(&buf), ShouldBeNil)

		Convey("An unknown level falls back to info", func() {
			Debug("hidden")
			WithFields(Fields{"attribute": "color"}).Info("shown")

			So(buf.String(), ShouldNotContainSubstring, "hidden")
			So(buf.String(), ShouldContainSubstring, `"attribute":"color"`)
		})

		Reset(func() {
			viper.Set(key.LogsJson, false)
			viper.Set(key.LogsLevel, "info")
			logger = newDiscard()
		})
	})
}
