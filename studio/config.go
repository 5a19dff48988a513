package studio

import (
	"github.com/spf13/viper"
	"github.com/stylepick/stylepick/config"
	"github.com/stylepick/stylepick/constant"
	"github.com/stylepick/stylepick/key"
)

// OptionsFromConfig reads studio options from the active viper configuration.
func OptionsFromConfig() Options {
	return Options{
		Text:  viper.GetString(key.DefaultsText),
		Font:  viper.GetString(key.DefaultsFont),
		Size:  viper.GetString(key.DefaultsSize),
		Color: viper.GetString(key.DefaultsColor),
		Fonts: config.StringList(key.CatalogFonts, constant.Fonts),
		Sizes: config.StringList(key.CatalogSizes, constant.Sizes),
	}
}

// FromConfig builds a Studio seeded from configuration.
func FromConfig() (*Studio, error) {
	return New(OptionsFromConfig())
}
