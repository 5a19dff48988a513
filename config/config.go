// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stylepick/stylepick/constant"
	"github.com/stylepick/stylepick/filesystem"
	"github.com/stylepick/stylepick/where"
)

// EnvKeyReplacer normalizes configuration keys into environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and env bindings, then reads stylepick.toml if one exists.
func Setup() error {
	viper.SetConfigName(constant.Stylepick)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Stylepick)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}

// Write persists the in-memory configuration, creating the file when it does not exist yet.
func Write() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}

	return err
}

// StringList returns the configured list under key with blanks and duplicates removed,
// or fallback when nothing usable is configured.
func StringList(key string, fallback []string) []string {
	values := lo.Uniq(lo.Compact(lo.Map(viper.GetStringSlice(key), func(s string, _ int) string {
		return strings.TrimSpace(s)
	})))

	if len(values) == 0 {
		return fallback
	}

	return values
}
