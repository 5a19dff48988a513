// Package where resolves the filesystem locations stylepick reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/stylepick/stylepick/constant"
	"github.com/stylepick/stylepick/filesystem"
)

// EnvConfigPath overrides the configuration directory when set.
const EnvConfigPath = "STYLEPICK_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honouring STYLEPICK_CONFIG_PATH
// before falling back to the platform user config directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Stylepick))
}

// ConfigFile returns the path of stylepick.toml inside Config.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Stylepick+".toml")
}

// Logs returns the directory daily log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}
