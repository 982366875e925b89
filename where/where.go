// Package where resolves the directories vidplay reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/vidplay-cli/vidplay/constant"
	"github.com/vidplay-cli/vidplay/filesystem"
)

// EnvConfigPath overrides the config directory when set.
const EnvConfigPath = "VIDPLAY_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the configuration directory, honouring VIDPLAY_CONFIG_PATH and XDG_CONFIG_HOME.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.App))
}

// Logs returns the directory daily log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Temp returns the directory for IPC sockets and other throwaway files.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.App))
}
