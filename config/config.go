// Package config handles seedutil configuration.
//
// Values are layered: built-in defaults, then an optional key = value
// config file, then command-line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/Klingon-tech/seed-utils/pkg/types"
)

// Config holds runtime settings shared by every command.
type Config struct {
	Network types.Network `conf:"network"`
	Workers int           `conf:"workers"` // derivation goroutines, 0 = one per CPU

	// Default word counts per command
	Words WordsConfig

	// Logging
	Log LogConfig
}

// WordsConfig holds the default target length of each seed command.
type WordsConfig struct {
	Child    types.WordCount `conf:"words.child"`
	Extend   types.WordCount `conf:"words.extend"`
	Truncate types.WordCount `conf:"words.truncate"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// ConfigFileName is the name of the config file inside the data directory.
const ConfigFileName = "seedutil.conf"

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.seedutil
//	macOS:   ~/Library/Application Support/Seedutil
//	Windows: %APPDATA%\Seedutil
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seedutil"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Seedutil")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Seedutil")
		}
		return filepath.Join(home, "AppData", "Roaming", "Seedutil")
	default:
		return filepath.Join(home, ".seedutil")
	}
}

// DefaultConfigFile returns the config file path inside DefaultDataDir.
func DefaultConfigFile() string {
	return filepath.Join(DefaultDataDir(), ConfigFileName)
}
