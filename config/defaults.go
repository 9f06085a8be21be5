package config

import "github.com/Klingon-tech/seed-utils/pkg/types"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Network: types.Mainnet,
		Workers: 0,
		Words: WordsConfig{
			Child:    types.Words24,
			Extend:   types.Words24,
			Truncate: types.Words12,
		},
		Log: LogConfig{
			Level: "warn",
			JSON:  false,
		},
	}
}
