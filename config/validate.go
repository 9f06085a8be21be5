package config

import (
	"fmt"

	"github.com/Klingon-tech/seed-utils/internal/log"
	"github.com/Klingon-tech/seed-utils/pkg/types"
)

// MaxWorkers caps the derivation fan-out.
const MaxWorkers = 256

// Validate checks config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if !cfg.Network.Valid() {
		return fmt.Errorf("network must be %q or %q, got %q", types.Mainnet, types.Testnet, cfg.Network)
	}
	if cfg.Workers < 0 || cfg.Workers > MaxWorkers {
		return fmt.Errorf("workers must be in range [0, %d]", MaxWorkers)
	}

	if !cfg.Words.Child.Valid() {
		return fmt.Errorf("words.child must be 12, 18 or 24")
	}
	if cfg.Words.Extend != types.Words18 && cfg.Words.Extend != types.Words24 {
		return fmt.Errorf("words.extend must be 18 or 24")
	}
	if cfg.Words.Truncate != types.Words12 && cfg.Words.Truncate != types.Words18 {
		return fmt.Errorf("words.truncate must be 12 or 18")
	}

	if !log.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn or error")
	}
	return nil
}
