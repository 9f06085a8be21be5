package config

import "github.com/Klingon-tech/seed-utils/pkg/types"

// Flags holds the global command-line overrides.
// Zero values mean "not given" except where a Set* field says otherwise.
type Flags struct {
	Network  string
	Workers  int
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Explicitly-set flags (for zero-value overrides).
	SetWorkers bool
	SetLogJSON bool
}

// ApplyFlags applies command-line overrides on top of cfg.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.Network != "" {
		cfg.Network = types.Network(f.Network)
	}
	if f.SetWorkers {
		cfg.Workers = f.Workers
	}
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// Load builds the effective configuration: defaults, then the file at path,
// then flags. The result is validated.
func Load(path string, f *Flags) (*Config, error) {
	cfg := Default()
	values, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyFileConfig(cfg, values); err != nil {
		return nil, err
	}
	if f != nil {
		ApplyFlags(cfg, f)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
