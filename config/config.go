// Package config loads the optional TOML run-configuration file (§10).
// Its presence is never required: CLI flags and compiled-in defaults
// are sufficient to run the core, and a missing file is not an error.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"mos6502/emu/log"
)

// DefaultCycleBudget matches §6's suggested default compile-time
// constant for the drive loop's cycle budget.
const DefaultCycleBudget = 10_000

// DefaultPath is the config file looked up when the CLI does not
// override it with --config. Unlike the teacher's emu/config.go, this
// is a fixed relative path rather than an OS-specific config
// directory — github.com/kirsle/configdir, which the teacher reaches
// for to resolve that directory, is not a dependency this module
// declares (see DESIGN.md).
const DefaultPath = "6502.toml"

// Config carries the run parameters that would otherwise clutter the
// CLI surface.
type Config struct {
	CycleBudget      int      `toml:"cycle_budget"`
	ProgramPath      string   `toml:"program_path"`
	EnableExtensions bool     `toml:"enable_extensions"`
	LogModules       []string `toml:"log_modules"`
}

// Default returns the built-in configuration used when no file is
// present.
func Default() Config {
	return Config{
		CycleBudget:      DefaultCycleBudget,
		EnableExtensions: true,
	}
}

// Load reads and decodes path. A missing file is not an error: it
// yields Default() (teacher's LoadConfigOrDefault behavior, §10).
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		log.ModCore.WithField("path", path).Warnf("malformed config file, using defaults: %v", err)
		return Default(), nil
	}
	return cfg, nil
}
