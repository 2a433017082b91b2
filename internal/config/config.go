// Package config loads and saves fincalc preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all fincalc configuration.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Minimum  MinimumConfig  `toml:"minimum"`
	Mortgage MortgageConfig `toml:"mortgage"`
}

// GeneralConfig holds debt planning preferences.
type GeneralConfig struct {
	DefaultStrategy string   `toml:"default_strategy"`
	MonthlyBudget   *float64 `toml:"monthly_budget,omitempty"`
}

// MinimumConfig holds the minimum-payment heuristic: a percentage of the
// balance with a flat floor.
type MinimumConfig struct {
	Percent float64 `toml:"percent"`
	Flat    float64 `toml:"flat"`
}

// MortgageConfig holds mortgage calculator defaults.
type MortgageConfig struct {
	DefaultTermYears int     `toml:"default_term_years"`
	DefaultRate      float64 `toml:"default_rate,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultStrategy: "avalanche",
		},
		Minimum: MinimumConfig{
			Percent: 2,
			Flat:    25,
		},
		Mortgage: MortgageConfig{
			DefaultTermYears: 30,
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fincalc")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fincalc")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Exists reports whether a config file has been written.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}
