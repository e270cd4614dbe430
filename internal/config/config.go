package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the optional repo-local configuration, read from
// codeowners-gate.toml at the repository root. Every field has a default;
// the file itself is optional.
type Config struct {
	// CodeownersFile pins an explicit rule-file path, skipping discovery.
	CodeownersFile string `toml:"codeowners_file"`
	// Ignore lists path prefixes excluded from the diff.
	Ignore []string `toml:"ignore"`
	// Enforcement controls how a failing decision is surfaced.
	Enforcement *Enforcement `toml:"enforcement"`
}

type Enforcement struct {
	// FailCheck makes a failing decision fail the process (exit 1). When
	// false the action output alone carries the verdict.
	FailCheck bool `toml:"fail_check"`
}

const configFileName = "codeowners-gate.toml"

// Read loads the config from the repo directory. A missing file yields
// defaults with a nil error; an unreadable or invalid file yields defaults
// with the error so the caller can warn and continue.
func Read(dir string) (*Config, error) {
	defaultConfig := &Config{
		Ignore:      []string{},
		Enforcement: &Enforcement{FailCheck: true},
	}

	fileName := filepath.Join(dir, configFileName)
	if _, err := os.Stat(fileName); errors.Is(err, os.ErrNotExist) {
		return defaultConfig, nil
	}
	file, err := os.ReadFile(fileName)
	if err != nil {
		return defaultConfig, err
	}
	config := defaultConfig
	if err = toml.Unmarshal(file, &config); err != nil {
		return defaultConfig, err
	}
	if config.Enforcement == nil {
		config.Enforcement = &Enforcement{FailCheck: true}
	}
	return config, nil
}
