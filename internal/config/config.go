package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds runtime settings for the executor.
type Config struct {
	CommandTimeout time.Duration
	VerifyTimeout  time.Duration
	ArtifactDir    string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		CommandTimeout: 300 * time.Second,
		VerifyTimeout:  300 * time.Second,
		ArtifactDir:    ".planrun",
	}
}

// planrun.toml key mapping.
type fileConfig struct {
	CommandTimeoutSeconds int    `toml:"command_timeout_seconds"`
	VerifyTimeoutSeconds  int    `toml:"verify_timeout_seconds"`
	ArtifactDir           string `toml:"artifact_dir"`
}

// Load reads a TOML config file and overlays it on the defaults. Only keys
// present in the file override; absent keys keep their default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("command_timeout_seconds") {
		if raw.CommandTimeoutSeconds <= 0 {
			return Config{}, fmt.Errorf("load config: command_timeout_seconds must be positive")
		}
		cfg.CommandTimeout = time.Duration(raw.CommandTimeoutSeconds) * time.Second
	}
	if meta.IsDefined("verify_timeout_seconds") {
		if raw.VerifyTimeoutSeconds <= 0 {
			return Config{}, fmt.Errorf("load config: verify_timeout_seconds must be positive")
		}
		cfg.VerifyTimeout = time.Duration(raw.VerifyTimeoutSeconds) * time.Second
	}
	if meta.IsDefined("artifact_dir") {
		cfg.ArtifactDir = raw.ArtifactDir
	}
	return cfg, nil
}
