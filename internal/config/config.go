package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the immutable application settings loaded at startup.
type Config struct {
	DefaultDirectory string   `json:"default_directory"`
	PlayerCommand    string   `json:"player_command"`
	DataDirectory    string   `json:"data_directory"`
	FileTypeFilters  []string `json:"file_type_filters"`
}

var userHomeDirFn = os.UserHomeDir
var userConfigDirFn = os.UserConfigDir

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	base, err := userConfigDirFn()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, "mview", "config.json"), nil
}

// Defaults returns the built-in configuration used on first run.
func Defaults() Config {
	home, err := userHomeDirFn()
	if err != nil {
		home = "/"
	}
	dataDir := home
	if base, err := userConfigDirFn(); err == nil {
		dataDir = filepath.Join(base, "mview")
	}
	return Config{
		DefaultDirectory: home,
		PlayerCommand:    "mpv",
		DataDirectory:    dataDir,
		FileTypeFilters:  []string{".mp4", ".mkv", ".avi", ".webm", ".mov"},
	}
}

// Load reads the config file at path. A missing file is first-run
// initialization: defaults are written to disk and returned. Malformed JSON
// falls back to defaults with a warning on stderr rather than aborting
// startup; only a file that exists but cannot be read is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Defaults()
			if werr := Save(path, cfg); werr != nil {
				return cfg, fmt.Errorf("write default config: %w", werr)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "mview: config %s is malformed (%v), using defaults\n", path, err)
		return Defaults(), nil
	}

	defaults := Defaults()
	if cfg.DefaultDirectory == "" {
		cfg.DefaultDirectory = defaults.DefaultDirectory
	}
	if cfg.PlayerCommand == "" {
		cfg.PlayerCommand = defaults.PlayerCommand
	}
	if cfg.DataDirectory == "" {
		cfg.DataDirectory = defaults.DataDirectory
	}
	if cfg.FileTypeFilters == nil {
		cfg.FileTypeFilters = defaults.FileTypeFilters
	}
	return cfg, nil
}

// Save writes cfg to path atomically, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	data, err := json.MarshalIndent(&cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename tmp: %w", err)
	}
	return nil
}
