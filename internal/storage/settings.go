package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// settingsFile is the name of the user settings file in the home
	// directory. It is user-managed and never written by noitasave.
	settingsFile = ".noitasave.yaml"

	// rootEnvVar overrides the storage root when set. Mainly for tests
	// and scripted use.
	rootEnvVar = "NOITASAVE_HOME"

	// defaultRootDirName is the managed storage directory under $HOME.
	defaultRootDirName = ".noitasave"
)

// Color output modes for the settings file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Settings represents user settings from ~/.noitasave.yaml.
type Settings struct {
	// StorageRoot overrides where managed storage lives.
	StorageRoot string `yaml:"storage_root"`

	// Color controls colored output: auto, always, or never.
	Color string `yaml:"color"`
}

// DefaultSettings returns a Settings with default values.
func DefaultSettings() *Settings {
	return &Settings{Color: ColorAuto}
}

// LoadSettings loads ~/.noitasave.yaml if it exists, otherwise returns
// defaults. Partial files are merged with defaults.
func LoadSettings() (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultSettings(), nil
	}
	return loadSettingsFrom(filepath.Join(home, settingsFile))
}

func loadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg := DefaultSettings()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	return cfg, nil
}

// ResolveRoot determines the managed storage root. Precedence:
// NOITASAVE_HOME, then the settings file, then ~/.noitasave.
func ResolveRoot(settings *Settings) (string, error) {
	if root := os.Getenv(rootEnvVar); root != "" {
		return root, nil
	}
	if settings != nil && settings.StorageRoot != "" {
		return settings.StorageRoot, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, defaultRootDirName), nil
}
