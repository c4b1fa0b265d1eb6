package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. All fields are
// optional; unset fields keep their defaults.
type FileConfig struct {
	Storage     StorageFileConfig     `toml:"storage"`
	Display     DisplayFileConfig     `toml:"display"`
	Validation  ValidationFileConfig  `toml:"validation"`
	Application ApplicationFileConfig `toml:"application"`
	Tools       ToolsFileConfig       `toml:"tools"`
}

// StorageFileConfig maps the [storage] section.
type StorageFileConfig struct {
	Backend        *string `toml:"backend"`
	Dir            *string `toml:"dir"`
	SQLiteFilename *string `toml:"sqlite-filename"`
}

// DisplayFileConfig maps the [display] section.
type DisplayFileConfig struct {
	TimeFormat  *string `toml:"time-format"`
	DefaultTail *int    `toml:"default-tail"`
	WrapWidth   *int    `toml:"wrap-width"`
}

// ValidationFileConfig maps the [validation] section.
type ValidationFileConfig struct {
	StrictSpan *bool `toml:"strict-span"`
}

// ApplicationFileConfig maps the [application] section.
type ApplicationFileConfig struct {
	Timeout *string `toml:"timeout"`
	Verbose *bool   `toml:"verbose"`
}

// ToolsFileConfig maps the [tools] section.
type ToolsFileConfig struct {
	Editor    *string `toml:"editor"`
	GitBinary *string `toml:"git"`
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "foliot", "config.toml")
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// LoadFile reads a TOML config from the given path. A missing file is
// not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Loader handles loading configuration from multiple sources
type Loader struct {
	configPath string
}

// NewLoader creates a new configuration loader using the default config
// file location.
func NewLoader() *Loader {
	return &Loader{configPath: DefaultConfigPath()}
}

// NewLoaderWithPath creates a loader reading the TOML file at path.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{configPath: path}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file
// 3. Override with environment variables
func (l *Loader) Load() (*Config, error) {
	config := NewConfig()

	file, err := LoadFile(l.configPath)
	if err != nil {
		return nil, err
	}
	applyFile(config, file)

	if err := config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyFile copies set file values onto the configuration.
func applyFile(config *Config, file FileConfig) {
	if file.Storage.Backend != nil {
		config.Storage.Backend = *file.Storage.Backend
	}
	if file.Storage.Dir != nil {
		config.Storage.Dir = *file.Storage.Dir
	}
	if file.Storage.SQLiteFilename != nil {
		config.Storage.SQLiteFilename = *file.Storage.SQLiteFilename
	}

	if file.Display.TimeFormat != nil {
		config.Display.TimeFormat = *file.Display.TimeFormat
	}
	if file.Display.DefaultTail != nil {
		config.Display.DefaultTail = *file.Display.DefaultTail
	}
	if file.Display.WrapWidth != nil {
		config.Display.WrapWidth = *file.Display.WrapWidth
	}

	if file.Validation.StrictSpan != nil {
		config.Validation.StrictSpan = *file.Validation.StrictSpan
	}

	if file.Application.Timeout != nil {
		if d, err := time.ParseDuration(*file.Application.Timeout); err == nil {
			config.Application.Timeout = d
		}
	}
	if file.Application.Verbose != nil {
		config.Application.Verbose = *file.Application.Verbose
	}

	if file.Tools.Editor != nil {
		config.Tools.Editor = *file.Tools.Editor
	}
	if file.Tools.GitBinary != nil {
		config.Tools.GitBinary = *file.Tools.GitBinary
	}
}
