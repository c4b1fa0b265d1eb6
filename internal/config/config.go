package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Backend names accepted in storage.backend.
const (
	BackendYAML   = "yaml"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the application
type Config struct {
	Storage     StorageConfig
	Display     DisplayConfig
	Validation  ValidationConfig
	Application ApplicationConfig
	Tools       ToolsConfig
}

// StorageConfig selects and parameterizes the storage backend
type StorageConfig struct {
	Backend        string `env:"FOLIOT_STORAGE_BACKEND"`
	Dir            string `env:"FOLIOT_STORAGE_DIR"`
	SQLiteFilename string `env:"FOLIOT_STORAGE_SQLITE_FILENAME"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat  string `env:"FOLIOT_DISPLAY_TIME_FORMAT"`
	DefaultTail int    `env:"FOLIOT_DISPLAY_DEFAULT_TAIL"`
	WrapWidth   int    `env:"FOLIOT_DISPLAY_WRAP_WIDTH"`
}

// ValidationConfig holds entry validation configuration
type ValidationConfig struct {
	StrictSpan bool `env:"FOLIOT_VALIDATION_STRICT_SPAN"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"FOLIOT_APP_TIMEOUT"`
	Verbose bool          `env:"FOLIOT_APP_VERBOSE"`
}

// ToolsConfig holds external tool configuration
type ToolsConfig struct {
	Editor    string `env:"FOLIOT_TOOLS_EDITOR"`
	GitBinary string `env:"FOLIOT_TOOLS_GIT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:        BackendYAML,
			Dir:            filepath.Join(XDGDataHome(), "foliot"),
			SQLiteFilename: "foliot.db",
		},
		Display: DisplayConfig{
			TimeFormat:  "2006-01-02 15:04",
			DefaultTail: 30,
			WrapWidth:   80,
		},
		Validation: ValidationConfig{
			StrictSpan: false,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
			Verbose: false,
		},
		Tools: ToolsConfig{
			Editor:    "vi",
			GitBinary: "git",
		},
	}
}

// GetSQLitePath returns the full path to the sqlite database file
func (c *Config) GetSQLitePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.SQLiteFilename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("FOLIOT_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dir := os.Getenv("FOLIOT_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("FOLIOT_STORAGE_SQLITE_FILENAME"); filename != "" {
		c.Storage.SQLiteFilename = filename
	}

	// Display configuration
	if format := os.Getenv("FOLIOT_DISPLAY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if tail := os.Getenv("FOLIOT_DISPLAY_DEFAULT_TAIL"); tail != "" {
		if n, err := strconv.Atoi(tail); err == nil {
			c.Display.DefaultTail = n
		}
	}
	if wrap := os.Getenv("FOLIOT_DISPLAY_WRAP_WIDTH"); wrap != "" {
		if n, err := strconv.Atoi(wrap); err == nil {
			c.Display.WrapWidth = n
		}
	}

	// Validation configuration
	if strict := os.Getenv("FOLIOT_VALIDATION_STRICT_SPAN"); strict != "" {
		if b, err := strconv.ParseBool(strict); err == nil {
			c.Validation.StrictSpan = b
		}
	}

	// Application configuration
	if timeout := os.Getenv("FOLIOT_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("FOLIOT_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	// Tools configuration
	if editor := os.Getenv("FOLIOT_TOOLS_EDITOR"); editor != "" {
		c.Tools.Editor = editor
	}
	if git := os.Getenv("FOLIOT_TOOLS_GIT"); git != "" {
		c.Tools.GitBinary = git
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Backend != BackendYAML && c.Storage.Backend != BackendSQLite {
		return &ConfigError{Field: "storage.backend", Message: "backend must be 'yaml' or 'sqlite'"}
	}
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.SQLiteFilename == "" {
		return &ConfigError{Field: "storage.sqlite_filename", Message: "sqlite filename cannot be empty"}
	}
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Display.DefaultTail < 0 {
		return &ConfigError{Field: "display.default_tail", Message: "default tail cannot be negative"}
	}
	if c.Display.WrapWidth < 0 {
		return &ConfigError{Field: "display.wrap_width", Message: "wrap width cannot be negative"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	if c.Tools.Editor == "" {
		return &ConfigError{Field: "tools.editor", Message: "editor cannot be empty"}
	}
	if c.Tools.GitBinary == "" {
		return &ConfigError{Field: "tools.git_binary", Message: "git binary cannot be empty"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
