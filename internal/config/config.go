package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/config-property/internal/logger"
)

// Config holds the named configuration properties and CLI settings.
type Config struct {
	// Properties maps property names to their raw values.
	Properties map[string]string `yaml:"properties"`
	// LogLevel is the minimum level of log messages.
	LogLevel string `yaml:"log_level,omitempty"`
}

const (
	// DefaultConfigFilename is the default filename of the properties file.
	DefaultConfigFilename = "config-property.yaml"

	// DefaultLogLevel is used when the file does not set log_level.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the file permission for saved properties files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// ErrEmptyPropertyName is returned for a property with a blank name.
	ErrEmptyPropertyName = errors.New("property name must not be empty")
	// ErrUnknownLogLevel is returned when log_level is not a known level.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// Load reads the properties file at path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read properties: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal properties: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save validates cfg and writes it to path.
func Save(path string, cfg *Config) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal properties: %w", err)
	}

	// Property values may hold secrets.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write properties: %w", err)
	}

	return nil
}

// Validate checks cfg and fills defaults. Every problem found is reported.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	var err error

	for name := range cfg.Properties {
		if strings.TrimSpace(name) == "" {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrEmptyPropertyName, name))
		}
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(cfg.LogLevel); !ok {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrUnknownLogLevel, cfg.LogLevel))
	}

	if cfg.Properties == nil {
		cfg.Properties = make(map[string]string)
	}

	return err
}
