package lookup

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/config-property/internal/binding"
	"github.com/oshokin/config-property/internal/config"
	"github.com/oshokin/config-property/internal/logger"
	"github.com/oshokin/config-property/internal/property"
)

// Options controls how the properties file is loaded.
type Options struct {
	// ConfigPath to the YAML properties file, defaults to the standard filename if empty.
	ConfigPath string
	// LogLevel overrides log_level from the file when set.
	LogLevel string
}

// Get writes the value bound to name.
func Get(ctx context.Context, w io.Writer, opts *Options, name string) error {
	ctx = logger.WithName(ctx, "get")

	ctx, registry, err := load(ctx, opts)
	if err != nil {
		return err
	}

	key := property.New(name)

	value, err := registry.Lookup(key)
	if err != nil {
		return err
	}

	logger.DebugKV(ctx, "Property resolved", "property", key.String())

	_, err = fmt.Fprintln(w, value)

	return err
}

// List writes every bound property as name=value, sorted by name.
func List(ctx context.Context, w io.Writer, opts *Options) error {
	ctx = logger.WithName(ctx, "list")

	ctx, registry, err := load(ctx, opts)
	if err != nil {
		return err
	}

	for _, key := range registry.Keys() {
		value, err := registry.Lookup(key)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, "%s=%s\n", key.Value(), value); err != nil {
			return err
		}
	}

	return nil
}

// Describe writes the marker for name: its string form, value, hash code and type.
func Describe(ctx context.Context, w io.Writer, name string) error {
	ctx = logger.WithName(ctx, "describe")

	p := property.New(name)

	logger.DebugKV(ctx, "Describing property", "property", p.String())

	_, err := fmt.Fprintf(w,
		"marker: %s\nvalue: %s\nhash: %d\ntype: %s\n",
		p, p.Value(), p.HashCode(), p.AnnotationType())

	return err
}

// load reads the properties file, scopes the log level to ctx and builds the registry.
// The --log-level override is validated like log_level in the file.
func load(ctx context.Context, opts *Options) (context.Context, *binding.Registry, error) {
	if opts == nil {
		opts = new(Options)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ctx, nil, fmt.Errorf("load properties: %w", err)
	}

	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}

	level, ok := logger.ParseLogLevel(levelName)
	if !ok {
		return ctx, nil, fmt.Errorf("log level override: %w: %q", config.ErrUnknownLogLevel, levelName)
	}

	ctx = logger.WithLevelContext(ctx, level)

	registry, err := binding.FromConfig(ctx, cfg)
	if err != nil {
		return ctx, nil, fmt.Errorf("bind properties: %w", err)
	}

	logger.DebugKV(ctx, "Properties loaded", "config", opts.ConfigPath, "count", registry.Len())

	return ctx, registry, nil
}
