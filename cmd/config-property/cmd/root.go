package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/config-property/internal/config"
	"github.com/oshokin/config-property/internal/logger"
	"github.com/oshokin/config-property/internal/service/lookup"
	"github.com/oshokin/config-property/internal/version"
)

var (
	// configPath to the YAML properties file.
	configPath string
	// logLevel overrides log_level from the properties file.
	logLevel string

	// rootCmd groups the property commands.
	rootCmd = &cobra.Command{
		Use:   "config-property",
		Short: "Resolve configuration values by named property marker.",
		Long: `Loads named configuration properties from a YAML file and resolves them
by property marker, the same key a program uses to look a value up.

Markers are equal by name and hash as (127 * hash("value")) ^ hash(name),
so a marker built at runtime and one declared in a struct tag are interchangeable.`,
		SilenceUsage: true,
	}

	// getCmd prints one property value.
	getCmd = &cobra.Command{
		Use:   "get NAME",
		Short: "Print the value bound to a property.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lookup.Get(cmd.Context(), cmd.OutOrStdout(), options(), args[0])
		},
	}

	// listCmd prints every property.
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print all properties as name=value, sorted by name.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return lookup.List(cmd.Context(), cmd.OutOrStdout(), options())
		},
	}

	// describeCmd prints the marker built for a name.
	describeCmd = &cobra.Command{
		Use:   "describe NAME",
		Short: "Print the marker, hash code and type for a property name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return lookup.Describe(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
)

// Execute runs the config-property CLI and exits with non-zero status on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.ErrorKV(ctx, "Command failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// options collects the persistent flags.
func options() *lookup.Options {
	return &lookup.Options{
		ConfigPath: configPath,
		LogLevel:   logLevel,
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to properties file")
	rootCmd.PersistentFlags().
		StringVarP(&logLevel, "log-level", "l", "", "log level override, rejected if unknown (debug, info, warn, error)")

	rootCmd.AddCommand(getCmd, listCmd, describeCmd)
}
