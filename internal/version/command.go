package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AttachCobraVersionCommand adds a `version` subcommand to root.
// The subcommand prints Full, or only Short with --short.
func AttachCobraVersionCommand(root *cobra.Command) {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build and marker contract information.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			text := Full()
			if short {
				text = Short()
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the semantic version")

	root.Version = Short()
	root.AddCommand(cmd)
}
