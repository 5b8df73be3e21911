package version

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// TestFull reports build metadata and the marker contract.
func TestFull(t *testing.T) {
	t.Parallel()

	full := Full()

	require.NotEmpty(t, Short())
	require.Contains(t, full, Short())
	require.Contains(t, full, "commit: "+Commit)
	require.Contains(t, full, "marker: ConfigProperty.value")
	require.Contains(t, full, "hash seed: 1335633679")
}

// TestAttachCobraVersionCommand runs the subcommand in both forms.
func TestAttachCobraVersionCommand(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		Full() + "\n":  {"version"},
		Short() + "\n": {"version", "--short"},
	}
	for want, args := range cases {
		root := &cobra.Command{Use: "config-property"}
		AttachCobraVersionCommand(root)

		var out bytes.Buffer
		root.SetOut(&out)
		root.SetArgs(args)

		require.NoError(t, root.Execute())
		require.Equal(t, want, out.String())
	}
}
