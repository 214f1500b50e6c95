package cli

import (
	"github.com/spf13/cobra"
)

// Root returns the seqbench command tree.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Time the lazy pipeline and quicksort scenarios",
		SilenceErrors: true,
	}
	cmd.AddCommand(
		Run(),
		List(),
		Version(),
	)
	return cmd
}
