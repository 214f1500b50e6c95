package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/bench"
)

// List returns the list subcommand.
func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range bench.ScenarioNames() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
