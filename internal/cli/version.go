package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"seqmatch/internal/version"
)

func newVersionCmd(e *runEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the seqmatch version",
		Args:  cobra.NoArgs,
		// No configuration is needed to print the version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(e.stdout, "seqmatch version %s\n", version.Version)
			if err != nil {
				return runtimeError(err)
			}
			return nil
		},
	}
}
