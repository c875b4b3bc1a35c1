package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/listedit"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the listedit version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), listedit.VersionTag())
			return err
		},
	}
}
