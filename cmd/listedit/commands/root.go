package commands

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	uploadDir  string
	logFile    string
	watch      bool
)

func Execute() error {
	root := newRootCmd()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "listedit",
		Short:        "Edit the list of uploaded files in display rotation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "listedit.yaml", "config file (ignored when missing)")
	root.Flags().StringVarP(&uploadDir, "dir", "d", "", "upload directory (default from config, then static/uploads)")
	root.Flags().StringVar(&logFile, "log-file", "listedit.log", "log file; empty disables logging")
	root.Flags().BoolVarP(&watch, "watch", "w", false, "refresh upload suggestions when the directory changes")

	root.AddCommand(versionCmd())
	return root
}
