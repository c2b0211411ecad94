package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "odometer",
		Short:         "Keep package versions in sync across a Cargo and npm workspace",
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("root", ".", "Workspace root directory")
	pf.String("config", "", "Config file (default <root>/.odometer.yaml)")
	pf.String("log-level", "", "Log level: trace, debug, info, warn, error or disabled (default from config, else warn)")
	pf.StringArray("ignore", nil, "Extra glob of paths to skip, relative to the root (repeatable)")
	pf.Bool("hidden", false, "Skip hidden files and directories")

	cmd.AddCommand(
		newRollCmd(),
		newSetCmd(),
		newSyncCmd(),
		newShowCmd(),
		newLintCmd(),
	)

	return cmd
}
