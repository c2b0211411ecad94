package main

import (
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync <version>",
		Short: "Set every package in the workspace to one version",
		Long: `Set every package in the workspace to one version.

Packages that inherit their version from the workspace, or have none, are
left alone. Selection flags and config excludes do not apply.`,
		Example: `  odometer sync 1.0.0
  odometer sync 2.0.0-beta.1 --dry-run --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runSync,
	}
	addFormatFlag(cmd, "simple or json")
	addMutationFlags(cmd)
	return cmd
}

func runSync(cmd *cobra.Command, args []string) error {
	s, err := prepareMutation(cmd)
	if err != nil {
		return err
	}
	ws, err := s.load()
	if err != nil {
		return err
	}

	result, err := ws.Sync(args[0])
	if err != nil {
		return err
	}
	return commit(cmd, s, ws, result)
}
