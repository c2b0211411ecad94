package main

import (
	"github.com/spf13/cobra"

	"github.com/levicook/odometer/internal/config"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show package versions",
		Long: `Show the version of every selected package. Without a selection flag
the whole workspace is shown. Packages without a version of their own are
omitted.`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}
	addSelectionFlags(cmd)
	addFormatFlag(cmd, "simple, json or table")
	return cmd
}

func runShow(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	format, err := s.format(cmd, config.FormatSimple, config.FormatJSON, formatTable)
	if err != nil {
		return err
	}
	ws, err := s.load()
	if err != nil {
		return err
	}

	members, err := ws.Show(selectionFromFlags(cmd.Flags(), s.cfg.Exclude).OrWorkspace())
	if err != nil {
		return err
	}
	return printMembers(cmd.OutOrStdout(), members, format)
}
