package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/levicook/odometer/internal/version"
)

func newRollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roll <major|minor|patch> [amount]",
		Short: "Increment or decrement a version component",
		Long: `Increment or decrement a version component.

Lower components are reset when a higher one changes: rolling minor resets
patch, rolling major resets minor and patch. Pre-release and build metadata
are kept. A negative amount decrements and fails if the component would go
below zero.

By default only the first package (by name) is changed.`,
		Example: `  odometer roll patch --workspace
  odometer roll minor -p api -p web
  odometer roll patch -2
  odometer roll major --by -1 --dry-run`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"major", "minor", "patch"},
		RunE:      runRoll,
	}
	cmd.Flags().Int("by", 1, "Amount to add to the component; negative decrements")
	addSelectionFlags(cmd)
	addFormatFlag(cmd, "simple or json")
	addMutationFlags(cmd)
	return cmd
}

func runRoll(cmd *cobra.Command, args []string) error {
	amount, _ := cmd.Flags().GetInt("by")
	if len(args) == 2 {
		if cmd.Flags().Changed("by") {
			return errors.New("amount given both as argument and with --by")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid amount %q: must be an integer", args[1])
		}
		amount = n
	}
	bump, err := version.ParseBump(args[0], amount)
	if err != nil {
		return err
	}

	s, err := prepareMutation(cmd)
	if err != nil {
		return err
	}
	ws, err := s.load()
	if err != nil {
		return err
	}

	result, err := ws.Roll(bump, selectionFromFlags(cmd.Flags(), s.cfg.Exclude))
	if err != nil {
		return err
	}
	return commit(cmd, s, ws, result)
}
