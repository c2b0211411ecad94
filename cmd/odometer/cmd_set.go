package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/levicook/odometer/internal/workspace"
)

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [version]",
		Short: "Set an explicit version on the selected packages",
		Long: `Set an explicit version on the selected packages.

The version must be a full semantic version such as 1.4.0 or 2.0.0-rc.1.
With --interactive and no argument the version is prompted for.`,
		Example: `  odometer set 2.0.0 -p lib
  odometer set 1.0.0-rc.1 --workspace --exclude internal-tools
  odometer set -i`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSet,
	}
	addSelectionFlags(cmd)
	addFormatFlag(cmd, "simple or json")
	addMutationFlags(cmd)
	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	interactive, _ := cmd.Flags().GetBool("interactive")
	if len(args) == 0 && !interactive {
		return errors.New("missing version: pass one or use --interactive")
	}

	s, err := prepareMutation(cmd)
	if err != nil {
		return err
	}
	ws, err := s.load()
	if err != nil {
		return err
	}
	sel := selectionFromFlags(cmd.Flags(), s.cfg.Exclude)

	var target string
	if len(args) == 1 {
		target = args[0]
	} else {
		target, err = versionPrompt(cmd.InOrStdin(), cmd.ErrOrStderr(), "New version", currentVersion(ws, sel))
		if err != nil {
			return err
		}
	}

	result, err := ws.Set(target, sel)
	if err != nil {
		return err
	}
	return commit(cmd, s, ws, result)
}

// currentVersion returns the version of the first selected member, used as
// the prompt placeholder.
func currentVersion(ws *workspace.Workspace, sel workspace.Selection) string {
	members, err := ws.Show(sel)
	if err != nil || len(members) == 0 {
		return ""
	}
	return members[0].Version.Value
}
