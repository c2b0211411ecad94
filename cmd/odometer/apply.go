package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/levicook/odometer/internal/config"
	"github.com/levicook/odometer/internal/ui"
	"github.com/levicook/odometer/internal/workspace"
)

// commit persists a successful operation unless --dry-run is set or the
// user declines the --interactive confirmation, then prints the result.
func commit(cmd *cobra.Command, s *session, ws *workspace.Workspace, result *workspace.OperationResult) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	interactive, _ := cmd.Flags().GetBool("interactive")
	format, err := s.format(cmd, config.FormatSimple, config.FormatJSON)
	if err != nil {
		return err
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	log := zerolog.Ctx(s.ctx)

	if interactive && !dryRun && len(result.Changes) > 0 {
		p := ui.NewPrinter(errOut)
		_, _ = fmt.Fprintln(errOut, p.Header("Pending changes ("+result.Operation+"):"))
		if err := printResult(errOut, p, result, config.FormatSimple); err != nil {
			return err
		}
		ok, err := confirmPrompt(cmd.InOrStdin(), errOut, fmt.Sprintf("Write %d change(s)?", len(result.Changes)))
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(errOut, errAborted)
			return nil
		}
	}

	if dryRun {
		log.Info().Str("operation", result.Operation).Msg("dry run, nothing written")
	} else if err := ws.Save(s.ctx); err != nil {
		return err
	}

	if err := printResult(out, ui.NewPrinter(out), result, format); err != nil {
		return err
	}
	if dryRun && format == config.FormatSimple {
		_, _ = fmt.Fprintln(errOut, "dry run: no files written")
	}
	return nil
}

// prepareMutation runs the checks shared by roll, set and sync before the
// workspace is loaded.
func prepareMutation(cmd *cobra.Command) (*session, error) {
	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		if err := requireTerminal(); err != nil {
			return nil, err
		}
	}
	return newSession(cmd)
}
