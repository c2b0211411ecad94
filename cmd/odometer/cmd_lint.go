package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/levicook/odometer/internal/config"
	"github.com/levicook/odometer/internal/ui"
)

func newLintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check that package versions are valid semantic versions",
		Long: `Check that every selected package version is a valid semantic version.
Without a selection flag the whole workspace is checked. Exits non-zero when
any version is invalid.`,
		Args: cobra.NoArgs,
		RunE: runLint,
	}
	addSelectionFlags(cmd)
	addFormatFlag(cmd, "simple or json")
	return cmd
}

func runLint(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	format, err := s.format(cmd, config.FormatSimple, config.FormatJSON)
	if err != nil {
		return err
	}
	ws, err := s.load()
	if err != nil {
		return err
	}

	problems, err := ws.Lint(selectionFromFlags(cmd.Flags(), s.cfg.Exclude).OrWorkspace())
	if err != nil {
		return err
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if format == config.FormatJSON {
		if err := writeJSON(out, lintOutput{Valid: len(problems) == 0, Errors: problems}); err != nil {
			return err
		}
	} else if len(problems) == 0 {
		_, _ = fmt.Fprintln(out, ui.NewPrinter(out).OK("All workspace versions are valid"))
	} else {
		p := ui.NewPrinter(errOut)
		for _, e := range problems {
			_, _ = fmt.Fprintln(errOut, p.Fail(e.Member, e.Message))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d invalid version(s) found", len(problems))
	}
	return nil
}
