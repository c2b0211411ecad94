package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/levicook/odometer/internal/config"
	"github.com/levicook/odometer/internal/ui"
	"github.com/levicook/odometer/internal/workspace"
)

type memberOutput struct {
	Package   string `json:"package"`
	Version   string `json:"version"`
	Ecosystem string `json:"ecosystem"`
	Path      string `json:"path"`
}

type lintOutput struct {
	Valid  bool                  `json:"valid"`
	Errors []workspace.LintError `json:"errors"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResult(w io.Writer, p ui.Printer, result *workspace.OperationResult, format string) error {
	if format == config.FormatJSON {
		return writeJSON(w, result)
	}
	for _, c := range result.Changes {
		if _, err := fmt.Fprintln(w, p.Change(c.Package, c.OldVersion, c.NewVersion)); err != nil {
			return err
		}
	}
	return nil
}

func printMembers(w io.Writer, members []workspace.Member, format string) error {
	switch format {
	case config.FormatJSON:
		out := make([]memberOutput, 0, len(members))
		for _, m := range members {
			out = append(out, memberOutput{
				Package:   m.Name,
				Version:   m.Version.Value,
				Ecosystem: m.Ecosystem(),
				Path:      m.Dir,
			})
		}
		return writeJSON(w, out)
	case formatTable:
		tbl := ui.NewTable(w, "PACKAGE", "VERSION", "ECOSYSTEM", "PATH")
		for _, m := range members {
			tbl.Row(m.Name, m.Version.Value, m.Ecosystem(), m.Dir)
		}
		return tbl.Flush()
	default:
		for _, m := range members {
			if _, err := fmt.Fprintf(w, "%s: %s\n", m.Name, m.Version.Value); err != nil {
				return err
			}
		}
		return nil
	}
}
