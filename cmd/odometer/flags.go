package main

import (
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/levicook/odometer/internal/config"
	"github.com/levicook/odometer/internal/workspace"
)

const formatTable = "table"

func addSelectionFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringSliceP("package", "p", nil, "Select a package by name (repeatable)")
	fs.BoolP("workspace", "w", false, "Select every package in the workspace")
	fs.Bool("all", false, "Alias for --workspace")
	fs.StringSlice("exclude", nil, "Never select this package (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("package", "workspace")
	cmd.MarkFlagsMutuallyExclusive("package", "all")
}

func addFormatFlag(cmd *cobra.Command, formats string) {
	cmd.Flags().String("format", config.FormatSimple, "Output format: "+formats)
}

func addMutationFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Bool("dry-run", false, "Show the changes without writing any file")
	fs.BoolP("interactive", "i", false, "Confirm the changes before writing")
}

// selectionFromFlags builds a Selection from the selection flags. Excludes
// from the config file are merged with --exclude.
func selectionFromFlags(fs *pflag.FlagSet, cfgExclude []string) workspace.Selection {
	packages, _ := fs.GetStringSlice("package")
	wholeWorkspace, _ := fs.GetBool("workspace")
	all, _ := fs.GetBool("all")
	exclude, _ := fs.GetStringSlice("exclude")

	merged := slices.Clone(cfgExclude)
	for _, name := range exclude {
		if !slices.Contains(merged, name) {
			merged = append(merged, name)
		}
	}

	switch {
	case len(packages) > 0:
		return workspace.PackagesSelection(packages, merged...)
	case wholeWorkspace || all:
		return workspace.WorkspaceSelection(merged...)
	default:
		return workspace.DefaultSelection(merged...)
	}
}
