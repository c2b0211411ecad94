package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/levicook/odometer/internal/version"
	"github.com/levicook/odometer/internal/workspace"
)

func TestRunRoll_workspace(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")

	out, _, err := execute(t, "--root", dir, "roll", "patch", "--workspace")
	if err != nil {
		t.Fatalf("roll failed: %v", err)
	}
	want := "app: 1.0.0 → 1.0.1\nlib: 0.5.0 → 0.5.1\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	assertVersions(t, dir, "1.0.1", "0.5.1")
}

func TestRunRoll_defaultSelectsFirstPackage(t *testing.T) {
	dir := setupWorkspace(t, "1.4.2", "0.5.0")

	out, _, err := execute(t, "--root", dir, "roll", "minor")
	if err != nil {
		t.Fatalf("roll failed: %v", err)
	}
	if out != "app: 1.4.2 → 1.5.0\n" {
		t.Errorf("output = %q", out)
	}
	assertVersions(t, dir, "1.5.0", "0.5.0")
}

func TestRunRoll_amounts(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"positional", []string{"roll", "major", "2", "-p", "lib"}, "2.0.0"},
		{"negative positional", []string{"roll", "minor", "-3", "-p", "lib"}, "0.2.0"},
		{"after double dash", []string{"roll", "minor", "-p", "lib", "--", "-1"}, "0.4.0"},
		{"by flag", []string{"roll", "patch", "--by", "4", "-p", "lib"}, "0.5.4"},
		{"negative by flag", []string{"roll", "minor", "--by=-5", "-p", "lib"}, "0.0.0"},
		{"negative by flag separate value", []string{"roll", "minor", "--by", "-1", "-p", "lib"}, "0.4.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupWorkspace(t, "1.0.0", "0.5.0")
			args := append([]string{"--root", dir}, tt.args...)
			if _, _, err := execute(t, args...); err != nil {
				t.Fatalf("roll failed: %v", err)
			}
			assertVersions(t, dir, "1.0.0", tt.want)
		})
	}
}

func TestRunRoll_underflowWritesNothing(t *testing.T) {
	dir := setupWorkspace(t, "1.0.2", "0.1.0")

	out, _, err := execute(t, "--root", dir, "roll", "patch", "-2", "--workspace")
	if err == nil {
		t.Fatal("expected underflow error")
	}
	var uerr *version.DecrementUnderflowError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v, want DecrementUnderflowError", err)
	}
	for _, want := range []string{"lib", "0.1.0", "by 2"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
	if out != "" {
		t.Errorf("unexpected output %q", out)
	}
	assertVersions(t, dir, "1.0.2", "0.1.0")
}

func TestRunRoll_dryRun(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")

	out, errOut, err := execute(t, "--root", dir, "roll", "major", "-w", "--dry-run")
	if err != nil {
		t.Fatalf("roll failed: %v", err)
	}
	if !strings.Contains(out, "app: 1.0.0 → 2.0.0") || !strings.Contains(out, "lib: 0.5.0 → 1.0.0") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(errOut, "dry run") {
		t.Errorf("stderr = %q, want dry run notice", errOut)
	}
	assertVersions(t, dir, "1.0.0", "0.5.0")
}

func TestRunRoll_json(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")

	out, _, err := execute(t, "--root", dir, "roll", "patch", "-p", "lib", "--format", "json")
	if err != nil {
		t.Fatalf("roll failed: %v", err)
	}
	var result workspace.OperationResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if result.Operation != "roll patch 1" {
		t.Errorf("operation = %q", result.Operation)
	}
	want := workspace.VersionChange{Package: "lib", OldVersion: "0.5.0", NewVersion: "0.5.1", Path: "packages/lib"}
	if len(result.Changes) != 1 || result.Changes[0] != want {
		t.Errorf("changes = %+v, want [%+v]", result.Changes, want)
	}
	if !strings.Contains(out, `"old_version": "0.5.0"`) {
		t.Errorf("JSON should use snake_case keys:\n%s", out)
	}
}

func TestRunRoll_errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown component", []string{"roll", "micro"}, "unknown version component"},
		{"bad amount", []string{"roll", "patch", "two"}, "invalid amount"},
		{"amount twice", []string{"roll", "patch", "2", "--by", "3"}, "both as argument and with --by"},
		{"unknown package", []string{"roll", "patch", "-p", "ghost"}, `package "ghost" not found in workspace`},
		{"package with workspace", []string{"roll", "patch", "-p", "lib", "-w"}, "none of the others can be"},
		{"package with all", []string{"roll", "patch", "-p", "lib", "--all"}, "none of the others can be"},
		{"bad format", []string{"roll", "patch", "--format", "table"}, "unknown format"},
		{"no args", []string{"roll"}, "accepts between 1 and 2 arg(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := setupWorkspace(t, "1.0.0", "0.5.0")
			args := append([]string{"--root", dir}, tt.args...)
			_, _, err := execute(t, args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
			assertVersions(t, dir, "1.0.0", "0.5.0")
		})
	}
}

func TestRunRoll_configExclude(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")
	writeConfig(t, dir, "exclude: [app]\n")

	out, _, err := execute(t, "--root", dir, "roll", "patch", "--all")
	if err != nil {
		t.Fatalf("roll failed: %v", err)
	}
	if out != "lib: 0.5.0 → 0.5.1\n" {
		t.Errorf("output = %q", out)
	}
	assertVersions(t, dir, "1.0.0", "0.5.1")
}

func TestRunRoll_noManifests(t *testing.T) {
	setupWorkspace(t, "1.0.0", "0.5.0")
	empty := t.TempDir()

	_, _, err := execute(t, "--root", empty, "roll", "patch")
	if err == nil || !strings.Contains(err.Error(), "no supported package manifests found") {
		t.Errorf("error = %v, want no manifests error", err)
	}
}
