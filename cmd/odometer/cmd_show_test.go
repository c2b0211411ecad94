package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/levicook/odometer/internal/testutil"
)

func TestRunShow_simple(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")
	testutil.WriteFile(t, dir, "crates/shared/Cargo.toml", "[package]\nname = \"shared\"\nversion = { workspace = true }\n")

	out, _, err := execute(t, "--root", dir, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out != "app: 1.0.0\nlib: 0.5.0\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRunShow_selection(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")

	out, _, err := execute(t, "--root", dir, "show", "-p", "lib")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out != "lib: 0.5.0\n" {
		t.Errorf("output = %q", out)
	}

	out, _, err = execute(t, "--root", dir, "show", "--exclude", "app")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out != "lib: 0.5.0\n" {
		t.Errorf("output with exclude = %q", out)
	}
}

func TestRunShow_json(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")

	out, _, err := execute(t, "--root", dir, "show", "--format", "json")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	var members []memberOutput
	if err := json.Unmarshal([]byte(out), &members); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	want := []memberOutput{
		{Package: "app", Version: "1.0.0", Ecosystem: "cargo", Path: "crates/app"},
		{Package: "lib", Version: "0.5.0", Ecosystem: "node", Path: "packages/lib"},
	}
	if len(members) != len(want) {
		t.Fatalf("members = %+v, want %+v", members, want)
	}
	for i := range want {
		if members[i] != want[i] {
			t.Errorf("members[%d] = %+v, want %+v", i, members[i], want[i])
		}
	}
}

func TestRunShow_table(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")

	out, _, err := execute(t, "--root", dir, "show", "--format", "table")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got:\n%s", out)
	}
	if f := strings.Fields(lines[0]); strings.Join(f, " ") != "PACKAGE VERSION ECOSYSTEM PATH" {
		t.Errorf("header = %q", lines[0])
	}
	if f := strings.Fields(lines[2]); strings.Join(f, " ") != "lib 0.5.0 node packages/lib" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestRunShow_configFormatAndIgnore(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")
	testutil.Crate(t, dir, "examples/demo", "demo", "0.0.1")
	writeConfig(t, dir, "format: json\nignore: [\"examples/**\"]\n")

	out, _, err := execute(t, "--root", dir, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.HasPrefix(out, "[") || strings.Contains(out, "demo") {
		t.Errorf("output = %q, want JSON without demo", out)
	}

	out, _, err = execute(t, "--root", dir, "show", "--format", "simple", "--ignore", "packages/**")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out != "app: 1.0.0\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRunShow_hiddenAndGitignore(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")
	testutil.NodePackage(t, dir, ".cache/pkg", "cached", "9.9.9")
	testutil.NodePackage(t, dir, "packages/lib/node_modules/dep", "dep", "4.0.0")
	testutil.WriteFile(t, dir, ".gitignore", "node_modules/\n")

	out, _, err := execute(t, "--root", dir, "show", "--hidden")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out != "app: 1.0.0\nlib: 0.5.0\n" {
		t.Errorf("output = %q", out)
	}

	out, _, err = execute(t, "--root", dir, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "cached: 9.9.9") || strings.Contains(out, "dep:") {
		t.Errorf("output = %q, want hidden package and no node_modules", out)
	}
}

func TestRunShow_errors(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad format", []string{"show", "--format", "xml"}, "unknown format"},
		{"unknown package", []string{"show", "-p", "ghost"}, "not found in workspace"},
		{"missing root", []string{"--root", dir + "/nope", "show"}, "root path does not exist"},
		{"bad log level", []string{"--log-level", "loud", "show"}, "unknown log level"},
		{"bad ignore glob", []string{"--ignore", "[x", "show"}, "invalid ignore pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"--root", dir}, tt.args...)...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestRunShow_badConfig(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")
	writeConfig(t, dir, "unknown_key: 1\n")

	_, _, err := execute(t, "--root", dir, "show")
	if err == nil || !strings.Contains(err.Error(), "parsing config YAML") {
		t.Errorf("error = %v, want config error", err)
	}

	// An explicit --config path replaces the one at the root.
	good := testutil.WriteFile(t, t.TempDir(), "odometer.yaml", "exclude: [app]\n")
	out, _, err := execute(t, "--root", dir, "--config", good, "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if out != "lib: 0.5.0\n" {
		t.Errorf("output = %q", out)
	}
}

func TestRunShow_debugLogging(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")

	out, errOut, err := execute(t, "--root", dir, "--log-level", "debug", "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(errOut, "found manifest") {
		t.Errorf("stderr = %q, want debug logs", errOut)
	}
	if strings.Contains(out, "found manifest") {
		t.Errorf("logs leaked to stdout: %q", out)
	}
}
