package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/levicook/odometer/internal/testutil"
	"github.com/levicook/odometer/internal/workspace"
)

func TestRunSync(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")
	inherits := "[package]\nname = \"shared\"\nversion.workspace = true\n"
	testutil.WriteFile(t, dir, "crates/shared/Cargo.toml", inherits)
	private := "{\n  \"name\": \"docs\",\n  \"private\": true\n}\n"
	testutil.WriteFile(t, dir, "docs/package.json", private)

	out, _, err := execute(t, "--root", dir, "sync", "3.0.0", "--format", "json")
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	var result workspace.OperationResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if result.Operation != "sync 3.0.0" || len(result.Changes) != 2 {
		t.Errorf("result = %+v", result)
	}

	assertVersions(t, dir, "3.0.0", "3.0.0")
	if got := testutil.ReadFile(t, dir, "crates/shared/Cargo.toml"); got != inherits {
		t.Errorf("inheriting manifest changed: %q", got)
	}
	if got := testutil.ReadFile(t, dir, "docs/package.json"); got != private {
		t.Errorf("manifest without version changed: %q", got)
	}
}

func TestRunSync_ignoresConfigExclude(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")
	writeConfig(t, dir, "exclude: [lib]\n")

	if _, _, err := execute(t, "--root", dir, "sync", "2.0.0"); err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	assertVersions(t, dir, "2.0.0", "2.0.0")
}

func TestRunSync_errors(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "0.5.0")

	for _, args := range [][]string{
		{"sync", "2.0"},
		{"sync"},
		{"sync", "2.0.0", "-p", "lib"},
	} {
		_, _, err := execute(t, append([]string{"--root", dir}, args...)...)
		if err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
	assertVersions(t, dir, "1.0.0", "0.5.0")
}

func TestRunSync_noChanges(t *testing.T) {
	dir := setupWorkspace(t, "1.0.0", "1.0.0")

	out, _, err := execute(t, "--root", dir, "sync", "1.0.0")
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Errorf("output = %q, want nothing", out)
	}
}
