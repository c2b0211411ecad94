// Package testutil builds on-disk manifest fixtures for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// CargoManifest returns a minimal Cargo.toml body.
func CargoManifest(name, version string) string {
	return fmt.Sprintf("[package]\nname = %q\nversion = %q\nedition = \"2021\"\n", name, version)
}

// NodeManifest returns a minimal, conventionally indented package.json body.
func NodeManifest(name, version string) string {
	return fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": %q,\n  \"private\": true\n}\n", name, version)
}

// WriteFile writes content to dir/rel, creating parent directories.
// Returns the full path.
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil { //nolint:gosec // test dir
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
	return path
}

// ReadFile returns the content of dir/rel.
func ReadFile(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// Crate writes dir/<sub>/Cargo.toml for a package and returns its path.
func Crate(t *testing.T, dir, sub, name, version string) string {
	t.Helper()
	return WriteFile(t, dir, filepath.Join(sub, "Cargo.toml"), CargoManifest(name, version))
}

// NodePackage writes dir/<sub>/package.json for a package and returns its path.
func NodePackage(t *testing.T, dir, sub, name, version string) string {
	t.Helper()
	return WriteFile(t, dir, filepath.Join(sub, "package.json"), NodeManifest(name, version))
}

// IsolateGit points HOME and the Git config at empty temp locations so the
// user's global excludes file cannot affect a test.
func IsolateGit(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_CONFIG_GLOBAL", filepath.Join(home, ".gitconfig"))
}
