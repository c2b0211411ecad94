package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// IsGitInstalled returns true if git is available on the system PATH.
func IsGitInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// ExcludesFile returns the configured core.excludesFile, falling back to
// Git's default location ($XDG_CONFIG_HOME/git/ignore). It returns an empty
// string when no candidate can be determined.
func ExcludesFile(dir string) string {
	if IsGitInstalled() {
		out, err := outputQuiet(dir, "config", "--path", "--get", "core.excludesFile")
		if err == nil {
			if p := strings.TrimSpace(out); p != "" {
				return expandHome(p)
			}
		}
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "git", "ignore")
	}
	return ""
}

// InfoExcludePath returns the path of the info/exclude file of the
// repository containing dir. Outside a repository (or without git) it falls
// back to dir/.git/info/exclude.
func InfoExcludePath(dir string) string {
	fallback := filepath.Join(dir, ".git", "info", "exclude")
	if !IsGitInstalled() {
		return fallback
	}
	out, err := outputQuiet(dir, "rev-parse", "--git-path", "info/exclude")
	if err != nil {
		return fallback
	}
	p := strings.TrimSpace(out)
	if p == "" {
		return fallback
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	return p
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// outputQuiet executes a git command and returns its stdout without printing to the console.
func outputQuiet(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.String(), nil
}
