package walk

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/monochromegane/go-gitignore"

	"github.com/levicook/odometer/internal/git"
)

const gitignoreFile = ".gitignore"

// Options controls which files Files skips.
type Options struct {
	// Hidden skips entries whose name starts with a dot.
	Hidden bool
	// GitIgnore honors .gitignore files in every directory.
	GitIgnore bool
	// GitExclude honors the repository's info/exclude file.
	GitExclude bool
	// GitGlobal honors the user's global excludes file.
	GitGlobal bool
	// Ignore holds extra patterns in doublestar syntax, matched against
	// slash-separated paths relative to the root.
	Ignore []string
}

// DefaultOptions honors every Git ignore source and walks hidden files.
func DefaultOptions() Options {
	return Options{GitIgnore: true, GitExclude: true, GitGlobal: true}
}

// Validate reports the first malformed Ignore pattern.
func (o Options) Validate() error {
	for _, p := range o.Ignore {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid ignore pattern %q", p)
		}
	}
	return nil
}

// Files returns every regular file below root that is not ignored, in
// lexical order. The .git directory is never entered and symlinks are not
// followed.
func Files(root string, opts Options) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("root path does not exist: %s", root)
		}
		return nil, fmt.Errorf("reading root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root path is not a directory: %s", root)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}

	w := &walker{root: abs, opts: opts, dirs: map[string]gitignore.IgnoreMatcher{}}
	w.loadRepoExcludes()

	var files []string
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == abs {
			w.loadDirIgnore(path)
			return nil
		}
		if w.skip(path, d) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			w.loadDirIgnore(path)
			return nil
		}
		if d.Type().IsRegular() {
			rel, _ := filepath.Rel(abs, path)
			files = append(files, filepath.Join(root, rel))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return files, nil
}

type walker struct {
	root     string
	opts     Options
	excludes []gitignore.IgnoreMatcher
	dirs     map[string]gitignore.IgnoreMatcher
}

func (w *walker) loadRepoExcludes() {
	if w.opts.GitExclude {
		if m := matcherFromFile(git.InfoExcludePath(w.root), w.root); m != nil {
			w.excludes = append(w.excludes, m)
		}
	}
	if w.opts.GitGlobal {
		if p := git.ExcludesFile(w.root); p != "" {
			if m := matcherFromFile(p, w.root); m != nil {
				w.excludes = append(w.excludes, m)
			}
		}
	}
}

func (w *walker) loadDirIgnore(dir string) {
	if !w.opts.GitIgnore {
		return
	}
	if m := matcherFromFile(filepath.Join(dir, gitignoreFile), dir); m != nil {
		w.dirs[dir] = m
	}
}

func (w *walker) skip(path string, d fs.DirEntry) bool {
	name := d.Name()
	if d.IsDir() && name == ".git" {
		return true
	}
	if w.opts.Hidden && strings.HasPrefix(name, ".") {
		return true
	}

	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.opts.Ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	isDir := d.IsDir()
	for _, m := range w.excludes {
		if m.Match(path, isDir) {
			return true
		}
	}
	// .gitignore files apply to everything below their directory.
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		if m, ok := w.dirs[dir]; ok && m.Match(path, isDir) {
			return true
		}
		if dir == w.root || dir == filepath.Dir(dir) {
			break
		}
	}
	return false
}

func matcherFromFile(path, base string) gitignore.IgnoreMatcher {
	f, err := os.Open(path) //nolint:gosec // ignore files under the walked tree
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()
	return gitignore.NewGitIgnoreFromReader(base, f)
}
