package manifest

import (
	"fmt"
	"os"
)

// Info is what an adapter extracts from a manifest. Name is empty when the
// manifest does not declare one.
type Info struct {
	Name    string
	Version VersionField
}

// Adapter reads and rewrites manifests of one ecosystem.
type Adapter interface {
	// Ecosystem is a short identifier such as "cargo" or "node".
	Ecosystem() string
	// MatchesFilename reports whether a file base name is a manifest of this
	// ecosystem. Matching is exact and case-sensitive.
	MatchesFilename(name string) bool
	// Parse reads the manifest at path.
	Parse(path string) (Info, error)
	// UpdateVersion writes v into the manifest at path. It does nothing
	// unless v is concrete and differs from the value on disk.
	UpdateVersion(path string, v VersionField) error
}

// Adapters returns the built-in adapters in matching order.
func Adapters() []Adapter {
	return []Adapter{Cargo{}, Node{}}
}

// ForFilename returns the first adapter that recognizes name.
func ForFilename(adapters []Adapter, name string) (Adapter, bool) {
	for _, a := range adapters {
		if a.MatchesFilename(name) {
			return a, true
		}
	}
	return nil, false
}

func readManifest(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from workspace discovery
	if err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("reading manifest: %w", err)}
	}
	return data, nil
}

// writeManifest replaces the file content, keeping its permission bits.
func writeManifest(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
