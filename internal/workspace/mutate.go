package workspace

import (
	"fmt"
	"slices"

	"github.com/levicook/odometer/internal/manifest"
	"github.com/levicook/odometer/internal/version"
)

// VersionChange records one member whose version changed.
type VersionChange struct {
	Package    string `json:"package"`
	OldVersion string `json:"old_version"`
	NewVersion string `json:"new_version"`
	Path       string `json:"path"`
}

// OperationResult lists the changes made by one operation.
type OperationResult struct {
	Changes   []VersionChange `json:"changes"`
	Operation string          `json:"operation"`
}

// LintError describes a member whose version is not valid semver.
type LintError struct {
	Member  string `json:"member"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Roll applies bump to every selected member with a concrete version.
func (w *Workspace) Roll(bump version.Bump, sel Selection) (*OperationResult, error) {
	return w.mutate("roll "+bump.String(), sel, bump.Apply)
}

// Set gives every selected member with a concrete version the version v.
func (w *Workspace) Set(v string, sel Selection) (*OperationResult, error) {
	if err := version.Validate(v); err != nil {
		return nil, err
	}
	return w.mutate("set "+v, sel, func(string) (string, error) { return v, nil })
}

// Sync gives every member with a concrete version the version v, ignoring
// any selection.
func (w *Workspace) Sync(v string) (*OperationResult, error) {
	if err := version.Validate(v); err != nil {
		return nil, err
	}
	return w.mutate("sync "+v, WorkspaceSelection(), func(string) (string, error) { return v, nil })
}

// mutate stages next versions on a copy of the members and swaps it in only
// when every selected member succeeded.
func (w *Workspace) mutate(label string, sel Selection, next func(current string) (string, error)) (*OperationResult, error) {
	indices, err := w.Resolve(sel)
	if err != nil {
		return nil, err
	}

	staged := slices.Clone(w.Members)
	result := &OperationResult{Changes: []VersionChange{}, Operation: label}
	for _, i := range indices {
		m := &staged[i]
		current, ok := m.Version.Concrete()
		if !ok {
			continue
		}
		updated, err := next(current)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Name, err)
		}
		if updated == current {
			continue
		}
		m.Version = manifest.Concrete(updated)
		result.Changes = append(result.Changes, VersionChange{
			Package:    m.Name,
			OldVersion: current,
			NewVersion: updated,
			Path:       m.Dir,
		})
	}

	w.Members = staged
	return result, nil
}

// Show returns the selected members that have a concrete version.
func (w *Workspace) Show(sel Selection) ([]Member, error) {
	indices, err := w.Resolve(sel)
	if err != nil {
		return nil, err
	}
	members := make([]Member, 0, len(indices))
	for _, i := range indices {
		if _, ok := w.Members[i].Version.Concrete(); ok {
			members = append(members, w.Members[i])
		}
	}
	return members, nil
}

// Lint validates the concrete version of every selected member.
func (w *Workspace) Lint(sel Selection) ([]LintError, error) {
	indices, err := w.Resolve(sel)
	if err != nil {
		return nil, err
	}
	problems := []LintError{}
	for _, i := range indices {
		m := w.Members[i]
		v, ok := m.Version.Concrete()
		if !ok {
			continue
		}
		if err := version.Validate(v); err != nil {
			problems = append(problems, LintError{Member: m.Name, Path: m.Dir, Message: err.Error()})
		}
	}
	return problems, nil
}
