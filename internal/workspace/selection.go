package workspace

import (
	"fmt"
	"slices"
	"strings"
)

// Scope says which members a Selection starts from.
type Scope int

const (
	// ScopeDefault selects the first member.
	ScopeDefault Scope = iota
	// ScopeWorkspace selects every member.
	ScopeWorkspace
	// ScopeSpecific selects members by name.
	ScopeSpecific
)

func (s Scope) String() string {
	switch s {
	case ScopeDefault:
		return "default"
	case ScopeWorkspace:
		return "workspace"
	case ScopeSpecific:
		return "specific"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// Selection picks the members an operation applies to. Names in Exclude are
// never selected.
type Selection struct {
	Scope    Scope
	Packages []string
	Exclude  []string
}

func DefaultSelection(exclude ...string) Selection {
	return Selection{Scope: ScopeDefault, Exclude: exclude}
}

func WorkspaceSelection(exclude ...string) Selection {
	return Selection{Scope: ScopeWorkspace, Exclude: exclude}
}

func PackagesSelection(names []string, exclude ...string) Selection {
	return Selection{Scope: ScopeSpecific, Packages: names, Exclude: exclude}
}

// OrWorkspace widens a default selection to the whole workspace.
func (s Selection) OrWorkspace() Selection {
	if s.Scope == ScopeDefault {
		s.Scope = ScopeWorkspace
	}
	return s
}

// SelectionError reports a selection that cannot be resolved.
type SelectionError struct {
	Package string
	Message string
}

func (e *SelectionError) Error() string { return e.Message }

// Resolve returns the indices of the selected members.
func (w *Workspace) Resolve(sel Selection) ([]int, error) {
	excluded := make(map[string]bool, len(sel.Exclude))
	for _, name := range sel.Exclude {
		excluded[name] = true
	}

	switch sel.Scope {
	case ScopeSpecific:
		indices := make([]int, 0, len(sel.Packages))
		for _, name := range sel.Packages {
			if excluded[name] {
				continue
			}
			matches := w.indicesOf(name)
			switch len(matches) {
			case 0:
				return nil, &SelectionError{
					Package: name,
					Message: fmt.Sprintf("package %q not found in workspace", name),
				}
			case 1:
				if !slices.Contains(indices, matches[0]) {
					indices = append(indices, matches[0])
				}
			default:
				return nil, &SelectionError{
					Package: name,
					Message: fmt.Sprintf("package %q is ambiguous: %d members share this name (%s)",
						name, len(matches), strings.Join(w.dirsOf(matches), ", ")),
				}
			}
		}
		return indices, nil

	case ScopeWorkspace:
		indices := make([]int, 0, len(w.Members))
		for i, m := range w.Members {
			if !excluded[m.Name] {
				indices = append(indices, i)
			}
		}
		return indices, nil

	default:
		if len(w.Members) == 0 {
			return nil, &SelectionError{Message: "no packages found in workspace"}
		}
		if excluded[w.Members[0].Name] {
			return []int{}, nil
		}
		return []int{0}, nil
	}
}

func (w *Workspace) indicesOf(name string) []int {
	var out []int
	for i, m := range w.Members {
		if m.Name == name {
			out = append(out, i)
		}
	}
	return out
}

func (w *Workspace) dirsOf(indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = w.Members[idx].Dir
	}
	return out
}
