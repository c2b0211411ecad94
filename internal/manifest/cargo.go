package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pelletier/go-toml/v2/unstable"
)

// CargoFilename is the manifest file name of Cargo packages.
const CargoFilename = "Cargo.toml"

var (
	packageSection          = []string{"package"}
	workspacePackageSection = []string{"workspace", "package"}

	errNoCargoSection = errors.New("no workspace or package section found")
)

// Cargo handles Cargo.toml manifests. The version lives in [package], or in
// [workspace.package] for virtual workspace roots. A package opts into the
// shared version with `version = { workspace = true }` or
// `version.workspace = true`.
type Cargo struct{}

func (Cargo) Ecosystem() string { return "cargo" }

func (Cargo) MatchesFilename(name string) bool { return name == CargoFilename }

func (Cargo) Parse(path string) (Info, error) {
	data, err := readManifest(path)
	if err != nil {
		return Info{}, err
	}
	doc, err := decodeCargo(data)
	if err != nil {
		return Info{}, &ParseError{Path: path, Err: err}
	}

	section, _ := cargoSection(doc)
	name, _ := section["name"].(string)

	v, err := cargoVersion(section)
	if err != nil {
		return Info{}, &ParseError{Path: path, Err: err}
	}
	return Info{Name: name, Version: v}, nil
}

func (Cargo) UpdateVersion(path string, v VersionField) error {
	newVersion, ok := v.Concrete()
	if !ok {
		return nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from workspace discovery
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	doc, err := decodeCargo(data)
	if err != nil {
		return &WriteError{Path: path, Reason: "manifest is no longer valid TOML", Err: err}
	}
	_, sectionPath := cargoSection(doc)
	if sectionPath == nil {
		return &WriteError{Path: path, Reason: errNoCargoSection.Error()}
	}

	updated, changed, err := spliceCargoVersion(data, sectionPath, newVersion)
	if err != nil {
		return &WriteError{Path: path, Reason: err.Error()}
	}
	if !changed {
		return nil
	}
	return writeManifest(path, updated)
}

func decodeCargo(data []byte) (map[string]any, error) {
	doc := map[string]any{}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// cargoSection returns the table holding name and version, preferring
// [package] over [workspace.package]. The path is nil when neither exists.
func cargoSection(doc map[string]any) (map[string]any, []string) {
	if pkg, ok := doc["package"].(map[string]any); ok {
		return pkg, packageSection
	}
	if ws, ok := doc["workspace"].(map[string]any); ok {
		if pkg, ok := ws["package"].(map[string]any); ok {
			return pkg, workspacePackageSection
		}
	}
	return nil, nil
}

func cargoVersion(section map[string]any) (VersionField, error) {
	raw, ok := section["version"]
	if !ok {
		return Absent(), nil
	}
	switch val := raw.(type) {
	case string:
		return Concrete(val), nil
	case map[string]any:
		if inherit, ok := val["workspace"].(bool); ok && inherit {
			return Inherited(), nil
		}
	}
	return VersionField{}, errors.New("version field must be a string")
}

// spliceCargoVersion replaces the version value of the given section in
// data, leaving every other byte as it was. It reports whether anything
// changed.
func spliceCargoVersion(data []byte, section []string, newVersion string) ([]byte, bool, error) {
	target := append(slices.Clone(section), "version")

	loc, err := locateCargoVersion(data, target)
	if err != nil {
		return nil, false, err
	}

	switch {
	case loc.value != nil:
		if loc.value.kind != unstable.String {
			return nil, false, fmt.Errorf("%s is not a string", strings.Join(target, "."))
		}
		if loc.value.data == newVersion {
			return data, false, nil
		}
		start := int(loc.value.raw.Offset)
		end := start + int(loc.value.raw.Length)
		token := quoteTOMLLike(data[start:end], newVersion)
		return splice(data, start, end, token), true, nil

	case loc.versionTable:
		return nil, false, fmt.Errorf("%s is a table, not a string", strings.Join(target, "."))

	default:
		return nil, false, fmt.Errorf("no version key in %s", strings.Join(section, "."))
	}
}

// tomlValue is a copy of a parsed value node. The parser reuses its nodes
// from one expression to the next, so nothing may hold on to them.
type tomlValue struct {
	kind unstable.Kind
	raw  unstable.Range
	data string
}

type cargoLocation struct {
	value        *tomlValue // the version value, if present
	versionTable bool       // version declared as its own [header]
}

func locateCargoVersion(data []byte, target []string) (cargoLocation, error) {
	var loc cargoLocation
	var table []string
	inArray := false

	p := unstable.Parser{}
	p.Reset(data)
	for p.NextExpression() {
		expr := p.Expression()
		switch expr.Kind {
		case unstable.Table, unstable.ArrayTable:
			table = keyPath(expr.Key())
			inArray = expr.Kind == unstable.ArrayTable
			if inArray {
				continue
			}
			if slices.Equal(table, target) {
				loc.versionTable = true
			}
		case unstable.KeyValue:
			if inArray || loc.value != nil {
				continue
			}
			key := keyPath(expr.Key())
			path := append(slices.Clone(table), key...)
			if n := findTOMLValue(path, expr.Value(), target); n != nil {
				loc.value = &tomlValue{kind: n.Kind, raw: n.Raw, data: string(n.Data)}
			}
		}
	}
	if err := p.Error(); err != nil {
		return loc, fmt.Errorf("locating version: %w", err)
	}
	return loc, nil
}

// findTOMLValue returns the value node at target, descending into inline
// tables along the way.
func findTOMLValue(path []string, value *unstable.Node, target []string) *unstable.Node {
	if slices.Equal(path, target) {
		return value
	}
	if value.Kind != unstable.InlineTable || len(path) >= len(target) || !slices.Equal(path, target[:len(path)]) {
		return nil
	}
	it := value.Children()
	for it.Next() {
		kv := it.Node()
		key := keyPath(kv.Key())
		if n := findTOMLValue(append(slices.Clone(path), key...), kv.Value(), target); n != nil {
			return n
		}
	}
	return nil
}

func keyPath(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// quoteTOMLLike quotes v as a TOML string using the delimiters of the
// replaced token when that is safe, and a basic string otherwise.
func quoteTOMLLike(original []byte, v string) string {
	for _, delim := range []string{`'''`, `"""`, `'`} {
		if bytes.HasPrefix(original, []byte(delim)) && !strings.Contains(v, delim[:1]) && !strings.ContainsAny(v, "\r\n") {
			return delim + v + delim
		}
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`).Replace(v)
	return `"` + escaped + `"`
}

func splice(data []byte, start, end int, token string) []byte {
	out := make([]byte, 0, len(data)-(end-start)+len(token))
	out = append(out, data[:start]...)
	out = append(out, token...)
	return append(out, data[end:]...)
}
