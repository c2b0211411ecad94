package manifest

import (
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// NodeFilename is the manifest file name of Node packages.
const NodeFilename = "package.json"

// utf8BOM is tolerated at the start of package.json and kept on write.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// workspaceProtocol prefixes versions that defer to the workspace, as in
// "workspace:*" or "workspace:^".
const workspaceProtocol = "workspace:"

// Node handles package.json manifests. The version is the top-level
// "version" string.
type Node struct{}

func (Node) Ecosystem() string { return "node" }

func (Node) MatchesFilename(name string) bool { return name == NodeFilename }

func (Node) Parse(path string) (Info, error) {
	data, err := readManifest(path)
	if err != nil {
		return Info{}, err
	}
	doc, err := parseNode(data)
	if err != nil {
		return Info{}, &ParseError{Path: path, Err: err}
	}

	var info Info
	if name := doc.Get("name"); name.Type == gjson.String {
		info.Name = name.Str
	}

	switch v := doc.Get("version"); {
	case v.Type != gjson.String:
		// Missing, or not a string: nothing we can bump.
		info.Version = Absent()
	case strings.HasPrefix(v.Str, workspaceProtocol):
		info.Version = Inherited()
	default:
		info.Version = Concrete(v.Str)
	}
	return info, nil
}

func (Node) UpdateVersion(path string, v VersionField) error {
	newVersion, ok := v.Concrete()
	if !ok {
		return nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from workspace discovery
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	doc, err := parseNode(data)
	if err != nil {
		return &WriteError{Path: path, Reason: "manifest is no longer valid JSON", Err: err}
	}
	switch cur := doc.Get("version"); {
	case !cur.Exists():
		return &WriteError{Path: path, Reason: "no version key in package.json"}
	case cur.Type != gjson.String:
		return &WriteError{Path: path, Reason: "version is not a string"}
	case cur.Str == newVersion:
		return nil
	}

	body, hasBOM := bytes.CutPrefix(data, utf8BOM)
	updated, err := sjson.SetBytes(body, "version", newVersion)
	if err != nil {
		return &WriteError{Path: path, Reason: "setting version", Err: err}
	}
	if hasBOM {
		updated = append(bytes.Clone(utf8BOM), updated...)
	}
	return writeManifest(path, updated)
}

func parseNode(data []byte) (gjson.Result, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, errors.New("invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return gjson.Result{}, errors.New("top-level value must be an object")
	}
	return doc, nil
}
