package workspace

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"github.com/levicook/odometer/internal/manifest"
	"github.com/levicook/odometer/internal/walk"
)

// Member is one package manifest in the workspace.
type Member struct {
	Name         string
	Dir          string // slash-separated, relative to the workspace root
	ManifestPath string
	Version      manifest.VersionField
	Adapter      manifest.Adapter
}

// Ecosystem reports which manifest format the member uses.
func (m Member) Ecosystem() string {
	if m.Adapter == nil {
		return ""
	}
	return m.Adapter.Ecosystem()
}

// Workspace holds every discovered member, sorted by name.
type Workspace struct {
	Root    string
	Members []Member
}

// DiscoverOptions configures Discover.
type DiscoverOptions struct {
	Walk     walk.Options
	Adapters []manifest.Adapter // nil means manifest.Adapters()
}

// DefaultDiscoverOptions walks with walk.DefaultOptions and the built-in
// adapters.
func DefaultDiscoverOptions() DiscoverOptions {
	return DiscoverOptions{Walk: walk.DefaultOptions(), Adapters: manifest.Adapters()}
}

// Discover walks root and parses every supported manifest it finds. Any
// parse failure aborts discovery.
func Discover(ctx context.Context, root string, opts DiscoverOptions) (*Workspace, error) {
	log := zerolog.Ctx(ctx)
	adapters := opts.Adapters
	if adapters == nil {
		adapters = manifest.Adapters()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root: %w", err)
	}

	files, err := walk.Files(root, opts.Walk)
	if err != nil {
		return nil, err
	}

	ws := &Workspace{Root: root, Members: []Member{}}
	for _, path := range files {
		adapter, ok := manifest.ForFilename(adapters, filepath.Base(path))
		if !ok {
			log.Trace().Str("path", path).Msg("not a manifest")
			continue
		}
		info, err := adapter.Parse(path)
		if err != nil {
			return nil, err
		}

		dir := filepath.Dir(path)
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", path, err)
		}
		name := info.Name
		if name == "" {
			name = filepath.Base(filepath.Join(absRoot, rel))
		}

		ws.Members = append(ws.Members, Member{
			Name:         name,
			Dir:          filepath.ToSlash(rel),
			ManifestPath: path,
			Version:      info.Version,
			Adapter:      adapter,
		})
		log.Debug().
			Str("package", name).
			Str("ecosystem", adapter.Ecosystem()).
			Str("version", info.Version.String()).
			Str("path", path).
			Msg("found manifest")
	}

	sort.SliceStable(ws.Members, func(i, j int) bool {
		return ws.Members[i].Name < ws.Members[j].Name
	})
	return ws, nil
}

// Load discovers the workspace at root and fails when it holds no manifests.
func Load(ctx context.Context, root string, opts DiscoverOptions) (*Workspace, error) {
	ws, err := Discover(ctx, root, opts)
	if err != nil {
		return nil, err
	}
	if len(ws.Members) == 0 {
		return nil, fmt.Errorf("no supported package manifests found in %s", root)
	}
	return ws, nil
}
