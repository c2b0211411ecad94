package workspace

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Save writes every member's version back to its manifest. A failing file
// does not stop the others; all failures are returned joined.
func (w *Workspace) Save(ctx context.Context) error {
	log := zerolog.Ctx(ctx)
	var errs []error
	for _, m := range w.Members {
		if err := m.Adapter.UpdateVersion(m.ManifestPath, m.Version); err != nil {
			log.Debug().Err(err).Str("path", m.ManifestPath).Msg("write failed")
			errs = append(errs, err)
			continue
		}
		if _, ok := m.Version.Concrete(); ok {
			log.Debug().Str("package", m.Name).Str("version", m.Version.Value).Str("path", m.ManifestPath).Msg("saved manifest")
		}
	}
	return errors.Join(errs...)
}
