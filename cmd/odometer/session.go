package main

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/levicook/odometer/internal/config"
	"github.com/levicook/odometer/internal/logging"
	"github.com/levicook/odometer/internal/manifest"
	"github.com/levicook/odometer/internal/walk"
	"github.com/levicook/odometer/internal/workspace"
)

// session carries what every command needs after flags are parsed: the
// workspace root, the merged configuration and a context holding the logger.
type session struct {
	ctx  context.Context
	root string
	cfg  *config.Config
	walk walk.Options
}

func newSession(cmd *cobra.Command) (*session, error) {
	fs := cmd.Flags()
	root, _ := fs.GetString("root")
	cfgPath, _ := fs.GetString("config")
	if cfgPath == "" {
		cfgPath = filepath.Join(root, config.Filename)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if fs.Changed("log-level") {
		level, _ = fs.GetString("log-level")
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return nil, err
	}

	opts := cfg.WalkOptions()
	if ignore, _ := fs.GetStringArray("ignore"); len(ignore) > 0 {
		opts.Ignore = append(opts.Ignore, ignore...)
	}
	if hidden, _ := fs.GetBool("hidden"); hidden {
		opts.Hidden = true
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger.Debug().Str("root", root).Str("config", cfgPath).Msg("session ready")

	return &session{
		ctx:  logger.WithContext(ctx),
		root: root,
		cfg:  cfg,
		walk: opts,
	}, nil
}

func (s *session) load() (*workspace.Workspace, error) {
	return workspace.Load(s.ctx, s.root, workspace.DiscoverOptions{
		Walk:     s.walk,
		Adapters: manifest.Adapters(),
	})
}

// format returns the --format value, falling back to the config file, and
// checks it against the formats the command supports.
func (s *session) format(cmd *cobra.Command, allowed ...string) (string, error) {
	format := s.cfg.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}
	if !slices.Contains(allowed, format) {
		return "", fmt.Errorf("unknown format %q (must be one of %v)", format, allowed)
	}
	return format, nil
}
