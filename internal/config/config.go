package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/levicook/odometer/internal/logging"
	"github.com/levicook/odometer/internal/walk"
)

// Filename is the config file looked up at the workspace root.
const Filename = ".odometer.yaml"

// Output formats accepted in the format field.
const (
	FormatSimple = "simple"
	FormatJSON   = "json"
)

// Config is the content of .odometer.yaml.
type Config struct {
	// Exclude names packages that are never selected.
	Exclude []string `yaml:"exclude,omitempty"`
	// Ignore holds extra walk ignore globs.
	Ignore []string `yaml:"ignore,omitempty"`
	// Hidden skips hidden files and directories when true.
	Hidden bool `yaml:"hidden,omitempty"`
	// GitIgnore honors .gitignore, info/exclude and the global excludes
	// file. Defaults to true.
	GitIgnore *bool  `yaml:"gitignore,omitempty"`
	Format    string `yaml:"format,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() *Config {
	return &Config{Format: FormatSimple, LogLevel: zerolog.LevelWarnValue}
}

// Load reads and validates a config file. A missing file yields Defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from --config or the workspace root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates config content. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if cfg.Format == "" {
		cfg.Format = FormatSimple
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = zerolog.LevelWarnValue
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if !slices.Contains([]string{FormatSimple, FormatJSON}, cfg.Format) {
		return fmt.Errorf("config: format must be %s or %s: %q", FormatSimple, FormatJSON, cfg.Format)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	for i, name := range cfg.Exclude {
		if name == "" {
			return fmt.Errorf("config: exclude[%d] is empty", i)
		}
	}
	if err := (walk.Options{Ignore: cfg.Ignore}).Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// WalkOptions converts the file-walking settings into walk.Options.
func (c *Config) WalkOptions() walk.Options {
	opts := walk.DefaultOptions()
	opts.Hidden = c.Hidden
	opts.Ignore = slices.Clone(c.Ignore)
	if c.GitIgnore != nil && !*c.GitIgnore {
		opts.GitIgnore = false
		opts.GitExclude = false
		opts.GitGlobal = false
	}
	return opts
}
