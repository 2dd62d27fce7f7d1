// Package config handles parsing and validation of the githook
// configuration file (.githook.yaml).
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/devnanny/githook/internal/engine/git"
	"github.com/devnanny/githook/internal/platform/logger"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file at the repository root.
const FileName = ".githook.yaml"

// Config is the top-level project configuration.
type Config struct {
	Version  int          `yaml:"version"`
	Git      GitConfig    `yaml:"git"`
	Hooks    HooksConfig  `yaml:"hooks"`
	Output   OutputConfig `yaml:"output"`
	Defaults Defaults     `yaml:"defaults"`
	Rules    []Rule       `yaml:"rules"`
}

// GitConfig controls how the git binary is invoked.
type GitConfig struct {
	Binary  string        `yaml:"binary"`
	Timeout time.Duration `yaml:"timeout"`
}

// HooksConfig controls where canonical hook scripts are found.
type HooksConfig struct {
	// InstallRoot holds git/hook/<name>. Empty means next to the executable.
	InstallRoot string `yaml:"install_root"`
}

// OutputConfig holds output preferences.
type OutputConfig struct {
	Color *bool `yaml:"color"`
}

// ColorEnabled reports whether colored output is wanted. Defaults to true.
func (o OutputConfig) ColorEnabled() bool {
	return o.Color == nil || *o.Color
}

// Defaults holds values applied to rules missing optional fields.
type Defaults struct {
	Blocking *bool `yaml:"blocking"`
}

// Rule checks the staged change list. Files are selected with Only/Except
// globs; a selected file whose status is in DenyStatus is a finding, and so
// is selecting more than MaxFiles files.
type Rule struct {
	Name       string       `yaml:"name"`
	Only       []string     `yaml:"only,omitempty"`
	Except     []string     `yaml:"except,omitempty"`
	DenyStatus []git.Status `yaml:"deny_status,omitempty"`
	MaxFiles   int          `yaml:"max_files,omitempty"`
	Message    string       `yaml:"message,omitempty"`
	Blocking   *bool        `yaml:"blocking,omitempty"`
}

// IsBlocking returns whether this rule blocks commits on failure.
// Falls back to true if not explicitly set.
func (r *Rule) IsBlocking() bool {
	if r.Blocking != nil {
		return *r.Blocking
	}
	return true
}

// Loader handles loading configuration from the file system.
type Loader struct {
	fs     FileSystem
	getenv func(string) string
}

// NewLoader creates a new Loader with the given file system.
// Uses os.Getenv for environment variable lookups by default.
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs, getenv: os.Getenv}
}

// NewLoaderWithEnv creates a Loader with a custom getenv function for testability.
func NewLoaderWithEnv(fs FileSystem, getenv func(string) string) *Loader {
	return &Loader{fs: fs, getenv: getenv}
}

// Load reads and parses the configuration file at path.
// A missing file is not an error: the built-in defaults are returned.
// Environment variables override file values.
func (l *Loader) Load(ctx context.Context, path string) (*Config, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading config file", "path", path)
	path = filepath.Clean(path)

	cfg := &Config{}
	data, err := l.fs.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", FileName, err)
		}
	case l.fs.IsNotExist(err):
		log.Debug("no config file, using defaults", "path", path)
		cfg = Default()
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyDefaults(cfg)
	applyEnvOverrides(cfg, l.getenv, log)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads the configuration file at path using the real file system.
func Load(ctx context.Context, path string) (*Config, error) {
	return NewLoader(&RealFileSystem{}).Load(ctx, path)
}

// applyDefaults fills unset settings and copies the defaults section into rules.
func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Git.Binary == "" {
		cfg.Git.Binary = "git"
	}
	if cfg.Git.Timeout <= 0 {
		cfg.Git.Timeout = git.DefaultTimeout
	}

	for i := range cfg.Rules {
		r := &cfg.Rules[i]
		if r.Blocking == nil && cfg.Defaults.Blocking != nil {
			val := *cfg.Defaults.Blocking
			r.Blocking = &val
		}
	}
}

// applyEnvOverrides applies GITHOOK_* environment variables to cfg.
func applyEnvOverrides(cfg *Config, getenv func(string) string, log *slog.Logger) {
	if bin := getenv("GITHOOK_GIT"); bin != "" {
		cfg.Git.Binary = bin
	}

	if timeout := getenv("GITHOOK_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			log.Warn("invalid GITHOOK_TIMEOUT value, ignoring", "value", timeout, "error", err)
		} else {
			cfg.Git.Timeout = d
		}
	}

	if root := getenv("GITHOOK_INSTALL_ROOT"); root != "" {
		cfg.Hooks.InstallRoot = root
	}

	if noColor := getenv("GITHOOK_NO_COLOR"); noColor != "" {
		noColor = strings.ToLower(noColor)
		if noColor == "1" || noColor == "true" || noColor == "yes" {
			off := false
			cfg.Output.Color = &off
		}
	}
}

// validate checks every rule and returns all problems at once.
func validate(cfg *Config) error {
	var errs []error
	if cfg.Version != 1 {
		errs = append(errs, fmt.Errorf("unsupported config version %d (valid: 1)", cfg.Version))
	}

	seen := make(map[string]bool, len(cfg.Rules))
	for i, r := range cfg.Rules {
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("rule at position %d: missing required field 'name'", i+1))
			continue
		}
		if seen[r.Name] {
			errs = append(errs, fmt.Errorf("rule %q: duplicate name", r.Name))
		}
		seen[r.Name] = true

		if len(r.DenyStatus) == 0 && r.MaxFiles == 0 {
			errs = append(errs, fmt.Errorf("rule %q: one of 'deny_status' or 'max_files' is required", r.Name))
		}
		if r.MaxFiles < 0 {
			errs = append(errs, fmt.Errorf("rule %q: 'max_files' must not be negative", r.Name))
		}
		for _, s := range r.DenyStatus {
			if !s.Known() {
				errs = append(errs, fmt.Errorf("rule %q: unknown status %q (valid: A, C, D, M, R, T, U, X)", r.Name, s))
			}
		}
		for _, p := range append(append([]string{}, r.Only...), r.Except...) {
			if _, err := filepath.Match(p, ""); err != nil {
				errs = append(errs, fmt.Errorf("rule %q: invalid pattern %q: %w", r.Name, p, err))
			}
		}
	}

	return errors.Join(errs...)
}
