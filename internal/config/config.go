// Package config provides reading and writing of lnedit configuration.
// Supports both global (~/.lnedit/config.yaml) and local (.lnedit/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to the file the config was read from.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/lnedit/internal/lint"
	"github.com/jpl-au/lnedit/internal/view"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.lnedit/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is repository-specific config in .lnedit/config.yaml
	ScopeLocal
)

// Linter holds linter invocation configuration.
type Linter struct {
	// Command is the argv prefix used to invoke the linter.
	Command []string `yaml:"command,omitempty"`
	// Blocking are check codes whose newly introduced findings force rollback.
	Blocking []string `yaml:"blocking,omitempty"`
	// Warning are check codes surfaced as non-fatal warnings.
	Warning []string `yaml:"warning,omitempty"`
	// Extensions are the file extensions eligible for lint verification.
	Extensions []string `yaml:"extensions,omitempty"`
}

// Window holds viewport configuration.
type Window struct {
	Size *int `yaml:"size,omitempty"`
}

// Defaults applied when not configured.
var DefaultExtensions = []string{".py"}

// Config contains configuration for lnedit.
type Config struct {
	Linter Linter `yaml:"linter,omitempty"`
	Window Window `yaml:"window,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
func (c *Config) Validate() error {
	if c.Window.Size != nil && *c.Window.Size < 1 {
		return fmt.Errorf("%w: window.size must be >= 1, got %d", ErrInvalidValue, *c.Window.Size)
	}
	for _, ext := range c.Linter.Extensions {
		if ext == "" || ext[0] != '.' {
			return fmt.Errorf("%w: linter.extensions entries must start with '.', got %q", ErrInvalidValue, ext)
		}
	}
	return nil
}

// LinterCommand returns the linter argv prefix (defaults to flake8).
func (c *Config) LinterCommand() []string {
	if len(c.Linter.Command) == 0 {
		return lint.DefaultCommand
	}
	return c.Linter.Command
}

// BlockingProfile returns the configured blocking lint profile.
func (c *Config) BlockingProfile() lint.Profile {
	return lint.BlockingProfile(c.Linter.Blocking)
}

// FullProfile returns the configured full lint profile.
func (c *Config) FullProfile() lint.Profile {
	return lint.FullProfile(c.Linter.Blocking, c.Linter.Warning)
}

// Extensions returns the lint-supported file extensions (defaults to .py).
func (c *Config) Extensions() []string {
	if len(c.Linter.Extensions) == 0 {
		return DefaultExtensions
	}
	return c.Linter.Extensions
}

// WindowSize returns the default viewport window size.
func (c *Config) WindowSize() int {
	if c.Window.Size == nil {
		return view.DefaultWindow
	}
	return *c.Window.Size
}

// LocalPath returns the path to the local (repository) config file.
func LocalPath() string {
	return filepath.Join(".lnedit", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.lnedit/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lnedit", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
