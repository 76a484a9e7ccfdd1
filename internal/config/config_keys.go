// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. config.go focuses on YAML structure and loading; this file
// handles the CLI and MCP interface where config is accessed by string keys
// (e.g., "linter.blocking").
//
// List-valued keys use comma-separated strings on the CLI side so that
// "lnedit config linter.blocking E999,E902" works without shell quoting
// games.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/lnedit/internal/lint"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"linter.command", "linter.blocking", "linter.warning", "linter.extensions",
		"window.size",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "linter.command":
		return strings.Join(c.LinterCommand(), " "), nil
	case "linter.blocking":
		return strings.Join(c.BlockingProfile().Codes, ","), nil
	case "linter.warning":
		return strings.Join(c.warningCodes(), ","), nil
	case "linter.extensions":
		return strings.Join(c.Extensions(), ","), nil
	case "window.size":
		return strconv.Itoa(c.WindowSize()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "linter.command":
		fields := strings.Fields(value)
		if len(fields) == 0 {
			return fmt.Errorf("%w: linter.command must not be empty", ErrInvalidValue)
		}
		c.Linter.Command = fields
	case "linter.blocking":
		codes, err := splitCodes(value)
		if err != nil {
			return fmt.Errorf("%w: linter.blocking: %v", ErrInvalidValue, err)
		}
		c.Linter.Blocking = codes
	case "linter.warning":
		codes, err := splitCodes(value)
		if err != nil {
			return fmt.Errorf("%w: linter.warning: %v", ErrInvalidValue, err)
		}
		c.Linter.Warning = codes
	case "linter.extensions":
		exts := strings.Split(value, ",")
		for i, e := range exts {
			exts[i] = strings.TrimSpace(e)
			if exts[i] == "" || exts[i][0] != '.' {
				return fmt.Errorf("%w: linter.extensions entries must start with '.', got %q", ErrInvalidValue, e)
			}
		}
		c.Linter.Extensions = exts
	case "window.size":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: window.size must be a positive integer", ErrInvalidValue)
		}
		c.Window.Size = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"linter.command":    strings.Join(c.LinterCommand(), " "),
		"linter.blocking":   strings.Join(c.BlockingProfile().Codes, ","),
		"linter.warning":    strings.Join(c.warningCodes(), ","),
		"linter.extensions": strings.Join(c.Extensions(), ","),
		"window.size":       strconv.Itoa(c.WindowSize()),
	}
}

// warningCodes returns the configured warning codes with defaults applied.
func (c *Config) warningCodes() []string {
	if len(c.Linter.Warning) == 0 {
		return lint.DefaultWarningCodes
	}
	return c.Linter.Warning
}

func splitCodes(value string) ([]string, error) {
	parts := strings.Split(value, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("empty check code in %q", value)
		}
		codes = append(codes, p)
	}
	return codes, nil
}
