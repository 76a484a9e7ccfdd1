// context.go defines the Context interface extensions use to reach shared
// lnedit state.
//
// Separated from extension.go to isolate dependency injection concerns.
// The Context provides a controlled surface area for extensions - they can
// access what they need without reaching into arbitrary internals, and
// tests can substitute mock implementations.

package extension

import (
	"github.com/jpl-au/lnedit/internal/config"
	"github.com/jpl-au/lnedit/internal/verify"
)

// Context provides extensions controlled access to lnedit internals.
// Extensions receive this during initialisation.
type Context interface {
	// Config returns user configuration for respecting user preferences.
	Config() *config.Config

	// Verifier returns the shared edit verifier, wired to the configured
	// linter and profiles.
	Verifier() *verify.Verifier
}

// extContext implements Context.
type extContext struct {
	cfg *config.Config
	ver *verify.Verifier
}

// NewContext creates a new extension context.
func NewContext(cfg *config.Config, ver *verify.Verifier) Context {
	return &extContext{cfg: cfg, ver: ver}
}

func (c *extContext) Config() *config.Config     { return c.cfg }
func (c *extContext) Verifier() *verify.Verifier { return c.ver }
