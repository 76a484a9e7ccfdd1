/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// configuration, builds the shared verifier, and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before the configuration exists. The verifier is
// created once and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/lnedit/extension"
	"github.com/jpl-au/lnedit/internal/config"
	"github.com/jpl-au/lnedit/internal/lint"
	"github.com/jpl-au/lnedit/internal/verify"
)

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads configuration, builds the shared verifier, and
// injects both into extensions.
//
// Why sync.Once: The context must be identical across all extensions, and
// config loading should happen exactly once per process even if multiple
// commands somehow trigger it.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		ver := verify.New(
			lint.NewFlake8(cfg.LinterCommand()),
			cfg.BlockingProfile(),
			cfg.FullProfile(),
			cfg.Extensions(),
		)
		extContext = extension.NewContext(cfg, ver)

		// Inject the shared context into all Initializable extensions.
		// Extensions receive the verifier rather than creating it
		// themselves, so config is read once and behaviour is uniform.
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}

// Context returns the shared extension context (for the MCP server, which
// manages its own lifecycle but reuses the same wiring).
func Context() (extension.Context, error) {
	if err := initExtensions(); err != nil {
		return nil, err
	}
	return extContext, nil
}
