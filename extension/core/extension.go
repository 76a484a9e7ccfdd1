// Package core provides the core extension for lnedit.
// It registers commands: config, guide, log, serve, version.
package core

import (
	"github.com/jpl-au/lnedit/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var _ extension.Extension = (*Extension)(nil)

// Name returns "core" - this extension provides fundamental lnedit commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newGuideCmd(),
		newLogCmd(),
		newServeCmd(),
		newVersionCmd(),
	}
}
