// Package extension provides the plugin architecture for lnedit.
// Extensions encapsulate related commands and register at init time,
// enabling modular feature development without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for lnedit extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command
}

// Initializable extensions can perform setup once shared state is ready.
// Extensions receive the Context during Init(), not at construction, to
// support the two-phase pattern where extensions register their commands
// before the configuration has been loaded.
type Initializable interface {
	Extension
	Init(ctx Context) error
}
