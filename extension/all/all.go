// Package all imports all core lnedit extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/lnedit/extension/core"
	_ "github.com/jpl-au/lnedit/extension/edit"
	_ "github.com/jpl-au/lnedit/extension/file"
)
