// flags.go defines constants for all CLI flag names.
//
// Using constants instead of string literals prevents typos and enables
// compile-time checking when flag names are used in both Flags().Type()
// definitions and GetType() calls.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "end-marker" -> FlagEndMarker).

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagLocal = "local" // Use local scope (.lnedit/config.yaml)

	// String flags

	FlagEndMarker = "end-marker" // Sentinel line terminating edit input

	// Integer flags

	FlagLimit  = "limit"  // Limit number of results
	FlagWindow = "window" // Window size override
)
