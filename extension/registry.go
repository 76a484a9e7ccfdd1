// registry.go implements the extension registration system.
//
// Separated from extension.go to isolate the global registry state and
// thread-safe access patterns. Extensions self-register during init(),
// before main() runs.
//
// Design: The registry uses panic-on-duplicate following database/sql.Register
// conventions. Registration happens at init time, so a duplicate name is a
// programmer mistake, not a runtime condition - failing fast and loudly
// makes it impossible to ignore. Registration order is preserved to ensure
// deterministic command ordering across runs.

package extension

import "sync"

// Registry holds all registered extensions.
var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string // preserve registration order
)

// Register adds an extension to the registry. Called from init() functions.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns all registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}
