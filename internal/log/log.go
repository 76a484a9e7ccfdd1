// Package log provides centralised audit logging for lnedit operations.
// Logs are stored in ~/.lnedit/log/lnedit-log.db and track all CLI
// commands and MCP tool invocations across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("edit:edit", "edit").
//		Path(p).
//		Line(start).
//		Detail("accepted", outcome.Accepted).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "file:open",
// "edit:edit", "mcp:lnedit_edit".
package log

import (
	"sync"
	"time"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "edit:edit", "mcp:lnedit_open"
	Action string // verb: open, edit, view, config, etc.
	Path   string // file the operation targeted
	Line   int    // cursor or start line, when relevant

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call
// [Builder.Write] to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Path sets the file path this operation affects.
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Line sets the line number this operation targets (cursor, edit start).
func (b *Builder) Line(line int) *Builder {
	b.entry.Line = line
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure
// from err. This is the standard way to complete a log entry.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them
// (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	l, err := open(dbPath())
	if err != nil {
		return err
	}
	global = l
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the directory the session operates in.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Recent returns the most recent entries, newest first. Returns nil if
// the logger is not initialised.
func Recent(limit int) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	return l.recent(limit)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
