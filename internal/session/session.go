// Package session persists the editing session state shared by lnedit
// invocations: the currently open file, the cursor line, and the window
// size. The session owns the canonical values; the edit verifier receives
// a transient copy and hands back what should be committed, so a rejected
// edit can never move the caller's cursor.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/lnedit/internal/view"
	"gopkg.in/yaml.v3"
)

// ErrNoFileOpen is returned by operations that require an open file.
// The message is part of the behavioural contract shown to callers.
var ErrNoFileOpen = errors.New("No file open. Use the open command first.")

// EnvPath overrides the session file location, letting tests and sandboxed
// callers isolate their state.
const EnvPath = "LNEDIT_SESSION"

// State is the process-session-scoped viewport state.
type State struct {
	CurrentFile string `yaml:"current_file,omitempty"`
	CursorLine  int    `yaml:"cursor_line,omitempty"`
	WindowSize  int    `yaml:"window_size,omitempty"`
}

// Path returns the session file location; LNEDIT_SESSION wins over the
// default ~/.lnedit/session.yaml.
func Path() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lnedit", "session.yaml")
	}
	return filepath.Join(home, ".lnedit", "session.yaml")
}

// Load reads the session state. A missing file yields a fresh, empty
// state; the caller applies the configured window size when none is
// stored.
func Load() (*State, error) {
	s := &State{}

	data, err := os.ReadFile(Path())
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", Path(), err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("malformed session file %s: %w\n\nTo fix: delete the file to reset the session", Path(), err)
	}
	return s, nil
}

// Save writes the session state, creating the parent directory as needed.
func (s *State) Save() error {
	p := Path()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling session: %w", err)
	}
	if err := os.WriteFile(p, data, 0644); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Open points the session at a file and clamps the cursor to it.
func (s *State) Open(path string, line, docLen int) {
	s.CurrentFile = path
	s.CursorLine = view.Clamp(line, docLen)
}

// RequireFile returns the open file path, or ErrNoFileOpen.
func (s *State) RequireFile() (string, error) {
	if s.CurrentFile == "" {
		return "", ErrNoFileOpen
	}
	return s.CurrentFile, nil
}
