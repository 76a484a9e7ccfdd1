// Package nav implements session navigation: opening files, moving the
// cursor, scrolling, and rendering the current window. The CLI commands
// and the MCP tools share these operations.
package nav

import (
	"fmt"
	"os"

	"github.com/jpl-au/lnedit/internal/doc"
	"github.com/jpl-au/lnedit/internal/session"
	"github.com/jpl-au/lnedit/internal/view"
)

// scrollOverlap is the number of lines shared between consecutive windows.
const scrollOverlap = 2

// Config supplies the defaults nav needs from user configuration.
type Config interface {
	WindowSize() int
}

// Result is the outcome of a navigation operation.
type Result struct {
	Path   string `json:"path"`
	Cursor int    `json:"cursor"`
	Lines  int    `json:"lines"`
	View   string `json:"view"`
}

// Open makes path the session's current file with the cursor on line,
// and returns the window around it.
func Open(cfg Config, path string, line int) (Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Result{}, err
	}
	if info.IsDir() {
		return Result{}, fmt.Errorf("%s is a directory", path)
	}

	d, err := doc.Load(path)
	if err != nil {
		return Result{}, err
	}

	s, err := load(cfg)
	if err != nil {
		return Result{}, err
	}
	s.Open(path, line, d.Len())
	if err := s.Save(); err != nil {
		return Result{}, err
	}

	return Result{
		Path:   path,
		Cursor: s.CursorLine,
		Lines:  d.Len(),
		View:   view.Render(path, d.Lines(), s.CursorLine, s.WindowSize),
	}, nil
}

// Create creates an empty file and opens it.
func Create(cfg Config, path string) (Result, error) {
	if _, err := os.Stat(path); err == nil {
		return Result{}, fmt.Errorf("file already exists")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return Result{}, err
	}
	if err := f.Close(); err != nil {
		return Result{}, err
	}

	return Open(cfg, path, 1)
}

// Goto moves the cursor to line in the open file.
func Goto(cfg Config, line int) (Result, error) {
	return move(cfg, func(s *session.State) {
		s.CursorLine = line
	})
}

// Scroll moves the cursor by a window minus a two-line overlap.
// direction is -1 for up, +1 for down.
func Scroll(cfg Config, direction int) (Result, error) {
	return move(cfg, func(s *session.State) {
		step := s.WindowSize - scrollOverlap
		if step < 1 {
			step = 1
		}
		s.CursorLine += direction * step
	})
}

// Print re-renders the current window without moving the cursor. A
// positive window overrides the session's window size for this render
// only; the stored size is untouched.
func Print(cfg Config, window int) (Result, error) {
	s, err := load(cfg)
	if err != nil {
		return Result{}, err
	}
	path, err := s.RequireFile()
	if err != nil {
		return Result{}, err
	}
	d, err := doc.Load(path)
	if err != nil {
		return Result{Path: path}, err
	}
	if window < 1 {
		window = s.WindowSize
	}
	cursor := view.Clamp(s.CursorLine, d.Len())
	return Result{
		Path:   path,
		Cursor: cursor,
		Lines:  d.Len(),
		View:   view.Render(path, d.Lines(), cursor, window),
	}, nil
}

// move applies a cursor mutation to the session, clamps it against the
// open file, persists the session, and renders the window.
func move(cfg Config, mutate func(*session.State)) (Result, error) {
	s, err := load(cfg)
	if err != nil {
		return Result{}, err
	}
	path, err := s.RequireFile()
	if err != nil {
		return Result{}, err
	}

	d, err := doc.Load(path)
	if err != nil {
		return Result{Path: path}, err
	}

	mutate(s)
	s.CursorLine = view.Clamp(s.CursorLine, d.Len())
	if err := s.Save(); err != nil {
		return Result{Path: path}, err
	}

	return Result{
		Path:   path,
		Cursor: s.CursorLine,
		Lines:  d.Len(),
		View:   view.Render(path, d.Lines(), s.CursorLine, s.WindowSize),
	}, nil
}

// load reads the session and applies the configured window size when the
// session has none stored.
func load(cfg Config) (*session.State, error) {
	s, err := session.Load()
	if err != nil {
		return nil, err
	}
	if s.WindowSize < 1 {
		s.WindowSize = cfg.WindowSize()
	}
	return s, nil
}
