// Package doc provides the in-memory line store used by the verified edit
// operation: an ordered sequence of file lines supporting whole-range
// replacement, plus the single-generation backup used for rollback.
package doc

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidRange is returned when a line range is malformed.
var ErrInvalidRange = errors.New("invalid line range")

// Document holds a file's lines. The external contract is 1-indexed;
// slices are 0-indexed internally.
type Document struct {
	path  string
	lines []string
}

// Load reads a file into a Document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Document{path: path, lines: SplitLines(string(data))}, nil
}

// FromLines builds a Document over the given lines without touching disk.
func FromLines(path string, lines []string) *Document {
	return &Document{path: path, lines: lines}
}

// Path returns the file path this document was loaded from.
func (d *Document) Path() string { return d.path }

// Len returns the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// Lines returns a copy of the document's lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Content returns the document serialised with one terminator per line.
func (d *Document) Content() string {
	return JoinLines(d.lines)
}

// Replace substitutes lines start through end (1-indexed, inclusive) with
// replacement, returning a new Document. start refers to the first line
// when 1; end beyond the document length means "through end of file".
// An empty replacement deletes the span.
func (d *Document) Replace(start, end int, replacement []string) (*Document, error) {
	if start < 1 {
		return nil, fmt.Errorf("%w: start line must be >= 1, got %d", ErrInvalidRange, start)
	}
	if end < start {
		return nil, fmt.Errorf("%w: end line %d cannot be less than start line %d", ErrInvalidRange, end, start)
	}
	if end > len(d.lines) {
		end = len(d.lines)
	}
	if start > len(d.lines)+1 {
		return nil, fmt.Errorf("%w: start line %d exceeds document length %d", ErrInvalidRange, start, len(d.lines))
	}

	head := start - 1
	if head > len(d.lines) {
		head = len(d.lines)
	}

	lines := make([]string, 0, head+len(replacement)+len(d.lines)-end)
	lines = append(lines, d.lines[:head]...)
	lines = append(lines, replacement...)
	if end < len(d.lines) {
		lines = append(lines, d.lines[end:]...)
	}
	return &Document{path: d.path, lines: lines}, nil
}

// ClampEnd returns end bounded to the document length, preserving the
// "through end of file" semantics for ranges past the last line.
func (d *Document) ClampEnd(end int) int {
	if end > len(d.lines) {
		return len(d.lines)
	}
	return end
}

// Write durably persists the document to its file path.
func (d *Document) Write() error {
	if err := os.WriteFile(d.path, []byte(d.Content()), 0644); err != nil {
		return fmt.Errorf("write %s: %w", d.path, err)
	}
	return nil
}

// SplitLines converts file content into lines. A trailing newline does
// not produce a final empty line; an empty file has no lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// JoinLines serialises lines with one newline terminator per element.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
