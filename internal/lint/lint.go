// Package lint invokes an external linter and parses its findings.
// The linter is a black box: lnedit hands it a file path and a set of
// enabled check codes, and reads back one diagnostic per output line.
package lint

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
)

// Finding is a single linter diagnostic. Findings are compared by
// (Line, Code) identity when reconciling before/after snapshots;
// the message is informational only.
type Finding struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Key identifies a finding for delta comparison purposes.
type Key struct {
	Line int
	Code string
}

// Key returns the (line, code) identity of the finding.
func (f Finding) Key() Key {
	return Key{Line: f.Line, Code: f.Code}
}

// Profile is a named, fixed set of enabled check codes.
type Profile struct {
	Name  string
	Codes []string
}

// Default check-code sets. Blocking codes are hard syntax/structural
// errors that force a rollback when newly introduced. The full profile
// adds undefined-name style codes, which are surfaced as warnings.
var (
	DefaultBlockingCodes = []string{"E999", "E902", "E111", "E112", "E113"}
	DefaultWarningCodes  = []string{"F821", "F822", "F831"}
)

// BlockingProfile builds the blocking profile from a code list.
// An empty list falls back to the defaults.
func BlockingProfile(codes []string) Profile {
	if len(codes) == 0 {
		codes = DefaultBlockingCodes
	}
	return Profile{Name: "blocking", Codes: codes}
}

// FullProfile builds the full profile: blocking codes plus soft codes.
// Empty lists fall back to the defaults.
func FullProfile(blocking, warning []string) Profile {
	if len(blocking) == 0 {
		blocking = DefaultBlockingCodes
	}
	if len(warning) == 0 {
		warning = DefaultWarningCodes
	}
	codes := make([]string, 0, len(blocking)+len(warning))
	codes = append(codes, blocking...)
	for _, c := range warning {
		if !slices.Contains(codes, c) {
			codes = append(codes, c)
		}
	}
	return Profile{Name: "full", Codes: codes}
}

// Snapshot is the set of findings from one linter run against one
// document state.
type Snapshot struct {
	Profile  Profile
	Findings []Finding
}

// Runner produces a lint snapshot for a file. Implementations are
// best-effort: an unreachable or failing linter must report no findings
// rather than an error, so a broken linter never falsely rejects edits.
type Runner interface {
	Lint(ctx context.Context, path string, profile Profile) Snapshot
}

// Supported reports whether a file is eligible for lint verification.
// Edits to other file types bypass linting entirely.
func Supported(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(extensions, ext)
}
