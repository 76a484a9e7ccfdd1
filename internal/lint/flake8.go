// flake8.go implements the production lint runner backed by an external
// flake8-style process.
//
// Separated from lint.go to isolate process invocation and output parsing
// from the finding model. The runner never returns an error: lint results
// only influence the accept/rollback decision, and a linter that cannot be
// invoked must behave like a clean run rather than blocking all edits.

package lint

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultCommand is the linter invocation prefix. --isolated keeps project
// and user flake8 configs from widening or narrowing the selected codes.
var DefaultCommand = []string{"flake8", "--isolated"}

// Flake8 runs an external flake8-compatible linter.
type Flake8 struct {
	// Command is the argv prefix, e.g. ["flake8", "--isolated"].
	// The select flag and file path are appended per invocation.
	Command []string
}

var _ Runner = (*Flake8)(nil)

// NewFlake8 creates a runner for the given argv prefix, falling back to
// DefaultCommand when empty.
func NewFlake8(command []string) *Flake8 {
	if len(command) == 0 {
		command = DefaultCommand
	}
	return &Flake8{Command: command}
}

// Lint invokes the linter restricted to the profile's check codes and
// parses its output. Invocation failure yields an empty snapshot.
func (f *Flake8) Lint(ctx context.Context, path string, profile Profile) Snapshot {
	snap := Snapshot{Profile: profile}

	args := make([]string, 0, len(f.Command)+1)
	args = append(args, f.Command[1:]...)
	args = append(args, fmt.Sprintf("--select=%s", strings.Join(profile.Codes, ",")), path)

	// flake8 exits non-zero when findings exist; only the output matters.
	out, _ := exec.CommandContext(ctx, f.Command[0], args...).Output()
	snap.Findings = Parse(string(out))
	return snap
}

// Parse converts "path:line:col: CODE message" output lines into findings.
// Lines that do not match the format are skipped: a non-parseable response
// means "no errors", never a client failure.
func Parse(output string) []Finding {
	var findings []Finding
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		f, ok := parseLine(line)
		if !ok {
			continue
		}
		findings = append(findings, f)
	}
	return findings
}

// parseLine splits one diagnostic of the form
// "path:line:col: CODE message". The path may itself contain colons on
// Windows, so the location fields are taken from the right.
func parseLine(line string) (Finding, bool) {
	prefix, problem, ok := strings.Cut(line, ": ")
	if !ok {
		return Finding{}, false
	}

	parts := strings.Split(prefix, ":")
	if len(parts) < 3 {
		return Finding{}, false
	}
	lineNo, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil || lineNo < 1 {
		return Finding{}, false
	}
	col, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Finding{}, false
	}

	code, msg, _ := strings.Cut(problem, " ")
	return Finding{Line: lineNo, Col: col, Code: code, Message: msg}, true
}
