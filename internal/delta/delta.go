// Package delta reconciles linter findings taken before and after a
// line-range edit, deciding which post-edit findings the edit actually
// introduced.
//
// A naive "any finding that wasn't there before" comparison breaks as soon
// as an edit changes the file's line count: every pre-existing finding
// below the edit moves to a new line number and looks new. The filter
// therefore shifts pre-existing findings past the edit by the line-count
// delta, and only counts findings that land inside the replaced text as
// caused by the edit.
package delta

import (
	"sort"

	"github.com/jpl-au/lnedit/internal/lint"
)

// Window is the inclusive 1-indexed span of lines replaced by an edit,
// expressed in pre-edit line numbers. End is the effective end after
// clamping to the document length.
type Window struct {
	Start int
	End   int
}

// Lines returns the number of lines the window covers.
func (w Window) Lines() int {
	return w.End - w.Start + 1
}

// New returns the findings in after that were introduced by the edit
// described by window and replacementLines (the number of lines that
// replaced the window).
//
// A pre-existing finding inside the window is discarded: the replaced text
// is gone, so there is nothing to match it against. A pre-existing finding
// below the window is expected to reappear shifted by the line-count
// delta. A post-edit finding is new iff it is absent (by line and code)
// from that shifted expectation and lies within the post-edit span of the
// replacement text. Unexplained findings outside that span are treated as
// pre-existing anomalies elsewhere in the file, not as regressions.
func New(before, after []lint.Finding, window Window, replacementLines int) []lint.Finding {
	shift := replacementLines - window.Lines()

	expected := make(map[lint.Key]bool, len(before))
	for _, f := range before {
		switch {
		case f.Line < window.Start:
			expected[f.Key()] = true
		case f.Line <= window.End:
			// Inside the replaced span: the text it pointed at no
			// longer exists, so it cannot explain anything.
		default:
			shifted := f
			shifted.Line += shift
			expected[shifted.Key()] = true
		}
	}

	// Post-edit line numbers covered by the replacement text.
	postStart := window.Start
	postEnd := window.Start + replacementLines - 1

	var introduced []lint.Finding
	for _, f := range after {
		if f.Line < postStart || f.Line > postEnd {
			continue
		}
		if expected[f.Key()] {
			continue
		}
		introduced = append(introduced, f)
	}

	sort.Slice(introduced, func(i, j int) bool {
		if introduced[i].Line != introduced[j].Line {
			return introduced[i].Line < introduced[j].Line
		}
		return introduced[i].Code < introduced[j].Code
	})
	return introduced
}

// Subtract returns the findings in a whose (line, code) identity does not
// appear in b. Used to drop blocking findings from the warning set.
func Subtract(a, b []lint.Finding) []lint.Finding {
	if len(b) == 0 {
		return a
	}
	seen := make(map[lint.Key]bool, len(b))
	for _, f := range b {
		seen[f.Key()] = true
	}
	var out []lint.Finding
	for _, f := range a {
		if !seen[f.Key()] {
			out = append(out, f)
		}
	}
	return out
}
