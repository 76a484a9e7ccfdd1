// report.go renders edit outcomes as the human-readable reports shown to
// the caller.
//
// Separated from verify.go so the CLI and the MCP server share identical
// wording. The reports are written for an agent that cannot inspect the
// file by eye: the acceptance report nudges it to re-verify the change,
// and the rejection report spells out every way to recover.

package verify

import (
	"fmt"
	"strings"

	"github.com/jpl-au/lnedit/internal/lint"
)

// Report renders the outcome for the caller.
func (o Outcome) Report() string {
	if o.Accepted {
		return o.acceptedReport()
	}
	return o.rejectedReport()
}

func (o Outcome) acceptedReport() string {
	var b strings.Builder
	b.WriteString(o.View)
	b.WriteString("File updated. Please review the changes and make sure they are correct (correct indentation, no duplicate lines, etc). Edit the file again if necessary.\n")
	if len(o.Warnings) > 0 {
		b.WriteString("\nWARNINGS (non-fatal, the edit was applied):\n")
		writeFindings(&b, o.Warnings)
	}
	return b.String()
}

func (o Outcome) rejectedReport() string {
	var b strings.Builder
	b.WriteString("Your proposed edit has introduced new syntax error(s). Please understand the errors and retry your edit command.\n\n")
	b.WriteString("ERRORS:\n")
	writeFindings(&b, o.Blocking)

	b.WriteString("\nThis is how your edit would have looked if applied\n")
	b.WriteString("-------------------------------------------------\n")
	b.WriteString(o.Preview)
	b.WriteString("-------------------------------------------------\n")

	b.WriteString("\nThis is the original code before your edit\n")
	b.WriteString("-------------------------------------------------\n")
	b.WriteString(o.Original)
	b.WriteString("-------------------------------------------------\n")

	if o.Diff != "" {
		b.WriteString("\nDiff of the rejected edit against the original:\n")
		b.WriteString(o.Diff)
	}

	b.WriteString("\nYour changes have NOT been applied. To fix, you can:\n")
	b.WriteString("1) Specify different start/end line arguments if the range was wrong.\n")
	b.WriteString("2) Correct the replacement content itself.\n")
	b.WriteString("3) Split the change into smaller edits.\n")
	b.WriteString("DO NOT re-run the same failed edit command; it will fail the same way.\n")
	return b.String()
}

func writeFindings(b *strings.Builder, findings []lint.Finding) {
	for _, f := range findings {
		fmt.Fprintf(b, "- %d:%d %s %s\n", f.Line, f.Col, f.Code, f.Message)
	}
}
