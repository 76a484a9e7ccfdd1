// Package edit provides the verified line-range edit extension for lnedit.
// It registers the edit command.
package edit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jpl-au/lnedit/cmd"
	"github.com/jpl-au/lnedit/extension"
	"github.com/jpl-au/lnedit/internal/lint"
	"github.com/jpl-au/lnedit/internal/log"
	"github.com/jpl-au/lnedit/internal/session"
	"github.com/jpl-au/lnedit/internal/verify"
	"github.com/spf13/cobra"
)

// DefaultEndMarker is the sentinel line terminating replacement input.
const DefaultEndMarker = "end_of_edit"

// ErrMalformedRange is returned when the line range argument cannot be
// parsed into two integers.
var ErrMalformedRange = errors.New("malformed line range")

func init() {
	extension.Register(&Extension{})
}

// Extension implements the edit extension.
type Extension struct {
	verifier *verify.Verifier
	cfg      configProvider
}

type configProvider interface {
	WindowSize() int
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "edit" - this extension provides the verified edit command.
func (e *Extension) Name() string { return "edit" }

// Init receives the shared verifier from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.verifier = ctx.Verifier()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the edit command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{e.newEditCmd()}
}

func (e *Extension) newEditCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "edit <start>:<end>",
		Short: "Replace a line range in the open file, verified by the linter",
		Long: `Replace lines start through end (1-indexed, inclusive) of the open file
with content read from stdin. Input ends at a line equal to the end
marker, or at EOF:

  lnedit edit 5:10 <<'end_of_edit'
  def hello():
      print("hello")
  end_of_edit

The edit is applied speculatively. If the linter reports errors that the
edit introduced, the file is restored and the edit is rejected; otherwise
the edit is committed and any new non-fatal findings are shown as
warnings. An end line past the last line means "through end of file".`,
		Args: cobra.ExactArgs(1),
		RunE: e.runEdit,
	}
	c.Flags().String(extension.FlagEndMarker, DefaultEndMarker, "Sentinel line terminating the replacement input")
	return c
}

// Result is the structured outcome of an edit.
type Result struct {
	Path     string         `json:"path"`
	Start    int            `json:"start"`
	End      int            `json:"end"`
	Accepted bool           `json:"accepted"`
	Warnings []lint.Finding `json:"warnings,omitempty"`
	Errors   []lint.Finding `json:"errors,omitempty"`
}

func (e *Extension) runEdit(c *cobra.Command, args []string) error {
	ctx := c.Context()
	marker, _ := c.Flags().GetString(extension.FlagEndMarker)

	start, end, rangeErr := parseRange(args[0])

	s, err := session.Load()
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	path, openErr := s.RequireFile()
	if openErr != nil || rangeErr != nil {
		// Drain the replacement input even when the edit cannot run, so a
		// scripted caller's stream stays in sync with its commands.
		_, _ = readReplacement(os.Stdin, marker)
		if openErr != nil {
			log.Event("edit:edit", "edit").Write(openErr)
			return cmd.PrintJSONError(openErr)
		}
		log.Event("edit:edit", "edit").Write(rangeErr)
		return cmd.PrintJSONError(fmt.Errorf("%w\nusage: edit <start_line>:<end_line>, e.g. edit 5:10", rangeErr))
	}

	replacement, err := readReplacement(os.Stdin, marker)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("read replacement: %w", err))
	}

	if s.WindowSize < 1 {
		s.WindowSize = e.cfg.WindowSize()
	}

	req := verify.Request{Start: start, End: end, Replacement: replacement}
	outcome, err := e.verifier.Apply(ctx, path, req, s.WindowSize)

	log.Event("edit:edit", "edit").
		Path(path).
		Line(start).
		Detail("end", end).
		Detail("replacement_lines", len(replacement)).
		Detail("accepted", err == nil && outcome.Accepted).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("edit %q: %w", path, err))
	}

	if outcome.Accepted {
		// Only a committed edit moves the session cursor.
		s.CursorLine = outcome.CursorLine
		if err := s.Save(); err != nil {
			return cmd.PrintJSONError(err)
		}
	}

	result := Result{
		Path:     path,
		Start:    start,
		End:      end,
		Accepted: outcome.Accepted,
		Warnings: outcome.Warnings,
		Errors:   outcome.Blocking,
	}

	if cmd.JSON() {
		return cmd.PrintJSON(result)
	}
	fmt.Fprint(cmd.Out(), outcome.Report())
	if !outcome.Accepted {
		return cmd.PrintJSONError(errors.New("edit rejected"))
	}
	return nil
}

// parseRange parses "start:end" into two integers. Missing or
// non-numeric parts are malformed; range validity (start >= 1,
// end >= start) is checked by the verifier.
func parseRange(s string) (start, end int, err error) {
	left, right, ok := strings.Cut(s, ":")
	if !ok || left == "" || right == "" {
		return 0, 0, fmt.Errorf("%w: %q (expected start:end)", ErrMalformedRange, s)
	}
	start, err = strconv.Atoi(left)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: start line %q is not an integer", ErrMalformedRange, left)
	}
	end, err = strconv.Atoi(right)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: end line %q is not an integer", ErrMalformedRange, right)
	}
	return start, end, nil
}

// readReplacement reads lines until a line equal to marker, or EOF.
// The marker itself is not part of the replacement.
func readReplacement(r io.Reader, marker string) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 10*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == marker {
			break
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
