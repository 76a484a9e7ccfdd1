// open.go implements the "lnedit open" command.
//
// Opening a file makes it the session's current file and prints the
// window around the cursor, which defaults to the top of the file or the
// requested line.

package file

import (
	"fmt"
	"strconv"

	"github.com/jpl-au/lnedit/cmd"
	"github.com/jpl-au/lnedit/internal/log"
	"github.com/jpl-au/lnedit/internal/nav"
	"github.com/spf13/cobra"
)

func (e *Extension) newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path> [line]",
		Short: "Open a file and show a window around the cursor",
		Long: `Open a file for editing. The file becomes the session's current file.

  lnedit open src/app.py        # open at the top
  lnedit open src/app.py 120    # open with the cursor on line 120`,
		Args: cobra.RangeArgs(1, 2),
		RunE: e.runOpen,
	}
}

func (e *Extension) runOpen(_ *cobra.Command, args []string) error {
	path := args[0]
	line := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return cmd.PrintJSONError(fmt.Errorf("open: line must be a positive integer, got %q", args[1]))
		}
		line = n
	}

	result, err := nav.Open(e.cfg, path, line)

	log.Event("file:open", "open").Path(path).Line(line).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("open %q: %w", path, err))
	}
	return emit(result)
}
