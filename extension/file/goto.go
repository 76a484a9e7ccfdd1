// goto.go implements the "lnedit goto" command: move the cursor within
// the open file and show the surrounding window.

package file

import (
	"fmt"
	"strconv"

	"github.com/jpl-au/lnedit/cmd"
	"github.com/jpl-au/lnedit/internal/log"
	"github.com/jpl-au/lnedit/internal/nav"
	"github.com/spf13/cobra"
)

func (e *Extension) newGotoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goto <line>",
		Short: "Move the cursor to a line in the open file",
		Args:  cobra.ExactArgs(1),
		RunE:  e.runGoto,
	}
}

func (e *Extension) runGoto(_ *cobra.Command, args []string) error {
	line, err := strconv.Atoi(args[0])
	if err != nil || line < 1 {
		return cmd.PrintJSONError(fmt.Errorf("goto: line must be a positive integer, got %q", args[0]))
	}

	result, err := nav.Goto(e.cfg, line)

	log.Event("file:goto", "view").Path(result.Path).Line(line).Write(err)

	if err != nil {
		return cmd.PrintJSONError(err)
	}
	return emit(result)
}
