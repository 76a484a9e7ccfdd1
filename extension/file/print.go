// print.go implements "lnedit print": re-render the current window
// without moving the cursor.

package file

import (
	"github.com/jpl-au/lnedit/cmd"
	"github.com/jpl-au/lnedit/extension"
	"github.com/jpl-au/lnedit/internal/log"
	"github.com/jpl-au/lnedit/internal/nav"
	"github.com/spf13/cobra"
)

func (e *Extension) newPrintCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "print",
		Short: "Show the window around the cursor",
		Args:  cobra.NoArgs,
		RunE:  e.runPrint,
	}
	c.Flags().Int(extension.FlagWindow, 0, "Window size for this render (defaults to the session window)")
	return c
}

func (e *Extension) runPrint(c *cobra.Command, _ []string) error {
	window, _ := c.Flags().GetInt(extension.FlagWindow)

	result, err := nav.Print(e.cfg, window)

	log.Event("file:print", "view").Path(result.Path).Line(result.Cursor).Write(err)

	if err != nil {
		return cmd.PrintJSONError(err)
	}
	return emit(result)
}
