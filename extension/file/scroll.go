// scroll.go implements "lnedit scroll-up" and "lnedit scroll-down".

package file

import (
	"github.com/jpl-au/lnedit/cmd"
	"github.com/jpl-au/lnedit/internal/log"
	"github.com/jpl-au/lnedit/internal/nav"
	"github.com/spf13/cobra"
)

func (e *Extension) newScrollCmd(name string, direction int) *cobra.Command {
	short := "Scroll the window up"
	if direction > 0 {
		short = "Scroll the window down"
	}
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			result, err := nav.Scroll(e.cfg, direction)

			log.Event("file:"+name, "view").Path(result.Path).Line(result.Cursor).Write(err)

			if err != nil {
				return cmd.PrintJSONError(err)
			}
			return emit(result)
		},
	}
}
