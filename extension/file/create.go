// create.go implements the "lnedit create" command: create an empty file
// and open it, so a follow-up edit can fill it in.

package file

import (
	"fmt"

	"github.com/jpl-au/lnedit/cmd"
	"github.com/jpl-au/lnedit/internal/log"
	"github.com/jpl-au/lnedit/internal/nav"
	"github.com/spf13/cobra"
)

func (e *Extension) newCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <path>",
		Short: "Create an empty file and open it",
		Args:  cobra.ExactArgs(1),
		RunE:  e.runCreate,
	}
}

func (e *Extension) runCreate(_ *cobra.Command, args []string) error {
	path := args[0]

	result, err := nav.Create(e.cfg, path)

	log.Event("file:create", "create").Path(path).Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("create %q: %w", path, err))
	}
	return emit(result)
}
