// Package file provides the file navigation extension for lnedit.
// It registers commands: open, create, goto, scroll-up, scroll-down, print.
package file

import (
	"fmt"

	"github.com/jpl-au/lnedit/cmd"
	"github.com/jpl-au/lnedit/extension"
	"github.com/jpl-au/lnedit/internal/nav"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the file navigation extension.
type Extension struct {
	cfg nav.Config
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "file" - this extension provides navigation commands.
func (e *Extension) Name() string { return "file" }

// Init receives the shared configuration from the extension context.
func (e *Extension) Init(ctx extension.Context) error {
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the navigation commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newOpenCmd(),
		e.newCreateCmd(),
		e.newGotoCmd(),
		e.newScrollCmd("scroll-up", -1),
		e.newScrollCmd("scroll-down", +1),
		e.newPrintCmd(),
	}
}

// emit prints a navigation result in the requested output format.
func emit(result nav.Result) error {
	if cmd.JSON() {
		return cmd.PrintJSON(result)
	}
	fmt.Fprint(cmd.Out(), result.View)
	return nil
}
