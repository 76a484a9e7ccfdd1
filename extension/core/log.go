// log.go implements the "lnedit log" command for viewing the audit log.
//
// Separated from extension.go to isolate log presentation. The audit log
// records every command and MCP tool invocation, giving operators a way
// to reconstruct what an agent did to a file and when.

package core

import (
	"fmt"
	"time"

	"github.com/jpl-au/lnedit/cmd"
	"github.com/jpl-au/lnedit/extension"
	"github.com/jpl-au/lnedit/internal/log"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show recent operations from the audit log",
		Args:  cobra.NoArgs,
		RunE:  runLog,
	}
	c.Flags().IntP(extension.FlagLimit, "n", 20, "Number of entries to show")
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	limit, _ := c.Flags().GetInt(extension.FlagLimit)

	entries, err := log.Recent(limit)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("log: %w", err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(entries)
	}

	for _, e := range entries {
		status := "ok"
		if !e.Success {
			status = "failed: " + e.Error
		}
		target := e.Path
		if e.Line > 0 {
			target = fmt.Sprintf("%s:%d", e.Path, e.Line)
		}
		fmt.Fprintf(cmd.Out(), "%s  %-14s %-24s %s\n",
			time.Unix(e.Start, 0).Format(time.DateTime), e.Source, target, status)
	}
	return nil
}
