/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.

package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/lnedit/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lnedit",
	Short: "Verified line-range file editing for LLM workflows",
	Long: `A file editing command surface for autonomous agents. Edits are applied
speculatively, checked against a linter for newly introduced errors, and
atomically accepted or rolled back.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if err := initExtensions(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
			}
			return fmt.Errorf("initialise extensions: %w", err)
		}
		return nil
	},
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions, executes the command, and
// closes the log before exit. Exit code 1 indicates error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	registerExtensions()
	if err := rootCmd.Execute(); err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
