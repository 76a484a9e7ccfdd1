// config.go implements the "lnedit config" command for configuration
// management.
//
// Separated from extension.go to isolate config-specific logic including
// the local vs global config precedence rules.
//
// Design: Config follows a cascade model similar to git: local config
// (.lnedit/config.yaml) takes precedence over global (~/.lnedit/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.

package core

import (
	"fmt"

	"github.com/jpl-au/lnedit/cmd"
	"github.com/jpl-au/lnedit/extension"
	"github.com/jpl-au/lnedit/internal/config"
	"github.com/jpl-au/lnedit/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  lnedit config                            # show config
  lnedit config linter.blocking            # show blocking check codes
  lnedit config linter.blocking E999,E902  # set blocking check codes

Configuration locations:
  Global: ~/.lnedit/config.yaml
  Local:  .lnedit/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.lnedit/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	scopeName := "global"
	if cfg.Scope() == config.ScopeLocal {
		scopeName = "local"
	}

	switch len(args) {
	case 0:
		if cmd.JSON() {
			log.Event("core:config", "config").Write(nil)
			return cmd.PrintJSON(cfg.All())
		}
		for _, k := range config.ValidKeys() {
			v, _ := cfg.Get(k)
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, v)
		}
		log.Event("core:config", "config").Write(nil)

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "config").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		if err := cfg.Set(args[0], args[1]); err != nil {
			log.Event("core:config", "config").Detail("key", args[0]).Write(err)
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		saveErr := cfg.Save()
		log.Event("core:config", "config").Detail("key", args[0]).Detail("scope", scopeName).Write(saveErr)
		if saveErr != nil {
			return cmd.PrintJSONError(fmt.Errorf("config save: %w", saveErr))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: args[1], "scope": scopeName})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scopeName)
	}
	return nil
}
