// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/invowk/wca/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `wca config` command tree.
func newConfigCommand(app *App, opts *rootOptions) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect wca configuration",
		Long: `Inspect wca configuration.

Configuration is read from --config, then <user config dir>/wca/config.cue:
  - Linux: $XDG_CONFIG_HOME/wca/config.cue (~/.config/wca/config.cue)
  - macOS: ~/Library/Application Support/wca/config.cue
  - Windows: %AppData%\wca\config.cue
then ./config.cue. WCA_* environment variables override file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfig(cmd.Context(), *opts)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the default configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.showConfigPath()
		},
	})

	return cfgCmd
}

func (a *App) showConfig(ctx context.Context, opts rootOptions) error {
	cfg, path, err := a.loadConfig(ctx, opts)
	if err != nil {
		return reportError(a.stderr, err, opts.verbose, "")
	}

	source := path
	if source == "" {
		source = "(defaults)"
	}
	fmt.Fprintf(a.stdout, "// source: %s\n", source)
	fmt.Fprint(a.stdout, config.GenerateCUE(cfg))
	return nil
}

func (a *App) showConfigPath() error {
	dir := a.configDir
	if dir == "" {
		var err error
		if dir, err = config.ConfigDir(); err != nil {
			return reportError(a.stderr, err, false, "")
		}
	}
	fmt.Fprintln(a.stdout, filepath.Join(dir, config.ConfigFileName))
	return nil
}
