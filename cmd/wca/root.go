// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/invowk/wca/pkg/types"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand creates the wca command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:   "wca [flags] [.phrase [subject...] [name:value...]]...",
		Short: "Run dot-phrase commands from a dictionary",
		Long: TitleStyle.Render("wca") + SubtitleStyle.Render(" - a command aggregator") + `

wca runs one or more commands given on a single command line. Each command
starts with a dot phrase and is followed by its subjects (positional values)
and properties (name:value pairs).

Commands come from the built-ins (.echo, .version, .help) and from a
dictionary file: --file, dictionary.path in the configuration, or
./wcafile.cue when present.

` + SubtitleStyle.Render("Examples:") + `
  wca                              List all commands
  wca .echo "hi there" prefix:">"  Run one command
  wca .greet Ada .echo done        Run two commands in order
  wca .help greet                  Show help for one command
  wca check cmds.yaml              Validate a dictionary file`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd.Context(), opts, args)
		},
	}

	// Tokens after the first phrase belong to the aggregator, even "-x".
	root.Flags().SetInterspersed(false)

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.file, "file", "f", "", "dictionary file (.cue, .toml, .yaml, .yml)")
	pf.StringVar(&opts.configPath, "config", "", "config file (default is <user config dir>/wca/config.cue)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output and debug logging")
	pf.BoolVar(&opts.noSuggest, "no-suggest", false, "disable \"did you mean\" suggestions")

	root.AddCommand(newCheckCommand(app, &opts))
	root.AddCommand(newConfigCommand(app, &opts))
	return root
}

// run performs the token vector.
func (a *App) run(ctx context.Context, opts rootOptions, tokens []string) error {
	s, err := a.newSession(ctx, opts)
	if err != nil {
		return reportError(a.stderr, err, opts.verbose, "")
	}
	if err := s.agg.PerformTokens(ctx, tokens); err != nil {
		return reportError(a.stderr, err, s.verbose, s.cfg.UI.ColorScheme)
	}
	return nil
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// errorHandler leaves ExitErrors alone, since they are rendered before being
// returned, and lets fang style everything else (flag and usage errors).
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// Execute runs the CLI and exits the process with the resulting code.
// This is called by main.main().
func Execute() {
	root := NewRootCommand(NewApp(Dependencies{}))
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(errorHandler),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(int(types.ExitParse))
	}
}
