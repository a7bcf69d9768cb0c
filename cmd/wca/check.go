// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/invowk/wca/internal/issue"
	"github.com/invowk/wca/pkg/help"

	"github.com/spf13/cobra"
)

func newCheckCommand(app *App, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE]",
		Short: "Validate a dictionary file and list its commands",
		Long: `Load a dictionary file, build every command it declares together with the
built-in commands, and print the resulting command index.

Without FILE, the file is resolved as for a normal run: --file, then
dictionary.path from the configuration, then ./wcafile.cue.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o := *opts
			if len(args) == 1 {
				o.file = args[0]
			}
			return app.check(cmd.Context(), o)
		},
	}
}

func (a *App) check(ctx context.Context, opts rootOptions) error {
	s, err := a.newSession(ctx, opts)
	if err != nil {
		return reportError(a.stderr, err, opts.verbose, "")
	}
	if s.dictPath == "" {
		err := issue.NewErrorContext().
			WithOperation("check dictionary file").
			WithSuggestion("Pass a file: wca check wcafile.cue").
			WithSuggestion("Or set dictionary.path in the configuration").
			WithIssue(issue.DictionaryFileNotFoundId).
			BuildError()
		return reportError(a.stderr, err, s.verbose, s.cfg.UI.ColorScheme)
	}

	fmt.Fprintf(a.stdout, "%s %s is valid\n\n", SuccessStyle.Render("✓"), CmdStyle.Render(s.dictPath))
	return help.NewGenerator(s.agg.Dictionary()).WriteIndex(a.stdout)
}
