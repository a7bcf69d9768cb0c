// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/invowk/wca/internal/config"
	"github.com/invowk/wca/internal/issue"
	"github.com/invowk/wca/internal/runtime"
	"github.com/invowk/wca/pkg/cueutil"
	"github.com/invowk/wca/pkg/executor"
	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/parser"
	"github.com/invowk/wca/pkg/verifier"
	"github.com/invowk/wca/pkg/wca"
	"github.com/invowk/wca/pkg/wcafile"
)

// formatErrorForDisplay formats an error for user display. ActionableErrors
// use their Format method, which lists the error chain in verbose mode.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ErrorStyle.Render("✗ ") + ae.Format(verbose)
	}
	return ErrorStyle.Render("✗ ") + err.Error()
}

// issueFor maps err to the catalog guide that explains it, or 0.
func issueFor(err error) issue.Id {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.IssueId != 0 {
		return ae.IssueId
	}

	switch {
	case errors.Is(err, verifier.ErrUnknownPhrase):
		return issue.UnknownCommandId
	case errors.Is(err, verifier.ErrTooManySubjects),
		errors.Is(err, verifier.ErrMissingSubject),
		errors.Is(err, verifier.ErrSubjectKindMismatch),
		errors.Is(err, verifier.ErrUnknownProperty),
		errors.Is(err, verifier.ErrPropertyKindMismatch),
		errors.Is(err, verifier.ErrMissingProperty):
		return issue.ArgumentMismatchId
	case errors.Is(err, parser.ErrUnterminatedQuote),
		errors.Is(err, parser.ErrStrayTokens),
		errors.Is(err, parser.ErrEmptyPhrase):
		return issue.InvalidInputId
	case errors.Is(err, runtime.ErrScriptExit):
		return issue.ScriptFailedId
	case errors.Is(err, executor.ErrRoutineFailed):
		return issue.RoutineFailedId
	case errors.Is(err, grammar.ErrInvalidCommand), errors.Is(err, grammar.ErrDuplicatePhrase):
		return issue.InvalidGrammarId
	case errors.Is(err, wcafile.ErrInvalidDefinition),
		errors.Is(err, wcafile.ErrDecode),
		errors.Is(err, wcafile.ErrUnsupportedFormat),
		errors.Is(err, cueutil.ErrValidation):
		return issue.DictionaryFileInvalidId
	case errors.Is(err, config.ErrInvalidConfig):
		return issue.ConfigLoadFailedId
	}
	return 0
}

// reportError writes err to w and returns the ExitError that carries its
// exit code. Verbose mode appends the matching issue guide.
func reportError(w io.Writer, err error, verbose bool, scheme config.ColorScheme) error {
	fmt.Fprintln(w, formatErrorForDisplay(err, verbose))

	id := issueFor(err)
	switch {
	case id == 0:
	case verbose:
		if guide := issue.Get(id); guide != nil {
			rendered, renderErr := guide.Render(glamourStyle(scheme))
			if renderErr != nil {
				slog.Warn("failed to render issue catalog entry", "issueID", id, "error", renderErr)
			} else {
				fmt.Fprint(w, rendered)
			}
		}
	default:
		fmt.Fprintln(w, hintStyle.Render("Run again with --verbose for a troubleshooting guide."))
	}

	return &ExitError{Code: wca.ExitCodeFor(err), Err: err}
}
