// SPDX-License-Identifier: MPL-2.0

package wca

import (
	"io"
	"log/slog"
	"os"

	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/help"
	"github.com/invowk/wca/pkg/verifier"
)

type (
	// Callback is called once per Perform, after verification succeeds and
	// before anything executes. input is the text as given, or the tokens
	// joined by single spaces.
	Callback func(input string, prog verifier.Program)

	// Builder assembles an Aggregator. Methods return the builder for
	// chaining; problems with the commands surface from Build.
	Builder struct {
		commands    []grammar.Command
		variants    help.Variant
		callback    Callback
		uctx        any
		hasContext  bool
		logger      *slog.Logger
		out         io.Writer
		suggestions bool
	}
)

// NewBuilder returns a builder with every help variant enabled, suggestions
// on, help written to os.Stdout and slog.Default for logging.
func NewBuilder() *Builder {
	return &Builder{
		variants:    help.All,
		logger:      slog.Default(),
		out:         os.Stdout,
		suggestions: true,
	}
}

// Command adds one command.
func (b *Builder) Command(cmd grammar.Command) *Builder {
	b.commands = append(b.commands, cmd)
	return b
}

// Commands adds several commands, in order.
func (b *Builder) Commands(cmds ...grammar.Command) *Builder {
	b.commands = append(b.commands, cmds...)
	return b
}

// HelpVariants selects which help commands Build registers.
func (b *Builder) HelpVariants(v help.Variant) *Builder {
	b.variants = v
	return b
}

// Callback sets the hook run between verification and execution.
func (b *Builder) Callback(fn Callback) *Builder {
	b.callback = fn
	return b
}

// Context attaches a user context. Once set, routines are called through
// InvokeWithContext with uctx, even when uctx is nil.
func (b *Builder) Context(uctx any) *Builder {
	b.uctx = uctx
	b.hasContext = true
	return b
}

// Logger sets the logger for debug records. A nil logger is ignored.
func (b *Builder) Logger(l *slog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// Output sets where the help commands write.
func (b *Builder) Output(w io.Writer) *Builder {
	if w != nil {
		b.out = w
	}
	return b
}

// Suggestions toggles "did you mean" suggestions in verification errors.
func (b *Builder) Suggestions(enabled bool) *Builder {
	b.suggestions = enabled
	return b
}

// Build validates and inserts every command, registers the help commands and
// returns the aggregator. It fails with *grammar.InvalidCommandError or
// *grammar.DuplicatePhraseError.
func (b *Builder) Build() (*Aggregator, error) {
	dict := grammar.NewDictionary()
	for _, cmd := range b.commands {
		if err := dict.Insert(cmd); err != nil {
			return nil, err
		}
	}
	if err := help.Register(dict, b.variants, b.out); err != nil {
		return nil, err
	}

	b.logger.Debug("aggregator built", "commands", dict.Len(), "help", b.variants.String())

	return &Aggregator{
		dict:       dict,
		verifier:   verifier.New(dict, verifier.WithSuggestions(b.suggestions)),
		variants:   b.variants,
		callback:   b.callback,
		uctx:       b.uctx,
		hasContext: b.hasContext,
		logger:     b.logger,
	}, nil
}
