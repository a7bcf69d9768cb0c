// SPDX-License-Identifier: MPL-2.0

package wca

import (
	"context"
	"log/slog"
	"strings"

	"github.com/invowk/wca/pkg/executor"
	"github.com/invowk/wca/pkg/grammar"
	"github.com/invowk/wca/pkg/help"
	"github.com/invowk/wca/pkg/parser"
	"github.com/invowk/wca/pkg/verifier"

	"github.com/google/uuid"
)

// Aggregator runs inputs against a fixed dictionary. The dictionary is
// read-only after Build; concurrent Perform calls are safe as long as the
// routines and the user context are.
type Aggregator struct {
	dict       *grammar.Dictionary
	verifier   *verifier.Verifier
	variants   help.Variant
	callback   Callback
	uctx       any
	hasContext bool
	logger     *slog.Logger
}

// Dictionary returns the command dictionary, including the help commands.
func (a *Aggregator) Dictionary() *grammar.Dictionary { return a.dict }

// Perform tokenizes input on ASCII whitespace outside double quotes and runs
// the result.
func (a *Aggregator) Perform(ctx context.Context, input string) error {
	tokens, err := parser.Tokenize(input)
	if err != nil {
		return &Error{Stage: StageTokenize, Err: err}
	}
	return a.perform(ctx, input, tokens)
}

// PerformTokens runs an already split token vector, such as os.Args[1:].
func (a *Aggregator) PerformTokens(ctx context.Context, tokens []string) error {
	return a.perform(ctx, strings.Join(tokens, " "), tokens)
}

// Verify parses and verifies tokens without running anything.
func (a *Aggregator) Verify(tokens []string) (verifier.Program, error) {
	raw, err := parser.Parse(tokens)
	if err != nil {
		return verifier.Program{}, &Error{Stage: StageParse, Err: err}
	}
	if raw.IsEmpty() && a.variants.Enabled() {
		raw.Commands = []parser.RawCommand{{Phrase: help.Phrase}}
	}
	prog, err := a.verifier.Verify(raw)
	if err != nil {
		return verifier.Program{}, &Error{Stage: StageVerify, Err: err}
	}
	return prog, nil
}

func (a *Aggregator) perform(ctx context.Context, input string, tokens []string) error {
	logger := a.logger.With("run", uuid.NewString())

	prog, err := a.Verify(tokens)
	if err != nil {
		logger.DebugContext(ctx, "input rejected", "input", input, "error", err)
		return err
	}
	logger.DebugContext(ctx, "program verified", "input", input, "commands", prog.Phrases())

	if a.callback != nil {
		a.callback(input, prog)
	}

	exec := executor.New(executor.WithLogger(logger))
	if a.hasContext {
		err = exec.ExecuteWithContext(ctx, prog, a.uctx)
	} else {
		err = exec.Execute(ctx, prog)
	}
	if err != nil {
		return &Error{Stage: StageExecute, Err: err}
	}
	return nil
}
