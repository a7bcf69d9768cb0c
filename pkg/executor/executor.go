// SPDX-License-Identifier: MPL-2.0

package executor

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/invowk/wca/pkg/verifier"
)

type (
	// Executor invokes the routines of a verified program.
	Executor struct {
		logger *slog.Logger
	}

	// Option configures an Executor.
	Option func(*Executor)
)

// WithLogger sets the logger used for per-command debug records.
func WithLogger(l *slog.Logger) Option {
	return func(e *Executor) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an executor.
func New(opts ...Option) *Executor {
	e := &Executor{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs every command of prog in order, calling each routine's Invoke.
func (e *Executor) Execute(ctx context.Context, prog verifier.Program) error {
	return e.run(ctx, prog, nil, false)
}

// ExecuteWithContext runs every command of prog in order, calling each
// routine's InvokeWithContext with uctx. The executor never inspects uctx.
func (e *Executor) ExecuteWithContext(ctx context.Context, prog verifier.Program, uctx any) error {
	return e.run(ctx, prog, uctx, true)
}

func (e *Executor) run(ctx context.Context, prog verifier.Program, uctx any, withContext bool) error {
	for i, cmd := range prog.Commands {
		start := time.Now()
		err := invoke(ctx, cmd, uctx, withContext)
		e.logger.DebugContext(ctx, "command finished",
			"index", i,
			"phrase", cmd.Phrase,
			"internal", cmd.Internal,
			"duration", time.Since(start),
			"error", err)
		if err != nil {
			return &RoutineFailedError{Index: i, Phrase: cmd.Phrase, Err: err}
		}
	}
	return nil
}

func invoke(ctx context.Context, cmd verifier.VerifiedCommand, uctx any, withContext bool) (err error) {
	routine := cmd.Routine()
	if routine == nil {
		return ErrNoRoutine
	}

	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()

	if withContext {
		return routine.InvokeWithContext(ctx, cmd.Args, cmd.Props, uctx)
	}
	return routine.Invoke(ctx, cmd.Args, cmd.Props)
}
